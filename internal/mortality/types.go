package mortality

// CauseKey is the short canonical key for a cause-of-death indicator.
type CauseKey string

const (
	// CauseTotalDeaths is the all-cause death count, the proportion denominator.
	CauseTotalDeaths CauseKey = "total_deaths"
	// CauseOverdose is the drug-overdose catchall count.
	CauseOverdose CauseKey = "overdose_deaths"
	// CausePercentSpecified is a pre-computed ratio, never summed as a count.
	CausePercentSpecified CauseKey = "percent_specified"

	CauseHeroin           CauseKey = "heroin"
	CauseCocaine          CauseKey = "cocaine"
	CauseMethadone        CauseKey = "methadone"
	CauseNaturalOpioids   CauseKey = "natural_opioids"
	CauseSyntheticOpioids CauseKey = "synthetic_opioids"
	CauseOpioids          CauseKey = "opioids"
	CausePsychostimulants CauseKey = "psychostimulants"
)

// CauseOrder is the fixed enumeration of causes carried by the split view,
// in chart legend order. The ordering is explicit so that grouping and
// chart output are deterministic rather than inferred from data order.
var CauseOrder = []CauseKey{
	CauseHeroin,
	CauseCocaine,
	CauseMethadone,
	CauseNaturalOpioids,
	CauseSyntheticOpioids,
	CauseOpioids,
	CausePsychostimulants,
	CauseOverdose,
}

// ReportYears is the fixed year domain, in chronological order. Each year
// represents a 12-month-ending window through the reporting month.
var ReportYears = []int{2015, 2016, 2017}

// DefaultReportingMonth is the latest month available in every report year,
// so each year covers an equivalent 12-month window.
const DefaultReportingMonth = "August"

// causeTitles maps canonical keys to human-readable chart labels.
var causeTitles = map[CauseKey]string{
	CauseTotalDeaths:      "All deaths",
	CauseOverdose:         "Drug overdose",
	CausePercentSpecified: "Percent with drugs specified",
	CauseHeroin:           "Heroin",
	CauseCocaine:          "Cocaine",
	CauseMethadone:        "Methadone",
	CauseNaturalOpioids:   "Natural & semi-synthetic opioids",
	CauseSyntheticOpioids: "Synthetic opioids",
	CauseOpioids:          "Opioids (unspecified)",
	CausePsychostimulants: "Psychostimulants",
}

// Title returns the human-readable label for the cause key.
func (k CauseKey) Title() string {
	if t, ok := causeTitles[k]; ok {
		return t
	}
	return string(k)
}

// IsCount reports whether the cause value is a death count rather than a
// pre-computed percentage.
func (k CauseKey) IsCount() bool {
	return k != CausePercentSpecified
}

// IsDetail reports whether the cause is a specific drug category, as
// opposed to the total, the overdose catchall, or the percent indicator.
// A state qualifies for the split view when it carries at least one
// detail record.
func (k CauseKey) IsDetail() bool {
	switch k {
	case CauseTotalDeaths, CauseOverdose, CausePercentSpecified:
		return false
	}
	return true
}

// Record is one row of the source table after month filtering.
type Record struct {
	StateCode string
	StateName string
	Year      int
	Month     string
	Indicator string
	Value     float64
	Row       int // 1-based line in the source file, for error reporting
}

// IsValid checks that the record carries the fields later stages rely on.
func (r Record) IsValid() bool {
	return r.StateCode != "" && r.StateName != "" && r.Year > 0 &&
		r.Indicator != "" && r.Value >= 0
}

// NormalizedRecord is a Record whose indicator has been resolved to a
// canonical cause key and optional classification code.
type NormalizedRecord struct {
	StateCode string
	StateName string
	Year      int
	Cause     CauseKey
	Code      string // ICD classification code, "" when absent
	Value     float64
	Row       int
}

// StateYearAggregate holds summed per-cause counts for one (state, year).
type StateYearAggregate struct {
	StateCode string
	StateName string
	Year      int
	Counts    map[CauseKey]float64
}

// Count returns the summed count for a cause, 0 when absent.
func (a StateYearAggregate) Count(k CauseKey) float64 {
	return a.Counts[k]
}

// HasCause reports whether the aggregate carries a bucket for the cause.
func (a StateYearAggregate) HasCause(k CauseKey) bool {
	_, ok := a.Counts[k]
	return ok
}

// PooledProportion is one row of the pooled view: the share of
// drug-related deaths in all deaths for a state/year, with its
// year-over-year delta. The earliest year in a state's series carries
// Delta = 0 since no prior baseline exists.
type PooledProportion struct {
	StateCode  string
	StateName  string
	Year       int
	Proportion float64
	Delta      float64
}

// IsValid checks the pooled invariant: proportion within [0, 1].
func (p PooledProportion) IsValid() bool {
	return p.StateCode != "" && p.Year > 0 &&
		p.Proportion >= 0 && p.Proportion <= 1
}

// SplitProportion is one row of the split view: the share of a single
// cause in all deaths for a state/year. Only states reporting detailed
// cause breakdowns appear here.
type SplitProportion struct {
	StateCode  string
	StateName  string
	Year       int
	Cause      CauseKey
	Proportion float64
}
