package mortality

import (
	"log/slog"
	"strings"
)

// CauseMapping is the static table resolving each cleaned indicator label
// to its canonical short key. The table is bijective on the indicator
// domain: every label the source can emit appears exactly once, and any
// label outside it fails the run with an UnmappedCategoryError.
var CauseMapping = map[string]CauseKey{
	"Number of Deaths":                      CauseTotalDeaths,
	"Number of Drug Overdose Deaths":        CauseOverdose,
	"Percent with drugs specified":          CausePercentSpecified,
	"Heroin":                                CauseHeroin,
	"Cocaine":                               CauseCocaine,
	"Methadone":                             CauseMethadone,
	"Natural & semi-synthetic opioids":      CauseNaturalOpioids,
	"Synthetic opioids, excl. methadone":    CauseSyntheticOpioids,
	"Opioids":                               CauseOpioids,
	"Psychostimulants with abuse potential": CausePsychostimulants,
}

// SplitIndicator splits a raw indicator into its cleaned label and
// optional classification code. The split happens on the first opening
// parenthesis; the trailing close-parenthesis of the code is stripped.
//
//	"Heroin (T40.1)" → ("Heroin", "T40.1")
//	"Cocaine"        → ("Cocaine", "")
func SplitIndicator(indicator string) (label, code string) {
	if i := strings.Index(indicator, "("); i >= 0 {
		label = strings.TrimSpace(indicator[:i])
		code = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(indicator[i+1:]), ")"))
		return label, code
	}
	return strings.TrimSpace(indicator), ""
}

// Normalize resolves every record's indicator against CauseMapping,
// attaching the canonical cause key and classification code. The lookup
// fails closed: the first unmapped label aborts the run.
func Normalize(records []Record, logger *slog.Logger) ([]NormalizedRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(records) == 0 {
		return nil, ErrEmptyTable
	}

	normalized := make([]NormalizedRecord, 0, len(records))
	for _, r := range records {
		label, code := SplitIndicator(r.Indicator)
		key, ok := CauseMapping[label]
		if !ok {
			return nil, &UnmappedCategoryError{
				Indicator: r.Indicator,
				StateCode: r.StateCode,
				Year:      r.Year,
				Row:       r.Row,
			}
		}
		normalized = append(normalized, NormalizedRecord{
			StateCode: r.StateCode,
			StateName: r.StateName,
			Year:      r.Year,
			Cause:     key,
			Code:      code,
			Value:     r.Value,
			Row:       r.Row,
		})
	}

	logger.Debug("normalized indicators", "records", len(normalized))
	return normalized, nil
}
