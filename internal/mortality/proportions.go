package mortality

import (
	"log/slog"
	"sort"
)

// Calculator derives the pooled and split proportion views from
// normalized records. All grouping uses explicit composite keys and
// sorted output so re-running on identical input produces identical
// tables.
type Calculator struct {
	logger *slog.Logger
}

// NewCalculator creates a proportion calculator.
func NewCalculator(logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{logger: logger}
}

type stateYearKey struct {
	state string
	year  int
}

// Aggregate groups records by (state, year) and sums values per cause
// key, producing at most one bucket per (state, year, cause). The result
// is sorted by state code, then year.
func (c *Calculator) Aggregate(records []NormalizedRecord) []StateYearAggregate {
	byKey := make(map[stateYearKey]*StateYearAggregate)
	for _, r := range records {
		k := stateYearKey{state: r.StateCode, year: r.Year}
		agg, ok := byKey[k]
		if !ok {
			agg = &StateYearAggregate{
				StateCode: r.StateCode,
				StateName: r.StateName,
				Year:      r.Year,
				Counts:    make(map[CauseKey]float64),
			}
			byKey[k] = agg
		}
		agg.Counts[r.Cause] += r.Value
	}

	aggs := make([]StateYearAggregate, 0, len(byKey))
	for _, agg := range byKey {
		aggs = append(aggs, *agg)
	}
	sort.Slice(aggs, func(i, j int) bool {
		if aggs[i].StateCode != aggs[j].StateCode {
			return aggs[i].StateCode < aggs[j].StateCode
		}
		return aggs[i].Year < aggs[j].Year
	})

	c.logger.Debug("aggregated state/year buckets", "buckets", len(aggs))
	return aggs
}

// Pooled computes the pooled proportion view: drug-related deaths over
// total deaths per state/year, with chronological year-over-year deltas.
// Drug-related sums every count bucket except the total-deaths
// denominator; the percent-specified indicator is a pre-computed ratio
// and is excluded from summation.
//
// The earliest year present for a state carries Delta = 0. A state/year
// absent from the input produces no row at all.
func (c *Calculator) Pooled(aggs []StateYearAggregate) ([]PooledProportion, error) {
	pooled := make([]PooledProportion, 0, len(aggs))
	for _, agg := range aggs {
		var drugRelated float64
		var hasDrugRows bool
		for cause, count := range agg.Counts {
			if cause == CauseTotalDeaths || !cause.IsCount() {
				continue
			}
			drugRelated += count
			hasDrugRows = true
		}
		if !hasDrugRows {
			// Nothing drug-related reported for this state/year.
			continue
		}
		if !agg.HasCause(CauseTotalDeaths) {
			return nil, &MissingCauseError{
				StateCode: agg.StateCode,
				Year:      agg.Year,
				Cause:     CauseTotalDeaths,
			}
		}
		total := agg.Count(CauseTotalDeaths)
		if total == 0 {
			return nil, &DivisionError{StateCode: agg.StateCode, Year: agg.Year}
		}
		pooled = append(pooled, PooledProportion{
			StateCode:  agg.StateCode,
			StateName:  agg.StateName,
			Year:       agg.Year,
			Proportion: drugRelated / total,
		})
	}

	// Deltas: aggs arrive sorted by state then year, so consecutive rows
	// of the same state are chronological.
	prev := make(map[string]float64, len(pooled))
	for i := range pooled {
		p := &pooled[i]
		if base, ok := prev[p.StateCode]; ok {
			p.Delta = p.Proportion - base
		} else {
			p.Delta = 0
		}
		prev[p.StateCode] = p.Proportion
	}

	c.logger.Info("computed pooled proportions", "rows", len(pooled))
	return pooled, nil
}

// Split computes the per-cause proportion view for states that report
// detailed cause breakdowns. Membership is determined from the data: a
// state qualifies when any of its records carries a detail cause key.
// Every qualifying state/year emits one row per cause in CauseOrder;
// causes absent from the data count as zero.
func (c *Calculator) Split(aggs []StateYearAggregate) ([]SplitProportion, error) {
	detailStates := make(map[string]bool)
	for _, agg := range aggs {
		for cause := range agg.Counts {
			if cause.IsDetail() {
				detailStates[agg.StateCode] = true
				break
			}
		}
	}

	var split []SplitProportion
	for _, agg := range aggs {
		if !detailStates[agg.StateCode] {
			continue
		}
		if !agg.HasCause(CauseTotalDeaths) {
			var hasDrugRows bool
			for cause := range agg.Counts {
				if cause != CauseTotalDeaths && cause.IsCount() {
					hasDrugRows = true
					break
				}
			}
			if !hasDrugRows {
				continue
			}
			return nil, &MissingCauseError{
				StateCode: agg.StateCode,
				Year:      agg.Year,
				Cause:     CauseTotalDeaths,
			}
		}
		total := agg.Count(CauseTotalDeaths)
		if total == 0 {
			return nil, &DivisionError{StateCode: agg.StateCode, Year: agg.Year}
		}
		for _, cause := range CauseOrder {
			split = append(split, SplitProportion{
				StateCode:  agg.StateCode,
				StateName:  agg.StateName,
				Year:       agg.Year,
				Cause:      cause,
				Proportion: agg.Count(cause) / total,
			})
		}
	}

	c.logger.Info("computed split proportions",
		"rows", len(split),
		"detail_states", len(detailStates))
	return split, nil
}
