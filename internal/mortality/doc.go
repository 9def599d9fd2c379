// Package mortality implements the transformation pipeline for the VSRR
// provisional drug-overdose mortality table.
//
// The package covers three stages of the report pipeline:
//
//  1. Loader: reads the raw CSV, filters to the canonical reporting month,
//     and coerces year and indicator fields into their fixed domains.
//  2. Normalizer: splits the combined "indicator (code)" field into a
//     cleaned cause label plus an optional ICD classification code, and
//     resolves the label against the fixed CauseMapping table.
//  3. Calculator: aggregates counts by (state, year, cause) and derives
//     the pooled and split proportion views consumed by the renderer.
//
// # Data Flow
//
//	CSV file → LoadRecords → []Record → Normalize → []NormalizedRecord
//	         → Calculator.Aggregate → []StateYearAggregate
//	         → Calculator.Pooled / Calculator.Split → proportion views
//
// # Error Handling
//
// All pipeline errors are fatal to the run. Typed errors carry the
// offending row, state, year, or indicator so a failed run reports what
// triggered it:
//
//   - FormatError: malformed input schema or non-numeric value field
//   - UnmappedCategoryError: indicator label outside the fixed mapping
//   - DivisionError: zero total-deaths denominator
//   - MissingCauseError: drug records without a total-deaths bucket
//
// The indicator domain is exhaustive by design; an unmapped label means
// the upstream schema changed and must never be silently dropped.
package mortality
