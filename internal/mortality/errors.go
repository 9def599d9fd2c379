package mortality

import (
	"errors"
	"fmt"
)

// Pipeline-level sentinel errors.
var (
	ErrNoRecords       = errors.New("no records after month filtering")
	ErrEmptyTable      = errors.New("input table is empty")
	ErrNothingToRender = errors.New("no derived rows to render")
)

// FormatError reports a malformed input file: a missing required column
// or a row whose value field is non-numeric after trimming.
type FormatError struct {
	Path   string
	Row    int // 0 for header-level failures
	Column string
	Detail string
}

func (e *FormatError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("format error in %s row %d: %s", e.Path, e.Row, e.Detail)
	}
	return fmt.Sprintf("format error in %s: %s", e.Path, e.Detail)
}

// UnmappedCategoryError reports an indicator label outside the fixed
// CauseMapping table. The mapping is exhaustive by design, so an unmapped
// label indicates an upstream schema change and fails the run.
type UnmappedCategoryError struct {
	Indicator string
	StateCode string
	Year      int
	Row       int
}

func (e *UnmappedCategoryError) Error() string {
	return fmt.Sprintf("unmapped indicator %q (state %s, year %d, row %d)",
		e.Indicator, e.StateCode, e.Year, e.Row)
}

// DivisionError reports a zero total-deaths denominator for a state/year.
type DivisionError struct {
	StateCode string
	Year      int
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("zero total-deaths denominator for state %s, year %d",
		e.StateCode, e.Year)
}

// MissingCauseError reports a state/year that carries drug-related
// records but no total-deaths bucket, leaving no denominator to divide by.
type MissingCauseError struct {
	StateCode string
	Year      int
	Cause     CauseKey
}

func (e *MissingCauseError) Error() string {
	return fmt.Sprintf("state %s, year %d has drug-related records but no %s bucket",
		e.StateCode, e.Year, e.Cause)
}
