// Package config loads the report generator's configuration.
//
// Values resolve in three layers: built-in defaults, then an optional
// YAML file, then ODATLAS_* environment variables. The merged result is
// validated before use, so a bad month name or output format fails at
// startup rather than mid-pipeline.
//
// Label anchor overrides for the map renderer live here too: states
// whose bounding-box midpoint falls outside their visible shape get a
// configured anchor instead of a hardcoded one.
package config
