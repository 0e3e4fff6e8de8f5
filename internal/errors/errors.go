// Package errors defines the error taxonomy of the ingestion and view
// computation core. Load-time failures are fatal for the affected dataset and
// keep the system out of a serving-ready state; per-row value problems are
// never surfaced as errors and only reduce join and aggregate completeness.
package errors

import (
	"errors"
	"fmt"
)

// LoadError indicates a raw dataset byte stream could not be parsed as
// tabular data. It aborts the startup or reload that triggered the load.
type LoadError struct {
	Dataset string
	Cause   error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Dataset, e.Cause)
}

// Unwrap allows errors.Is and errors.As to work with LoadError
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// NewLoadError creates a load error for the given dataset
func NewLoadError(dataset string, cause error) *LoadError {
	return &LoadError{Dataset: dataset, Cause: cause}
}

// SchemaError indicates a required column (or any recognized alias for it)
// is absent after normalization. Fatal for the affected dataset.
type SchemaError struct {
	Dataset string
	Column  string
	Reason  string
}

// Error implements the error interface
func (e *SchemaError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("dataset %s: column %s: %s", e.Dataset, e.Column, e.Reason)
	}
	return fmt.Sprintf("dataset %s: %s", e.Dataset, e.Reason)
}

// NewSchemaError creates a schema error for the given dataset and column
func NewSchemaError(dataset, column, reason string) *SchemaError {
	return &SchemaError{Dataset: dataset, Column: column, Reason: reason}
}

// IsLoadError reports whether err is or wraps a LoadError
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// IsSchemaError reports whether err is or wraps a SchemaError
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
