// Package dataset turns raw tabular byte streams into normalized, key-coerced
// in-memory tables. It is the sole ingestion boundary of the system; no other
// package parses raw bytes.
//
// # Architecture
//
// Loading composes three steps:
//
// 1. Reader: parses CSV or Excel bytes into header + data rows
// 2. Normalizer: trims and upper-cases headers, resolves known column-name
// variants to canonical names (PURCHASE_/PURCHASE_DATE to DATE, BRAND_TY to
// BRAND_TYPE)
// 3. Coercer: retypes designated join-key columns to int64, replacing
// unparseable cells with a missing marker instead of rejecting the row
//
// # Usage
//
//	loader := dataset.NewLoader(logger)
//	table, err := loader.Load(ctx, reader, dataset.TransactionSchema())
//
// # Error Handling
//
// Malformed tabular structure yields *errors.LoadError; an unresolvable
// required column yields *errors.SchemaError. Both are fatal for the dataset
// being loaded. Individual join-key cells that fail numeric parsing are not
// errors: the cell becomes the missing marker, the row is retained, and the
// failure is counted in Prometheus metrics.
package dataset
