package dataset

import (
	"context"
	"io"
	"log/slog"

	"retailpulse/internal/errors"
	"retailpulse/internal/metrics"
)

// Loader turns raw dataset byte streams into normalized, key-coerced tables.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a loader. A nil logger falls back to slog.Default().
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load reads one dataset from r according to its declared schema: parse the
// tabular bytes, normalize the column names, coerce the join keys. Malformed
// structure yields a *errors.LoadError; an unresolvable required column
// yields a *errors.SchemaError.
func (l *Loader) Load(ctx context.Context, r io.Reader, s Schema) (*Table, error) {
	var raw [][]string
	var err error
	switch s.Format {
	case FormatXLSX:
		raw, err = readWorkbook(r)
	default:
		raw, err = readCSV(r)
	}
	if err != nil {
		return nil, errors.NewLoadError(s.Dataset, err)
	}
	if len(raw) == 0 {
		return nil, errors.NewSchemaError(s.Dataset, "", "missing header row")
	}

	header := raw[0]
	rows := make([]map[string]string, 0, len(raw)-1)
	for _, rec := range raw[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	t, err := Normalize(NewTable(s.Dataset, header, rows), s)
	if err != nil {
		return nil, err
	}

	failures := CoerceKeys(t, s.Keys)
	for col, n := range failures {
		l.logger.WarnContext(ctx, "join-key cells failed numeric parsing",
			slog.String("dataset", s.Dataset),
			slog.String("column", col),
			slog.Int("cells", n))
	}

	metrics.RowsLoaded.WithLabelValues(s.Dataset).Add(float64(t.Len()))
	l.logger.InfoContext(ctx, "dataset loaded",
		slog.String("dataset", s.Dataset),
		slog.Int("rows", t.Len()),
		slog.Int("columns", len(t.Columns)))

	return t, nil
}
