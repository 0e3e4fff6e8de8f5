package dataset

import (
	"strconv"
	"strings"

	"retailpulse/internal/metrics"
)

// CoerceKeys retypes the designated join-key columns of t in place. Every
// cell either parses to an int64 or becomes the missing marker; the original
// unparsed string never survives in a key column. Returns the number of
// failed cells per column.
func CoerceKeys(t *Table, columns []string) map[string]int {
	failures := make(map[string]int, len(columns))
	if t.keys == nil {
		t.keys = make(map[string][]Key, len(columns))
	}

	for _, col := range columns {
		if !t.HasColumn(col) {
			continue
		}
		vals := make([]Key, len(t.Rows))
		for i, row := range t.Rows {
			k, ok := parseKey(row[col])
			if !ok {
				failures[col]++
				row[col] = ""
				continue
			}
			vals[i] = k
			row[col] = strconv.FormatInt(k.Num, 10)
		}
		t.keys[col] = vals
		if n := failures[col]; n > 0 {
			metrics.KeyCoercionFailures.WithLabelValues(t.Name, col).Add(float64(n))
		}
	}

	return failures
}

// parseKey accepts plain integers and integral floats ("42", "42.0").
// Anything else is the missing marker.
func parseKey(s string) (Key, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Key{}, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Key{Num: n, Valid: true}, true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) {
		return Key{Num: int64(f), Valid: true}, true
	}
	return Key{}, false
}
