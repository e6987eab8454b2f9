package program

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// NullFloat is a single per-set actual value, empty until the client records it.
type NullFloat struct {
	Float64 float64
	Valid   bool
}

func Float(v float64) NullFloat {
	return NullFloat{Float64: v, Valid: true}
}

// Positive reports whether the value is recorded and > 0.
func (n NullFloat) Positive() bool {
	return n.Valid && n.Float64 > 0
}

func (n NullFloat) String() string {
	if !n.Valid {
		return ""
	}
	return strconv.FormatFloat(n.Float64, 'f', -1, 64)
}

func (n NullFloat) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Float64)
}

// UnmarshalJSON accepts null, numbers, and numeric strings. Input fields of
// older clients were stored as strings, with "" meaning empty.
func (n *NullFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = NullFloat{}
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*n = NullFloat{}
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("parse actual value %q: %w", s, err)
		}
		*n = Float(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Float(v)
	return nil
}

func valueAt(values []NullFloat, i int) NullFloat {
	if i < 0 || i >= len(values) {
		return NullFloat{}
	}
	return values[i]
}

func countRecorded(values []NullFloat, limit int) int {
	count := 0
	for i := 0; i < len(values) && i < limit; i++ {
		if values[i].Valid {
			count++
		}
	}
	return count
}

// withValue returns a copy of values holding v at index i. The copy is
// allocated with length sets, padded with empty entries.
func withValue(values []NullFloat, sets, i int, v NullFloat) []NullFloat {
	updated := make([]NullFloat, sets)
	copy(updated, values)
	updated[i] = v
	return updated
}
