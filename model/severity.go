package model

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Severity is an incident's severity level, nominally 1..5. The feed is written
// by a language model, so numbers may arrive as floats or strings; anything that
// is not numeric decodes as 0 (absent).
type Severity int

// UnmarshalJSON accepts 3, 3.0 and "3". It never fails.
func (s *Severity) UnmarshalJSON(data []byte) error {
	*s = 0

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	var f float64
	switch v := raw.(type) {
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f < math.MinInt32 || f > math.MaxInt32 {
		return nil
	}
	*s = Severity(math.Round(f))
	return nil
}
