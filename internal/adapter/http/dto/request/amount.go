package request

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexibleAmount is a monetary input that accepts a JSON number or a numeric
// string. Anything that does not parse as a finite number becomes 0.
type FlexibleAmount float64

func (a *FlexibleAmount) UnmarshalJSON(data []byte) error {
	*a = 0
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil
	}

	var v float64
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		v = parsed
	} else if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	*a = FlexibleAmount(v)
	return nil
}

func (a FlexibleAmount) Float64() float64 {
	return float64(a)
}
