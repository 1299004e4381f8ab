package dto

import (
	"encoding/json"
	"math"
)

// maxPrice keeps scaled prices exactly representable and inside int.
const maxPrice = 1 << 53

// PriceAmount reads a raw JSON price multiplied by rate. Anything but a
// finite, non-negative number below maxPrice after scaling reports false.
func PriceAmount(raw json.RawMessage, rate float64) (float64, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return 0, false
	}

	n, ok := value.(float64)
	if !ok {
		return 0, false
	}

	scaled := n * rate
	if math.IsNaN(scaled) || math.IsInf(scaled, 0) || scaled < 0 || scaled >= maxPrice {
		return 0, false
	}

	return scaled, true
}
