package utils

import (
	"fmt"
	"strconv"
)

// ConvertMinutesToDuration convert minutes to duration format string
// Example: 125 -> "2h 5m"
func ConvertMinutesToDuration(durationInMinutes int64) string {

	h := durationInMinutes / 60
	m := durationInMinutes % 60

	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}

	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}

	return fmt.Sprintf("%dh %dm", h, m)
}

// FormatINR formats rupees with Indian digit grouping.
// Example: 5212400 -> "₹52,12,400"
func FormatINR(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := strconv.FormatInt(amount, 10)

	// last three digits, then groups of two
	var result []byte
	for i := len(str) - 1; i >= 0; i-- {
		pos := len(str) - 1 - i
		if pos == 3 || (pos > 3 && (pos-3)%2 == 0) {
			result = append([]byte{','}, result...)
		}
		result = append([]byte{str[i]}, result...)
	}

	if negative {
		return "-₹" + string(result)
	}
	return "₹" + string(result)
}
