//go:build unit

package tripdate

import (
	"context"
	"testing"
)

func TestNormalize(t *testing.T) {
	normalizeRequest := func(dates string, want string) func(t *testing.T) {
		return func(t *testing.T) {
			got := Normalize(context.Background(), dates)
			if got != want {
				t.Fatalf("Normalize(%q) = %q, want %q", dates, got, want)
			}
		}
	}

	t.Run("single_date", normalizeRequest("May 14, 2025", "2025-05-14"))
	t.Run("range_uses_departure", normalizeRequest("May 14, 2025 to May 20, 2025", "2025-05-14"))
	t.Run("single_digit_day", normalizeRequest("June 3, 2026 to June 9, 2026", "2026-06-03"))
	t.Run("zero_padded_day", normalizeRequest("December 05, 2025", "2025-12-05"))
	t.Run("surrounding_space", normalizeRequest("  March 1, 2026  ", "2026-03-01"))
	t.Run("garbage", normalizeRequest("garbage", DefaultDate))
	t.Run("iso_input_not_accepted", normalizeRequest("2025-07-01", DefaultDate))
	t.Run("abbreviated_month_not_accepted", normalizeRequest("Jul 1, 2025", DefaultDate))
	t.Run("empty", normalizeRequest("", DefaultDate))
	t.Run("invalid_day", normalizeRequest("February 30, 2025", DefaultDate))
}
