//go:build unit

package utils

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestConvertMinutesToDuration(t *testing.T) {
	convert := func(minutes int64, want string) func(t *testing.T) {
		return func(t *testing.T) {
			if diff := cmp.Diff(want, ConvertMinutesToDuration(minutes)); diff != "" {
				t.Fatalf("ConvertMinutesToDuration(%d) mismatch (-want +got):\n%s", minutes, diff)
			}
		}
	}

	t.Run("hours_and_minutes", convert(215, "3h 35m"))
	t.Run("whole_hours", convert(120, "2h"))
	t.Run("minutes_only", convert(45, "45m"))
	t.Run("zero", convert(0, "0h"))
}

func TestFormatINR(t *testing.T) {
	format := func(amount int64, want string) func(t *testing.T) {
		return func(t *testing.T) {
			if diff := cmp.Diff(want, FormatINR(amount)); diff != "" {
				t.Fatalf("FormatINR(%d) mismatch (-want +got):\n%s", amount, diff)
			}
		}
	}

	t.Run("zero", format(0, "₹0"))
	t.Run("hundreds", format(999, "₹999"))
	t.Run("thousands", format(52124, "₹52,124"))
	t.Run("lakhs", format(523400, "₹5,23,400"))
	t.Run("crores", format(123456789, "₹12,34,56,789"))
	t.Run("negative", format(-1500, "-₹1,500"))
}
