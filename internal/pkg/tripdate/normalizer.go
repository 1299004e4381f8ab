package tripdate

import (
	"context"
	"log/slog"
	"strings"
	"time"
)

const (
	// RangeSeparator splits "May 14, 2025 to May 20, 2025" style ranges.
	RangeSeparator = " to "
	// InputLayout is the human readable format accepted for the departure date.
	InputLayout = "January 2, 2006"
	// ISOLayout is the outbound date format expected by the flight provider.
	ISOLayout = "2006-01-02"
	// DefaultDate replaces any departure date that cannot be parsed.
	DefaultDate = "2025-05-14"
)

// Normalize returns the departure date of a free-text date or date range in
// ISO format. Unparseable input yields DefaultDate.
func Normalize(ctx context.Context, dates string) string {
	departure, _, _ := strings.Cut(dates, RangeSeparator)
	departure = strings.TrimSpace(departure)

	parsed, err := time.Parse(InputLayout, departure)
	if err != nil {
		slog.WarnContext(ctx, "failed to parse travel date, using default",
			slog.String("dates", dates),
			slog.String("default", DefaultDate),
			slog.String("error", err.Error()))

		return DefaultDate
	}

	return parsed.Format(ISOLayout)
}
