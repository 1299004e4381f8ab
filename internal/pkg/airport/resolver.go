package airport

import (
	"context"
	"log/slog"
	"strings"
)

const guessedCodeLength = 3

// Resolver turns free-text locations such as "Mumbai" or "Kochi, India (COK)"
// into airport codes.
type Resolver struct {
	table *CityCodeTable
}

func NewResolver(table *CityCodeTable) *Resolver {
	return &Resolver{table: table}
}

// Resolve never fails. A code written in parentheses is returned verbatim;
// otherwise the whole string and then each comma separated part is looked up
// in the table. Unknown locations degrade to the first three characters of the
// uppercased input, which may be shorter than three for short input.
func (r *Resolver) Resolve(ctx context.Context, location string) string {
	if code, ok := parenthesizedCode(location); ok {
		return code
	}

	normalized := strings.ToUpper(strings.TrimSpace(location))
	if code, ok := r.table.Lookup(normalized); ok {
		return code
	}

	for _, part := range strings.Split(normalized, ",") {
		if code, ok := r.table.Lookup(strings.TrimSpace(part)); ok {
			return code
		}
	}

	guess := truncate(normalized, guessedCodeLength)
	slog.WarnContext(ctx, "could not find airport code, using truncated location",
		slog.String("location", location),
		slog.String("code", guess))

	return guess
}

func parenthesizedCode(location string) (string, bool) {
	open := strings.Index(location, "(")
	if open < 0 || !strings.Contains(location, ")") {
		return "", false
	}

	rest := location[open+1:]
	if end := strings.Index(rest, ")"); end >= 0 {
		rest = rest[:end]
	}

	return strings.TrimSpace(rest), true
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n])
}
