package airport

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jszwec/csvutil"
)

//go:embed city_codes.csv
var defaultCityCodes []byte

// CityCode is one row of a city code table source.
type CityCode struct {
	City string `csv:"city"`
	Code string `csv:"code"`
}

// CityCodeTable maps an uppercased city or place name to its airport code.
// It is built once and never mutated, so it is safe for concurrent readers.
type CityCodeTable struct {
	codes map[string]string
}

// NewCityCodeTable builds a table from rows. When the same city appears more
// than once the last row wins and the overwritten entry is logged.
func NewCityCodeTable(rows []CityCode) *CityCodeTable {
	codes := make(map[string]string, len(rows))

	for _, row := range rows {
		city := strings.ToUpper(strings.TrimSpace(row.City))
		code := strings.ToUpper(strings.TrimSpace(row.Code))
		if city == "" || code == "" {
			continue
		}

		if previous, ok := codes[city]; ok && previous != code {
			slog.Warn("duplicate city in airport code table, last definition wins",
				slog.String("city", city),
				slog.String("previous_code", previous),
				slog.String("code", code))
		}

		codes[city] = code
	}

	return &CityCodeTable{codes: codes}
}

// LoadCityCodeTable decodes a CSV source with a `city,code` header.
func LoadCityCodeTable(r io.Reader) (*CityCodeTable, error) {
	decoder, err := csvutil.NewDecoder(newCSVReader(r))
	if err != nil {
		return nil, fmt.Errorf("failed to create city code decoder: %w", err)
	}

	var rows []CityCode
	if err := decoder.Decode(&rows); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode city codes: %w", err)
	}

	return NewCityCodeTable(rows), nil
}

func newCSVReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	return reader
}

// LoadCityCodeTableFile loads a table from path, falling back to the embedded
// table when path is empty.
func LoadCityCodeTableFile(path string) (*CityCodeTable, error) {
	if path == "" {
		return DefaultCityCodeTable()
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open city code table: %w", err)
	}
	defer file.Close()

	return LoadCityCodeTable(file)
}

// DefaultCityCodeTable returns the table shipped with the binary.
func DefaultCityCodeTable() (*CityCodeTable, error) {
	return LoadCityCodeTable(bytes.NewReader(defaultCityCodes))
}

// Lookup returns the code for an already uppercased and trimmed name.
func (t *CityCodeTable) Lookup(city string) (string, bool) {
	code, ok := t.codes[city]
	return code, ok
}

// Entries returns a copy of the table contents.
func (t *CityCodeTable) Entries() map[string]string {
	entries := make(map[string]string, len(t.codes))
	for city, code := range t.codes {
		entries[city] = code
	}

	return entries
}

func (t *CityCodeTable) Len() int {
	return len(t.codes)
}
