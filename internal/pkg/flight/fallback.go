package flight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/RawatAr/travel-planner-ai/internal/app/dto"
	"github.com/spf13/afero"
)

const (
	// USDToINR converts dataset prices, which are stored in USD.
	USDToINR = 83

	mockDepartureTime = "2025-05-14 08:20"
	mockArrivalTime   = "2025-05-14 12:55"
	mockDuration      = 215
	mockTotalDuration = 1708
	mockPrice         = 52124
	mockAirline       = "Mock Airline"
	mockFlightNumber  = "MA 123"
)

type fallbackDataset struct {
	BestFlights []fallbackOffer `json:"best_flights"`
}

// fallbackOffer shadows the embedded price so dataset prices can be
// fractional, absent or a placeholder string.
type fallbackOffer struct {
	dto.FlightOffer
	Price json.RawMessage `json:"price"`
}

// FallbackCatalog serves offers when the live provider is unavailable.
type FallbackCatalog struct {
	fs   afero.Fs
	path string
}

func NewFallbackCatalog(fs afero.Fs, path string) *FallbackCatalog {
	return &FallbackCatalog{
		fs:   fs,
		path: path,
	}
}

// Get returns the dataset offers converted to INR. The dataset is read on every
// call. Without a dataset a single synthesized offer for the route is returned;
// an unreadable dataset yields an empty set. Get never fails.
func (c *FallbackCatalog) Get(ctx context.Context, origin, destination string) dto.FlightOfferSet {
	if c.path == "" {
		return mockOfferSet(origin, destination)
	}

	data, err := afero.ReadFile(c.fs, c.path)
	if errors.Is(err, os.ErrNotExist) {
		slog.InfoContext(ctx, "fallback dataset not found, using synthesized offer",
			slog.String("path", c.path))

		return mockOfferSet(origin, destination)
	}

	if err != nil {
		slog.ErrorContext(ctx, "failed to read fallback dataset",
			slog.String("path", c.path),
			slog.String("error", err.Error()))

		return dto.EmptyFlightOfferSet(dto.SourceFallback)
	}

	offers, err := decodeDataset(data)
	if err != nil {
		slog.ErrorContext(ctx, "failed to decode fallback dataset",
			slog.String("path", c.path),
			slog.String("error", err.Error()))

		return dto.EmptyFlightOfferSet(dto.SourceFallback)
	}

	return dto.FlightOfferSet{
		BestFlights: offers,
		Source:      dto.SourceFallback,
	}
}

func decodeDataset(data []byte) ([]dto.FlightOffer, error) {
	var dataset fallbackDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}

	offers := make([]dto.FlightOffer, len(dataset.BestFlights))
	for i, item := range dataset.BestFlights {
		offer := item.FlightOffer
		if amount, ok := dto.PriceAmount(item.Price, USDToINR); ok {
			offer.Price = int(amount)
			offer.Currency = dto.CurrencyINR
		}
		offers[i] = offer
	}

	return offers, nil
}

func mockOfferSet(origin, destination string) dto.FlightOfferSet {
	return dto.FlightOfferSet{
		BestFlights: []dto.FlightOffer{{
			Flights: []dto.FlightSegment{{
				DepartureAirport: dto.Airport{
					Name: origin + " International Airport",
					ID:   origin,
					Time: mockDepartureTime,
				},
				ArrivalAirport: dto.Airport{
					Name: destination + " International Airport",
					ID:   destination,
					Time: mockArrivalTime,
				},
				Duration:     mockDuration,
				Airline:      mockAirline,
				FlightNumber: mockFlightNumber,
			}},
			TotalDuration: mockTotalDuration,
			Price:         mockPrice,
			Currency:      dto.CurrencyINR,
		}},
		Source: dto.SourceFallback,
	}
}
