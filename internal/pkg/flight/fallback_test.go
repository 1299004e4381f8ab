//go:build unit

package flight

import (
	"context"
	"testing"

	"github.com/RawatAr/travel-planner-ai/internal/app/dto"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const datasetPath = "/data/fallback_flights.json"

func TestFallbackCatalog_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("dataset_prices_converted_to_inr", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, datasetPath, []byte(`{
			"best_flights": [
				{"flights": [{"airline": "IndiGo", "flight_number": "6E 501"}], "total_duration": 140, "price": 100},
				{"flights": [{"airline": "Vistara", "flight_number": "UK 811"}], "total_duration": 150, "price": 60.5},
				{"flights": [{"airline": "Akasa Air", "flight_number": "QP 1102"}], "total_duration": 160}
			]
		}`), 0o644))

		got := NewFallbackCatalog(fs, datasetPath).Get(ctx, "BOM", "DEL")

		assert.Equal(t, dto.SourceFallback, got.Source)
		require.Len(t, got.BestFlights, 3)

		assert.Equal(t, 8300, got.BestFlights[0].Price)
		assert.Equal(t, dto.CurrencyINR, got.BestFlights[0].Currency)
		assert.Equal(t, 5021, got.BestFlights[1].Price)
		assert.Equal(t, dto.CurrencyINR, got.BestFlights[1].Currency)

		assert.Zero(t, got.BestFlights[2].Price)
		assert.Empty(t, got.BestFlights[2].Currency)
		assert.Equal(t, "QP 1102", got.BestFlights[2].Flights[0].FlightNumber)
	})

	t.Run("unusable_prices_leave_offer_unpriced", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, datasetPath, []byte(`{
			"best_flights": [
				{"flights": [{"flight_number": "6E 501"}], "price": 100},
				{"flights": [{"flight_number": "UK 811"}], "price": "unavailable"},
				{"flights": [{"flight_number": "AI 540"}], "price": 1e300},
				{"flights": [{"flight_number": "QP 1102"}], "price": -5},
				{"flights": [{"flight_number": "SG 8169"}], "price": null}
			]
		}`), 0o644))

		got := NewFallbackCatalog(fs, datasetPath).Get(ctx, "BOM", "DEL")

		require.Len(t, got.BestFlights, 5)
		assert.Equal(t, 8300, got.BestFlights[0].Price)
		assert.Equal(t, dto.CurrencyINR, got.BestFlights[0].Currency)

		for _, offer := range got.BestFlights[1:] {
			number := offer.Flights[0].FlightNumber
			assert.Zero(t, offer.Price, number)
			assert.Empty(t, offer.Currency, number)
		}
	})

	t.Run("dataset_without_offers", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, datasetPath, []byte(`{}`), 0o644))

		got := NewFallbackCatalog(fs, datasetPath).Get(ctx, "BOM", "DEL")

		assert.Equal(t, 0, got.Len())
		assert.Equal(t, dto.SourceFallback, got.Source)
	})

	t.Run("missing_dataset_synthesizes_offer", func(t *testing.T) {
		got := NewFallbackCatalog(afero.NewMemMapFs(), datasetPath).Get(ctx, "BOM", "DEL")

		want := dto.FlightOfferSet{
			Source: dto.SourceFallback,
			BestFlights: []dto.FlightOffer{{
				Flights: []dto.FlightSegment{{
					DepartureAirport: dto.Airport{Name: "BOM International Airport", ID: "BOM", Time: "2025-05-14 08:20"},
					ArrivalAirport:   dto.Airport{Name: "DEL International Airport", ID: "DEL", Time: "2025-05-14 12:55"},
					Duration:         215,
					Airline:          "Mock Airline",
					FlightNumber:     "MA 123",
				}},
				TotalDuration: 1708,
				Price:         52124,
				Currency:      dto.CurrencyINR,
			}},
		}

		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("Get() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty_path_synthesizes_offer", func(t *testing.T) {
		got := NewFallbackCatalog(afero.NewMemMapFs(), "").Get(ctx, "JFK", "LHR")

		require.Len(t, got.BestFlights, 1)
		assert.Equal(t, "JFK", got.BestFlights[0].Flights[0].DepartureAirport.ID)
		assert.Equal(t, "LHR", got.BestFlights[0].Flights[0].ArrivalAirport.ID)
	})

	t.Run("malformed_dataset_is_empty", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, datasetPath, []byte(`{"best_flights": [`), 0o644))

		got := NewFallbackCatalog(fs, datasetPath).Get(ctx, "BOM", "DEL")

		assert.Equal(t, dto.EmptyFlightOfferSet(dto.SourceFallback), got)
	})

	t.Run("dataset_is_reread_per_call", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		catalog := NewFallbackCatalog(fs, datasetPath)

		first := catalog.Get(ctx, "BOM", "DEL")
		assert.Equal(t, 52124, first.BestFlights[0].Price)

		require.NoError(t, afero.WriteFile(fs, datasetPath, []byte(`{"best_flights": [{"price": 2}]}`), 0o644))

		second := catalog.Get(ctx, "BOM", "DEL")
		require.Len(t, second.BestFlights, 1)
		assert.Equal(t, 166, second.BestFlights[0].Price)
	})
}
