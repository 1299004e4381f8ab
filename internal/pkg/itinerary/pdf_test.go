//go:build unit

package itinerary

import (
	"bytes"
	"testing"
	"time"

	"github.com/RawatAr/travel-planner-ai/internal/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPDF(t *testing.T) {
	offers := make([]dto.FlightOffer, 7)
	for i := range offers {
		offers[i] = dto.FlightOffer{
			Flights: []dto.FlightSegment{{
				DepartureAirport: dto.Airport{ID: "BOM", Time: "2025-05-14 08:20"},
				ArrivalAirport:   dto.Airport{ID: "GOI", Time: "2025-05-14 09:35"},
				Airline:          "IndiGo",
				FlightNumber:     "6E 5391",
			}},
			TotalDuration: 75,
			Price:         4321 + i,
			Currency:      dto.CurrencyINR,
		}
	}

	render := func(data PlanDocumentData) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := RenderPDF(data)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(got, []byte("%PDF")), "output is not a PDF")
		}
	}

	t.Run("full_plan", render(PlanDocumentData{
		Source:      "Mumbai",
		Destination: "Goa",
		Dates:       "May 14, 2025 to May 18, 2025",
		Travelers:   2,
		Budget:      "40000",
		TravelPlan: "# Travel Plan: Mumbai to Goa\n\n## Overview\n*Sun, sand and **seafood**.*\n\n" +
			"## Day-by-Day Itinerary\n1. Day 1: Baga beach\n2. Day 2: Old Goa churches\n" +
			"   - Budget: ₹2,500 per person\n\n## Local Cuisine\n- Fish curry rice – a must try 🍛",
		FlightData:  dto.FlightOfferSet{BestFlights: offers, Source: dto.SourceLive},
		GeneratedAt: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC),
	}))

	t.Run("without_plan_or_offers", render(PlanDocumentData{
		Source:      "Delhi",
		Destination: "Zürich",
		Dates:       "June 1, 2025",
		Travelers:   1,
		Budget:      "2 lakh",
	}))

	t.Run("offer_without_segments", render(PlanDocumentData{
		Source:      "Delhi",
		Destination: "Pune",
		FlightData:  dto.FlightOfferSet{BestFlights: []dto.FlightOffer{{TotalDuration: 100}}},
	}))
}

func TestListItem(t *testing.T) {
	item := func(line, wantMarker, wantRest string, wantOK bool) func(t *testing.T) {
		return func(t *testing.T) {
			marker, rest, ok := listItem(line)
			assert.Equal(t, wantOK, ok)
			assert.Equal(t, wantMarker, marker)
			assert.Equal(t, wantRest, rest)
		}
	}

	t.Run("dash", item("- Sunscreen", "-", "Sunscreen", true))
	t.Run("star", item("* Hat", "-", "Hat", true))
	t.Run("numbered", item("12. Day twelve", "12.", "Day twelve", true))
	t.Run("sentence_with_period", item("Goa is lovely. Go in winter", "", "", false))
	t.Run("plain", item("Plain text", "", "", false))
}
