package flight

import (
	"sort"

	"github.com/RawatAr/travel-planner-ai/internal/app/dto"
)

// SortOffers orders offers in place and returns them. A nil option keeps the
// provider's order.
func SortOffers(offers []dto.FlightOffer, sortOption *dto.SortOption) []dto.FlightOffer {
	if sortOption == nil {
		return offers
	}

	desc := sortOption.Order == "desc"

	switch sortOption.Field {
	case "price":
		sort.SliceStable(offers, func(i, j int) bool {
			if desc {
				return offers[i].Price > offers[j].Price
			}
			return offers[i].Price < offers[j].Price
		})
	case "duration":
		sort.SliceStable(offers, func(i, j int) bool {
			if desc {
				return offers[i].TotalDuration > offers[j].TotalDuration
			}
			return offers[i].TotalDuration < offers[j].TotalDuration
		})
	case "departure_time":
		// "YYYY-MM-DD HH:MM" sorts lexically.
		sort.SliceStable(offers, func(i, j int) bool {
			if desc {
				return departureTime(offers[i]) > departureTime(offers[j])
			}
			return departureTime(offers[i]) < departureTime(offers[j])
		})
	}

	return offers
}

func departureTime(offer dto.FlightOffer) string {
	if len(offer.Flights) == 0 {
		return ""
	}

	return offer.Flights[0].DepartureAirport.Time
}
