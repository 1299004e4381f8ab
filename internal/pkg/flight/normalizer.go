package flight

import (
	"fmt"

	"github.com/RawatAr/travel-planner-ai/internal/app/dto"
)

// bookingURLFormat is a Google Flights deep link. The tfs token encodes the
// date 2025-05-14 followed by both airport codes; the date is not rewritten
// per search.
const bookingURLFormat = "https://www.google.com/travel/flights?hl=en&gl=in&curr=INR" +
	"&tfs=CBwQAhoeEgoyMDI1LTA1LTE0agcIARID%scgcIARID%s"

type OfferNormalizer struct{}

func NewOfferNormalizer() *OfferNormalizer {
	return &OfferNormalizer{}
}

// Annotate returns a copy of set where every offer carries the booking link for
// the route and the INR currency tag. Prices are left untouched.
func (n *OfferNormalizer) Annotate(set dto.FlightOfferSet, origin, destination string) dto.FlightOfferSet {
	annotated := set.Clone()
	bookingURL := BookingURL(origin, destination)

	for i := range annotated.BestFlights {
		annotated.BestFlights[i].BookingURL = bookingURL
		annotated.BestFlights[i].Currency = dto.CurrencyINR
	}

	return annotated
}

func BookingURL(origin, destination string) string {
	return fmt.Sprintf(bookingURLFormat, origin, destination)
}
