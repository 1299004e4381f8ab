package dto

import (
	"fmt"
	"net/http"

	"github.com/RawatAr/travel-planner-ai/internal/pkg/exception"
)

const (
	// CurrencyINR is the only currency offers are reported in.
	CurrencyINR = "INR"

	SourceLive     = "live"
	SourceFallback = "fallback"
)

type Airport struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

// FlightSegment is one leg of an offer, as reported by the flight search provider.
type FlightSegment struct {
	DepartureAirport        Airport  `json:"departure_airport"`
	ArrivalAirport          Airport  `json:"arrival_airport"`
	Duration                int      `json:"duration"`
	Airplane                string   `json:"airplane,omitempty"`
	Airline                 string   `json:"airline"`
	AirlineLogo             string   `json:"airline_logo,omitempty"`
	TravelClass             string   `json:"travel_class,omitempty"`
	FlightNumber            string   `json:"flight_number"`
	Legroom                 string   `json:"legroom,omitempty"`
	Extensions              []string `json:"extensions,omitempty"`
	Overnight               bool     `json:"overnight,omitempty"`
	OftenDelayedByOver30Min bool     `json:"often_delayed_by_over_30_min,omitempty"`
}

type Layover struct {
	Duration  int    `json:"duration"`
	Name      string `json:"name"`
	ID        string `json:"id"`
	Overnight bool   `json:"overnight,omitempty"`
}

// FlightOffer is one priceable itinerary option. Price is in Currency.
type FlightOffer struct {
	Flights       []FlightSegment `json:"flights"`
	Layovers      []Layover       `json:"layovers,omitempty"`
	TotalDuration int             `json:"total_duration"`
	Price         int             `json:"price,omitempty"`
	Type          string          `json:"type,omitempty"`
	AirlineLogo   string          `json:"airline_logo,omitempty"`
	Currency      string          `json:"currency,omitempty"`
	BookingURL    string          `json:"booking_url,omitempty"`
}

// FlightOfferSet is the ordered list of offers returned for one route query.
type FlightOfferSet struct {
	BestFlights []FlightOffer `json:"best_flights"`
	Source      string        `json:"source,omitempty"`
}

// Len returns the number of offers in the set.
func (s FlightOfferSet) Len() int {
	return len(s.BestFlights)
}

// Clone returns a deep copy of the set so callers can annotate it freely.
func (s FlightOfferSet) Clone() FlightOfferSet {
	clone := FlightOfferSet{
		BestFlights: make([]FlightOffer, len(s.BestFlights)),
		Source:      s.Source,
	}

	for i, offer := range s.BestFlights {
		offer.Flights = append([]FlightSegment(nil), offer.Flights...)
		for j := range offer.Flights {
			offer.Flights[j].Extensions = append([]string(nil), offer.Flights[j].Extensions...)
		}
		offer.Layovers = append([]Layover(nil), offer.Layovers...)
		clone.BestFlights[i] = offer
	}

	return clone
}

// EmptyFlightOfferSet is returned when no offer source produced data.
func EmptyFlightOfferSet(source string) FlightOfferSet {
	return FlightOfferSet{
		BestFlights: []FlightOffer{},
		Source:      source,
	}
}

type SortOption struct {
	Field string `json:"field" validate:"required,oneof=price duration departure_time"`
	Order string `json:"order" validate:"omitempty,oneof=asc desc"`
}

// FlightSearchRequest is the body of the flight-only search.
type FlightSearchRequest struct {
	Source      string      `json:"source" validate:"required"`
	Destination string      `json:"destination" validate:"required"`
	Dates       string      `json:"dates" validate:"required"`
	SortOption  *SortOption `json:"sort_option,omitempty"`
}

func (s *FlightSearchRequest) Bind(r *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *FlightSearchRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.BadRequest(err.Error())
	}

	return nil
}
