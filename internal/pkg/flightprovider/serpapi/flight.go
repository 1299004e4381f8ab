package serpapi

import "encoding/json"

// SearchFlightResponse is the subset of the google_flights engine response
// the planner uses.
type SearchFlightResponse struct {
	SearchMetadata SearchMetadata `json:"search_metadata"`
	BestFlights    []Flight       `json:"best_flights"`
	Error          string         `json:"error,omitempty"`
}

type SearchMetadata struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Flight keeps the price raw: the API occasionally sends a non-numeric
// placeholder, which must not fail the whole response.
type Flight struct {
	Flights       []Segment       `json:"flights"`
	Layovers      []Layover       `json:"layovers"`
	TotalDuration int             `json:"total_duration"`
	Price         json.RawMessage `json:"price"`
	Type          string          `json:"type"`
	AirlineLogo   string          `json:"airline_logo"`
}

type Segment struct {
	DepartureAirport        Airport  `json:"departure_airport"`
	ArrivalAirport          Airport  `json:"arrival_airport"`
	Duration                int      `json:"duration"`
	Airplane                string   `json:"airplane"`
	Airline                 string   `json:"airline"`
	AirlineLogo             string   `json:"airline_logo"`
	TravelClass             string   `json:"travel_class"`
	FlightNumber            string   `json:"flight_number"`
	Legroom                 string   `json:"legroom"`
	Extensions              []string `json:"extensions"`
	Overnight               bool     `json:"overnight"`
	OftenDelayedByOver30Min bool     `json:"often_delayed_by_over_30_min"`
}

type Airport struct {
	Name string `json:"name"`
	ID   string `json:"id"`
	Time string `json:"time"`
}

type Layover struct {
	Duration  int    `json:"duration"`
	Name      string `json:"name"`
	ID        string `json:"id"`
	Overnight bool   `json:"overnight"`
}
