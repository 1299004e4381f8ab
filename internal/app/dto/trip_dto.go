package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/RawatAr/travel-planner-ai/internal/pkg/exception"
)

// Amount accepts either a JSON string or a JSON number and keeps its text.
// Budgets are free text ("50000", "50k INR") and only ever reach the prompt,
// but a plain number must be above zero.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a string or a number: %w", err)
	}
	*a = Amount(n.String())

	return nil
}

func (a Amount) String() string {
	return string(a)
}

// TripRequest is a natural-language trip request.
type TripRequest struct {
	Source      string `json:"source" validate:"required"`
	Destination string `json:"destination" validate:"required"`
	Dates       string `json:"dates" validate:"required"`
	Budget      Amount `json:"budget" validate:"required,positive_amount"`
	Travelers   int    `json:"travelers" validate:"required,min=1,max=50"`
	Interests   string `json:"interests,omitempty"`
}

func (t *TripRequest) Bind(r *http.Request) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (t *TripRequest) Validate() error {
	if err := ValidateSingleError(t); err != nil {
		return exception.BadRequest(err.Error())
	}

	return nil
}

// TripPlanResponse carries the generated itinerary and the flight offers for
// the route. TravelPlanError is set instead of TravelPlan when the itinerary
// could not be generated; FlightData is present either way.
type TripPlanResponse struct {
	TravelPlan      string         `json:"travel_plan"`
	TravelPlanError string         `json:"travel_plan_error,omitempty"`
	FlightData      FlightOfferSet `json:"flight_data"`
}

// PlanDocument is a rendered itinerary file.
type PlanDocument struct {
	Filename    string
	ContentType string
	Content     []byte
}
