//go:build unit

package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTripRequest_Validate(t *testing.T) {
	_ = InitValidator()

	validateRequest := func(req TripRequest, wantErr bool, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}

			if wantErr && err != nil {
				if diff := cmp.Diff(wantMsg, err.Error()); diff != "" {
					t.Fatalf("Validate() error message mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}

	valid := TripRequest{
		Source:      "Mumbai",
		Destination: "Delhi",
		Dates:       "May 14, 2025 to May 20, 2025",
		Budget:      "50000",
		Travelers:   2,
	}

	t.Run("valid_request", validateRequest(valid, false, ""))

	t.Run("missing_source", validateRequest(TripRequest{
		Destination: "Delhi",
		Dates:       "May 14, 2025",
		Budget:      "50000",
		Travelers:   2,
	}, true, "source is a required field"))

	t.Run("missing_budget", validateRequest(TripRequest{
		Source:      "Mumbai",
		Destination: "Delhi",
		Dates:       "May 14, 2025",
		Travelers:   2,
	}, true, "budget is a required field"))

	t.Run("missing_travelers", validateRequest(TripRequest{
		Source:      "Mumbai",
		Destination: "Delhi",
		Dates:       "May 14, 2025",
		Budget:      "50000",
	}, true, "travelers is a required field"))

	t.Run("too_many_travelers", validateRequest(TripRequest{
		Source:      "Mumbai",
		Destination: "Delhi",
		Dates:       "May 14, 2025",
		Budget:      "50000",
		Travelers:   51,
	}, true, "travelers must be 50 or less"))

	withBudget := func(budget Amount) TripRequest {
		req := valid
		req.Budget = budget
		return req
	}

	t.Run("zero_budget", validateRequest(withBudget("0"), true, "budget must be greater than 0"))
	t.Run("zero_decimal_budget", validateRequest(withBudget("0.00"), true, "budget must be greater than 0"))
	t.Run("negative_budget", validateRequest(withBudget("-100"), true, "budget must be greater than 0"))
	t.Run("free_text_budget", validateRequest(withBudget("50k INR"), false, ""))
	t.Run("decimal_budget", validateRequest(withBudget("1250.50"), false, ""))
}

func TestFlightSearchRequest_Validate(t *testing.T) {
	_ = InitValidator()

	validateRequest := func(req FlightSearchRequest, wantErr bool, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}

			if wantErr && err != nil {
				if diff := cmp.Diff(wantMsg, err.Error()); diff != "" {
					t.Fatalf("Validate() error message mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}

	t.Run("valid_without_sort", validateRequest(FlightSearchRequest{
		Source: "Mumbai", Destination: "Delhi", Dates: "May 14, 2025",
	}, false, ""))

	t.Run("valid_with_sort", validateRequest(FlightSearchRequest{
		Source: "Mumbai", Destination: "Delhi", Dates: "May 14, 2025",
		SortOption: &SortOption{Field: "price", Order: "desc"},
	}, false, ""))

	t.Run("missing_dates", validateRequest(FlightSearchRequest{
		Source: "Mumbai", Destination: "Delhi",
	}, true, "dates is a required field"))

	t.Run("invalid_sort_field", validateRequest(FlightSearchRequest{
		Source: "Mumbai", Destination: "Delhi", Dates: "May 14, 2025",
		SortOption: &SortOption{Field: "stops"},
	}, true, "field must be one of [price duration departure_time]"))
}

func TestTripRequest_Bind(t *testing.T) {
	_ = InitValidator()

	bindRequest := func(req TripRequest, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Bind(nil)
			if (err != nil) != wantErr {
				t.Fatalf("Bind() error = %v, wantErr %v", err, wantErr)
			}
		}
	}

	t.Run("valid_bind", bindRequest(TripRequest{
		Source: "Mumbai", Destination: "Delhi", Dates: "May 14, 2025", Budget: "1", Travelers: 1,
	}, false))
	t.Run("invalid_bind", bindRequest(TripRequest{}, true))
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	decodeAmount := func(body string, want Amount, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			var req struct {
				Budget Amount `json:"budget"`
			}

			err := json.Unmarshal([]byte(body), &req)
			if (err != nil) != wantErr {
				t.Fatalf("Unmarshal() error = %v, wantErr %v", err, wantErr)
			}

			if !wantErr && req.Budget != want {
				t.Fatalf("Unmarshal() = %q, want %q", req.Budget, want)
			}
		}
	}

	t.Run("string", decodeAmount(`{"budget":" 50k INR "}`, "50k INR", false))
	t.Run("integer", decodeAmount(`{"budget":50000}`, "50000", false))
	t.Run("decimal", decodeAmount(`{"budget":1250.50}`, "1250.50", false))
	t.Run("null", decodeAmount(`{"budget":null}`, "", false))
	t.Run("object", decodeAmount(`{"budget":{"amount":1}}`, "", true))
}

func TestFlightOfferSet_Clone(t *testing.T) {
	original := FlightOfferSet{
		Source: SourceLive,
		BestFlights: []FlightOffer{{
			Flights: []FlightSegment{{FlightNumber: "AI 101", Extensions: []string{"Wi-Fi"}}},
			Price:   500,
		}},
	}

	clone := original.Clone()
	clone.BestFlights[0].Price = 1
	clone.BestFlights[0].Flights[0].FlightNumber = "changed"
	clone.BestFlights[0].Flights[0].Extensions[0] = "changed"

	if original.BestFlights[0].Price != 500 ||
		original.BestFlights[0].Flights[0].FlightNumber != "AI 101" ||
		original.BestFlights[0].Flights[0].Extensions[0] != "Wi-Fi" {
		t.Fatalf("Clone() shares memory with the original: %+v", original)
	}
}
