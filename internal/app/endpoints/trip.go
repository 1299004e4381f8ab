package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/RawatAr/travel-planner-ai/internal/app/dto"
	"github.com/go-kit/kit/endpoint"
)

type TripService interface {
	GeneratePlan(ctx context.Context, req dto.TripRequest) (dto.TripPlanResponse, error)
	SearchFlights(ctx context.Context, req dto.FlightSearchRequest) (dto.FlightOfferSet, error)
	ExportPlan(ctx context.Context, req dto.TripRequest) (dto.PlanDocument, error)
}

type TripEndpoint struct {
	GeneratePlan  endpoint.Endpoint
	SearchFlights endpoint.Endpoint
	ExportPlan    endpoint.Endpoint
}

func MakeTripEndpoint(service TripService) TripEndpoint {
	return TripEndpoint{
		GeneratePlan:  makeGeneratePlanEndpoint(service),
		SearchFlights: makeSearchFlightsEndpoint(service),
		ExportPlan:    makeExportPlanEndpoint(service),
	}
}

func makeGeneratePlanEndpoint(service TripService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.TripRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		plan, err := service.GeneratePlan(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("trip service: %w", err)
		}

		return plan, nil
	}
}

func makeSearchFlightsEndpoint(service TripService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.FlightSearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		offers, err := service.SearchFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("trip service: %w", err)
		}

		return offers, nil
	}
}

func makeExportPlanEndpoint(service TripService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.TripRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		doc, err := service.ExportPlan(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("trip service: %w", err)
		}

		return doc, nil
	}
}
