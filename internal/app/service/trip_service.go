package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/RawatAr/travel-planner-ai/internal/app/dto"
	"github.com/RawatAr/travel-planner-ai/internal/pkg/flight"
	"github.com/RawatAr/travel-planner-ai/internal/pkg/itinerary"
)

type FlightPlanner interface {
	Plan(ctx context.Context, source, destination, dates string) dto.FlightOfferSet
}

type ItineraryGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type DocumentRenderer func(data itinerary.PlanDocumentData) ([]byte, error)

type TripService struct {
	Planner   FlightPlanner
	Generator ItineraryGenerator
	Render    DocumentRenderer
	Now       func() time.Time
}

func NewTripService(planner FlightPlanner, generator ItineraryGenerator) *TripService {
	return &TripService{
		Planner:   planner,
		Generator: generator,
		Render:    itinerary.RenderPDF,
		Now:       time.Now,
	}
}

// GeneratePlan godoc
// @Summary      Generate a travel plan
// @Tags         Trips
// @Description  Generate an itinerary and search flights for the route
// @Param        request  body      dto.TripRequest  true  "Trip Request"
// @Success      200      {object}  dto.TripPlanResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/v1/trips/plan [post]
func (s *TripService) GeneratePlan(ctx context.Context, req dto.TripRequest) (dto.TripPlanResponse, error) {
	var (
		wg         sync.WaitGroup
		travelPlan string
		genErr     error
		flightData dto.FlightOfferSet
	)

	// the model call and the flight search are independent
	// each one is bounded by its own client timeout
	wg.Add(2)
	go func() {
		defer wg.Done()
		travelPlan, genErr = s.Generator.Generate(ctx, itinerary.BuildPrompt(req))
	}()
	go func() {
		defer wg.Done()
		flightData = s.Planner.Plan(ctx, req.Source, req.Destination, req.Dates)
	}()
	wg.Wait()

	resp := dto.TripPlanResponse{
		TravelPlan: travelPlan,
		FlightData: flightData,
	}

	if genErr != nil {
		slog.ErrorContext(ctx, "failed to generate travel plan", slog.String("error", genErr.Error()))
		resp.TravelPlan = ""
		resp.TravelPlanError = genErr.Error()
	}

	return resp, nil
}

// SearchFlights godoc
// @Summary      Search flights
// @Tags         Flights
// @Description  Search one-way flights for a free-text route, falling back to local offers
// @Param        request  body      dto.FlightSearchRequest  true  "Flight Search Request"
// @Success      200      {object}  dto.FlightOfferSet
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/search [post]
func (s *TripService) SearchFlights(ctx context.Context, req dto.FlightSearchRequest) (dto.FlightOfferSet, error) {
	offers := s.Planner.Plan(ctx, req.Source, req.Destination, req.Dates)
	offers.BestFlights = flight.SortOffers(offers.BestFlights, req.SortOption)

	return offers, nil
}

// ExportPlan generates a plan and renders it as a PDF document.
func (s *TripService) ExportPlan(ctx context.Context, req dto.TripRequest) (dto.PlanDocument, error) {
	plan, err := s.GeneratePlan(ctx, req)
	if err != nil {
		return dto.PlanDocument{}, err
	}

	if plan.TravelPlanError != "" {
		return dto.PlanDocument{}, ErrItineraryUnavailable
	}

	content, err := s.Render(itinerary.PlanDocumentData{
		Source:      req.Source,
		Destination: req.Destination,
		Dates:       req.Dates,
		Travelers:   req.Travelers,
		Budget:      req.Budget.String(),
		TravelPlan:  plan.TravelPlan,
		FlightData:  plan.FlightData,
		GeneratedAt: s.Now(),
	})
	if err != nil {
		return dto.PlanDocument{}, ErrRenderDocument.WithCause(fmt.Errorf("failed to render plan: %w", err))
	}

	return dto.PlanDocument{
		Filename:    documentFilename(req.Source, req.Destination),
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}

func documentFilename(source, destination string) string {
	return fmt.Sprintf("travel-plan-%s-to-%s.pdf", slug(source), slug(destination))
}

func slug(s string) string {
	var b strings.Builder
	dash := false

	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
			dash = false
			continue
		}

		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	out := strings.TrimSuffix(b.String(), "-")
	if out == "" {
		return "trip"
	}

	return out
}
