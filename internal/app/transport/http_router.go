package transport

import (
	"log/slog"
	"net/http"

	"github.com/RawatAr/travel-planner-ai/internal/app/config"
	"github.com/RawatAr/travel-planner-ai/internal/app/dto"
	"github.com/RawatAr/travel-planner-ai/internal/app/endpoints"
	httptransport "github.com/RawatAr/travel-planner-ai/internal/pkg/transport/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(
	cfg *config.Config,
	endpts endpoints.Endpoints,
) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.AccessLog(slog.Default()),
			httptransport.CORSMiddleware(cfg.HTTP.AllowedOrigins),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Route("/trips", func(router chi.Router) {
			router.Post("/plan", httptransport.MakeHandlerFunc(
				endpts.TripEndpoint.GeneratePlan,
				httptransport.DecodeRequest[dto.TripRequest],
				httptransport.ResponseWithBody,
			))

			router.Post("/plan/pdf", httptransport.MakeHandlerFunc(
				endpts.TripEndpoint.ExportPlan,
				httptransport.DecodeRequest[dto.TripRequest],
				httptransport.DocumentResponse,
			))
		})

		router.Route("/flights", func(router chi.Router) {
			router.Post("/search", httptransport.MakeHandlerFunc(
				endpts.TripEndpoint.SearchFlights,
				httptransport.DecodeRequest[dto.FlightSearchRequest],
				httptransport.ResponseWithBody,
			))
		})
	})

	return router
}
