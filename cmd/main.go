package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/RawatAr/travel-planner-ai/internal/app/config"
	"github.com/RawatAr/travel-planner-ai/internal/app/dto"
	"github.com/RawatAr/travel-planner-ai/internal/app/endpoints"
	"github.com/RawatAr/travel-planner-ai/internal/app/service"
	"github.com/RawatAr/travel-planner-ai/internal/app/transport"
	"github.com/RawatAr/travel-planner-ai/internal/pkg/airport"
	"github.com/RawatAr/travel-planner-ai/internal/pkg/flight"
	"github.com/RawatAr/travel-planner-ai/internal/pkg/flightprovider"
	"github.com/RawatAr/travel-planner-ai/internal/pkg/flightprovider/serpapi"
	"github.com/RawatAr/travel-planner-ai/internal/pkg/itinerary"
	"github.com/RawatAr/travel-planner-ai/internal/pkg/logger"
	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/afero"
)

// @title           Travel Planner AI API
// @version         0.0.1
// @description     AI travel itineraries with live flight offers
// @host      localhost:8080
// @BasePath  /
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully",
		slog.String("log_level", string(cfg.LogLevel)),
		slog.Int("http_port", cfg.HTTP.Port),
		slog.String("serpapi_url", cfg.SerpAPI.SearchAPIURL),
		slog.String("gemini_model", cfg.TextGen.Model))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	// ctx is already cancelled here
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	planner := initFlightPlanner(ctx, cfg)

	if cfg.TextGen.APIKey == "" {
		slog.WarnContext(ctx, "GOOGLE_API_KEY is not set, travel plans will not be generated")
	}

	generator := itinerary.NewGeminiClient(itinerary.GeminiConfig{
		APIURL:  cfg.TextGen.APIURL,
		APIKey:  cfg.TextGen.APIKey,
		Model:   cfg.TextGen.Model,
		Timeout: cfg.TextGen.Timeout,
	})

	// init service endpoint
	return endpoints.Endpoints{
		TripEndpoint: endpoints.MakeTripEndpoint(service.NewTripService(planner, generator)),
	}
}

func initFlightPlanner(ctx context.Context, cfg *config.Config) *flight.FlightPlanner {
	table, err := airport.LoadCityCodeTableFile(cfg.Airport.CityCodeTablePath)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load city code table",
			slog.String("path", cfg.Airport.CityCodeTablePath),
			slog.String("error", err.Error()))
		panic(err)
	}

	slog.InfoContext(ctx, "city code table loaded", slog.Int("entries", table.Len()))

	if cfg.SerpAPI.APIKey == "" {
		slog.WarnContext(ctx, "SERPAPI_API_KEY is not set, flight searches will use fallback offers")
	}

	provider := serpapi.NewProvider(flightprovider.FlightProviderConfig{
		SearchAPIURL: cfg.SerpAPI.SearchAPIURL,
		APIKey:       cfg.SerpAPI.APIKey,
		Timeout:      cfg.SerpAPI.Timeout,
		RateLimitRPS: cfg.SerpAPI.RateLimitRPS,
		Limiter:      initLimiter(ctx, cfg),
	})

	return flight.NewFlightPlanner(
		airport.NewResolver(table),
		provider,
		flight.NewFallbackCatalog(afero.NewOsFs(), cfg.Fallback.DatasetPath),
		flight.NewOfferNormalizer(),
	)
}

// initLimiter returns nil when no redis is configured.
func initLimiter(ctx context.Context, cfg *config.Config) flightprovider.RateLimiter {
	if cfg.Redis.Addr == "" {
		slog.InfoContext(ctx, "REDIS_ADDR is not set, provider rate limiting disabled")
		return nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return redis_rate.NewLimiter(redisClient)
}
