package serpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/RawatAr/travel-planner-ai/internal/app/dto"
	"github.com/RawatAr/travel-planner-ai/internal/pkg/flightprovider"
	"github.com/RawatAr/travel-planner-ai/internal/pkg/flightprovider/providerutils"
	"github.com/go-redis/redis_rate/v10"
)

const (
	ProviderName = "SerpAPI"

	DefaultSearchAPIURL = "https://serpapi.com/search.json"
	DefaultTimeout      = 5 * time.Second

	engine = "google_flights"
	// oneWay is the google_flights "type" for a one-way search.
	oneWay   = "2"
	language = "en"

	maxErrorBodyBytes = 512
)

type Provider struct {
	Name         string
	SearchAPIURL string
	APIKey       string
	Timeout      time.Duration
	Limiter      flightprovider.RateLimiter
	RateLimitRPS int
	Client       *http.Client
}

func NewProvider(config flightprovider.FlightProviderConfig) *Provider {
	searchURL := config.SearchAPIURL
	if searchURL == "" {
		searchURL = DefaultSearchAPIURL
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Provider{
		Name:         ProviderName,
		SearchAPIURL: searchURL,
		APIKey:       config.APIKey,
		Timeout:      timeout,
		Limiter:      config.Limiter,
		RateLimitRPS: config.RateLimitRPS,
		Client:       &http.Client{Timeout: timeout},
	}
}

// Search issues a single one-way google_flights query priced in INR. There is
// no retry: any failure is returned as a *providerutils.ProviderError and the
// caller decides what to serve instead. A 200 response without offers is a
// successful, empty result.
func (p *Provider) Search(ctx context.Context, req flightprovider.SearchRequest) (dto.FlightOfferSet, error) {
	if p.APIKey == "" {
		return dto.FlightOfferSet{}, p.fail(0, providerutils.ErrProviderNotConfigured)
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	if err := p.allow(ctx); err != nil {
		return dto.FlightOfferSet{}, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.searchURL(req), nil)
	if err != nil {
		return dto.FlightOfferSet{}, p.fail(0, fmt.Errorf("failed to build request: %w", err))
	}
	httpReq.Header.Set("Accept", "application/json")

	slog.DebugContext(ctx, "calling flight search API",
		slog.String("provider", p.Name),
		slog.String("departure_id", req.Origin),
		slog.String("arrival_id", req.Destination),
		slog.String("outbound_date", req.OutboundDate))

	resp, err := p.Client.Do(httpReq)
	if err != nil {
		return dto.FlightOfferSet{}, p.fail(0, redactURLError(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		slog.WarnContext(ctx, "flight search API returned an error",
			slog.String("provider", p.Name),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))

		return dto.FlightOfferSet{}, p.fail(resp.StatusCode, providerutils.ErrProviderInternalError)
	}

	var response SearchFlightResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return dto.FlightOfferSet{}, p.fail(0, providerutils.ErrProviderMalformedResponse.WithCause(err))
	}

	if response.Error != "" {
		slog.InfoContext(ctx, "flight search API returned no results",
			slog.String("provider", p.Name),
			slog.String("reason", response.Error))
	}

	return dto.FlightOfferSet{
		BestFlights: p.flightToDTO(response.BestFlights),
		Source:      dto.SourceLive,
	}, nil
}

func (p *Provider) allow(ctx context.Context) error {
	if p.Limiter == nil || p.RateLimitRPS <= 0 {
		return nil
	}

	res, err := p.Limiter.Allow(ctx, fmt.Sprintf("limit:%s", p.Name),
		redis_rate.PerSecond(p.RateLimitRPS))
	if err != nil {
		return p.fail(0, fmt.Errorf("failed to rate limit: %w", err))
	}

	if res.Allowed == 0 {
		return p.fail(0, providerutils.ErrProviderRateLimitExceeded)
	}

	return nil
}

func (p *Provider) searchURL(req flightprovider.SearchRequest) string {
	query := url.Values{}
	query.Set("engine", engine)
	query.Set("type", oneWay)
	query.Set("departure_id", req.Origin)
	query.Set("arrival_id", req.Destination)
	query.Set("outbound_date", req.OutboundDate)
	query.Set("currency", dto.CurrencyINR)
	query.Set("hl", language)
	query.Set("api_key", p.APIKey)

	return p.SearchAPIURL + "?" + query.Encode()
}

func (p *Provider) fail(statusCode int, cause error) *providerutils.ProviderError {
	return &providerutils.ProviderError{
		Provider:   p.Name,
		StatusCode: statusCode,
		Cause:      cause,
	}
}

// flightToDTO converts provider offers to dto offers. Prices are already in
// INR because the request asks for that currency; an unusable price leaves
// the offer unpriced.
func (p *Provider) flightToDTO(flights []Flight) []dto.FlightOffer {
	results := make([]dto.FlightOffer, len(flights))
	for i, flight := range flights {
		results[i] = dto.FlightOffer{
			Flights:       p.segmentsToDTO(flight.Flights),
			Layovers:      p.layoversToDTO(flight.Layovers),
			TotalDuration: flight.TotalDuration,
			Type:          flight.Type,
			AirlineLogo:   flight.AirlineLogo,
		}
		if amount, ok := dto.PriceAmount(flight.Price, 1); ok {
			results[i].Price = int(math.Round(amount))
		}
	}

	return results
}

func (p *Provider) segmentsToDTO(segments []Segment) []dto.FlightSegment {
	results := make([]dto.FlightSegment, len(segments))
	for i, segment := range segments {
		results[i] = dto.FlightSegment{
			DepartureAirport:        dto.Airport(segment.DepartureAirport),
			ArrivalAirport:          dto.Airport(segment.ArrivalAirport),
			Duration:                segment.Duration,
			Airplane:                segment.Airplane,
			Airline:                 segment.Airline,
			AirlineLogo:             segment.AirlineLogo,
			TravelClass:             segment.TravelClass,
			FlightNumber:            segment.FlightNumber,
			Legroom:                 segment.Legroom,
			Extensions:              segment.Extensions,
			Overnight:               segment.Overnight,
			OftenDelayedByOver30Min: segment.OftenDelayedByOver30Min,
		}
	}

	return results
}

func (p *Provider) layoversToDTO(layovers []Layover) []dto.Layover {
	if len(layovers) == 0 {
		return nil
	}

	results := make([]dto.Layover, len(layovers))
	for i, layover := range layovers {
		results[i] = dto.Layover(layover)
	}

	return results
}

// redactURLError drops the request URL, which carries the api key, from
// transport errors.
func redactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s request failed: %w", urlErr.Op, urlErr.Err)
	}

	return err
}
