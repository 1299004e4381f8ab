package flightprovider

import (
	"context"
	"time"

	"github.com/RawatAr/travel-planner-ai/internal/app/dto"
	"github.com/go-redis/redis_rate/v10"
)

// config for flight provider
type FlightProviderConfig struct {
	SearchAPIURL string
	APIKey       string
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      RateLimiter
}

// RateLimiter is satisfied by *redis_rate.Limiter.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// SearchRequest is a resolved one-way route query.
type SearchRequest struct {
	Origin       string
	Destination  string
	OutboundDate string
}

// FlightProvider searches one upstream flight API. Every failure is reported
// as a *providerutils.ProviderError so callers can fall back.
type FlightProvider interface {
	Search(ctx context.Context, req SearchRequest) (dto.FlightOfferSet, error)
}
