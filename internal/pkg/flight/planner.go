package flight

import (
	"context"
	"log/slog"

	"github.com/RawatAr/travel-planner-ai/internal/app/dto"
	"github.com/RawatAr/travel-planner-ai/internal/pkg/airport"
	"github.com/RawatAr/travel-planner-ai/internal/pkg/flightprovider"
	"github.com/RawatAr/travel-planner-ai/internal/pkg/tripdate"
)

// FlightPlanner answers a route query with live offers when the provider
// responds and with the fallback catalog otherwise.
type FlightPlanner struct {
	resolver   *airport.Resolver
	provider   flightprovider.FlightProvider
	fallback   *FallbackCatalog
	normalizer *OfferNormalizer
}

func NewFlightPlanner(
	resolver *airport.Resolver,
	provider flightprovider.FlightProvider,
	fallback *FallbackCatalog,
	normalizer *OfferNormalizer,
) *FlightPlanner {
	return &FlightPlanner{
		resolver:   resolver,
		provider:   provider,
		fallback:   fallback,
		normalizer: normalizer,
	}
}

// Plan never fails: provider errors switch to the fallback catalog.
func (p *FlightPlanner) Plan(ctx context.Context, source, destination, dates string) dto.FlightOfferSet {
	origin := p.resolver.Resolve(ctx, source)
	dest := p.resolver.Resolve(ctx, destination)
	outboundDate := tripdate.Normalize(ctx, dates)

	slog.InfoContext(ctx, "searching flights",
		slog.String("origin", origin),
		slog.String("destination", dest),
		slog.String("outbound_date", outboundDate))

	offers, err := p.provider.Search(ctx, flightprovider.SearchRequest{
		Origin:       origin,
		Destination:  dest,
		OutboundDate: outboundDate,
	})
	if err != nil {
		slog.WarnContext(ctx, "flight provider unavailable, using fallback offers",
			slog.String("error", err.Error()))

		offers = p.fallback.Get(ctx, origin, dest)
	}

	return p.normalizer.Annotate(offers, origin, dest)
}
