package finance

import (
	"context"
)

// API is the full outbound surface the service needs.
type API interface {
	QuoteAPI
	ChartAPI
}

// Service bundles the Yahoo client behind the dispatcher's fetch paths.
// It is stateless; every call re-fetches.
type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

func (s *Service) QuoteText(ctx context.Context, symbol string) (string, *Failure) {
	return FetchQuote(ctx, s.api, symbol)
}

func (s *Service) ChartPNG(ctx context.Context, symbol, rangeParam, interval string) ([]byte, *Failure) {
	series, fail := FetchSeries(ctx, s.api, symbol, rangeParam, interval)
	if fail != nil {
		return nil, fail
	}
	return RenderLineChart(series)
}
