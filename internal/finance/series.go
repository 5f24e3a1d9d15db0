package finance

import (
	"context"
	"time"

	"stockassist/internal/yahoo"
)

// ChartAPI is the outbound historical-chart endpoint.
type ChartAPI interface {
	Chart(ctx context.Context, symbol, interval, rangeParam string) (*yahoo.ChartResponse, error)
}

// Point is one (date, close) sample of a price series. Time is UTC.
type Point struct {
	Time  time.Time
	Close float64
}

// Series is an ordered close-price history for one symbol.
type Series struct {
	Symbol   string
	Range    string
	Interval string
	Points   []Point
}

// FetchSeries fetches and validates the historical series for one symbol.
func FetchSeries(ctx context.Context, api ChartAPI, symbol, rangeParam, interval string) (*Series, *Failure) {
	resp, err := api.Chart(ctx, symbol, interval, rangeParam)
	if err != nil {
		return nil, &Failure{Kind: FailTransport, Symbol: symbol, Err: err}
	}
	return BuildSeries(resp, symbol, rangeParam, interval)
}

// BuildSeries validates the chart payload shape in order (result wrapper,
// timestamps, quote indicators, close prices) and zips timestamps with
// closes into a Series. Epoch seconds convert to UTC calendar time.
func BuildSeries(resp *yahoo.ChartResponse, symbol, rangeParam, interval string) (*Series, *Failure) {
	results := resp.Chart.Result
	if len(results) == 0 {
		return nil, &Failure{Kind: FailNotFound, Symbol: symbol}
	}
	ts := results[0].Timestamp
	quotes := results[0].Indicators.Quote
	if len(ts) == 0 || len(quotes) == 0 {
		return nil, &Failure{Kind: FailIncomplete, Symbol: symbol}
	}
	closes := quotes[0].Close
	if len(closes) == 0 {
		return nil, &Failure{Kind: FailNoPriceData, Symbol: symbol}
	}

	ts, closes = alignSeries(ts, closes)
	points := make([]Point, 0, len(ts))
	for i := range ts {
		// JSON nulls decode to zero; a zero close is a gap, not a price.
		if closes[i] <= 0 {
			continue
		}
		points = append(points, Point{Time: time.Unix(ts[i], 0).UTC(), Close: closes[i]})
	}
	if len(points) == 0 {
		return nil, &Failure{Kind: FailNoPriceData, Symbol: symbol}
	}
	return &Series{Symbol: symbol, Range: rangeParam, Interval: interval, Points: points}, nil
}
