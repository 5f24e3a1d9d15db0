package finance

import (
	"context"
	"errors"
	"strings"
	"testing"

	"stockassist/internal/yahoo"
)

type fakeQuoteAPI struct {
	resp *yahoo.QuoteResponse
	err  error
}

func (f *fakeQuoteAPI) Quotes(_ context.Context, _ string) (*yahoo.QuoteResponse, error) {
	return f.resp, f.err
}

func fp(v float64) *float64 { return &v }

func TestFetchQuote_EmptyResultIsNotFound(t *testing.T) {
	api := &fakeQuoteAPI{resp: &yahoo.QuoteResponse{}}
	_, fail := FetchQuote(context.Background(), api, "ZZZZ")
	if fail == nil || fail.Kind != FailNotFound {
		t.Fatalf("want NotFound failure, got %+v", fail)
	}
	if fail.Symbol != "ZZZZ" {
		t.Fatalf("failure symbol = %q, want ZZZZ", fail.Symbol)
	}
}

func TestFetchQuote_TransportError(t *testing.T) {
	api := &fakeQuoteAPI{err: errors.New("connection refused")}
	_, fail := FetchQuote(context.Background(), api, "AAPL")
	if fail == nil || fail.Kind != FailTransport {
		t.Fatalf("want Transport failure, got %+v", fail)
	}
	if fail.Err == nil {
		t.Fatal("transport failure should carry the cause")
	}
}

func TestFormatQuote_AllFields(t *testing.T) {
	q := yahoo.Quote{
		Symbol:             "AAPL",
		LongName:           "Apple Inc.",
		RegularMarketPrice: fp(189.84),
		MarketCap:          fp(2953000000000),
		FiftyTwoWeekLow:    fp(124.17),
		FiftyTwoWeekHigh:   fp(198.23),
		TrailingPE:         fp(31.25),
		DividendYield:      fp(0.55),
	}
	got := FormatQuote("aapl", q)
	want := "Company Information for AAPL (Apple Inc.):\n" +
		"Current Price: $189.84\n" +
		"Market Cap: $2,953,000,000,000\n" +
		"52 Week Range: $124.17 - $198.23\n" +
		"P/E Ratio: 31.25\n" +
		"Dividend Yield: 0.55%"
	if got != want {
		t.Fatalf("FormatQuote mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestFormatQuote_MissingFieldsRenderNA(t *testing.T) {
	q := yahoo.Quote{Symbol: "NVDA", RegularMarketPrice: fp(495.22)}
	got := FormatQuote("NVDA", q)
	for _, want := range []string{
		"Company Information for NVDA (N/A):",
		"Current Price: $495.22",
		"Market Cap: $N/A",
		"52 Week Range: $N/A - $N/A",
		"P/E Ratio: N/A",
		"Dividend Yield: N/A%",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("FormatQuote missing %q in:\n%s", want, got)
		}
	}
}
