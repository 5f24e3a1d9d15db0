package finance

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"stockassist/internal/yahoo"
)

// QuoteAPI is the outbound quote endpoint.
type QuoteAPI interface {
	Quotes(ctx context.Context, symbols string) (*yahoo.QuoteResponse, error)
}

// FetchQuote fetches a current quote for one symbol and formats it as chat
// text. An empty result list is a NotFound failure.
func FetchQuote(ctx context.Context, api QuoteAPI, symbol string) (string, *Failure) {
	resp, err := api.Quotes(ctx, symbol)
	if err != nil {
		return "", &Failure{Kind: FailTransport, Symbol: symbol, Err: err}
	}
	results := resp.QuoteResponse.Result
	if len(results) == 0 {
		return "", &Failure{Kind: FailNotFound, Symbol: symbol}
	}
	return FormatQuote(symbol, results[0]), nil
}

// FormatQuote renders the fixed quote template. Missing fields render as N/A
// rather than failing.
func FormatQuote(symbol string, q yahoo.Quote) string {
	name := q.LongName
	if name == "" {
		name = "N/A"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Company Information for %s (%s):\n", strings.ToUpper(symbol), name)
	fmt.Fprintf(&b, "Current Price: $%s\n", fmtNum(q.RegularMarketPrice))
	fmt.Fprintf(&b, "Market Cap: $%s\n", fmtMarketCap(q.MarketCap))
	fmt.Fprintf(&b, "52 Week Range: $%s - $%s\n", fmtNum(q.FiftyTwoWeekLow), fmtNum(q.FiftyTwoWeekHigh))
	fmt.Fprintf(&b, "P/E Ratio: %s\n", fmtNum(q.TrailingPE))
	fmt.Fprintf(&b, "Dividend Yield: %s%%", fmtNum(q.DividendYield))
	return b.String()
}

func fmtNum(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *v)
}

func fmtMarketCap(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return humanize.Commaf(*v)
}
