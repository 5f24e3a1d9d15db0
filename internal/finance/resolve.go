package finance

import (
	"context"
	"regexp"
	"strings"

	"stockassist/internal/yahoo"
)

// companyTickers maps well-known company names to their ticker symbols.
// Lookups are lowercase.
var companyTickers = map[string]string{
	"apple":     "AAPL",
	"microsoft": "MSFT",
	"google":    "GOOGL",
	"amazon":    "AMZN",
	"tesla":     "TSLA",
	"facebook":  "META",
	"meta":      "META",
	"netflix":   "NFLX",
	"nvidia":    "NVDA",
}

// CompanyTicker returns the static table entry for a company name, if any.
func CompanyTicker(name string) (string, bool) {
	sym, ok := companyTickers[strings.ToLower(strings.TrimSpace(name))]
	return sym, ok
}

var reTickerShape = regexp.MustCompile(`^[A-Z]{1,5}$`)

// LooksLikeTicker reports whether text already has ticker shape:
// uppercase, alphabetic, 1-5 characters.
func LooksLikeTicker(text string) bool {
	return reTickerShape.MatchString(text)
}

// SymbolSearcher is the fuzzy symbol-search collaborator.
type SymbolSearcher interface {
	Search(ctx context.Context, query string) (*yahoo.SearchResponse, error)
}

// Resolver maps free text to a ticker symbol. It always returns a string;
// an unresolvable name degrades to the uppercased input and the fetch step
// reports the failure.
type Resolver struct {
	search SymbolSearcher
}

func NewResolver(search SymbolSearcher) *Resolver {
	return &Resolver{search: search}
}

// Resolve applies, in order: ticker-shape passthrough, static company table,
// fuzzy symbol search (first candidate wins), uppercased passthrough.
func (r *Resolver) Resolve(ctx context.Context, text string) string {
	text = strings.TrimSpace(text)
	if LooksLikeTicker(text) {
		return text
	}
	if sym, ok := CompanyTicker(text); ok {
		return sym
	}
	if r.search != nil {
		if resp, err := r.search.Search(ctx, text); err == nil {
			if len(resp.Quotes) > 0 && resp.Quotes[0].Symbol != "" {
				return resp.Quotes[0].Symbol
			}
		}
	}
	return strings.ToUpper(text)
}
