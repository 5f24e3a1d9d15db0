package classify

import (
	"context"
	"strings"

	"stockassist/internal/finance"
)

// chartKeywords mark a query as a historical-chart request.
var chartKeywords = []string{
	"chart", "graph", "historical", "history", "trend", "trends",
	"performance", "over time", "last week", "last month", "last year",
	"past", "movement", "plot", "range", "interval",
}

// Phrase tables use substring matching; multi-word phrases come before the
// single words they contain so the more specific code wins.
var rangePhrases = []struct{ phrase, code string }{
	{"3 month", "3mo"},
	{"three month", "3mo"},
	{"6 month", "6mo"},
	{"six month", "6mo"},
	{"5 year", "5y"},
	{"five year", "5y"},
	{"year", "1y"},
	{"month", "1mo"},
	{"week", "5d"},
	{"day", "1d"},
}

var intervalPhrases = []struct{ phrase, code string }{
	{"daily", "1d"},
	{"weekly", "1wk"},
	{"monthly", "1mo"},
}

// Keyword classifies queries with fixed keyword and phrase tables. It makes
// no external calls.
type Keyword struct{}

func NewKeyword() *Keyword { return &Keyword{} }

func (k *Keyword) Classify(_ context.Context, query string) Result {
	q := strings.ToLower(query)
	res := DefaultResult()
	for _, kw := range chartKeywords {
		if strings.Contains(q, kw) {
			res.Kind = KindChart
			break
		}
	}
	for _, rp := range rangePhrases {
		if strings.Contains(q, rp.phrase) {
			res.Range = rp.code
			break
		}
	}
	for _, ip := range intervalPhrases {
		if strings.Contains(q, ip.phrase) {
			res.Interval = ip.code
			break
		}
	}
	res.Ticker = extractTickerHint(query)
	return res
}

// extractTickerHint picks the best ticker hint from the query: a company-table
// token, then an uppercase 1-5-letter token, then the first three tokens for
// the resolver to chew on.
func extractTickerHint(query string) string {
	fields := strings.Fields(query)
	for _, f := range fields {
		if sym, ok := finance.CompanyTicker(trimPunct(f)); ok {
			return sym
		}
	}
	for _, f := range fields {
		if t := trimPunct(f); finance.LooksLikeTicker(t) {
			return t
		}
	}
	if len(fields) > 3 {
		fields = fields[:3]
	}
	return strings.Join(fields, " ")
}

func trimPunct(s string) string {
	return strings.Trim(s, `.,!?;:'"()`)
}
