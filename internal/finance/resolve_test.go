package finance

import (
	"context"
	"errors"
	"testing"

	"stockassist/internal/yahoo"
)

type fakeSearcher struct {
	calls   int
	symbols []string
	err     error
}

func (f *fakeSearcher) Search(_ context.Context, _ string) (*yahoo.SearchResponse, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	resp := &yahoo.SearchResponse{}
	for _, s := range f.symbols {
		resp.Quotes = append(resp.Quotes, struct {
			Symbol    string `json:"symbol"`
			ShortName string `json:"shortname"`
		}{Symbol: s})
	}
	return resp, nil
}

func TestResolve_TickerShapePassthrough(t *testing.T) {
	fs := &fakeSearcher{}
	r := NewResolver(fs)
	for _, in := range []string{"A", "AAPL", "TSLA", "GOOGL", "IBM"} {
		if got := r.Resolve(context.Background(), in); got != in {
			t.Fatalf("Resolve(%q) = %q, want unchanged", in, got)
		}
	}
	if fs.calls != 0 {
		t.Fatalf("search called %d times for ticker-shaped input", fs.calls)
	}
}

func TestResolve_CompanyTableSkipsSearch(t *testing.T) {
	fs := &fakeSearcher{symbols: []string{"WRONG"}}
	r := NewResolver(fs)
	cases := map[string]string{
		"Apple":     "AAPL",
		"tesla":     "TSLA",
		" netflix ": "NFLX",
		"FACEBOOK":  "META",
	}
	for in, want := range cases {
		if got := r.Resolve(context.Background(), in); got != want {
			t.Fatalf("Resolve(%q) = %q, want %q", in, got, want)
		}
	}
	if fs.calls != 0 {
		t.Fatalf("search called %d times for table entries", fs.calls)
	}
}

func TestResolve_SearchFallbackFirstCandidate(t *testing.T) {
	fs := &fakeSearcher{symbols: []string{"SHOP", "SHOP.TO"}}
	r := NewResolver(fs)
	if got := r.Resolve(context.Background(), "shopify"); got != "SHOP" {
		t.Fatalf("Resolve(shopify) = %q, want SHOP", got)
	}
	if fs.calls != 1 {
		t.Fatalf("search calls = %d, want 1", fs.calls)
	}
}

func TestResolve_UppercasePassthroughOnFailure(t *testing.T) {
	for _, fs := range []*fakeSearcher{
		{err: errors.New("search down")},
		{}, // zero candidates
	} {
		r := NewResolver(fs)
		if got := r.Resolve(context.Background(), "frobnico industries"); got != "FROBNICO INDUSTRIES" {
			t.Fatalf("Resolve fallback = %q, want FROBNICO INDUSTRIES", got)
		}
	}
}

func TestLooksLikeTicker(t *testing.T) {
	for in, want := range map[string]bool{
		"AAPL":    true,
		"A":       true,
		"GOOGL":   true,
		"TOOLONG": false,
		"aapl":    false,
		"BRK.B":   false,
		"":        false,
		"MSFT1":   false,
	} {
		if got := LooksLikeTicker(in); got != want {
			t.Fatalf("LooksLikeTicker(%q) = %v, want %v", in, got, want)
		}
	}
}
