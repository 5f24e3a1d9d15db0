package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuotes_DecodesTrimmedFields(t *testing.T) {
	var gotPath, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("X-RapidAPI-Key")
		require.Equal(t, "AAPL", r.URL.Query().Get("symbols"))
		require.Equal(t, "US", r.URL.Query().Get("region"))
		w.Write([]byte(`{"quoteResponse":{"result":[{
			"symbol":"AAPL","longName":"Apple Inc.",
			"regularMarketPrice":189.84,"marketCap":2953000000000,
			"fiftyTwoWeekLow":124.17,"fiftyTwoWeekHigh":198.23,
			"trailingPE":31.25
		}],"error":null}}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("test-key", srv.URL)
	resp, err := c.Quotes(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, "/market/v2/get-quotes", gotPath)
	require.Equal(t, "test-key", gotKey)

	require.Len(t, resp.QuoteResponse.Result, 1)
	q := resp.QuoteResponse.Result[0]
	require.Equal(t, "Apple Inc.", q.LongName)
	require.NotNil(t, q.RegularMarketPrice)
	require.Equal(t, 189.84, *q.RegularMarketPrice)
	require.Nil(t, q.DividendYield, "absent field must stay nil")
}

func TestSearch_DecodesCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auto-complete", r.URL.Path)
		require.Equal(t, "shopify", r.URL.Query().Get("q"))
		w.Write([]byte(`{"quotes":[{"symbol":"SHOP","shortname":"Shopify Inc."},{"symbol":"SHOP.TO"}]}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("k", srv.URL)
	resp, err := c.Search(context.Background(), "shopify")
	require.NoError(t, err)
	require.Len(t, resp.Quotes, 2)
	require.Equal(t, "SHOP", resp.Quotes[0].Symbol)
}

func TestChart_ForwardsParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/stock/v3/get-chart", r.URL.Path)
		require.Equal(t, "TSLA", r.URL.Query().Get("symbol"))
		require.Equal(t, "6mo", r.URL.Query().Get("range"))
		require.Equal(t, "1d", r.URL.Query().Get("interval"))
		w.Write([]byte(`{"chart":{"result":[{"timestamp":[1700000000],"indicators":{"quote":[{"close":[238.72]}]}}],"error":null}}`))
	}))
	defer srv.Close()

	c := NewClientWithBaseURL("k", srv.URL)
	resp, err := c.Chart(context.Background(), "TSLA", "1d", "6mo")
	require.NoError(t, err)
	require.Len(t, resp.Chart.Result, 1)
	require.Equal(t, []int64{1700000000}, resp.Chart.Result[0].Timestamp)
}

func TestGetJSON_ErrorBodies(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"http error", http.StatusTooManyRequests, "Too Many Requests"},
		{"html body", http.StatusOK, "<html><body>blocked</body></html>"},
		{"bad json", http.StatusOK, `{"quoteResponse":`},
	}
	for _, tc := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
			w.Write([]byte(tc.body))
		}))
		c := NewClientWithBaseURL("k", srv.URL)
		_, err := c.Quotes(context.Background(), "AAPL")
		require.Error(t, err, tc.name)
		srv.Close()
	}
}
