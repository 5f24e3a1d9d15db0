package yahoo

// QuoteResponse mirrors the get-quotes payload (trimmed to needed fields).
// Numeric fields are pointers so a missing value can render as N/A downstream.
type QuoteResponse struct {
	QuoteResponse struct {
		Result []Quote `json:"result"`
		Error  any     `json:"error"`
	} `json:"quoteResponse"`
}

type Quote struct {
	Symbol             string   `json:"symbol"`
	LongName           string   `json:"longName"`
	RegularMarketPrice *float64 `json:"regularMarketPrice"`
	MarketCap          *float64 `json:"marketCap"`
	FiftyTwoWeekLow    *float64 `json:"fiftyTwoWeekLow"`
	FiftyTwoWeekHigh   *float64 `json:"fiftyTwoWeekHigh"`
	TrailingPE         *float64 `json:"trailingPE"`
	DividendYield      *float64 `json:"dividendYield"`
}

// SearchResponse mirrors the auto-complete payload (trimmed).
type SearchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		ShortName string `json:"shortname"`
	} `json:"quotes"`
}

// ChartResponse mirrors the v3 get-chart payload (trimmed).
type ChartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error any `json:"error"`
	} `json:"chart"`
}
