package classify

import "context"

// Kind is the request type a query classifies as.
type Kind string

const (
	KindPrice Kind = "price"
	KindChart Kind = "chart"
)

const (
	DefaultRange    = "1mo"
	DefaultInterval = "1d"
)

// Result is one classification of a user query. It is produced once per
// query and never mutated.
type Result struct {
	Kind Kind
	// Ticker is a hint, not a resolved symbol: it may be a ticker, a company
	// name, or the leading tokens of the query. The resolver has final say.
	Ticker   string
	Range    string
	Interval string
}

// DefaultResult is the classification every failure degrades to.
func DefaultResult() Result {
	return Result{Kind: KindPrice, Range: DefaultRange, Interval: DefaultInterval}
}

// Classifier maps free text to a Result. Implementations never return an
// error; anything unparseable degrades to DefaultResult.
type Classifier interface {
	Classify(ctx context.Context, query string) Result
}

var validRanges = map[string]bool{
	"1d": true, "5d": true, "1mo": true, "3mo": true,
	"6mo": true, "1y": true, "5y": true, "max": true,
}

var validIntervals = map[string]bool{
	"1d": true, "1wk": true, "1mo": true,
}
