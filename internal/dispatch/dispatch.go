package dispatch

import (
	"context"
	"fmt"
	"strings"

	"stockassist/internal/classify"
	"stockassist/internal/finance"
)

// Quotes is the price fetch path.
type Quotes interface {
	QuoteText(ctx context.Context, symbol string) (string, *finance.Failure)
}

// Charts is the historical chart fetch-and-render path.
type Charts interface {
	ChartPNG(ctx context.Context, symbol, rangeParam, interval string) ([]byte, *finance.Failure)
}

// TickerResolver maps a ticker hint to a symbol.
type TickerResolver interface {
	Resolve(ctx context.Context, text string) string
}

// Dispatcher sequences classify -> resolve -> fetch for one query.
// Exactly one fetch path runs per dispatch, picked by the classification
// kind. All collaborators are injected; the dispatcher holds no other state.
type Dispatcher struct {
	classifier classify.Classifier
	resolver   TickerResolver
	quotes     Quotes
	charts     Charts
}

func New(classifier classify.Classifier, resolver TickerResolver, quotes Quotes, charts Charts) *Dispatcher {
	return &Dispatcher{
		classifier: classifier,
		resolver:   resolver,
		quotes:     quotes,
		charts:     charts,
	}
}

const clarificationMessage = "I couldn't identify a valid stock ticker from your query. Could you please specify the company name more clearly?"

// Reply is the assistant's response to one dispatched query.
type Reply struct {
	Text  string
	Chart []byte
	// ChartName is a suggested filename for Chart, e.g. "TSLA_6mo_1d.png".
	ChartName string
}

// Dispatch runs one query through the pipeline and appends the human and
// assistant turns to tr. It never returns an error: every failure downstream
// is converted to the assistant turn's text.
func (d *Dispatcher) Dispatch(ctx context.Context, tr *Transcript, query string) Reply {
	query = strings.TrimSpace(query)
	tr.Append(Turn{Role: RoleHuman, Text: query})

	res := d.classifier.Classify(ctx, query)
	var symbol string
	if strings.TrimSpace(res.Ticker) != "" {
		symbol = d.resolver.Resolve(ctx, res.Ticker)
	}

	var reply Reply
	if res.Kind == classify.KindChart {
		reply = d.processChart(ctx, query, symbol, res)
	} else {
		reply = d.processPrice(ctx, query, symbol)
	}
	tr.Append(Turn{Role: RoleAssistant, Text: reply.Text, Chart: reply.Chart})
	return reply
}

// Run executes one dispatch against a fresh transcript.
func (d *Dispatcher) Run(ctx context.Context, query string) Reply {
	var tr Transcript
	return d.Dispatch(ctx, &tr, query)
}

func (d *Dispatcher) processPrice(ctx context.Context, query, symbol string) Reply {
	if symbol == "" {
		return Reply{Text: clarificationMessage}
	}
	text, fail := d.quotes.QuoteText(ctx, symbol)
	if fail != nil {
		return Reply{Text: priceFailureText(query, fail)}
	}
	return Reply{Text: text}
}

func (d *Dispatcher) processChart(ctx context.Context, query, symbol string, res classify.Result) Reply {
	if symbol == "" {
		return Reply{Text: clarificationMessage}
	}
	img, fail := d.charts.ChartPNG(ctx, symbol, res.Range, res.Interval)
	if fail != nil {
		return Reply{Text: chartFailureText(query, symbol, fail)}
	}
	text := fmt.Sprintf("Historical Stock Chart for %s\n\nTime Range: %s\nInterval: %s",
		strings.ToUpper(symbol), res.Range, res.Interval)
	name := fmt.Sprintf("%s_%s_%s.png", strings.ToUpper(symbol), res.Range, res.Interval)
	return Reply{Text: text, Chart: img, ChartName: name}
}

// Failure stringification lives here, at the presentation boundary. The
// NotFound message references what the user typed, not the resolved symbol.
func priceFailureText(query string, f *finance.Failure) string {
	if f.Kind == finance.FailNotFound {
		return fmt.Sprintf("Could not find information for '%s'. Please try a different company name or ticker symbol.", query)
	}
	return fmt.Sprintf("Error fetching information for '%s': %v", query, failureCause(f))
}

func chartFailureText(query, symbol string, f *finance.Failure) string {
	switch f.Kind {
	case finance.FailNotFound:
		return fmt.Sprintf("No chart data available for %s", symbol)
	case finance.FailIncomplete:
		return fmt.Sprintf("Incomplete data received for %s", symbol)
	case finance.FailNoPriceData:
		return fmt.Sprintf("No price data available for %s", symbol)
	case finance.FailRender:
		return fmt.Sprintf("Could not create chart for '%s' (%s). The data may be incomplete.", query, symbol)
	default:
		return fmt.Sprintf("Could not fetch chart data for '%s' (%s). Please try a different company name or ticker symbol.", query, symbol)
	}
}

func failureCause(f *finance.Failure) error {
	if f.Err != nil {
		return f.Err
	}
	return f
}
