package finance

import "fmt"

type FailureKind int

const (
	FailTransport FailureKind = iota
	FailNotFound
	FailIncomplete
	FailNoPriceData
	FailRender
)

// Failure is a fetch- or render-level failure with enough context for the
// presentation boundary to phrase a user-facing message. Nothing programmatic
// branches on Kind past that point.
type Failure struct {
	Kind   FailureKind
	Symbol string
	Err    error
}

func (f *Failure) Error() string {
	switch f.Kind {
	case FailNotFound:
		return fmt.Sprintf("no data found for %s", f.Symbol)
	case FailIncomplete:
		return fmt.Sprintf("incomplete data received for %s", f.Symbol)
	case FailNoPriceData:
		return fmt.Sprintf("no price data available for %s", f.Symbol)
	case FailRender:
		return fmt.Sprintf("chart render failed for %s: %v", f.Symbol, f.Err)
	default:
		return fmt.Sprintf("fetch failed for %s: %v", f.Symbol, f.Err)
	}
}

func (f *Failure) Unwrap() error { return f.Err }
