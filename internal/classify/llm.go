package classify

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
)

// Completer is the one-shot LLM extraction call. One prompt in, one raw
// completion out.
type Completer interface {
	ExtractQuery(ctx context.Context, query string) (string, error)
}

// LLM classifies queries with a single templated completion. Transport and
// parse failures both degrade to DefaultResult; classification never raises.
type LLM struct {
	completer Completer
}

func NewLLM(completer Completer) *LLM {
	return &LLM{completer: completer}
}

func (l *LLM) Classify(ctx context.Context, query string) Result {
	raw, err := l.completer.ExtractQuery(ctx, query)
	if err != nil {
		return DefaultResult()
	}
	return ParseExtraction(raw)
}

var (
	reJSONBlock   = regexp.MustCompile(`(\{.*\})`)
	reRequestType = regexp.MustCompile(`"request_type"\s*:\s*"chart"`)
	reTickerField = regexp.MustCompile(`"ticker"\s*:\s*"([^"]+)"`)
	reRangeField  = regexp.MustCompile(`"time_range"\s*:\s*"([^"]+)"`)
	reIntervField = regexp.MustCompile(`"interval"\s*:\s*"([^"]+)"`)
)

type extraction struct {
	RequestType string `json:"request_type"`
	Ticker      string `json:"ticker"`
	TimeRange   string `json:"time_range"`
	Interval    string `json:"interval"`
}

// ParseExtraction parses a raw completion into a Result. It tries the
// embedded JSON object first, then field-level regexes, and finally falls
// back to DefaultResult.
func ParseExtraction(raw string) Result {
	flat := strings.ReplaceAll(raw, "\n", " ")
	if m := reJSONBlock.FindStringSubmatch(flat); m != nil {
		// models sometimes emit single-quoted pseudo-JSON
		jsonStr := strings.ReplaceAll(m[1], "'", `"`)
		var ex extraction
		if err := json.Unmarshal([]byte(jsonStr), &ex); err == nil {
			return ex.toResult()
		}
	}

	var ex extraction
	if reRequestType.MatchString(flat) {
		ex.RequestType = "chart"
	}
	if m := reTickerField.FindStringSubmatch(flat); m != nil {
		ex.Ticker = m[1]
	}
	if m := reRangeField.FindStringSubmatch(flat); m != nil {
		ex.TimeRange = m[1]
	}
	if m := reIntervField.FindStringSubmatch(flat); m != nil {
		ex.Interval = m[1]
	}
	return ex.toResult()
}

func (ex extraction) toResult() Result {
	res := DefaultResult()
	if ex.RequestType == string(KindChart) {
		res.Kind = KindChart
	}
	res.Ticker = strings.TrimSpace(ex.Ticker)
	if validRanges[ex.TimeRange] {
		res.Range = ex.TimeRange
	}
	if validIntervals[ex.Interval] {
		res.Interval = ex.Interval
	}
	return res
}
