package openai

import (
	"context"
	"fmt"

	oa "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Extractor runs the single extraction completion behind the LLM classifier.
type Extractor struct {
	cli oa.Client
}

func NewExtractor(apiKey string) *Extractor {
	client := oa.NewClient(option.WithAPIKey(apiKey))
	return &Extractor{cli: client}
}

const extractionPrompt = `You are a financial assistant specialized in understanding stock queries.

When a user asks about stock information, carefully analyze their query to extract:

1. The company name or ticker symbol mentioned
2. Whether they want current price information or historical chart data
3. Any time range mentioned (day, week, month, 3 months, 6 months, year, 5 years)
4. Any interval preference (daily, weekly, monthly)

For well-known companies, you know their ticker symbols:
- Apple = AAPL
- Microsoft = MSFT
- Amazon = AMZN
- Google/Alphabet = GOOGL
- Meta/Facebook = META
- Tesla = TSLA
- Netflix = NFLX
- Nvidia = NVDA
- ServiceNow = NOW
- Salesforce = CRM
- IBM = IBM
- Oracle = ORCL
- CrowdStrike = CRWD
- AMD = AMD
- Intel = INTC

Respond with a JSON object containing exactly these fields:
{
  "request_type": "price" or "chart",
  "ticker": the ticker symbol (if you can determine it) or company name (if you're not sure of ticker),
  "time_range": preferred time range code or "1mo" if not specified,
  "interval": preferred interval code or "1d" if not specified
}

Time range codes: "1d" (day), "5d" (week), "1mo" (month), "3mo" (3 months), "6mo" (6 months), "1y" (year), "5y" (5 years)
Interval codes: "1d" (daily), "1wk" (weekly), "1mo" (monthly)

If the user mentions historical data, trends, charts, or graphs, classify as "chart", otherwise "price".`

// ExtractQuery submits one classification completion and returns the raw
// response text. Parsing happens in the classify package.
func (e *Extractor) ExtractQuery(ctx context.Context, query string) (string, error) {
	resp, err := e.cli.Chat.Completions.New(ctx, oa.ChatCompletionNewParams{
		Model: "gpt-4",
		Messages: []oa.ChatCompletionMessageParamUnion{
			oa.SystemMessage(extractionPrompt),
			oa.UserMessage(fmt.Sprintf("Parse this stock query: %q", query)),
		},
		MaxTokens: oa.Int(256),
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}
	return resp.Choices[0].Message.Content, nil
}
