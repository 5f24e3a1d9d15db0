package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"stockassist/internal/classify"
	"stockassist/internal/config"
	"stockassist/internal/dispatch"
	"stockassist/internal/finance"
	"stockassist/internal/openai"
	"stockassist/internal/yahoo"
)

func main() {
	cfg := config.Load()

	yc := yahoo.NewClient(cfg.YahooAPIKey)
	svc := finance.NewService(yc)
	dispatcher := dispatch.New(newClassifier(cfg), finance.NewResolver(yc), svc, svc)

	fmt.Println("Financial Data Assistant")
	fmt.Println("------------------------")
	fmt.Println("Ask for a stock price or a historical chart")
	fmt.Println("  e.g., 'What's the current price of Apple?'")
	fmt.Println("  e.g., 'Show me a Tesla chart over the last 6 months'")
	fmt.Println("Ranges: 1d, 5d, 1mo, 3mo, 6mo, 1y, 5y, max. Intervals: 1d, 1wk, 1mo.")
	fmt.Println("Type 'quit' to exit")
	fmt.Println()

	var tr dispatch.Transcript
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		switch strings.ToLower(line) {
		case "quit", "exit", "q":
			return
		case "":
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		reply := dispatcher.Dispatch(ctx, &tr, line)
		cancel()

		fmt.Printf("\n%s\n\n", reply.Text)
		if len(reply.Chart) > 0 {
			if err := os.WriteFile(reply.ChartName, reply.Chart, 0o644); err != nil {
				fmt.Printf("Could not save chart: %v\n\n", err)
				continue
			}
			fmt.Printf("Chart saved to %s\n\n", reply.ChartName)
		}
	}
}

func newClassifier(cfg config.Config) classify.Classifier {
	if cfg.Classifier == config.ClassifierLLM {
		return classify.NewLLM(openai.NewExtractor(cfg.OpenAIKey))
	}
	return classify.NewKeyword()
}
