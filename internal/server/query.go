package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"stockassist/internal/dispatch"
)

// QueryRunner executes one dispatch against a fresh transcript.
type QueryRunner interface {
	Run(ctx context.Context, query string) dispatch.Reply
}

type queryRequest struct {
	Query string `json:"query"`
}

type queryResponse struct {
	Reply          string `json:"reply"`
	ChartPNGBase64 string `json:"chart_png_base64,omitempty"`
	ChartName      string `json:"chart_name,omitempty"`
}

// NewQueryHandler serves POST /query: one free-text query in, one assistant
// reply out, chart bytes base64-encoded when present.
func NewQueryHandler(runner QueryRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req queryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == "" {
			http.Error(w, "bad query", http.StatusBadRequest)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
		defer cancel()
		log.Printf("query: %q", req.Query)
		reply := runner.Run(ctx, req.Query)
		resp := queryResponse{Reply: reply.Text, ChartName: reply.ChartName}
		if len(reply.Chart) > 0 {
			resp.ChartPNGBase64 = base64.StdEncoding.EncodeToString(reply.Chart)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	}
}
