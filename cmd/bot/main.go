package main

import (
	"log"
	"os"
	"path/filepath"

	"stockassist/internal/classify"
	"stockassist/internal/config"
	"stockassist/internal/dispatch"
	"stockassist/internal/finance"
	"stockassist/internal/openai"
	"stockassist/internal/server"
	"stockassist/internal/storage"
	"stockassist/internal/telegram"
	"stockassist/internal/yahoo"
)

func main() {
	cfg := config.LoadBot()

	// Ensure parent directory for the DB exists
	_ = os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755)
	db, err := storage.OpenSQLite("file:" + cfg.DBPath + "?_fk=1")
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()
	log.Printf("db: opened sqlite at %s", cfg.DBPath)
	if err := storage.InitSchema(db); err != nil {
		log.Fatal(err)
	}
	log.Println("db: schema ensured (turns table)")

	yc := yahoo.NewClient(cfg.YahooAPIKey)
	svc := finance.NewService(yc)
	dispatcher := dispatch.New(newClassifier(cfg), finance.NewResolver(yc), svc, svc)
	log.Printf("dispatch: %s classifier selected", cfg.Classifier)

	tg, err := telegram.NewBot(cfg.TelegramToken, cfg.WebhookPublicURL, db, dispatcher)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("telegram: bot initialized, webhook target %s", cfg.WebhookPublicURL)

	mux := server.NewHTTPMux(tg.WebhookHandler, server.NewQueryHandler(dispatcher))
	addr := ":" + cfg.Port
	log.Println("http: listening on", addr)
	if err := server.ListenAndServe(addr, mux); err != nil {
		log.Println("server error:", err)
		os.Exit(1)
	}
}

func newClassifier(cfg config.Config) classify.Classifier {
	if cfg.Classifier == config.ClassifierLLM {
		return classify.NewLLM(openai.NewExtractor(cfg.OpenAIKey))
	}
	return classify.NewKeyword()
}
