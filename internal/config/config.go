package config

import (
	"log"
	"os"
)

type Config struct {
	YahooAPIKey      string
	OpenAIKey        string
	Classifier       string
	TelegramToken    string
	WebhookPublicURL string
	Port             string
	DBPath           string
}

const (
	ClassifierKeyword = "keyword"
	ClassifierLLM     = "llm"
)

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}

// Load reads the configuration every mode needs. The keyword classifier is
// the default; CLASSIFIER=llm requires an OpenAI key.
func Load() Config {
	classifier := os.Getenv("CLASSIFIER")
	if classifier == "" {
		classifier = ClassifierKeyword
	}
	if classifier != ClassifierKeyword && classifier != ClassifierLLM {
		log.Fatalf("unknown CLASSIFIER %q (want %s or %s)", classifier, ClassifierKeyword, ClassifierLLM)
	}
	openAIKey := os.Getenv("OPENAI_API_KEY")
	if classifier == ClassifierLLM && openAIKey == "" {
		log.Fatal("CLASSIFIER=llm requires OPENAI_API_KEY")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "9095"
	}
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./stockassist.db"
	}
	return Config{
		YahooAPIKey: mustEnv("YAHOO_API_KEY"),
		OpenAIKey:   openAIKey,
		Classifier:  classifier,
		Port:        port,
		DBPath:      dbPath,
	}
}

// LoadBot adds the Telegram webhook settings required by cmd/bot.
func LoadBot() Config {
	cfg := Load()
	cfg.TelegramToken = mustEnv("TELEGRAM_BOT_TOKEN")
	cfg.WebhookPublicURL = mustEnv("WEBHOOK_PUBLIC_URL")
	return cfg
}
