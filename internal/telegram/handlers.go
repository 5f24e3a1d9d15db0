package telegram

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"stockassist/internal/dispatch"
	"stockassist/internal/storage"
)

var (
	reHelp = regexp.MustCompile(`^/(help|start)(?:@[\w_]+)?$`)
	// /history [n]
	reHistory = regexp.MustCompile(`^/history(?:@[\w_]+)?(?:\s+(\d+))?$`)
)

type Handlers struct {
	api        *tgbotapi.BotAPI
	store      *storage.Store
	dispatcher *dispatch.Dispatcher
}

func NewHandlers(api *tgbotapi.BotAPI, store *storage.Store, dispatcher *dispatch.Dispatcher) *Handlers {
	return &Handlers{
		api:        api,
		store:      store,
		dispatcher: dispatcher,
	}
}

func (h *Handlers) HandleMessage(m *tgbotapi.Message) {
	txt := strings.TrimSpace(m.Text)
	if txt == "" {
		return
	}
	switch {
	case reHelp.MatchString(txt):
		h.handleHelp(m.Chat.ID)
	case reHistory.MatchString(txt):
		n := 10
		if g := reHistory.FindStringSubmatch(txt); len(g) == 2 && g[1] != "" {
			fmt.Sscanf(g[1], "%d", &n)
			if n < 1 {
				n = 1
			}
			if n > 50 {
				n = 50
			}
		}
		h.handleHistory(m.Chat.ID, n)
	case strings.HasPrefix(txt, "/"):
		h.reply(m.Chat.ID, "Unknown command. Try /help.")
	default:
		h.handleQuery(m.Chat.ID, txt, int64(m.Date))
	}
}

func (h *Handlers) handleQuery(chatID int64, query string, ts int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	var tr dispatch.Transcript
	reply := h.dispatcher.Dispatch(ctx, &tr, query)

	_ = h.store.SaveTurn(chatID, string(dispatch.RoleHuman), query, ts)
	_ = h.store.SaveTurn(chatID, string(dispatch.RoleAssistant), reply.Text, time.Now().Unix())

	if len(reply.Chart) > 0 {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: reply.ChartName, Bytes: reply.Chart})
		photo.Caption = truncateCaption(reply.Text)
		h.api.Send(photo)
		return
	}
	h.reply(chatID, reply.Text)
}

func (h *Handlers) handleHistory(chatID int64, n int) {
	rows, err := h.store.RecentTurns(chatID, n)
	if err != nil {
		h.reply(chatID, "History failed: "+err.Error())
		return
	}
	if len(rows) == 0 {
		h.reply(chatID, "No conversation history yet.")
		return
	}
	var b strings.Builder
	for _, r := range rows {
		label := "you"
		if r.Role == string(dispatch.RoleAssistant) {
			label = "assistant"
		}
		fmt.Fprintf(&b, "%s: %s\n", label, firstLine(r.Text))
	}
	h.reply(chatID, b.String())
}

func (h *Handlers) handleHelp(chatID int64) {
	help := "Ask me about stocks in plain text.\n\n" +
		"- \"What's the current price of Apple?\" - current quote\n" +
		"- \"Show me a Tesla chart over the last 6 months\" - price chart\n" +
		"- /history [n] - Show the last n conversation turns (default: 10, max: 50)\n" +
		"\nRanges: 1d, 5d, 1mo, 3mo, 6mo, 1y, 5y, max. Intervals: 1d, 1wk, 1mo."
	h.reply(chatID, help)
}

func (h *Handlers) reply(chatID int64, text string) {
	h.api.Send(tgbotapi.NewMessage(chatID, text))
}

// Telegram caps photo captions at 1024 characters.
func truncateCaption(s string) string {
	if len(s) > 1024 {
		return s[:1021] + "..."
	}
	return s
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
