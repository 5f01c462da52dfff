package webui

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/deepnoodle-ai/parley/chat"
	"github.com/deepnoodle-ai/parley/llm"
	"github.com/deepnoodle-ai/parley/log"
)

var chatbotTemplate = mustParse("chatbot.html")

// ChatHandler serves the chatbot app: a transcript view, a chat input, and
// a temperature control.
type ChatHandler struct {
	session *chat.Session
	logger  log.Logger
	mux     *http.ServeMux
}

// NewChatHandler builds the handler with its routes registered.
func NewChatHandler(session *chat.Session, logger log.Logger) *ChatHandler {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	h := &ChatHandler{
		session: session,
		logger:  logger,
		mux:     http.NewServeMux(),
	}
	h.mux.HandleFunc("/", h.handleIndex)
	h.mux.HandleFunc("/chat", h.handleChat)
	h.mux.HandleFunc("/clear", h.handleClear)
	return h
}

func (h *ChatHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

type chatMessage struct {
	Role  string
	Label string
	Text  string
}

type chatbotPage struct {
	Welcome     string
	Messages    []chatMessage
	Temperature float64
	Notice      string
	Error       string
}

func (h *ChatHandler) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	var messages []chatMessage
	for _, m := range h.session.Messages() {
		messages = append(messages, chatMessage{
			Role:  m.Role.String(),
			Label: roleLabel(m.Role),
			Text:  m.Text(),
		})
	}
	render(w, h.logger, chatbotTemplate, chatbotPage{
		Welcome:     chat.WelcomeMessage,
		Messages:    messages,
		Temperature: h.session.Temperature(),
		Notice:      r.URL.Query().Get("notice"),
		Error:       r.URL.Query().Get("error"),
	})
}

func (h *ChatHandler) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if value := r.FormValue("temperature"); value != "" {
		if temperature, err := strconv.ParseFloat(value, 64); err == nil {
			h.session.SetTemperature(temperature)
		}
	}
	message := r.FormValue("message")
	if message == "" {
		redirect(w, r, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	if _, err := h.session.Ask(ctx, message); err != nil {
		h.logger.Error("chat request failed", "session_id", h.session.ID(), "error", err)
		redirect(w, r, url.Values{
			"error": {"The assistant could not respond. Please try again."},
		})
		return
	}
	redirect(w, r, nil)
}

func (h *ChatHandler) handleClear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.session.Clear()
	redirect(w, r, url.Values{
		"notice": {"Chat history cleared!"},
	})
}

// roleLabel maps an llm role to the label shown beside a chat bubble.
func roleLabel(role llm.Role) string {
	switch role {
	case llm.Assistant:
		return "Assistant"
	default:
		return "You"
	}
}
