package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gorilla/mux"

	"github.com/kontinentkm/SaveItBot/config"
	"github.com/kontinentkm/SaveItBot/internal/handlers"
	"github.com/kontinentkm/SaveItBot/pkg/logger"
)

const maxBodySize = 1 << 20 // Telegram updates are small; 1MB is generous

// Server is the stateless deployment shape: one Telegram update per POST,
// handled synchronously, no state across requests. The handler may be nil
// when no bot token is configured; requests then get a 500.
type Server struct {
	handler *handlers.Handler
	srv     *http.Server
}

func New(cfg *config.Config) (*Server, error) {
	var h *handlers.Handler
	if cfg.BotToken != "" {
		bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
		if err != nil {
			return nil, err
		}
		h = handlers.New(bot, cfg)
	}
	return NewWithHandler(cfg, h), nil
}

// NewWithHandler wires an explicit handler; tests use it with a fake API.
func NewWithHandler(cfg *config.Config, h *handlers.Handler) *Server {
	s := &Server{handler: h}

	r := mux.NewRouter()
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.PathPrefix("/").HandlerFunc(s.handleUpdate)

	s.srv = &http.Server{
		Addr:              cfg.WebhookAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

func (s *Server) ListenAndServe() error {
	logger.Info("webhook server starting", "addr", s.srv.Addr)
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "OK")
}

// handleUpdate implements Telegram's delivery contract: any POST outcome is
// a 200 so Telegram does not redeliver, except unparseable JSON (400) and
// missing configuration (500). Non-POST requests get a 200 so load-balancer
// probes pass.
func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "OK")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var update tgbotapi.Update
	if err := json.Unmarshal(body, &update); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if s.handler == nil {
		http.Error(w, "BOT_TOKEN is not configured", http.StatusInternalServerError)
		return
	}

	msg := update.Message
	if msg == nil {
		msg = update.EditedMessage
	}
	if msg != nil && msg.Chat != nil {
		text := msg.Text
		if text == "" {
			text = msg.Caption
		}
		fromID := int64(0)
		if msg.From != nil {
			fromID = msg.From.ID
		}
		s.handler.HandleStateless(r.Context(), msg.Chat.ID, fromID, text)
	}

	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "OK")
}
