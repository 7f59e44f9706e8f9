package httpapi

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/catalog"
	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/chat"
)

// Completer is the chat-completion backend.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

type ChatHandler struct {
	completer Completer
	catalog   catalog.Repository
	defaults  catalog.Settings
	logger    *log.Logger
}

func NewChatHandler(completer Completer, repo catalog.Repository, defaults catalog.Settings, logger *log.Logger) *ChatHandler {
	return &ChatHandler{completer: completer, catalog: repo, defaults: defaults, logger: logger}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Reply    string `json:"reply"`
	Fallback bool   `json:"fallback,omitempty"`
}

// Chat answers one widget message. Upstream failures never surface as errors:
// the customer gets the fallback text and the cause is logged.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var body chatRequest
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	body.Message = strings.TrimSpace(body.Message)
	if body.Message == "" {
		writeError(w, http.StatusBadRequest, "missing message")
		return
	}

	settings, services := h.storeContext(r.Context())

	reply, err := h.completer.Complete(r.Context(), chat.StorePrompt(settings, services), body.Message)
	if err != nil {
		h.logger.Printf("chat completion: %v", err)
		writeJSON(w, http.StatusOK, chatResponse{
			Reply:    chat.FallbackReply(settings.WhatsAppNumber),
			Fallback: true,
		})
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

// storeContext gathers settings and a catalog slice for the system prompt.
// Both lookups are best-effort; the assistant still answers without them.
func (h *ChatHandler) storeContext(ctx context.Context) (catalog.Settings, []catalog.Service) {
	queryCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	settings := h.defaults
	if s, err := h.catalog.GetSettings(queryCtx); err == nil {
		settings = s
	}

	services, err := h.catalog.ListServices(queryCtx, catalog.Filter{Limit: 30})
	if err != nil {
		h.logger.Printf("list services for prompt: %v", err)
		services = nil
	}

	return settings, services
}
