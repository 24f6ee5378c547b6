package ask

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/pi2026/clubsite/backend/internal/middleware"
	"github.com/pi2026/clubsite/backend/internal/model/chat"
	"github.com/pi2026/clubsite/backend/internal/service/history"
	"github.com/pi2026/clubsite/backend/internal/service/ratelimit"
	"github.com/pi2026/clubsite/backend/pkg/utils"
)

// maxMessageChars caps the incoming chat message length.
const maxMessageChars = 2000

// Responder produces an answer for a new user message given the prior
// transcript. Satisfied by the ai gateway; stubbed in tests.
type Responder interface {
	Answer(ctx context.Context, turns []chat.Turn, message string) (string, error)
}

// Handler 聊天代理的HTTP处理器
type Handler struct {
	gateway Responder
	limiter *ratelimit.Limiter
	history *history.Store
}

// New 创建聊天代理处理器
func New(gateway Responder, limiter *ratelimit.Limiter, historyStore *history.Store) *Handler {
	return &Handler{
		gateway: gateway,
		limiter: limiter,
		history: historyStore,
	}
}

// RegisterRoutes 注册聊天代理路由（需要登录）
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/ask", h.handleAsk)
}

// handleAsk 依次通过限流和校验，携带会话历史调用模型，
// 成功后把这一轮问答追加进历史。
func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	token := middleware.SessionToken(r.Context())

	if !h.limiter.Allow(token) {
		utils.RespondError(w, http.StatusTooManyRequests, "rate_limited")
		return
	}

	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "empty_message")
		return
	}
	if utf8.RuneCountInString(payload.Message) > maxMessageChars {
		utils.RespondError(w, http.StatusBadRequest, "message_too_long")
		return
	}

	turns := h.history.Turns(token)

	answer, err := h.gateway.Answer(r.Context(), turns, payload.Message)
	if err != nil {
		log.Printf("[ask] gateway failure: %v", err)
		utils.RespondErrorDetail(w, http.StatusInternalServerError, "ask_failed", err.Error())
		return
	}

	h.history.AppendExchange(token, payload.Message, answer)
	utils.RespondJSON(w, http.StatusOK, map[string]any{"ok": true, "answer": answer})
}
