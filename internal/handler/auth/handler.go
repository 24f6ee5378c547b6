package auth

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pi2026/clubsite/backend/internal/config"
	"github.com/pi2026/clubsite/backend/internal/service/session"
	"github.com/pi2026/clubsite/backend/pkg/utils"
)

// Handler 登录相关的HTTP处理器
type Handler struct {
	sessions *session.Service
	cfg      config.AuthConfig
}

// New 创建登录处理器
func New(sessions *session.Service, cfg config.AuthConfig) *Handler {
	return &Handler{sessions: sessions, cfg: cfg}
}

// RegisterRoutes 注册登录相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/login", h.handleLogin)
}

// handleLogin 校验管理员凭证并签发会话令牌。
// 连续失败不做锁定或退避。
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid_request")
		return
	}

	if payload.Username != h.cfg.Username || payload.Password != h.cfg.Password {
		utils.RespondError(w, http.StatusUnauthorized, "invalid_credentials")
		return
	}

	token := h.sessions.Create()
	utils.RespondJSON(w, http.StatusOK, map[string]any{"ok": true, "token": token})
}
