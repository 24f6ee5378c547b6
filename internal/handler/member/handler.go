package member

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pi2026/clubsite/backend/internal/model/member"
	"github.com/pi2026/clubsite/backend/pkg/utils"
)

// Handler 成员名单的HTTP处理器
type Handler struct {
	store member.Store
}

// New 创建成员名单处理器
func New(store member.Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes 注册公开的名单路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/members", h.handleList)
}

// RegisterProtectedRoutes 注册需要登录的名单路由
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/members/full", h.handleListFull)
}

// handleList 返回所有成员的公开视图。
func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.Load()
	if err != nil {
		log.Printf("[member] failed to load roster: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "members_unavailable")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"ok": true, "members": member.PublicAll(records)})
}

// handleListFull 返回完整成员记录，字段原样透传。
func (h *Handler) handleListFull(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.Load()
	if err != nil {
		log.Printf("[member] failed to load roster: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "members_unavailable")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{"ok": true, "members": records})
}
