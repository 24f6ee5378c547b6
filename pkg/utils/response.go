package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// RespondJSON 发送JSON响应
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// RespondError 以 {ok:false, error:code} 包装发送错误响应
func RespondError(w http.ResponseWriter, status int, code string) {
	RespondJSON(w, status, map[string]any{"ok": false, "error": code})
}

// RespondErrorDetail 在错误响应上附加 detail 字段
func RespondErrorDetail(w http.ResponseWriter, status int, code, detail string) {
	RespondJSON(w, status, map[string]any{"ok": false, "error": code, "detail": detail})
}
