package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"achieveit/internal/auth"
)

// JWTAccessHandler обрабатывает POST /jwt-access запрос:
// подписывает идентичность из тела и ставит куку с токеном
func (h *Handler) JWTAccessHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var user struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal(body, &user); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	if user.Email == "" {
		http.Error(w, "Missing email", http.StatusBadRequest)
		return
	}

	token, err := h.Tokens.Issue(user.Email)
	if err != nil {
		internalError(w, "Failed to issue token", err)
		return
	}

	auth.SetTokenCookie(w, token, h.Production)
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// LogOutHandler обрабатывает POST /log-out запрос: сбрасывает куку.
// Токен на сервере не отзываем, блэклиста нет.
func (h *Handler) LogOutHandler(w http.ResponseWriter, r *http.Request) {
	auth.ClearTokenCookie(w, h.Production)
	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
