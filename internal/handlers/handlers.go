package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"achieveit/internal/auth"
	"achieveit/internal/metrics"
)

// Handler оборачивает Storage и сервис токенов для доступа к данным
type Handler struct {
	Store      StorageInterface
	Tokens     *auth.TokenService
	Metrics    *metrics.Collector
	Production bool
}

// NewHandler создает новый Handler
func NewHandler(store StorageInterface, tokens *auth.TokenService, collector *metrics.Collector, production bool) *Handler {
	return &Handler{Store: store, Tokens: tokens, Metrics: collector, Production: production}
}

// PingHandler отвечает "ok" для проверки сервера
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// RootHandler — приветственный баннер сервера
func (h *Handler) RootHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Hello from Achieve IT Server...."))
}

// respondJSON пишет тело ответа в JSON
func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// internalError логирует ошибку хранилища и отвечает 500.
// Ошибки хранилища не ретраятся, наружу уходит общий текст.
func internalError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, slog.String("error", err.Error()))
	http.Error(w, msg, http.StatusInternalServerError)
}
