package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"achieveit/db"
	"achieveit/internal/auth"
	"achieveit/models"

	"github.com/go-chi/chi/v5"
)

// GetPosterBidsHandler возвращает предложения на курсы заказчика.
// posterEmail приходит query-параметром и сверяется с токеном.
func (h *Handler) GetPosterBidsHandler(w http.ResponseWriter, r *http.Request) {
	posterEmail := r.URL.Query().Get("posterEmail")
	if posterEmail == "" {
		http.Error(w, "Missing posterEmail parameter", http.StatusBadRequest)
		return
	}

	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized access", http.StatusUnauthorized)
		return
	}
	if claims.Email != posterEmail {
		http.Error(w, "Forbidden access", http.StatusForbidden)
		return
	}

	bids, err := h.Store.GetBidsByPoster(r.Context(), posterEmail)
	if err != nil {
		internalError(w, "Failed to get bids", err)
		return
	}
	respondJSON(w, http.StatusOK, bids)
}

// GetMyBidsHandler возвращает предложения, поданные пользователем email
func (h *Handler) GetMyBidsHandler(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	claims, ok := auth.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized access", http.StatusUnauthorized)
		return
	}
	if claims.Email != email {
		http.Error(w, "Forbidden access", http.StatusForbidden)
		return
	}

	bids, err := h.Store.GetBidsByBidder(r.Context(), email)
	if err != nil {
		internalError(w, "Failed to get my bids", err)
		return
	}
	respondJSON(w, http.StatusOK, bids)
}

// CreateBidHandler обрабатывает POST /add-bid запрос.
// После вставки предложения счётчик bid_count курса увеличивается
// атомарным инкрементом в хранилище, поэтому одновременные отклики
// не теряют друг друга.
func (h *Handler) CreateBidHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var bid models.Bid
	if err := json.Unmarshal(body, &bid); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	if err := validateBidRequest(&bid); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Ссылочная проверка без транзакции: курс должен существовать
	// на момент создания предложения
	course, err := h.Store.GetCourse(r.Context(), bid.CourseID)
	if errors.Is(err, models.ErrNotFound) {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}
	if err != nil {
		internalError(w, "Failed to get course", err)
		return
	}

	bid.PosterEmail = course.Poster.Email
	bid.CourseTitle = course.CourseTitle
	bid.Status = models.BidStatusPending // статус при создании

	result, err := h.Store.CreateBid(r.Context(), &bid)
	if err != nil {
		internalError(w, "Failed to create bid", err)
		return
	}

	affected, err := h.Store.IncrementBidCount(r.Context(), bid.CourseID)
	if err != nil {
		internalError(w, "Failed to update bid count", err)
		return
	}
	if affected == 0 {
		// Курс удалили между проверкой и инкрементом; предложение
		// уже вставлено, фиксируем расхождение в логе
		slog.Warn("bid count not incremented, course is gone",
			slog.String("courseId", bid.CourseID))
	}

	h.Metrics.RecordBidSubmitted()
	respondJSON(w, http.StatusOK, result)
}

func validateBidRequest(b *models.Bid) error {
	if b.CourseID == "" {
		return errors.New("courseId is required")
	}
	if err := db.ValidateID(b.CourseID); err != nil {
		return errors.New("courseId must be a valid id")
	}
	if b.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

// UpdateBidStatusHandler обрабатывает PATCH /bid-status/{id} запрос.
// Статус проверяется на вхождение в закрытый набор, переходы между
// статусами не ограничены и остаются за вызывающей стороной.
func (h *Handler) UpdateBidStatusHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := db.ValidateID(id); err != nil {
		http.Error(w, "Invalid bid id", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Cannot read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var input struct {
		Status models.BidStatus `json:"status"`
	}
	if err := json.Unmarshal(body, &input); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}
	if !input.Status.Valid() {
		http.Error(w, "Invalid status value", http.StatusBadRequest)
		return
	}

	result, err := h.Store.UpdateBidStatus(r.Context(), id, input.Status)
	if err != nil {
		internalError(w, "Failed to update bid status", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
