package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"achieveit/db"
	"achieveit/internal/auth"
	"achieveit/models"

	"github.com/go-chi/chi/v5"
)

// GetCoursesHandler возвращает все курсы без фильтров, авторизация не нужна
func (h *Handler) GetCoursesHandler(w http.ResponseWriter, r *http.Request) {
	courses, err := h.Store.GetCourses(r.Context())
	if err != nil {
		internalError(w, "Failed to get courses", err)
		return
	}
	respondJSON(w, http.StatusOK, courses)
}

// GetCourseHandler возвращает курс по id
func (h *Handler) GetCourseHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := db.ValidateID(id); err != nil {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}

	course, err := h.Store.GetCourse(r.Context(), id)
	if errors.Is(err, models.ErrNotFound) {
		http.Error(w, "Course not found", http.StatusNotFound)
		return
	}
	if err != nil {
		internalError(w, "Failed to get course", err)
		return
	}
	respondJSON(w, http.StatusOK, course)
}

// GetPosterCoursesHandler возвращает курсы, размещённые пользователем email.
// Шлюз уже проверил токен, здесь сверяем владельца ресурса.
func (h *Handler) GetPosterCoursesHandler(w http.ResponseWriter, r *http.Request) {
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

	courses, err := h.Store.GetCoursesByPoster(r.Context(), email)
	if err != nil {
		internalError(w, "Failed to get poster courses", err)
		return
	}
	respondJSON(w, http.StatusOK, courses)
}

// SearchCoursesHandler обрабатывает GET /all-courses с параметрами
// filter, search и sort. Композицию фильтров собирает хранилище:
// search вытесняет filter, sort нормализуется к asc|desc.
func (h *Handler) SearchCoursesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	courses, err := h.Store.SearchCourses(r.Context(), q.Get("filter"), q.Get("search"), q.Get("sort"))
	if err != nil {
		internalError(w, "Failed to search courses", err)
		return
	}
	respondJSON(w, http.StatusOK, courses)
}

// CreateCourseHandler обрабатывает POST /add-course запрос
func (h *Handler) CreateCourseHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var course models.Course
	if err := json.Unmarshal(body, &course); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	if err := validateCourseRequest(&course); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	// Счётчик предложений нового курса всегда ноль
	course.BidCount = 0

	result, err := h.Store.CreateCourse(r.Context(), &course)
	if err != nil {
		internalError(w, "Failed to create course", err)
		return
	}

	h.Metrics.RecordCourseCreated()
	respondJSON(w, http.StatusOK, result)
}

// validateCourseRequest проверяет обязательные поля курса
func validateCourseRequest(c *models.Course) error {
	if c.CourseTitle == "" || len(c.CourseTitle) > 200 {
		return errors.New("course_title is required and max length 200")
	}
	if c.Poster.Email == "" {
		return errors.New("poster email is required")
	}
	return nil
}

// DeleteCourseHandler обрабатывает DELETE /course/{id} запрос.
// Отсутствующий id — deletedCount 0 в ответе, не ошибка.
func (h *Handler) DeleteCourseHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := db.ValidateID(id); err != nil {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}

	result, err := h.Store.DeleteCourse(r.Context(), id)
	if err != nil {
		internalError(w, "Failed to delete course", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}

// UpdateCourseHandler обрабатывает PUT /update-course/{id} запрос.
// Полная перезапись полей с upsert: отсутствующий id означает вставку
// нового документа с переданными данными.
func (h *Handler) UpdateCourseHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := db.ValidateID(id); err != nil {
		http.Error(w, "Invalid course id", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Cannot read body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	var course models.Course
	if err := json.Unmarshal(body, &course); err != nil {
		http.Error(w, "Invalid JSON format", http.StatusBadRequest)
		return
	}

	result, err := h.Store.UpdateCourse(r.Context(), id, &course, true)
	if err != nil {
		internalError(w, "Failed to update course", err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
