package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"achieveit/internal/handlers/testutils"
	"achieveit/models"

	"github.com/stretchr/testify/require"
)

const testCourseID = "4b1c8b3e-0000-0000-0000-0000000000c1"

func TestGetCoursesHandler(t *testing.T) {
	mockStore := &MockStorage{}
	handler := newTestHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/courses", nil)
	w := httptest.NewRecorder()

	handler.GetCoursesHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, string(body), "Sample Course")
}

func TestGetCourseHandler(t *testing.T) {
	mockStore := &MockStorage{}
	handler := newTestHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/course/"+testCourseID, nil)
	req = testutils.WithChiURLParams(req, map[string]string{"id": testCourseID})
	w := httptest.NewRecorder()

	handler.GetCourseHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, string(body), "Test Course")
}

func TestGetCourseHandlerMalformedID(t *testing.T) {
	mockStore := &MockStorage{}
	handler := newTestHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/course/not-a-uuid", nil)
	req = testutils.WithChiURLParams(req, map[string]string{"id": "not-a-uuid"})
	w := httptest.NewRecorder()

	handler.GetCourseHandler(w, req)

	require.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestGetCourseHandlerNotFound(t *testing.T) {
	mockStore := &MockStorage{getCourseErr: models.ErrNotFound}
	handler := newTestHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/course/"+testCourseID, nil)
	req = testutils.WithChiURLParams(req, map[string]string{"id": testCourseID})
	w := httptest.NewRecorder()

	handler.GetCourseHandler(w, req)

	require.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestGetPosterCoursesHandler(t *testing.T) {
	mockStore := &MockStorage{}
	handler := newTestHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/courses/poster@example.com", nil)
	req = testutils.WithChiURLParams(req, map[string]string{"email": "poster@example.com"})
	req = testutils.WithClaims(req, "poster@example.com")
	w := httptest.NewRecorder()

	handler.GetPosterCoursesHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, string(body), "Poster Course")
}

func TestGetPosterCoursesHandlerForbidden(t *testing.T) {
	mockStore := &MockStorage{}
	handler := newTestHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/courses/poster@example.com", nil)
	req = testutils.WithChiURLParams(req, map[string]string{"email": "poster@example.com"})
	req = testutils.WithClaims(req, "someone-else@example.com")
	w := httptest.NewRecorder()

	handler.GetPosterCoursesHandler(w, req)

	require.Equal(t, http.StatusForbidden, w.Result().StatusCode)
}

func TestGetPosterCoursesHandlerNoClaims(t *testing.T) {
	mockStore := &MockStorage{}
	handler := newTestHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/courses/poster@example.com", nil)
	req = testutils.WithChiURLParams(req, map[string]string{"email": "poster@example.com"})
	w := httptest.NewRecorder()

	handler.GetPosterCoursesHandler(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Result().StatusCode)
}

func TestSearchCoursesHandlerPassesParams(t *testing.T) {
	mockStore := &MockStorage{}
	handler := newTestHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/all-courses?filter=math&search=intro&sort=asc", nil)
	w := httptest.NewRecorder()

	handler.SearchCoursesHandler(w, req)

	require.Equal(t, http.StatusOK, w.Result().StatusCode)
	require.Equal(t, "math", mockStore.searchFilter)
	require.Equal(t, "intro", mockStore.searchSearch)
	require.Equal(t, "asc", mockStore.searchSort)
}

func TestCreateCourseHandler(t *testing.T) {
	mockStore := &MockStorage{}
	handler := newTestHandler(mockStore)

	reqBody := `{
        "course_title": "Intro to Algebra",
        "category": "math",
        "deadline": "2026-10-01",
        "poster": {"email": "poster@example.com", "name": "Poster"}
    }`
	req := httptest.NewRequest(http.MethodPost, "/add-course", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.CreateCourseHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, string(body), "insertedId")
}

func TestCreateCourseHandlerMissingTitle(t *testing.T) {
	mockStore := &MockStorage{}
	handler := newTestHandler(mockStore)

	reqBody := `{"category": "math", "poster": {"email": "poster@example.com"}}`
	req := httptest.NewRequest(http.MethodPost, "/add-course", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.CreateCourseHandler(w, req)

	require.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}

func TestDeleteCourseHandlerMissingIsZeroCount(t *testing.T) {
	mockStore := &MockStorage{deleteResult: models.DeleteResult{DeletedCount: 0}}
	handler := newTestHandler(mockStore)

	req := httptest.NewRequest(http.MethodDelete, "/course/"+testCourseID, nil)
	req = testutils.WithChiURLParams(req, map[string]string{"id": testCourseID})
	w := httptest.NewRecorder()

	handler.DeleteCourseHandler(w, req)

	res := w.Result()
	defer res.Body.Close()

	var result models.DeleteResult
	require.NoError(t, json.NewDecoder(res.Body).Decode(&result))
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, int64(0), result.DeletedCount)
}

func TestUpdateCourseHandlerUpsert(t *testing.T) {
	mockStore := &MockStorage{updateResult: models.UpdateResult{UpsertedID: testCourseID}}
	handler := newTestHandler(mockStore)

	reqBody := `{"course_title": "Replaced", "category": "math", "poster": {"email": "poster@example.com"}}`
	req := httptest.NewRequest(http.MethodPut, "/update-course/"+testCourseID, strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	req = testutils.WithChiURLParams(req, map[string]string{"id": testCourseID})
	w := httptest.NewRecorder()

	handler.UpdateCourseHandler(w, req)

	res := w.Result()
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)

	require.Equal(t, http.StatusOK, res.StatusCode)
	// Обновление всегда идет с включенным upsert
	require.True(t, mockStore.lastUpsert)
	require.Contains(t, string(body), "upsertedId")
}

func TestUpdateCourseHandlerMalformedID(t *testing.T) {
	mockStore := &MockStorage{}
	handler := newTestHandler(mockStore)

	req := httptest.NewRequest(http.MethodPut, "/update-course/xyz", strings.NewReader(`{}`))
	req = testutils.WithChiURLParams(req, map[string]string{"id": "xyz"})
	w := httptest.NewRecorder()

	handler.UpdateCourseHandler(w, req)

	require.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}
