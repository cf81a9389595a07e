package blog

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"lexsite-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(repo Repository) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(newTestService(repo), validation.New(), logger)

	r := chi.NewRouter()
	r.Get("/api/blog/", h.List)
	r.Get("/api/blog/{slug}", h.GetBySlug)
	r.Post("/api/blog/", h.Create)
	r.Delete("/api/blog/{id}", h.Delete)
	return r
}

func TestListResponseShape(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)
	for _, title := range []string{"First Post", "Second Post", "Third Post"} {
		if _, err := svc.Create(context.Background(), validCreateRequest(title)); err != nil {
			t.Fatalf("seed create error: %v", err)
		}
	}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/blog/?page=1&limit=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Page       int64  `json:"page"`
		Total      int64  `json:"total"`
		TotalPages int64  `json:"totalPages"`
		Data       []Blog `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Page != 1 {
		t.Fatalf("expected page 1, got %d", body.Page)
	}
	if body.Total != 3 {
		t.Fatalf("expected total 3, got %d", body.Total)
	}
	if body.TotalPages != 2 {
		t.Fatalf("expected totalPages 2, got %d", body.TotalPages)
	}
	if body.Data == nil {
		t.Fatalf("expected data array, got null")
	}
}

func TestListRejectsInvalidPage(t *testing.T) {
	router := newTestRouter(newFakeRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/blog/?page=zero", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateConflictResponse(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)
	if _, err := svc.Create(context.Background(), validCreateRequest("Hello World")); err != nil {
		t.Fatalf("seed create error: %v", err)
	}
	router := newTestRouter(repo)

	payload := `{"title":"Hello World","category":"news","author":"Jane","content":"long enough content","lawWays":"civil"}`
	req := httptest.NewRequest(http.MethodPost, "/api/blog/", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Message != "Blog already exists" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestCreateRejectsUnknownFields(t *testing.T) {
	router := newTestRouter(newFakeRepository())

	payload := `{"title":"Hello World","category":"news","author":"Jane","content":"long enough content","lawWays":"civil","slug":"forced-slug"}`
	req := httptest.NewRequest(http.MethodPost, "/api/blog/", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown field, got %d", rec.Code)
	}
}

func TestGetBySlugNotFound(t *testing.T) {
	router := newTestRouter(newFakeRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/blog/no-such-post", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Message != "Blog not found" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}

func TestDeleteBlog(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)
	created, err := svc.Create(context.Background(), validCreateRequest("Hello World"))
	if err != nil {
		t.Fatalf("seed create error: %v", err)
	}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodDelete, "/api/blog/"+created.ID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if _, ok := repo.items[created.ID]; ok {
		t.Fatalf("expected blog removed from store")
	}
}
