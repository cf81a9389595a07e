package comments

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lexsite-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

func newTestRouter(repo Repository) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(NewService(repo, time.UTC), validation.New(), logger)

	r := chi.NewRouter()
	r.Get("/api/comment/{blogId}", h.ListByBlog)
	r.Post("/api/comment/{blogId}", h.Create)
	r.Delete("/api/comment/delete/{commentId}", h.Delete)
	return r
}

func TestCreateComment(t *testing.T) {
	repo := &fakeRepository{}
	router := newTestRouter(repo)

	payload := `{"name":"Alice","content":"nice post"}`
	req := httptest.NewRequest(http.MethodPost, "/api/comment/blog-1", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var item Comment
	if err := json.NewDecoder(rec.Body).Decode(&item); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if item.BlogID != "blog-1" {
		t.Fatalf("expected blogId from path, got %q", item.BlogID)
	}
	if item.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestCreateCommentRejectsBadParentID(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	payload := `{"name":"Alice","content":"nice post","parentId":"not-an-objectid"}`
	req := httptest.NewRequest(http.MethodPost, "/api/comment/blog-1", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListByBlogReturnsThreads(t *testing.T) {
	repo := &fakeRepository{items: []Comment{
		{ID: "a", BlogID: "blog-1", Name: "top"},
		{ID: "a1", BlogID: "blog-1", Name: "reply", ParentID: strPtr("a")},
		{ID: "x", BlogID: "blog-2", Name: "other blog"},
	}}
	router := newTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/comment/blog-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var threads []Thread
	if err := json.NewDecoder(rec.Body).Decode(&threads); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(threads) != 1 {
		t.Fatalf("expected 1 thread, got %d", len(threads))
	}
	if len(threads[0].Replies) != 1 || threads[0].Replies[0].ID != "a1" {
		t.Fatalf("expected reply a1, got %+v", threads[0].Replies)
	}
}

func TestDeleteCommentNotFound(t *testing.T) {
	router := newTestRouter(&fakeRepository{})

	req := httptest.NewRequest(http.MethodDelete, "/api/comment/delete/missing", nil)
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
	if body.Message != "Comment not found" {
		t.Fatalf("unexpected message %q", body.Message)
	}
}
