package contact

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"lexsite-backend/internal/validation"
)

type fakeRepository struct {
	items     []Message
	lastLimit int64
	lastSkip  int64
}

func (f *fakeRepository) Create(_ context.Context, item Message) error {
	f.items = append(f.items, item)
	return nil
}

func (f *fakeRepository) List(_ context.Context, limit, skip int64) ([]Message, error) {
	f.lastLimit = limit
	f.lastSkip = skip

	if skip >= int64(len(f.items)) {
		return []Message{}, nil
	}
	out := f.items[skip:]
	if int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepository) Count(_ context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func newTestHandler(repo Repository) *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(NewService(repo, time.UTC), validation.New(), logger)
}

func TestCreateMessage(t *testing.T) {
	repo := &fakeRepository{}
	h := newTestHandler(repo)

	payload := `{"name":"  Alice  ","email":"alice@example.com","phone":"0612345678","message":"hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact/", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Message string  `json:"message"`
		Data    Message `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Message != "Message Sent" {
		t.Fatalf("unexpected message %q", body.Message)
	}
	if body.Data.Name != "Alice" {
		t.Fatalf("expected trimmed name, got %q", body.Data.Name)
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected 1 stored message, got %d", len(repo.items))
	}
}

func TestCreateValidatesPhoneLength(t *testing.T) {
	h := newTestHandler(&fakeRepository{})

	cases := []struct {
		name  string
		phone string
	}{
		{"too short", "12345678"},
		{"too long", "06123456789"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := `{"name":"Alice","email":"alice@example.com","phone":"` + tc.phone + `","message":"hello"}`
			req := httptest.NewRequest(http.MethodPost, "/api/contact/", strings.NewReader(payload))
			rec := httptest.NewRecorder()
			h.Create(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestListPaginationShape(t *testing.T) {
	repo := &fakeRepository{}
	for i := 0; i < 25; i++ {
		repo.items = append(repo.items, Message{ID: "m", Name: "Alice"})
	}
	h := newTestHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/contact/?page=2", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Page       int64     `json:"page"`
		Limit      int64     `json:"limit"`
		Total      int64     `json:"total"`
		TotalPages int64     `json:"totalPages"`
		Data       []Message `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Page != 2 || body.Limit != 10 {
		t.Fatalf("expected page 2 limit 10, got page %d limit %d", body.Page, body.Limit)
	}
	if body.Total != 25 || body.TotalPages != 3 {
		t.Fatalf("expected total 25 totalPages 3, got total %d totalPages %d", body.Total, body.TotalPages)
	}
	if len(body.Data) != 10 {
		t.Fatalf("expected 10 items on page 2, got %d", len(body.Data))
	}
	if repo.lastSkip != 10 {
		t.Fatalf("expected skip 10 for page 2, got %d", repo.lastSkip)
	}
}

func TestListDefaultsAndEmpty(t *testing.T) {
	repo := &fakeRepository{}
	h := newTestHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/contact/", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Page       int64     `json:"page"`
		Limit      int64     `json:"limit"`
		TotalPages int64     `json:"totalPages"`
		Data       []Message `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Page != 1 || body.Limit != 10 {
		t.Fatalf("expected default page 1 limit 10, got page %d limit %d", body.Page, body.Limit)
	}
	if body.TotalPages != 0 {
		t.Fatalf("expected 0 total pages, got %d", body.TotalPages)
	}
	if body.Data == nil {
		t.Fatalf("expected data array, got null")
	}
}
