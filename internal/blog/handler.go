package blog

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"lexsite-backend/internal/httpx"
	"lexsite-backend/internal/middleware"
	"lexsite-backend/internal/transport"
	"lexsite-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	service *Service
	val     *validation.Validator
	log     *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		val:     val,
		log:     log,
	}
}

type listResponse struct {
	Page       int64  `json:"page"`
	Total      int64  `json:"total"`
	TotalPages int64  `json:"totalPages"`
	Data       []Blog `json:"data"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("blog create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("blog create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		if errors.Is(err, ErrSlugExists) {
			log.Warn("blog create: slug exists")
			transport.WriteError(w, http.StatusBadRequest, "Blog already exists", nil)
			return
		}
		log.Error("blog create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("blog create: ok", slog.String("blog_id", item.ID), slog.String("slug", item.Slug))
	transport.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	page, limit, err := httpx.ParsePageLimit(r.URL.Query(), 6, 100)
	if err != nil {
		log.Warn("blog list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	filter := ListFilter{
		Category: strings.TrimSpace(r.URL.Query().Get("category")),
		Search:   strings.TrimSpace(r.URL.Query().Get("search")),
	}
	if rawTags := strings.TrimSpace(r.URL.Query().Get("tags")); rawTags != "" {
		filter.Tags = strings.Split(rawTags, ",")
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.service.List(ctx, filter, page, limit)
	if err != nil {
		log.Error("blog list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("blog list: ok", slog.Int("count", len(items)), slog.Int64("total", total))
	transport.WriteJSON(w, http.StatusOK, listResponse{
		Page:       page,
		Total:      total,
		TotalPages: httpx.TotalPages(total, limit),
		Data:       items,
	})
}

func (h *Handler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		log.Warn("blog get: missing slug")
		transport.WriteError(w, http.StatusBadRequest, "missing slug", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("blog get: not found", slog.String("slug", slug))
			transport.WriteError(w, http.StatusNotFound, "Blog not found", nil)
			return
		}
		log.Error("blog get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("blog get: ok", slog.String("slug", slug))
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("blog update: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req UpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("blog update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("blog update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("blog update: not found", slog.String("blog_id", id))
			transport.WriteError(w, http.StatusNotFound, "Blog not found", nil)
			return
		}
		log.Error("blog update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("blog update: ok", slog.String("blog_id", id))
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("blog delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("blog delete: not found", slog.String("blog_id", id))
			transport.WriteError(w, http.StatusNotFound, "Blog not found", nil)
			return
		}
		log.Error("blog delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("blog delete: ok", slog.String("blog_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"message": "Blog deleted successfully"})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}
