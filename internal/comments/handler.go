package comments

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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	blogID := strings.TrimSpace(chi.URLParam(r, "blogId"))
	if blogID == "" {
		log.Warn("comment create: missing blog id")
		transport.WriteError(w, http.StatusBadRequest, "missing blog id", nil)
		return
	}

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("comment create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("comment create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, blogID, req)
	if err != nil {
		log.Error("comment create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("comment create: ok", slog.String("comment_id", item.ID), slog.String("blog_id", blogID))
	transport.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) ListByBlog(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	blogID := strings.TrimSpace(chi.URLParam(r, "blogId"))
	if blogID == "" {
		log.Warn("comment list: missing blog id")
		transport.WriteError(w, http.StatusBadRequest, "missing blog id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	threads, err := h.service.ListByBlog(ctx, blogID)
	if err != nil {
		log.Error("comment list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("comment list: ok", slog.String("blog_id", blogID), slog.Int("count", len(threads)))
	transport.WriteJSON(w, http.StatusOK, threads)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	commentID := strings.TrimSpace(chi.URLParam(r, "commentId"))
	if commentID == "" {
		log.Warn("comment delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, commentID); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("comment delete: not found", slog.String("comment_id", commentID))
			transport.WriteError(w, http.StatusNotFound, "Comment not found", nil)
			return
		}
		log.Error("comment delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("comment delete: ok", slog.String("comment_id", commentID))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"message": "Comment deleted successfully"})
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
