package carousel

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"lexsite-backend/internal/cache"
	"lexsite-backend/internal/httpx"
	"lexsite-backend/internal/middleware"
	"lexsite-backend/internal/transport"
	"lexsite-backend/internal/validation"

	"github.com/go-chi/chi/v5"
)

const publicCacheKey = "carousel:public"

type Handler struct {
	service  *Service
	val      *validation.Validator
	cache    cache.Cache
	cacheTTL time.Duration
	log      *slog.Logger
}

func NewHandler(service *Service, val *validation.Validator, store cache.Cache, cacheTTL time.Duration, log *slog.Logger) *Handler {
	return &Handler{
		service:  service,
		val:      val,
		cache:    store,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// PublicList serves the 4 newest items regardless of query parameters, with a
// short cache in front since the homepage hits this on every load.
func (h *Handler) PublicList(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	if cached, ok, err := h.cache.Get(r.Context(), publicCacheKey); err == nil && ok {
		log.Info("carousel list: cache hit")
		transport.WriteRaw(w, http.StatusOK, cached)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	items, err := h.service.ListPublic(ctx)
	if err != nil {
		log.Error("carousel list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	if payload, err := json.Marshal(items); err == nil {
		_ = h.cache.Set(r.Context(), publicCacheKey, payload, h.cacheTTL)
	}

	log.Info("carousel list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req UpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("carousel create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("carousel create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		log.Error("carousel create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	_ = h.cache.Delete(r.Context(), publicCacheKey)
	log.Info("carousel create: ok", slog.String("item_id", item.ID))
	transport.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("carousel update: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	var req UpsertRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("carousel update: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("carousel update: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("carousel update: not found", slog.String("item_id", id))
			transport.WriteError(w, http.StatusNotFound, "carousel not found", nil)
			return
		}
		log.Error("carousel update: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	_ = h.cache.Delete(r.Context(), publicCacheKey)
	log.Info("carousel update: ok", slog.String("item_id", id))
	transport.WriteJSON(w, http.StatusOK, item)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		log.Warn("carousel delete: missing id")
		transport.WriteError(w, http.StatusBadRequest, "missing id", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.service.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("carousel delete: not found", slog.String("item_id", id))
			transport.WriteError(w, http.StatusNotFound, "carousel not found", nil)
			return
		}
		log.Error("carousel delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	_ = h.cache.Delete(r.Context(), publicCacheKey)
	log.Info("carousel delete: ok", slog.String("item_id", id))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"message": "Carousel item deleted successfully"})
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
