package contact

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"lexsite-backend/internal/httpx"
	"lexsite-backend/internal/middleware"
	"lexsite-backend/internal/transport"
	"lexsite-backend/internal/validation"
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

type createResponse struct {
	Message string  `json:"message"`
	Data    Message `json:"data"`
}

type listResponse struct {
	Page       int64     `json:"page"`
	Limit      int64     `json:"limit"`
	Total      int64     `json:"total"`
	TotalPages int64     `json:"totalPages"`
	Data       []Message `json:"data"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("contact create: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}

	if err := h.val.Struct(req); err != nil {
		log.Warn("contact create: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	item, err := h.service.Create(ctx, req)
	if err != nil {
		log.Error("contact create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("contact create: ok", slog.String("contact_id", item.ID))
	transport.WriteJSON(w, http.StatusCreated, createResponse{
		Message: "Message Sent",
		Data:    item,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	page, limit, err := httpx.ParsePageLimit(r.URL.Query(), 10, 100)
	if err != nil {
		log.Warn("contact list: invalid query", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	items, total, err := h.service.List(ctx, page, limit)
	if err != nil {
		log.Error("contact list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	log.Info("contact list: ok", slog.Int("count", len(items)), slog.Int64("total", total))
	transport.WriteJSON(w, http.StatusOK, listResponse{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: httpx.TotalPages(total, limit),
		Data:       items,
	})
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
