package auth

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

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Handler struct {
	repo     Repository
	manager  *Manager
	val      *validation.Validator
	secure   bool
	location *time.Location
	log      *slog.Logger
}

func NewHandler(repo Repository, manager *Manager, val *validation.Validator, secure bool, location *time.Location, log *slog.Logger) *Handler {
	return &Handler{
		repo:     repo,
		manager:  manager,
		val:      val,
		secure:   secure,
		location: location,
		log:      log,
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req RegisterRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("auth register: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := h.val.Struct(req); err != nil {
		log.Warn("auth register: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.repo.FindByEmail(ctx, req.Email); err == nil {
		log.Warn("auth register: already exists", slog.String("email", req.Email))
		transport.WriteError(w, http.StatusBadRequest, "Admin already exists", nil)
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		log.Error("auth register: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		log.Error("auth register: hash error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "password error", nil)
		return
	}

	now := time.Now().In(h.location)
	admin := Admin{
		ID:           primitive.NewObjectID().Hex(),
		Email:        req.Email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.repo.Create(ctx, admin); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Warn("auth register: already exists", slog.String("email", req.Email))
			transport.WriteError(w, http.StatusBadRequest, "Admin already exists", nil)
			return
		}
		log.Error("auth register: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	if err := h.issueSession(ctx, w, admin.ID); err != nil {
		log.Error("auth register: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}

	log.Info("auth register: ok", slog.String("admin_id", admin.ID))
	transport.WriteJSON(w, http.StatusCreated, map[string]string{"message": "Admin registered successfully"})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req LoginRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("auth login: invalid json")
		transport.WriteError(w, http.StatusBadRequest, "invalid json", nil)
		return
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := h.val.Struct(req); err != nil {
		log.Warn("auth login: validation error")
		transport.WriteError(w, http.StatusBadRequest, "validation error", httpx.ValidationDetails(h.val.ValidationErrors(err)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	admin, err := h.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Same response as a password mismatch so account existence
			// cannot be probed through this endpoint.
			log.Warn("auth login: unknown email")
			transport.WriteError(w, http.StatusBadRequest, "Invalid credentials", nil)
			return
		}
		log.Error("auth login: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "database error", nil)
		return
	}

	if err := ComparePassword(admin.PasswordHash, req.Password); err != nil {
		log.Warn("auth login: password mismatch", slog.String("admin_id", admin.ID))
		transport.WriteError(w, http.StatusBadRequest, "Invalid credentials", nil)
		return
	}

	if err := h.issueSession(ctx, w, admin.ID); err != nil {
		log.Error("auth login: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}

	log.Info("auth login: ok", slog.String("admin_id", admin.ID))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"message": "Admin logged in successfully"})
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	cookie, err := r.Cookie(RefreshCookieName)
	if err != nil || cookie.Value == "" {
		log.Warn("auth refresh: missing refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	claims, err := h.manager.ParseRefresh(cookie.Value)
	if err != nil {
		log.Warn("auth refresh: invalid refresh token")
		transport.WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	admin, err := h.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		log.Warn("auth refresh: admin not found")
		transport.WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	// The stored value is the single point of revocation: rotating it on the
	// admin record invalidates every refresh token issued before.
	if admin.RefreshToken != cookie.Value {
		log.Warn("auth refresh: token superseded", slog.String("admin_id", admin.ID))
		transport.WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	access, err := h.manager.NewAccessToken(admin.ID)
	if err != nil {
		log.Error("auth refresh: token error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "token error", nil)
		return
	}

	// The refresh token itself is not rotated here.
	setAccessCookie(w, access, h.manager, h.secure)
	log.Info("auth refresh: ok", slog.String("admin_id", admin.ID))
	transport.WriteJSON(w, http.StatusOK, map[string]string{"message": "Token refreshed successfully"})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	clearSessionCookies(w, h.secure)
	log.Info("auth logout: ok")
	transport.WriteJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

func (h *Handler) issueSession(ctx context.Context, w http.ResponseWriter, adminID string) error {
	access, err := h.manager.NewAccessToken(adminID)
	if err != nil {
		return err
	}
	refresh, err := h.manager.NewRefreshToken(adminID)
	if err != nil {
		return err
	}
	if err := h.repo.SetRefreshToken(ctx, adminID, refresh); err != nil {
		return err
	}
	setSessionCookies(w, access, refresh, h.manager, h.secure)
	return nil
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
