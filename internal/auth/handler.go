package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/ayush/org-chart-api/internal/apperror"
	"github.com/ayush/org-chart-api/internal/httpx"
	"github.com/ayush/org-chart-api/internal/models"
	"github.com/ayush/org-chart-api/internal/validate"
)

// UserStore defines the user persistence the auth flow needs.
type UserStore interface {
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// Handler holds the register/login HTTP handlers.
type Handler struct {
	users  UserStore
	hasher *Hasher
	issuer *TokenIssuer
	log    *slog.Logger
}

func NewHandler(users UserStore, hasher *Hasher, issuer *TokenIssuer, log *slog.Logger) *Handler {
	return &Handler{users: users, hasher: hasher, issuer: issuer, log: log}
}

// Register creates a new user and responds with a freshly issued token.
//
// The username check below and the insert are not transactional; two
// concurrent registrations can both pass the check. The unique constraint
// on users.username is the backstop and surfaces as the same conflict.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	existing, err := h.users.GetByUsername(r.Context(), req.Username)
	if err != nil && apperror.GetCode(err) != apperror.CodeNotFound {
		h.log.Error("register: username lookup failed", "error", err)
		httpx.AppError(w, err)
		return
	}
	if existing != nil {
		httpx.Error(w, http.StatusBadRequest, "username is taken")
		return
	}

	hash, err := h.hasher.Hash(req.Password)
	if err != nil {
		h.log.Error("register: hash failed", "error", err)
		httpx.Error(w, http.StatusInternalServerError, "database error")
		return
	}

	user, err := h.users.Create(r.Context(), req.Username, hash)
	if err != nil {
		if apperror.GetCode(err) == apperror.CodeConflict {
			httpx.Error(w, http.StatusBadRequest, "username is taken")
			return
		}
		h.log.Error("register: insert failed", "error", err)
		httpx.AppError(w, err)
		return
	}

	token, err := h.issuer.Issue(user.ID, user.Username)
	if err != nil {
		h.log.Error("register: token issue failed", "error", err)
		httpx.Error(w, http.StatusInternalServerError, "database error")
		return
	}

	httpx.JSON(w, http.StatusCreated, models.AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	})
}

// Login verifies credentials and responds with a token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeCredentials(w, r)
	if !ok {
		return
	}

	user, err := h.users.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if apperror.GetCode(err) == apperror.CodeNotFound {
			httpx.Error(w, http.StatusBadRequest, "user not found")
			return
		}
		h.log.Error("login: username lookup failed", "error", err)
		httpx.AppError(w, err)
		return
	}

	if !h.hasher.Verify(req.Password, user.Password) {
		httpx.Error(w, http.StatusUnauthorized, "username and password do not match")
		return
	}

	token, err := h.issuer.Issue(user.ID, user.Username)
	if err != nil {
		h.log.Error("login: token issue failed", "error", err)
		httpx.Error(w, http.StatusInternalServerError, "database error")
		return
	}

	httpx.JSON(w, http.StatusOK, models.AuthResponse{
		ID:       user.ID,
		Username: user.Username,
		Token:    token,
	})
}

// decodeCredentials decodes and validates the shared register/login body.
// Any missing or empty credential reports the single "missing fields"
// message; the response is already written when ok is false.
func (h *Handler) decodeCredentials(w http.ResponseWriter, r *http.Request) (models.AuthRequest, bool) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		httpx.Error(w, http.StatusBadRequest, "missing fields")
		return models.AuthRequest{}, false
	}

	req := models.AuthRequest{}
	if s, ok := raw["username"].(string); ok {
		req.Username = s
	}
	if s, ok := raw["password"].(string); ok {
		req.Password = s
	}
	if req.Username == "" || req.Password == "" {
		httpx.Error(w, http.StatusBadRequest, "missing fields")
		return models.AuthRequest{}, false
	}

	// with both credentials present, the only failures the rules can
	// still raise are forbidden or unknown keys; name those
	if err := validate.Create("user", raw); err != nil {
		httpx.AppError(w, err)
		return models.AuthRequest{}, false
	}
	return req, true
}
