package orgchart

import (
	"net/http"

	"github.com/ayush/org-chart-api/internal/httpx"
	"github.com/ayush/org-chart-api/internal/models"
	"github.com/ayush/org-chart-api/internal/store"
	"github.com/ayush/org-chart-api/internal/validate"
)

// ListUsers returns usernames only; password hashes never leave the store
// row scan.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	params := store.ParseListParams(r.URL.Query(), store.UserColumns, "id")
	users, err := h.users.List(r.Context(), params)
	if err != nil {
		h.log.Error("list users failed", "error", err)
		httpx.AppError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, users)
}

// UpdateUser applies a partial update to a user, re-hashing the password
// when one is present.
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req models.UpdateUserRequest
	raw, err := decodeInput(r, &req)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Update("user", raw); err != nil {
		httpx.AppError(w, err)
		return
	}

	if req.Password != nil {
		hash, err := h.hasher.Hash(*req.Password)
		if err != nil {
			h.log.Error("update user: hash failed", "error", err)
			httpx.Error(w, http.StatusInternalServerError, "database error")
			return
		}
		req.Password = &hash
	}

	if err := h.users.Update(r.Context(), id, req); err != nil {
		httpx.AppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
