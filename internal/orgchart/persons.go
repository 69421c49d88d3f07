package orgchart

import (
	"net/http"

	"github.com/ayush/org-chart-api/internal/httpx"
	"github.com/ayush/org-chart-api/internal/models"
	"github.com/ayush/org-chart-api/internal/store"
	"github.com/ayush/org-chart-api/internal/validate"
)

func (h *Handler) ListPersons(w http.ResponseWriter, r *http.Request) {
	params := store.ParseListParams(r.URL.Query(), store.PersonColumns, "id")
	persons, err := h.persons.List(r.Context(), params)
	if err != nil {
		h.log.Error("list persons failed", "error", err)
		httpx.AppError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, persons)
}

func (h *Handler) GetPerson(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	person, err := h.persons.Get(r.Context(), id)
	if err != nil {
		httpx.AppError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, person)
}

func (h *Handler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePersonRequest
	raw, err := decodeInput(r, &req)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Create("person", raw); err != nil {
		httpx.AppError(w, err)
		return
	}

	person, err := h.persons.Create(r.Context(), req)
	if err != nil {
		h.log.Error("create person failed", "error", err)
		httpx.AppError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, person)
}

func (h *Handler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req models.UpdatePersonRequest
	raw, err := decodeInput(r, &req)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Update("person", raw); err != nil {
		httpx.AppError(w, err)
		return
	}

	if err := h.persons.Update(r.Context(), id, req); err != nil {
		httpx.AppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.persons.Delete(r.Context(), id); err != nil {
		httpx.AppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListPersonReports returns the direct reports of a manager, confirming
// the manager exists first.
func (h *Handler) ListPersonReports(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if _, err := h.persons.Get(r.Context(), id); err != nil {
		httpx.AppError(w, err)
		return
	}
	reports, err := h.persons.ListReports(r.Context(), id)
	if err != nil {
		h.log.Error("list reports failed", "error", err)
		httpx.AppError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, reports)
}
