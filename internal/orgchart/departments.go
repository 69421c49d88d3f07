package orgchart

import (
	"net/http"

	"github.com/ayush/org-chart-api/internal/httpx"
	"github.com/ayush/org-chart-api/internal/models"
	"github.com/ayush/org-chart-api/internal/store"
	"github.com/ayush/org-chart-api/internal/validate"
)

func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	params := store.ParseListParams(r.URL.Query(), store.DepartmentColumns, "id")
	departments, err := h.departments.List(r.Context(), params)
	if err != nil {
		h.log.Error("list departments failed", "error", err)
		httpx.AppError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, departments)
}

func (h *Handler) GetDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	department, err := h.departments.Get(r.Context(), id)
	if err != nil {
		httpx.AppError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, department)
}

func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDepartmentRequest
	raw, err := decodeInput(r, &req)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Create("department", raw); err != nil {
		httpx.AppError(w, err)
		return
	}

	department, err := h.departments.Create(r.Context(), req.Name)
	if err != nil {
		h.log.Error("create department failed", "error", err)
		httpx.AppError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, department)
}

func (h *Handler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req models.UpdateDepartmentRequest
	raw, err := decodeInput(r, &req)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Update("department", raw); err != nil {
		httpx.AppError(w, err)
		return
	}

	if err := h.departments.Update(r.Context(), id, req); err != nil {
		httpx.AppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.departments.Delete(r.Context(), id); err != nil {
		httpx.AppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListDepartmentPersons(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if _, err := h.departments.Get(r.Context(), id); err != nil {
		httpx.AppError(w, err)
		return
	}
	persons, err := h.persons.ListByDepartment(r.Context(), id)
	if err != nil {
		h.log.Error("list department persons failed", "error", err)
		httpx.AppError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, persons)
}
