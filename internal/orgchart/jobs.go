package orgchart

import (
	"net/http"

	"github.com/ayush/org-chart-api/internal/httpx"
	"github.com/ayush/org-chart-api/internal/models"
	"github.com/ayush/org-chart-api/internal/store"
	"github.com/ayush/org-chart-api/internal/validate"
)

func (h *Handler) ListJobs(w http.ResponseWriter, r *http.Request) {
	params := store.ParseListParams(r.URL.Query(), store.JobColumns, "id")
	jobs, err := h.jobs.List(r.Context(), params)
	if err != nil {
		h.log.Error("list jobs failed", "error", err)
		httpx.AppError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, jobs)
}

func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	job, err := h.jobs.Get(r.Context(), id)
	if err != nil {
		httpx.AppError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, job)
}

func (h *Handler) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req models.CreateJobRequest
	raw, err := decodeInput(r, &req)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Create("job", raw); err != nil {
		httpx.AppError(w, err)
		return
	}

	job, err := h.jobs.Create(r.Context(), req.Title)
	if err != nil {
		h.log.Error("create job failed", "error", err)
		httpx.AppError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, job)
}

func (h *Handler) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	var req models.UpdateJobRequest
	raw, err := decodeInput(r, &req)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Update("job", raw); err != nil {
		httpx.AppError(w, err)
		return
	}

	if err := h.jobs.Update(r.Context(), id, req); err != nil {
		httpx.AppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if err := h.jobs.Delete(r.Context(), id); err != nil {
		httpx.AppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListJobPersons(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}
	if _, err := h.jobs.Get(r.Context(), id); err != nil {
		httpx.AppError(w, err)
		return
	}
	persons, err := h.persons.ListByJob(r.Context(), id)
	if err != nil {
		h.log.Error("list job persons failed", "error", err)
		httpx.AppError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, persons)
}
