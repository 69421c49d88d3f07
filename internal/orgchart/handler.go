// Package orgchart implements the HTTP handlers for departments, jobs,
// persons and user updates.
package orgchart

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ayush/org-chart-api/internal/httpx"
	"github.com/ayush/org-chart-api/internal/models"
	"github.com/ayush/org-chart-api/internal/store"
)

// DepartmentStore defines the department persistence the handlers need.
type DepartmentStore interface {
	List(ctx context.Context, p store.ListParams) ([]models.Department, error)
	Get(ctx context.Context, id int64) (*models.Department, error)
	Create(ctx context.Context, name string) (*models.Department, error)
	Update(ctx context.Context, id int64, patch models.UpdateDepartmentRequest) error
	Delete(ctx context.Context, id int64) error
}

// JobStore defines the job persistence the handlers need.
type JobStore interface {
	List(ctx context.Context, p store.ListParams) ([]models.Job, error)
	Get(ctx context.Context, id int64) (*models.Job, error)
	Create(ctx context.Context, title string) (*models.Job, error)
	Update(ctx context.Context, id int64, patch models.UpdateJobRequest) error
	Delete(ctx context.Context, id int64) error
}

// PersonStore defines the person persistence the handlers need.
type PersonStore interface {
	List(ctx context.Context, p store.ListParams) ([]models.PersonInfo, error)
	Get(ctx context.Context, id int64) (*models.PersonInfo, error)
	Create(ctx context.Context, req models.CreatePersonRequest) (*models.Person, error)
	Update(ctx context.Context, id int64, patch models.UpdatePersonRequest) error
	Delete(ctx context.Context, id int64) error
	ListByDepartment(ctx context.Context, departmentID int64) ([]models.PersonInfo, error)
	ListByJob(ctx context.Context, jobID int64) ([]models.PersonInfo, error)
	ListReports(ctx context.Context, managerID int64) ([]models.PersonInfo, error)
}

// UserStore defines the user persistence the handlers need.
type UserStore interface {
	List(ctx context.Context, p store.ListParams) ([]models.User, error)
	Update(ctx context.Context, id int64, patch models.UpdateUserRequest) error
}

// PasswordHasher re-hashes passwords on user updates.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// Handler holds the entity CRUD handlers.
type Handler struct {
	departments DepartmentStore
	jobs        JobStore
	persons     PersonStore
	users       UserStore
	hasher      PasswordHasher
	log         *slog.Logger
}

func NewHandler(departments DepartmentStore, jobs JobStore, persons PersonStore, users UserStore, hasher PasswordHasher, log *slog.Logger) *Handler {
	return &Handler{
		departments: departments,
		jobs:        jobs,
		persons:     persons,
		users:       users,
		hasher:      hasher,
		log:         log,
	}
}

// Routes registers every entity route on r. The caller decides which
// middleware guards them.
func (h *Handler) Routes(r chi.Router) {
	r.Route("/departments", func(r chi.Router) {
		r.Get("/", h.ListDepartments)
		r.Post("/", h.CreateDepartment)
		r.Get("/{id}", h.GetDepartment)
		r.Put("/{id}", h.UpdateDepartment)
		r.Delete("/{id}", h.DeleteDepartment)
		r.Get("/{id}/persons", h.ListDepartmentPersons)
	})
	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", h.ListJobs)
		r.Post("/", h.CreateJob)
		r.Get("/{id}", h.GetJob)
		r.Put("/{id}", h.UpdateJob)
		r.Delete("/{id}", h.DeleteJob)
		r.Get("/{id}/persons", h.ListJobPersons)
	})
	r.Route("/persons", func(r chi.Router) {
		r.Get("/", h.ListPersons)
		r.Post("/", h.CreatePerson)
		r.Get("/{id}", h.GetPerson)
		r.Put("/{id}", h.UpdatePerson)
		r.Delete("/{id}", h.DeletePerson)
		r.Get("/{id}/reports", h.ListPersonReports)
	})
	r.Route("/users", func(r chi.Router) {
		r.Get("/", h.ListUsers)
		r.Put("/{id}", h.UpdateUser)
	})
}

// idParam parses the {id} path parameter. The response is already written
// when ok is false.
func idParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.Error(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// decodeInput reads the body once and decodes it both as an untyped map
// (for the field validator) and into the typed destination. Nothing past
// this point touches unvalidated input.
func decodeInput(r *http.Request, dst any) (map[string]any, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}

	raw := map[string]any{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(body, dst); err != nil {
			return nil, err
		}
	}
	return raw, nil
}
