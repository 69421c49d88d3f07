package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ayush/org-chart-api/internal/apperror"
	"github.com/ayush/org-chart-api/internal/models"
)

// PersonColumns are the sortable columns of the persons table.
var PersonColumns = []string{
	"id", "first_name", "last_name", "job_id", "department_id", "manager_id", "hire_date",
}

const hireDateLayout = "2006-01-02"

// personInfoSelect joins a person with its job title, department name and
// manager's full name for the PersonInfo read projection.
const personInfoSelect = `
	SELECT p.id, p.first_name, p.last_name,
	       p.job_id, j.title,
	       p.department_id, d.name,
	       p.manager_id, m.first_name || ' ' || m.last_name,
	       p.hire_date
	FROM persons p
	JOIN jobs j ON j.id = p.job_id
	JOIN departments d ON d.id = p.department_id
	LEFT JOIN persons m ON m.id = p.manager_id`

// Persons is the postgres repository for the persons table. It delegates
// the job and department foreign-key pre-checks to those repositories.
type Persons struct {
	db          *sql.DB
	jobs        *Jobs
	departments *Departments
}

func NewPersons(db *sql.DB) *Persons {
	return &Persons{db: db, jobs: NewJobs(db), departments: NewDepartments(db)}
}

func (s *Persons) List(ctx context.Context, p ListParams) ([]models.PersonInfo, error) {
	query := fmt.Sprintf(
		personInfoSelect+` ORDER BY p.%s %s LIMIT $1 OFFSET $2`,
		p.SortField, p.SortOrder,
	)
	rows, err := s.db.QueryContext(ctx, query, p.Limit, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}
	return collectPersonInfo(rows)
}

func (s *Persons) Get(ctx context.Context, id int64) (*models.PersonInfo, error) {
	row := s.db.QueryRowContext(ctx, personInfoSelect+` WHERE p.id = $1`, id)
	info, err := scanPersonInfo(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.New(apperror.CodeNotFound, "resource not found")
		}
		return nil, fmt.Errorf("get person: %w", err)
	}
	return info, nil
}

func (s *Persons) Create(ctx context.Context, req models.CreatePersonRequest) (*models.Person, error) {
	if err := s.checkRefs(ctx, &req.JobID, &req.DepartmentID, req.ManagerID); err != nil {
		return nil, err
	}
	hireDate, err := parseHireDate(req.HireDate)
	if err != nil {
		return nil, err
	}

	person := &models.Person{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		JobID:        req.JobID,
		DepartmentID: req.DepartmentID,
		ManagerID:    req.ManagerID,
		HireDate:     req.HireDate,
	}
	err = s.db.QueryRowContext(ctx,
		`INSERT INTO persons (first_name, last_name, job_id, department_id, manager_id, hire_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		req.FirstName, req.LastName, req.JobID, req.DepartmentID, req.ManagerID, hireDate,
	).Scan(&person.ID)
	if err != nil {
		return nil, fmt.Errorf("create person: %w", err)
	}
	return person, nil
}

// Update applies the present fields of patch, re-checking every foreign
// key that appears in it.
func (s *Persons) Update(ctx context.Context, id int64, patch models.UpdatePersonRequest) error {
	ok, err := s.exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.New(apperror.CodeNotFound, "resource not found")
	}
	if err := s.checkRefs(ctx, patch.JobID, patch.DepartmentID, patch.ManagerID); err != nil {
		return err
	}

	set := []string{}
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.FirstName != nil {
		add("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		add("last_name", *patch.LastName)
	}
	if patch.JobID != nil {
		add("job_id", *patch.JobID)
	}
	if patch.DepartmentID != nil {
		add("department_id", *patch.DepartmentID)
	}
	if patch.ManagerID != nil {
		add("manager_id", *patch.ManagerID)
	}
	if patch.HireDate != nil {
		hireDate, err := parseHireDate(patch.HireDate)
		if err != nil {
			return err
		}
		add("hire_date", hireDate)
	}
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE persons SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update person: %w", err)
	}
	return nil
}

func (s *Persons) Delete(ctx context.Context, id int64) error {
	ok, err := s.exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperror.New(apperror.CodeNotFound, "resource not found")
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM persons WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	return nil
}

func (s *Persons) ListByDepartment(ctx context.Context, departmentID int64) ([]models.PersonInfo, error) {
	rows, err := s.db.QueryContext(ctx, personInfoSelect+` WHERE p.department_id = $1 ORDER BY p.id`, departmentID)
	if err != nil {
		return nil, fmt.Errorf("list persons by department: %w", err)
	}
	return collectPersonInfo(rows)
}

func (s *Persons) ListByJob(ctx context.Context, jobID int64) ([]models.PersonInfo, error) {
	rows, err := s.db.QueryContext(ctx, personInfoSelect+` WHERE p.job_id = $1 ORDER BY p.id`, jobID)
	if err != nil {
		return nil, fmt.Errorf("list persons by job: %w", err)
	}
	return collectPersonInfo(rows)
}

// ListReports returns the direct reports of a manager.
func (s *Persons) ListReports(ctx context.Context, managerID int64) ([]models.PersonInfo, error) {
	rows, err := s.db.QueryContext(ctx, personInfoSelect+` WHERE p.manager_id = $1 ORDER BY p.id`, managerID)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return collectPersonInfo(rows)
}

// checkRefs verifies every non-nil reference before a write so a bad id
// fails fast as a foreign-key error instead of a constraint violation.
func (s *Persons) checkRefs(ctx context.Context, jobID, departmentID, managerID *int64) error {
	if jobID != nil {
		ok, err := s.jobs.Exists(ctx, *jobID)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.Newf(apperror.CodeForeignKey, "job with id %d does not exist", *jobID)
		}
	}
	if departmentID != nil {
		ok, err := s.departments.Exists(ctx, *departmentID)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.Newf(apperror.CodeForeignKey, "department with id %d does not exist", *departmentID)
		}
	}
	if managerID != nil {
		ok, err := s.exists(ctx, *managerID)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.Newf(apperror.CodeForeignKey, "manager with id %d does not exist", *managerID)
		}
	}
	return nil
}

func (s *Persons) exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM persons WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("person exists: %w", err)
	}
	return exists, nil
}

func parseHireDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := time.Parse(hireDateLayout, *raw)
	if err != nil {
		return nil, apperror.New(apperror.CodeValidation, "invalid hire_date")
	}
	return &t, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPersonInfo(row rowScanner) (*models.PersonInfo, error) {
	var (
		info        models.PersonInfo
		managerID   sql.NullInt64
		managerName sql.NullString
		hireDate    sql.NullTime
	)
	err := row.Scan(
		&info.ID, &info.FirstName, &info.LastName,
		&info.JobID, &info.JobTitle,
		&info.DepartmentID, &info.DepartmentName,
		&managerID, &managerName,
		&hireDate,
	)
	if err != nil {
		return nil, err
	}
	if managerID.Valid {
		info.ManagerID = &managerID.Int64
	}
	if managerName.Valid {
		info.ManagerFullName = &managerName.String
	}
	if hireDate.Valid {
		formatted := hireDate.Time.Format(hireDateLayout)
		info.HireDate = &formatted
	}
	return &info, nil
}

func collectPersonInfo(rows *sql.Rows) ([]models.PersonInfo, error) {
	defer rows.Close()

	infos := []models.PersonInfo{}
	for rows.Next() {
		info, err := scanPersonInfo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan person: %w", err)
		}
		infos = append(infos, *info)
	}
	return infos, rows.Err()
}
