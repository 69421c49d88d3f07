package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ayush/org-chart-api/internal/apperror"
	"github.com/ayush/org-chart-api/internal/models"
)

// DepartmentColumns are the sortable columns of the departments table.
var DepartmentColumns = []string{"id", "name"}

// Departments is the postgres repository for the departments table.
type Departments struct {
	db *sql.DB
}

func NewDepartments(db *sql.DB) *Departments {
	return &Departments{db: db}
}

func (s *Departments) List(ctx context.Context, p ListParams) ([]models.Department, error) {
	query := fmt.Sprintf(
		`SELECT id, name FROM departments ORDER BY %s %s LIMIT $1 OFFSET $2`,
		p.SortField, p.SortOrder,
	)
	rows, err := s.db.QueryContext(ctx, query, p.Limit, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	departments := []models.Department{}
	for rows.Next() {
		var d models.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func (s *Departments) Get(ctx context.Context, id int64) (*models.Department, error) {
	d := &models.Department{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name FROM departments WHERE id = $1`, id,
	).Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.New(apperror.CodeNotFound, "resource not found")
		}
		return nil, fmt.Errorf("get department: %w", err)
	}
	return d, nil
}

func (s *Departments) Create(ctx context.Context, name string) (*models.Department, error) {
	d := &models.Department{Name: name}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO departments (name) VALUES ($1) RETURNING id`, name,
	).Scan(&d.ID)
	if err != nil {
		return nil, fmt.Errorf("create department: %w", err)
	}
	return d, nil
}

func (s *Departments) Update(ctx context.Context, id int64, patch models.UpdateDepartmentRequest) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if patch.Name == nil {
		return nil
	}
	if _, err := s.db.ExecContext(ctx,
		`UPDATE departments SET name = $1 WHERE id = $2`, *patch.Name, id,
	); err != nil {
		return fmt.Errorf("update department: %w", err)
	}
	return nil
}

func (s *Departments) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM departments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	return nil
}

// Exists is the foreign-key pre-check used before person writes.
func (s *Departments) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM departments WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("department exists: %w", err)
	}
	return exists, nil
}
