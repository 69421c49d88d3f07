package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ayush/org-chart-api/internal/apperror"
	"github.com/ayush/org-chart-api/internal/models"
)

// JobColumns are the sortable columns of the jobs table.
var JobColumns = []string{"id", "title"}

// Jobs is the postgres repository for the jobs table.
type Jobs struct {
	db *sql.DB
}

func NewJobs(db *sql.DB) *Jobs {
	return &Jobs{db: db}
}

func (s *Jobs) List(ctx context.Context, p ListParams) ([]models.Job, error) {
	query := fmt.Sprintf(
		`SELECT id, title FROM jobs ORDER BY %s %s LIMIT $1 OFFSET $2`,
		p.SortField, p.SortOrder,
	)
	rows, err := s.db.QueryContext(ctx, query, p.Limit, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []models.Job{}
	for rows.Next() {
		var j models.Job
		if err := rows.Scan(&j.ID, &j.Title); err != nil {
			return nil, fmt.Errorf("scan job: %w", err)
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (s *Jobs) Get(ctx context.Context, id int64) (*models.Job, error) {
	j := &models.Job{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title FROM jobs WHERE id = $1`, id,
	).Scan(&j.ID, &j.Title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.New(apperror.CodeNotFound, "resource not found")
		}
		return nil, fmt.Errorf("get job: %w", err)
	}
	return j, nil
}

func (s *Jobs) Create(ctx context.Context, title string) (*models.Job, error) {
	j := &models.Job{Title: title}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO jobs (title) VALUES ($1) RETURNING id`, title,
	).Scan(&j.ID)
	if err != nil {
		return nil, fmt.Errorf("create job: %w", err)
	}
	return j, nil
}

func (s *Jobs) Update(ctx context.Context, id int64, patch models.UpdateJobRequest) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if patch.Title == nil {
		return nil
	}
	if _, err := s.db.ExecContext(ctx,
		`UPDATE jobs SET title = $1 WHERE id = $2`, *patch.Title, id,
	); err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	return nil
}

func (s *Jobs) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	return nil
}

// Exists is the foreign-key pre-check used before person writes.
func (s *Jobs) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM jobs WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("job exists: %w", err)
	}
	return exists, nil
}
