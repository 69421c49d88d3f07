package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ayush/org-chart-api/internal/apperror"
	"github.com/ayush/org-chart-api/internal/models"
)

// UserColumns are the sortable columns of the users table.
var UserColumns = []string{"id", "username"}

// Users is the postgres repository for the users table.
type Users struct {
	db *sql.DB
}

func NewUsers(db *sql.DB) *Users {
	return &Users{db: db}
}

func (s *Users) Create(ctx context.Context, username, passwordHash string) (*models.User, error) {
	u := &models.User{Username: username, Password: passwordHash}
	err := s.db.QueryRowContext(ctx,
		`INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id`,
		username, passwordHash,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperror.New(apperror.CodeConflict, "username is taken")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *Users) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE username = $1`, username,
	).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.New(apperror.CodeNotFound, "user not found")
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

func (s *Users) Get(ctx context.Context, id int64) (*models.User, error) {
	u := &models.User{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, username, password FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Username, &u.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.New(apperror.CodeNotFound, "resource not found")
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *Users) List(ctx context.Context, p ListParams) ([]models.User, error) {
	query := fmt.Sprintf(
		`SELECT id, username FROM users ORDER BY %s %s LIMIT $1 OFFSET $2`,
		p.SortField, p.SortOrder,
	)
	rows, err := s.db.QueryContext(ctx, query, p.Limit, p.Offset)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Username); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Update applies the present fields of patch. The password is expected to
// be hashed already by the caller.
func (s *Users) Update(ctx context.Context, id int64, patch models.UpdateUserRequest) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if patch.Username == nil && patch.Password == nil {
		return nil
	}

	set := []string{}
	args := []any{}
	if patch.Username != nil {
		args = append(args, *patch.Username)
		set = append(set, fmt.Sprintf("username = $%d", len(args)))
	}
	if patch.Password != nil {
		args = append(args, *patch.Password)
		set = append(set, fmt.Sprintf("password = $%d", len(args)))
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))
	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return apperror.New(apperror.CodeConflict, "username is taken")
		}
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a postgres unique-constraint
// violation (SQLSTATE 23505), the backstop for racy existence checks.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
