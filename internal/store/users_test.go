package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayush/org-chart-api/internal/apperror"
	"github.com/ayush/org-chart-api/internal/models"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestUsersCreate(t *testing.T) {
	db, mock := newMockDB(t)
	users := NewUsers(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id`)).
		WithArgs("alice", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	u, err := users.Create(context.Background(), "alice", "hash")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersCreate_UniqueViolation(t *testing.T) {
	db, mock := newMockDB(t)
	users := NewUsers(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs("alice", "hash").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := users.Create(context.Background(), "alice", "hash")
	require.Error(t, err)
	assert.Equal(t, apperror.CodeConflict, apperror.GetCode(err))
	assert.Equal(t, "username is taken", err.Error())
}

func TestUsersGetByUsername_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	users := NewUsers(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password FROM users WHERE username = $1`)).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := users.GetByUsername(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	assert.Equal(t, "user not found", err.Error())
}

func TestUsersUpdate_RewritesOnlyPresentFields(t *testing.T) {
	db, mock := newMockDB(t)
	users := NewUsers(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password FROM users WHERE id = $1`)).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password"}).AddRow(int64(4), "bob", "old-hash"))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET password = $1 WHERE id = $2`)).
		WithArgs("new-hash", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	newHash := "new-hash"
	err := users.Update(context.Background(), 4, models.UpdateUserRequest{Password: &newHash})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsersUpdate_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	users := NewUsers(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, username, password FROM users WHERE id = $1`)).
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	name := "new-name"
	err := users.Update(context.Background(), 99, models.UpdateUserRequest{Username: &name})
	require.Error(t, err)
	assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	// no UPDATE must have run
	assert.NoError(t, mock.ExpectationsWereMet())
}
