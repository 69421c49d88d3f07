package store

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayush/org-chart-api/internal/apperror"
)

func TestDepartmentsList_AppliesSortAndBounds(t *testing.T) {
	db, mock := newMockDB(t)
	departments := NewDepartments(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM departments ORDER BY name DESC LIMIT $1 OFFSET $2`)).
		WithArgs(10, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(int64(2), "Sales").
			AddRow(int64(1), "Engineering"))

	got, err := departments.List(context.Background(), ListParams{
		Offset:    5,
		Limit:     10,
		SortField: "name",
		SortOrder: "DESC",
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Sales", got[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentsList_EmptyResultIsSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	departments := NewDepartments(db)

	mock.ExpectQuery(`SELECT id, name FROM departments`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	got, err := departments.List(context.Background(), ListParams{Limit: DefaultLimit, SortField: "id", SortOrder: "ASC"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDepartmentsGet_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	departments := NewDepartments(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM departments WHERE id = $1`)).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := departments.Get(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	assert.Equal(t, "resource not found", err.Error())
}

func TestDepartmentsDelete_NotFoundLeavesStoreUnchanged(t *testing.T) {
	db, mock := newMockDB(t)
	departments := NewDepartments(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM departments WHERE id = $1`)).
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	err := departments.Delete(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	// the DELETE statement must never run
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDepartmentsExists(t *testing.T) {
	db, mock := newMockDB(t)
	departments := NewDepartments(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM departments WHERE id = $1)`)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT EXISTS (SELECT 1 FROM departments WHERE id = $1)`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	ok, err := departments.Exists(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = departments.Exists(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDepartmentsDelete(t *testing.T) {
	db, mock := newMockDB(t)
	departments := NewDepartments(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name FROM departments WHERE id = $1`)).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(int64(2), "Sales"))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM departments WHERE id = $1`)).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, departments.Delete(context.Background(), 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}
