package db

import (
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dtnitsch/horizons-parser/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err, "failed to create sqlmock")
	t.Cleanup(func() { _ = sqlDB.Close() })

	return &DB{DB: sqlDB, path: "mock"}, mock
}

func TestCreateRun_ExecError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO runs")).
		WillReturnError(errors.New("disk full"))

	_, err := db.CreateRun("jpl_raw", "", "out.csv", 1)
	assert.ErrorContains(t, err, "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertBody_ExecError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO bodies")).
		WillReturnError(errors.New("constraint failed"))

	err := db.InsertBody(1, models.NewBody("MB:399"), "")
	assert.ErrorContains(t, err, "MB:399")
}

func TestListRuns_ScanError(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"run_id"}).AddRow(1)
	mock.ExpectQuery(regexp.QuoteMeta("FROM runs")).WillReturnRows(rows)

	_, err := db.ListRuns(0)
	assert.Error(t, err, "short row should fail to scan")
}

func TestUpdateRunStats_ExecError(t *testing.T) {
	db, mock := setupMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE runs")).
		WillReturnError(errors.New("locked"))

	assert.Error(t, db.UpdateRunStats(5, 2, 1))
}
