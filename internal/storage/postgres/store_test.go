package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/dietdash/internal/accounts"
	"github.com/dmitrijs2005/dietdash/internal/dashboard"
	"github.com/dmitrijs2005/dietdash/internal/storage/postgres/migrations"
)

var (
	_ accounts.Repository = (*Store)(nil)
	_ dashboard.Reader    = (*Store)(nil)
)

func newStoreWithMock(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStore(db), mock
}

func TestRunMigrations(t *testing.T) {
	s, _ := newStoreWithMock(t)

	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	var gotDir string
	gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
		gotDir = dir
		return nil
	}
	require.NoError(t, s.RunMigrations(context.Background()))
	assert.Equal(t, ".", gotDir)

	gooseUpContext = func(context.Context, *sql.DB, string, ...goose.OptionsFunc) error {
		return errors.New("dirty database")
	}
	err := s.RunMigrations(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrate: dirty database")
}

func TestMigrations_Embedded(t *testing.T) {
	body, err := migrations.Migrations.ReadFile("00001_init.sql")
	require.NoError(t, err)
	assert.Contains(t, string(body), "-- +goose Up")
	assert.Contains(t, string(body), "CREATE UNIQUE INDEX IF NOT EXISTS accounts_email_key ON accounts (email)")
}

func TestClose(t *testing.T) {
	s, mock := newStoreWithMock(t)
	mock.ExpectClose()
	require.NoError(t, s.Close(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
