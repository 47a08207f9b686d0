package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/vet-clinic/internal/domain/appointment"
)

// Exercises the conditional statements against the Postgres dialect.
func newPostgresMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return db, mock
}

func TestPostgresCancelIsSingleConditionalUpdate(t *testing.T) {
	db, mock := newPostgresMock(t)
	repo := NewAppointmentGormRepository(db)

	mock.ExpectExec(`UPDATE "appointments" SET .*"status"=.*WHERE .*id = .* AND status IN .* AND pet_id IN \(SELECT .* FROM "pets" WHERE owner_id = .*`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	changed, err := repo.TransitionForOwner(
		context.Background(), 10, 3,
		domain.StatusCancelled,
		domain.AllowedFrom(domain.ActorOwner, domain.StatusCancelled),
	)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDeletePetReportsNoRows(t *testing.T) {
	db, mock := newPostgresMock(t)
	repo := NewPetGormRepository(db)

	mock.ExpectExec(`UPDATE "pets" SET "deleted_at"=.*WHERE .*id = .* AND owner_id = .*"pets"."deleted_at" IS NULL`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := repo.DeleteOwned(context.Background(), 5, 3)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.NoError(t, mock.ExpectationsWereMet())
}
