package postgres

import (
	"context"
	"testing"
	"time"

	"milesahead/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestSubscriberRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO subscribers`).
			WithArgs("b@x.com", "Ben", now).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("sub-uuid-1"))

		repo := NewSubscriberRepository(db)
		sub := domain.NewSubscriber("b@x.com", "Ben", now)
		require.NoError(t, repo.Create(ctx, sub))
		require.Equal(t, "sub-uuid-1", sub.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO subscribers`).
			WillReturnError(&pq.Error{Code: "23505", Constraint: "subscribers_email_key"})

		repo := NewSubscriberRepository(db)
		err = repo.Create(ctx, domain.NewSubscriber("b@x.com", "Ben", now))
		require.ErrorIs(t, err, domain.ErrDuplicateSubscriber)
	})
}
