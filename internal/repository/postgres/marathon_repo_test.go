package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"milesahead/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var marathonCols = []string{
	"id", "title", "registration_start", "registration_end", "marathon_start",
	"location", "distance", "description", "image_url", "creator_email",
	"registration_count", "created_at", "updated_at",
}

func addMarathonRow(rows *sqlmock.Rows, id, title string, count int, t time.Time) *sqlmock.Rows {
	return rows.AddRow(id, title, t, t.Add(24*time.Hour), t.Add(48*time.Hour),
		"Valencia", "42k", "flat and fast", "https://img.example/1.png",
		"creator@example.com", count, t, t)
}

func TestMarathonRepository_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		marathon *domain.Marathon
		mock     func(mock sqlmock.Sqlmock)
		wantID   string
		wantErr  bool
	}{
		{
			name: "success",
			marathon: domain.NewMarathon("City Marathon", now, now.Add(24*time.Hour), now.Add(48*time.Hour),
				"Valencia", "42k", "flat and fast", "https://img.example/1.png", "creator@example.com", now),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO marathons`).
					WithArgs("City Marathon", now, now.Add(24*time.Hour), now.Add(48*time.Hour),
						"Valencia", "42k", "flat and fast", "https://img.example/1.png",
						"creator@example.com", 0, now, now).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("mar-uuid-1"))
			},
			wantID:  "mar-uuid-1",
			wantErr: false,
		},
		{
			name: "db error",
			marathon: domain.NewMarathon("City Marathon", now, now, now,
				"Valencia", "42k", "", "", "creator@example.com", now),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO marathons`).
					WillReturnError(sql.ErrConnDone)
			},
			wantID:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewMarathonRepository(db)
			err = repo.Create(ctx, tt.marathon)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.marathon.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarathonRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, title, registration_start`).
			WithArgs("mar-1").
			WillReturnRows(addMarathonRow(sqlmock.NewRows(marathonCols), "mar-1", "City Marathon", 3, now))

		repo := NewMarathonRepository(db)
		m, err := repo.GetByID(ctx, "mar-1")
		require.NoError(t, err)
		require.Equal(t, "mar-1", m.ID)
		require.Equal(t, "City Marathon", m.Title)
		require.Equal(t, 3, m.RegistrationCount)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, title, registration_start`).
			WithArgs("mar-missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewMarathonRepository(db)
		_, err = repo.GetByID(ctx, "mar-missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestMarathonRepository_List(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		sort      domain.MarathonSort
		wantOrder string
	}{
		{name: "insertion order", sort: domain.SortNone, wantOrder: `ORDER BY id`},
		{name: "by creation time", sort: domain.SortByCreatedAt, wantOrder: `ORDER BY created_at DESC`},
		{name: "by registration window", sort: domain.SortByRegistrationStart, wantOrder: `ORDER BY registration_start DESC`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			rows := sqlmock.NewRows(marathonCols)
			addMarathonRow(rows, "mar-1", "A", 0, now)
			addMarathonRow(rows, "mar-2", "B", 1, now)
			mock.ExpectQuery(tt.wantOrder).
				WithArgs(10, 10).
				WillReturnRows(rows)

			repo := NewMarathonRepository(db)
			got, err := repo.List(ctx, tt.sort, 10, 10)
			require.NoError(t, err)
			require.Len(t, got, 2)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMarathonRepository_IncrementRegistrationCount(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE marathons\s+SET registration_count = registration_count \+ 1`).
			WithArgs("mar-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewMarathonRepository(db)
		require.NoError(t, repo.IncrementRegistrationCount(ctx, "mar-1"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing marathon", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE marathons`).
			WithArgs("mar-missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewMarathonRepository(db)
		require.ErrorIs(t, repo.IncrementRegistrationCount(ctx, "mar-missing"), domain.ErrNotFound)
	})
}

func TestMarathonRepository_DecrementRegistrationCount(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`SET registration_count = GREATEST\(registration_count - 1, 0\)`).
		WithArgs("mar-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewMarathonRepository(db)
	require.NoError(t, repo.DecrementRegistrationCount(ctx, "mar-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarathonRepository_EstimatedCount(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		reltuples int64
		want      int64
	}{
		{name: "analyzed table", reltuples: 42, want: 42},
		{name: "never analyzed", reltuples: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectQuery(`SELECT reltuples::bigint FROM pg_class`).
				WillReturnRows(sqlmock.NewRows([]string{"reltuples"}).AddRow(tt.reltuples))

			repo := NewMarathonRepository(db)
			got, err := repo.EstimatedCount(ctx)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMarathonRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		rowsDeleted int64
		want        bool
	}{
		{name: "deleted", rowsDeleted: 1, want: true},
		{name: "missing id is a no-op", rowsDeleted: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec(`DELETE FROM marathons WHERE id = \$1`).
				WithArgs("mar-1").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsDeleted))

			repo := NewMarathonRepository(db)
			got, err := repo.Delete(ctx, "mar-1")
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMarathonRepository_Update(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	title := "Night Run"

	t.Run("partial update", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE marathons SET updated_at = NOW\(\), title = \$1`).
			WithArgs(title, "mar-1").
			WillReturnRows(addMarathonRow(sqlmock.NewRows(marathonCols), "mar-1", title, 0, now))

		repo := NewMarathonRepository(db)
		m, err := repo.Update(ctx, "mar-1", domain.MarathonUpdate{Title: &title})
		require.NoError(t, err)
		require.NotNil(t, m)
		require.Equal(t, title, m.Title)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing id returns nil", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`UPDATE marathons SET`).
			WithArgs(title, "mar-missing").
			WillReturnError(sql.ErrNoRows)

		repo := NewMarathonRepository(db)
		m, err := repo.Update(ctx, "mar-missing", domain.MarathonUpdate{Title: &title})
		require.NoError(t, err)
		require.Nil(t, m)
	})
}
