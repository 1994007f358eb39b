package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"milesahead/internal/domain"
)

const marathonColumns = `id, title, registration_start, registration_end, marathon_start,
		location, distance, description, image_url, creator_email, registration_count,
		created_at, updated_at`

type marathonRepository struct {
	DB *sql.DB
}

func NewMarathonRepository(db *sql.DB) domain.MarathonRepository {
	return &marathonRepository{
		DB: db,
	}
}

func (r *marathonRepository) Create(ctx context.Context, m *domain.Marathon) error {
	query := `
		INSERT INTO marathons (title, registration_start, registration_end, marathon_start,
			location, distance, description, image_url, creator_email, registration_count,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		m.Title, m.RegistrationStart, m.RegistrationEnd, m.MarathonStart,
		m.Location, m.Distance, m.Description, m.ImageURL, m.CreatorEmail,
		m.RegistrationCount, m.CreatedAt, m.UpdatedAt,
	).Scan(&m.ID)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMarathon(row rowScanner) (*domain.Marathon, error) {
	m := &domain.Marathon{}
	err := row.Scan(
		&m.ID, &m.Title, &m.RegistrationStart, &m.RegistrationEnd, &m.MarathonStart,
		&m.Location, &m.Distance, &m.Description, &m.ImageURL, &m.CreatorEmail,
		&m.RegistrationCount, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *marathonRepository) GetByID(ctx context.Context, id string) (*domain.Marathon, error) {
	query := `
		SELECT ` + marathonColumns + `
		FROM marathons
		WHERE id = $1
	`
	m, err := scanMarathon(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *marathonRepository) List(ctx context.Context, sort domain.MarathonSort, limit, offset int) ([]*domain.Marathon, error) {
	orderBy := "id"
	switch sort {
	case domain.SortByCreatedAt:
		orderBy = "created_at DESC"
	case domain.SortByRegistrationStart:
		orderBy = "registration_start DESC"
	}
	query := fmt.Sprintf(`
		SELECT `+marathonColumns+`
		FROM marathons
		ORDER BY %s
		LIMIT $1 OFFSET $2
	`, orderBy)
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMarathons(rows)
}

func (r *marathonRepository) ListUpcoming(ctx context.Context, after time.Time, limit int) ([]*domain.Marathon, error) {
	query := `
		SELECT ` + marathonColumns + `
		FROM marathons
		WHERE marathon_start >= $1
		ORDER BY marathon_start ASC
		LIMIT $2
	`
	rows, err := r.DB.QueryContext(ctx, query, after, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMarathons(rows)
}

func (r *marathonRepository) ListByCreator(ctx context.Context, creatorEmail string) ([]*domain.Marathon, error) {
	query := `
		SELECT ` + marathonColumns + `
		FROM marathons
		WHERE creator_email = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, creatorEmail)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMarathons(rows)
}

func collectMarathons(rows *sql.Rows) ([]*domain.Marathon, error) {
	marathons := make([]*domain.Marathon, 0)
	for rows.Next() {
		m, err := scanMarathon(rows)
		if err != nil {
			return nil, err
		}
		marathons = append(marathons, m)
	}
	return marathons, rows.Err()
}

func (r *marathonRepository) Update(ctx context.Context, id string, upd domain.MarathonUpdate) (*domain.Marathon, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []any{}
	n := 1
	add := func(column string, value any) {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, n))
		args = append(args, value)
		n++
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.RegistrationStart != nil {
		add("registration_start", *upd.RegistrationStart)
	}
	if upd.RegistrationEnd != nil {
		add("registration_end", *upd.RegistrationEnd)
	}
	if upd.MarathonStart != nil {
		add("marathon_start", *upd.MarathonStart)
	}
	if upd.Location != nil {
		add("location", *upd.Location)
	}
	if upd.Distance != nil {
		add("distance", *upd.Distance)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.ImageURL != nil {
		add("image_url", *upd.ImageURL)
	}
	if n == 1 {
		// No fields to update; just fetch current row.
		m, err := r.GetByID(ctx, id)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return m, err
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE marathons SET %s
		WHERE id = $%d
		RETURNING `+marathonColumns+`
	`, strings.Join(setClauses, ", "), n)
	m, err := scanMarathon(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

func (r *marathonRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM marathons WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return false, err
	}
	rows, _ := result.RowsAffected()
	return rows > 0, nil
}

// EstimatedCount reads the planner's row estimate instead of a full COUNT(*).
// The value can lag behind the table by one autovacuum cycle, which is fine
// for the advisory page-count display it feeds.
func (r *marathonRepository) EstimatedCount(ctx context.Context) (int64, error) {
	query := `SELECT reltuples::bigint FROM pg_class WHERE relname = 'marathons'`
	var count int64
	if err := r.DB.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, err
	}
	if count < 0 {
		// reltuples is -1 for never-analyzed tables.
		count = 0
	}
	return count, nil
}

func (r *marathonRepository) IncrementRegistrationCount(ctx context.Context, id string) error {
	query := `
		UPDATE marathons
		SET registration_count = registration_count + 1, updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *marathonRepository) DecrementRegistrationCount(ctx context.Context, id string) error {
	query := `
		UPDATE marathons
		SET registration_count = GREATEST(registration_count - 1, 0), updated_at = NOW()
		WHERE id = $1
	`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
