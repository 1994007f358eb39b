package postgres

import (
	"context"
	"database/sql"

	"milesahead/internal/domain"
)

type subscriberRepository struct {
	DB *sql.DB
}

func NewSubscriberRepository(db *sql.DB) domain.SubscriberRepository {
	return &subscriberRepository{DB: db}
}

// Create inserts the subscriber. The unique index on email surfaces
// duplicates as domain.ErrDuplicateSubscriber.
func (r *subscriberRepository) Create(ctx context.Context, s *domain.Subscriber) error {
	query := `
		INSERT INTO subscribers (email, name, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, s.Email, s.Name, s.CreatedAt).Scan(&s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSubscriber
		}
		return err
	}
	return nil
}
