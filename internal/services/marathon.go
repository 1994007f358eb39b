package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"milesahead/internal/domain"
)

type marathonService struct {
	marathonRepo domain.MarathonRepository
}

// NewMarathonService creates a MarathonService with the given repository.
func NewMarathonService(marathonRepo domain.MarathonRepository) domain.MarathonService {
	return &marathonService{marathonRepo: marathonRepo}
}

func (s *marathonService) Create(ctx context.Context, m *domain.Marathon) (*domain.Marathon, error) {
	m.Title = strings.TrimSpace(m.Title)
	if m.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if m.CreatorEmail == "" {
		return nil, fmt.Errorf("%w: creator email is required", domain.ErrInvalidInput)
	}
	if m.RegistrationEnd.Before(m.RegistrationStart) {
		return nil, fmt.Errorf("%w: registration window ends before it starts", domain.ErrInvalidInput)
	}

	now := time.Now()
	m.RegistrationCount = 0
	m.CreatedAt = now
	m.UpdatedAt = now
	if err := s.marathonRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("create marathon: %w", err)
	}
	return m, nil
}

func (s *marathonService) GetByID(ctx context.Context, id string) (*domain.Marathon, error) {
	m, err := s.marathonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get marathon: %w", err)
	}
	return m, nil
}

func (s *marathonService) List(ctx context.Context, params domain.ListMarathonsParams) ([]*domain.Marathon, error) {
	limit := domain.HomeListingLimit
	offset := 0
	sort := domain.SortNone
	if params.All {
		limit = params.Pagination.PageSize
		offset = params.Pagination.Offset()
		sort = params.Sort
	}
	marathons, err := s.marathonRepo.List(ctx, sort, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list marathons: %w", err)
	}
	return marathons, nil
}

func (s *marathonService) ListUpcoming(ctx context.Context) ([]*domain.Marathon, error) {
	marathons, err := s.marathonRepo.ListUpcoming(ctx, time.Now(), domain.HomeListingLimit)
	if err != nil {
		return nil, fmt.Errorf("list upcoming marathons: %w", err)
	}
	return marathons, nil
}

func (s *marathonService) ListByCreator(ctx context.Context, creatorEmail string) ([]*domain.Marathon, error) {
	marathons, err := s.marathonRepo.ListByCreator(ctx, creatorEmail)
	if err != nil {
		return nil, fmt.Errorf("list marathons by creator: %w", err)
	}
	return marathons, nil
}

func (s *marathonService) Update(ctx context.Context, id, callerEmail string, upd domain.MarathonUpdate) (*domain.Marathon, bool, error) {
	existing, err := s.marathonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Missing ids are a no-op, mirroring delete.
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get marathon: %w", err)
	}
	if existing.CreatorEmail != callerEmail {
		return nil, false, domain.ErrForbidden
	}

	updated, err := s.marathonRepo.Update(ctx, id, upd)
	if err != nil {
		return nil, false, fmt.Errorf("update marathon: %w", err)
	}
	if updated == nil {
		// Deleted between the ownership check and the update.
		return nil, false, nil
	}
	return updated, true, nil
}

func (s *marathonService) Delete(ctx context.Context, id, callerEmail string) (bool, error) {
	existing, err := s.marathonRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get marathon: %w", err)
	}
	if existing.CreatorEmail != callerEmail {
		return false, domain.ErrForbidden
	}

	deleted, err := s.marathonRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete marathon: %w", err)
	}
	return deleted, nil
}

func (s *marathonService) EstimatedCount(ctx context.Context) (int64, error) {
	count, err := s.marathonRepo.EstimatedCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("estimated marathon count: %w", err)
	}
	return count, nil
}
