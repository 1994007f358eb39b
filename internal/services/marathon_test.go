package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"milesahead/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMarathonRepo implements domain.MarathonRepository for service tests.
// It is shared by the marathon and registration service tests.
type fakeMarathonRepo struct {
	marathons map[string]*domain.Marathon
	err       error

	incrementCalls  []string
	decrementCalls  []string
	incrementErr    error
	lastListSort    domain.MarathonSort
	lastListLimit   int
	lastListOffset  int
	estimatedCount  int64
	updateResult    *domain.Marathon
	deleteResult    bool
}

func (f *fakeMarathonRepo) Create(ctx context.Context, m *domain.Marathon) error {
	if f.err != nil {
		return f.err
	}
	m.ID = "mar-new"
	return nil
}

func (f *fakeMarathonRepo) GetByID(ctx context.Context, id string) (*domain.Marathon, error) {
	if f.err != nil {
		return nil, f.err
	}
	m, ok := f.marathons[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return m, nil
}

func (f *fakeMarathonRepo) List(ctx context.Context, sort domain.MarathonSort, limit, offset int) ([]*domain.Marathon, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastListSort = sort
	f.lastListLimit = limit
	f.lastListOffset = offset
	return []*domain.Marathon{}, nil
}

func (f *fakeMarathonRepo) ListUpcoming(ctx context.Context, after time.Time, limit int) ([]*domain.Marathon, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastListLimit = limit
	return []*domain.Marathon{}, nil
}

func (f *fakeMarathonRepo) ListByCreator(ctx context.Context, creatorEmail string) ([]*domain.Marathon, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*domain.Marathon
	for _, m := range f.marathons {
		if m.CreatorEmail == creatorEmail {
			result = append(result, m)
		}
	}
	return result, nil
}

func (f *fakeMarathonRepo) Update(ctx context.Context, id string, upd domain.MarathonUpdate) (*domain.Marathon, error) {
	return f.updateResult, f.err
}

func (f *fakeMarathonRepo) Delete(ctx context.Context, id string) (bool, error) {
	return f.deleteResult, f.err
}

func (f *fakeMarathonRepo) EstimatedCount(ctx context.Context) (int64, error) {
	return f.estimatedCount, f.err
}

func (f *fakeMarathonRepo) IncrementRegistrationCount(ctx context.Context, id string) error {
	if f.incrementErr != nil {
		return f.incrementErr
	}
	f.incrementCalls = append(f.incrementCalls, id)
	if m, ok := f.marathons[id]; ok {
		m.RegistrationCount++
	}
	return nil
}

func (f *fakeMarathonRepo) DecrementRegistrationCount(ctx context.Context, id string) error {
	f.decrementCalls = append(f.decrementCalls, id)
	if m, ok := f.marathons[id]; ok && m.RegistrationCount > 0 {
		m.RegistrationCount--
	}
	return nil
}

func testMarathon(id, creator string) *domain.Marathon {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	m := domain.NewMarathon("City Marathon", now, now.Add(24*time.Hour), now.Add(48*time.Hour),
		"Valencia", "42k", "flat and fast", "", creator, now)
	m.ID = id
	return m
}

func TestMarathonService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		marathon *domain.Marathon
		wantErr  error
	}{
		{
			name:     "success",
			marathon: testMarathon("", "c@x.com"),
			wantErr:  nil,
		},
		{
			name: "missing title",
			marathon: func() *domain.Marathon {
				m := testMarathon("", "c@x.com")
				m.Title = "   "
				return m
			}(),
			wantErr: domain.ErrInvalidInput,
		},
		{
			name: "inverted registration window",
			marathon: func() *domain.Marathon {
				m := testMarathon("", "c@x.com")
				m.RegistrationEnd = m.RegistrationStart.Add(-time.Hour)
				return m
			}(),
			wantErr: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeMarathonRepo{}
			svc := NewMarathonService(repo)
			got, err := svc.Create(ctx, tt.marathon)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "mar-new", got.ID)
			assert.Equal(t, 0, got.RegistrationCount)
		})
	}
}

func TestMarathonService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("limited mode returns first six", func(t *testing.T) {
		repo := &fakeMarathonRepo{}
		svc := NewMarathonService(repo)
		_, err := svc.List(ctx, domain.ListMarathonsParams{All: false})
		require.NoError(t, err)
		assert.Equal(t, domain.HomeListingLimit, repo.lastListLimit)
		assert.Equal(t, 0, repo.lastListOffset)
		assert.Equal(t, domain.SortNone, repo.lastListSort)
	})

	t.Run("paginated mode skips page times size", func(t *testing.T) {
		repo := &fakeMarathonRepo{}
		svc := NewMarathonService(repo)
		_, err := svc.List(ctx, domain.ListMarathonsParams{
			All:        true,
			Sort:       domain.SortByCreatedAt,
			Pagination: domain.PaginationParams{Page: 1, PageSize: 10},
		})
		require.NoError(t, err)
		assert.Equal(t, 10, repo.lastListLimit)
		assert.Equal(t, 10, repo.lastListOffset)
		assert.Equal(t, domain.SortByCreatedAt, repo.lastListSort)
	})
}

func TestMarathonService_Update(t *testing.T) {
	ctx := context.Background()
	title := "Night Run"

	t.Run("owner can update", func(t *testing.T) {
		repo := &fakeMarathonRepo{
			marathons:    map[string]*domain.Marathon{"mar-1": testMarathon("mar-1", "c@x.com")},
			updateResult: testMarathon("mar-1", "c@x.com"),
		}
		svc := NewMarathonService(repo)
		updated, ok, err := svc.Update(ctx, "mar-1", "c@x.com", domain.MarathonUpdate{Title: &title})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NotNil(t, updated)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		repo := &fakeMarathonRepo{
			marathons: map[string]*domain.Marathon{"mar-1": testMarathon("mar-1", "c@x.com")},
		}
		svc := NewMarathonService(repo)
		_, _, err := svc.Update(ctx, "mar-1", "other@x.com", domain.MarathonUpdate{Title: &title})
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		repo := &fakeMarathonRepo{marathons: map[string]*domain.Marathon{}}
		svc := NewMarathonService(repo)
		updated, ok, err := svc.Update(ctx, "mar-missing", "c@x.com", domain.MarathonUpdate{Title: &title})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, updated)
	})
}

func TestMarathonService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can delete", func(t *testing.T) {
		repo := &fakeMarathonRepo{
			marathons:    map[string]*domain.Marathon{"mar-1": testMarathon("mar-1", "c@x.com")},
			deleteResult: true,
		}
		svc := NewMarathonService(repo)
		deleted, err := svc.Delete(ctx, "mar-1", "c@x.com")
		require.NoError(t, err)
		assert.True(t, deleted)
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		repo := &fakeMarathonRepo{
			marathons: map[string]*domain.Marathon{"mar-1": testMarathon("mar-1", "c@x.com")},
		}
		svc := NewMarathonService(repo)
		_, err := svc.Delete(ctx, "mar-1", "other@x.com")
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		repo := &fakeMarathonRepo{marathons: map[string]*domain.Marathon{}}
		svc := NewMarathonService(repo)
		deleted, err := svc.Delete(ctx, "mar-missing", "c@x.com")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestMarathonService_EstimatedCount(t *testing.T) {
	repo := &fakeMarathonRepo{estimatedCount: 123}
	svc := NewMarathonService(repo)
	count, err := svc.EstimatedCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(123), count)
}

func TestMarathonService_GetByID_NotFound(t *testing.T) {
	repo := &fakeMarathonRepo{marathons: map[string]*domain.Marathon{}}
	svc := NewMarathonService(repo)
	_, err := svc.GetByID(context.Background(), "mar-missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarathonService_GetByID_RepoError(t *testing.T) {
	repo := &fakeMarathonRepo{err: errors.New("boom")}
	svc := NewMarathonService(repo)
	_, err := svc.GetByID(context.Background(), "mar-1")
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrNotFound)
}
