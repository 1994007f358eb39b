package domain

import (
	"context"
	"time"
)

// Marathon represents a marathon listing open for registration.
// swagger:model Marathon
type Marathon struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	RegistrationStart time.Time `json:"registration_start"`
	RegistrationEnd   time.Time `json:"registration_end"`
	MarathonStart     time.Time `json:"marathon_start"`
	Location          string    `json:"location"`
	Distance          string    `json:"distance"`
	Description       string    `json:"description"`
	ImageURL          string    `json:"image_url"`
	CreatorEmail      string    `json:"creator_email"`
	RegistrationCount int       `json:"registration_count"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewMarathon returns a new Marathon with a zero registration count.
// ID is set by the repository on create.
func NewMarathon(title string, regStart, regEnd, start time.Time, location, distance, description, imageURL, creatorEmail string, createdAt time.Time) *Marathon {
	return &Marathon{
		Title:             title,
		RegistrationStart: regStart,
		RegistrationEnd:   regEnd,
		MarathonStart:     start,
		Location:          location,
		Distance:          distance,
		Description:       description,
		ImageURL:          imageURL,
		CreatorEmail:      creatorEmail,
		RegistrationCount: 0,
		CreatedAt:         createdAt,
		UpdatedAt:         createdAt,
	}
}

// MarathonUpdate holds the optional fields of a partial marathon update.
// Nil fields are left unchanged.
type MarathonUpdate struct {
	Title             *string
	RegistrationStart *time.Time
	RegistrationEnd   *time.Time
	MarathonStart     *time.Time
	Location          *string
	Distance          *string
	Description       *string
	ImageURL          *string
}

// MarathonSort selects the ordering of paginated marathon listings.
type MarathonSort string

const (
	// SortNone lists marathons in insertion order.
	SortNone MarathonSort = ""
	// SortByCreatedAt lists newest listings first.
	SortByCreatedAt MarathonSort = "created_at"
	// SortByRegistrationStart lists latest registration windows first.
	SortByRegistrationStart MarathonSort = "registration_start"
)

// MarathonRepository defines the interface for marathon storage.
type MarathonRepository interface {
	Create(ctx context.Context, m *Marathon) error
	GetByID(ctx context.Context, id string) (*Marathon, error)
	List(ctx context.Context, sort MarathonSort, limit, offset int) ([]*Marathon, error)
	ListUpcoming(ctx context.Context, after time.Time, limit int) ([]*Marathon, error)
	ListByCreator(ctx context.Context, creatorEmail string) ([]*Marathon, error)
	// Update applies the non-nil fields of upd and returns the updated row,
	// or (nil, nil) when the id does not exist.
	Update(ctx context.Context, id string, upd MarathonUpdate) (*Marathon, error)
	// Delete removes the marathon and reports whether a row was deleted.
	Delete(ctx context.Context, id string) (bool, error)
	// EstimatedCount returns an approximate total row count. Staleness is
	// acceptable; the value is advisory for UI page counts.
	EstimatedCount(ctx context.Context) (int64, error)
	// IncrementRegistrationCount atomically adds one to the denormalized
	// registration count.
	IncrementRegistrationCount(ctx context.Context, id string) error
	// DecrementRegistrationCount atomically subtracts one, with a floor at zero.
	DecrementRegistrationCount(ctx context.Context, id string) error
}

// ListMarathonsParams holds the query options for MarathonService.List.
type ListMarathonsParams struct {
	// All selects the paginated mode. When false, the first HomeListingLimit
	// marathons are returned and the other fields are ignored.
	All        bool
	Sort       MarathonSort
	Pagination PaginationParams
}

// HomeListingLimit is the number of marathons returned in the limited
// (landing page) listing mode.
const HomeListingLimit = 6

// MarathonService defines the business logic for marathon listings.
type MarathonService interface {
	Create(ctx context.Context, m *Marathon) (*Marathon, error)
	GetByID(ctx context.Context, id string) (*Marathon, error)
	List(ctx context.Context, params ListMarathonsParams) ([]*Marathon, error)
	ListUpcoming(ctx context.Context) ([]*Marathon, error)
	ListByCreator(ctx context.Context, creatorEmail string) ([]*Marathon, error)
	// Update applies a partial update. The caller identity must match the
	// marathon's creator; otherwise ErrForbidden. Returns (nil, false, nil)
	// when the id does not exist (missing ids are a no-op, not an error).
	Update(ctx context.Context, id, callerEmail string, upd MarathonUpdate) (*Marathon, bool, error)
	// Delete removes the marathon. Same ownership and no-op semantics as Update.
	Delete(ctx context.Context, id, callerEmail string) (bool, error)
	EstimatedCount(ctx context.Context) (int64, error)
}
