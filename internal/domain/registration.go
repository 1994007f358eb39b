package domain

import (
	"context"
	"time"
)

// Registration represents a single applicant's application to a marathon.
// The pair (MarathonID, ApplicantEmail) is unique across all registrations;
// the registrations table enforces this with a unique index.
// swagger:model Registration
type Registration struct {
	ID             string    `json:"id"`
	MarathonID     string    `json:"marathon_id"`
	ApplicantEmail string    `json:"applicant_email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	ContactNumber  string    `json:"contact_number"`
	// MarathonTitle is denormalized from the marathon at apply time so that
	// applicant listings can be searched by title without a join.
	MarathonTitle string    `json:"marathon_title"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewRegistration returns a new Registration. ID is set by the repository on create.
func NewRegistration(marathonID, applicantEmail, firstName, lastName, contactNumber, marathonTitle string, createdAt time.Time) *Registration {
	return &Registration{
		MarathonID:     marathonID,
		ApplicantEmail: applicantEmail,
		FirstName:      firstName,
		LastName:       lastName,
		ContactNumber:  contactNumber,
		MarathonTitle:  marathonTitle,
		CreatedAt:      createdAt,
		UpdatedAt:      createdAt,
	}
}

// RegistrationContactUpdate holds the contact fields an applicant may correct
// after registering. Nil fields are left unchanged.
type RegistrationContactUpdate struct {
	FirstName     *string
	LastName      *string
	ContactNumber *string
}

// RegistrationRepository defines storage operations for registrations.
type RegistrationRepository interface {
	// Create inserts the registration. A unique-constraint violation on
	// (marathon_id, applicant_email) is returned as ErrDuplicateRegistration.
	Create(ctx context.Context, reg *Registration) error
	GetByID(ctx context.Context, id string) (*Registration, error)
	// ListByApplicant returns the applicant's registrations, optionally
	// filtered by a case-insensitive marathon title search.
	ListByApplicant(ctx context.Context, applicantEmail, titleSearch string) ([]*Registration, error)
	// UpdateContact applies the non-nil contact fields and returns the
	// updated row, or (nil, nil) when the id does not exist.
	UpdateContact(ctx context.Context, id string, upd RegistrationContactUpdate) (*Registration, error)
	// Delete removes the registration and reports whether a row was deleted.
	Delete(ctx context.Context, id string) (bool, error)
}

// ApplyInput holds the fields of a registration request.
type ApplyInput struct {
	MarathonID     string
	ApplicantEmail string
	FirstName      string
	LastName       string
	ContactNumber  string
}

// RegistrationService defines the registration workflow: the duplicate guard,
// the registration insert, and the denormalized counter update.
type RegistrationService interface {
	// Apply registers the applicant for the marathon. Fails with ErrNotFound
	// when the marathon does not exist and ErrDuplicateRegistration when the
	// applicant already registered. On success the marathon's registration
	// count has been incremented exactly once.
	Apply(ctx context.Context, in ApplyInput) (*Registration, error)
	// UpdateContact corrects contact details. The caller identity must match
	// the registration's applicant; otherwise ErrForbidden. Returns
	// (nil, false, nil) when the id does not exist.
	UpdateContact(ctx context.Context, id, callerEmail string, upd RegistrationContactUpdate) (*Registration, bool, error)
	// Withdraw deletes the registration. Same ownership and no-op semantics
	// as UpdateContact. The registration count is decremented only when the
	// service was configured to do so.
	Withdraw(ctx context.Context, id, callerEmail string) (bool, error)
	ListByApplicant(ctx context.Context, applicantEmail, titleSearch string) ([]*Registration, error)
}
