package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"milesahead/internal/domain"
)

type registrationService struct {
	marathonRepo     domain.MarathonRepository
	registrationRepo domain.RegistrationRepository
	logger           *slog.Logger
	// decrementOnWithdraw controls whether withdrawing a registration also
	// decrements the marathon's registration count.
	decrementOnWithdraw bool
}

// NewRegistrationService creates the registration workflow service.
func NewRegistrationService(
	marathonRepo domain.MarathonRepository,
	registrationRepo domain.RegistrationRepository,
	logger *slog.Logger,
	decrementOnWithdraw bool,
) domain.RegistrationService {
	return &registrationService{
		marathonRepo:        marathonRepo,
		registrationRepo:    registrationRepo,
		logger:              logger,
		decrementOnWithdraw: decrementOnWithdraw,
	}
}

// Apply registers the applicant for the marathon. The duplicate guard is the
// unique index on (marathon_id, applicant_email): there is no pre-check read,
// so concurrent identical requests race on the constraint and exactly one
// insert wins. The counter is incremented once per created registration.
func (s *registrationService) Apply(ctx context.Context, in domain.ApplyInput) (*domain.Registration, error) {
	in.ApplicantEmail = strings.TrimSpace(strings.ToLower(in.ApplicantEmail))
	if in.ApplicantEmail == "" {
		return nil, fmt.Errorf("%w: applicant email is required", domain.ErrInvalidInput)
	}

	marathon, err := s.marathonRepo.GetByID(ctx, in.MarathonID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get marathon: %w", err)
	}

	now := time.Now()
	reg := domain.NewRegistration(in.MarathonID, in.ApplicantEmail,
		in.FirstName, in.LastName, in.ContactNumber, marathon.Title, now)
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		if errors.Is(err, domain.ErrDuplicateRegistration) {
			return nil, domain.ErrDuplicateRegistration
		}
		return nil, fmt.Errorf("create registration: %w", err)
	}

	if err := s.marathonRepo.IncrementRegistrationCount(ctx, in.MarathonID); err != nil {
		// The registration is committed; the counter is now behind by one.
		s.logger.ErrorContext(ctx, "registration count increment failed",
			"marathon_id", in.MarathonID, "registration_id", reg.ID, "err", err)
		return nil, fmt.Errorf("increment registration count: %w", err)
	}
	return reg, nil
}

func (s *registrationService) UpdateContact(ctx context.Context, id, callerEmail string, upd domain.RegistrationContactUpdate) (*domain.Registration, bool, error) {
	existing, err := s.registrationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Missing ids are a no-op, mirroring withdrawal.
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get registration: %w", err)
	}
	if existing.ApplicantEmail != callerEmail {
		return nil, false, domain.ErrForbidden
	}

	updated, err := s.registrationRepo.UpdateContact(ctx, id, upd)
	if err != nil {
		return nil, false, fmt.Errorf("update registration contact: %w", err)
	}
	if updated == nil {
		return nil, false, nil
	}
	return updated, true, nil
}

func (s *registrationService) Withdraw(ctx context.Context, id, callerEmail string) (bool, error) {
	existing, err := s.registrationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get registration: %w", err)
	}
	if existing.ApplicantEmail != callerEmail {
		return false, domain.ErrForbidden
	}

	deleted, err := s.registrationRepo.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete registration: %w", err)
	}
	if deleted && s.decrementOnWithdraw {
		if err := s.marathonRepo.DecrementRegistrationCount(ctx, existing.MarathonID); err != nil {
			// The marathon may have been deleted; the withdrawal itself stands.
			s.logger.WarnContext(ctx, "registration count decrement failed",
				"marathon_id", existing.MarathonID, "registration_id", id, "err", err)
		}
	}
	return deleted, nil
}

func (s *registrationService) ListByApplicant(ctx context.Context, applicantEmail, titleSearch string) ([]*domain.Registration, error) {
	regs, err := s.registrationRepo.ListByApplicant(ctx, applicantEmail, titleSearch)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}
