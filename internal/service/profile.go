package service

import (
	"context"
	"fmt"

	"github.com/kmdeck/userdir/internal/domain"
)

// ProfileService sequences validation and storage for each profile use
// case. Storage failures surface as domain errors; it never touches HTTP.
type ProfileService struct {
	users domain.UserRepository
}

// NewProfileService creates a new ProfileService.
func NewProfileService(users domain.UserRepository) *ProfileService {
	return &ProfileService{users: users}
}

// List returns all registered users, newest first. The list may be empty.
func (s *ProfileService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get returns the user with the given id, or domain.ErrNotFound.
func (s *ProfileService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

// Register validates the raw field values and creates a new user.
// Returns domain.FieldErrors when validation fails and domain.ErrConflict
// when the username or email is already taken; which of the two collided
// is deliberately not disclosed.
func (s *ProfileService) Register(ctx context.Context, in ProfileInput) (*domain.User, error) {
	user, fieldErrs := ValidateProfile(in.Normalize())
	if fieldErrs != nil {
		return nil, fieldErrs
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}
	return user, nil
}

// Update validates the raw field values and overwrites every mutable
// field of the user with the given id. Not-found and conflict handling
// matches Register, except a conflict here is against rows other than id.
func (s *ProfileService) Update(ctx context.Context, id int64, in ProfileInput) (*domain.User, error) {
	user, fieldErrs := ValidateProfile(in.Normalize())
	if fieldErrs != nil {
		return nil, fieldErrs
	}
	user.ID = id

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

// Delete removes the user with the given id. It verifies existence first
// and returns domain.ErrNotFound when there is nothing to delete; the
// boolean reports whether a row was actually removed.
func (s *ProfileService) Delete(ctx context.Context, id int64) (bool, error) {
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return false, err
	}

	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	return deleted, nil
}
