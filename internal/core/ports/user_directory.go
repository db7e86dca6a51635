package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// UserProfile is the minimal display context the directory exposes.
type UserProfile struct {
	FirstName string
	LastName  string
}

// UserDirectory resolves minimal user display information. It is a
// read-only collaborator: user CRUD lives outside this core. Callers
// composing notification copy must degrade to a generic placeholder when
// a lookup fails, never propagate the failure.
type UserDirectory interface {
	// FindByID retrieves a user's display profile.
	// Returns *errs.ObjectNotFoundError when the user does not exist.
	FindByID(ctx context.Context, id kernel.UUID) (UserProfile, error)
}
