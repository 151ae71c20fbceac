package repository

import (
	"context"

	"github.com/kineticfolio/portfolio-backend/internal/profile/domain"
)

// ProfileStore reads and replaces the single profile document.
type ProfileStore interface {
	// Get returns the profile, or domain.ErrProfileNotFound when it has never
	// been saved.
	Get(ctx context.Context) (domain.Profile, error)

	// Set replaces the whole document.
	Set(ctx context.Context, p domain.Profile) error
}
