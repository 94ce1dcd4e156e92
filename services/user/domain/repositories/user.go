package repositories

import (
	"context"

	"github.com/ghuser/taskdeck/services/user/domain/models"
)

// UserRepository is the persistence interface for User accounts.
// The domain layer owns this interface; infrastructure implements it.
type UserRepository interface {
	Save(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Exists reports whether a user with the given username is registered.
	Exists(ctx context.Context, username string) (bool, error)

	// Delete removes the account row. Returns ErrUserNotFound when no row
	// matched. Cards and shares referencing the user are removed by the
	// service-level cascade before this runs; the FK cascade is a backstop.
	Delete(ctx context.Context, username string) error
}
