package repository

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
)

// UserRepository defines the interface for user persistence.
//
// Implementations must guarantee that at most one user holds a given Facebook
// user id at any time, even under concurrent writers; a violating write
// returns ErrDuplicateFacebookID.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *model.User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *model.User) error

	// FindByID retrieves a user by their ID.
	FindByID(ctx context.Context, id types.ID) (*model.User, error)

	// FindByUsername retrieves a user by their username.
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// FindByFacebookUserID retrieves the user whose linked Facebook identity
	// has the given Facebook user id.
	FindByFacebookUserID(ctx context.Context, facebookUserID string) (*model.User, error)

	// ExistsByUsername checks if a user with the given username exists.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
