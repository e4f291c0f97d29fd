package cache

import (
	"context"
	"time"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
)

// UserCache defines the interface for user caching.
// Used to avoid database lookups for frequently accessed users.
type UserCache interface {
	// Get retrieves a user from the cache.
	// Returns nil if not found (cache miss).
	Get(ctx context.Context, userID types.ID) (*model.User, error)

	// GetByFacebookUserID retrieves a user from the cache by their linked
	// Facebook user id.
	GetByFacebookUserID(ctx context.Context, facebookUserID string) (*model.User, error)

	// Set stores a user in the cache with TTL.
	Set(ctx context.Context, user *model.User, ttl time.Duration) error

	// Delete removes a user from the cache.
	Delete(ctx context.Context, userID types.ID) error

	// DeleteByFacebookUserID removes a user from the cache by their linked
	// Facebook user id.
	DeleteByFacebookUserID(ctx context.Context, facebookUserID string) error
}
