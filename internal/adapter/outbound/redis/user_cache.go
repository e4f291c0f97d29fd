package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/cache"
)

const (
	userKeyPrefix   = "azkar:user:"
	userFBKeyPrefix = "azkar:user_fb:"
	defaultUserTTL  = 1 * time.Hour
)

// userCache implements cache.UserCache.
type userCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewUserCache creates a new UserCache.
func NewUserCache(client *redis.Client, ttl time.Duration) cache.UserCache {
	if ttl == 0 {
		ttl = defaultUserTTL
	}
	return &userCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *userCache) Get(ctx context.Context, userID types.ID) (*model.User, error) {
	key := userKey(userID)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get user from cache: %w", err)
	}

	var cached cachedUser
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return cached.toModel()
}

func (c *userCache) GetByFacebookUserID(ctx context.Context, facebookUserID string) (*model.User, error) {
	// First, get the user ID from the facebook index
	fbKey := userFBKey(facebookUserID)
	userID, err := c.client.Get(ctx, fbKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, fmt.Errorf("failed to get user ID from facebook index: %w", err)
	}

	// Then fetch the user by ID
	id, err := types.ParseID(userID)
	if err != nil {
		return nil, nil // Invalid ID in cache, treat as miss
	}

	return c.Get(ctx, id)
}

func (c *userCache) Set(ctx context.Context, user *model.User, ttl time.Duration) error {
	if ttl == 0 {
		ttl = c.ttl
	}

	cached := newCachedUser(user)
	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	// A relink moves the user to a new Facebook id. Drop the previous index
	// entry so it cannot serve the stale mapping for the rest of its TTL.
	if err := c.dropStaleFacebookIndex(ctx, user); err != nil {
		return err
	}

	// Set user data
	key := userKey(user.ID())
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set user in cache: %w", err)
	}

	// Set facebook index
	if user.HasFacebook() {
		fbKey := userFBKey(user.Facebook().MustGet().UserID())
		if err := c.client.Set(ctx, fbKey, user.ID().String(), ttl).Err(); err != nil {
			return fmt.Errorf("failed to set user facebook index: %w", err)
		}
	}

	return nil
}

func (c *userCache) Delete(ctx context.Context, userID types.ID) error {
	// First try to get the user to find its facebook index
	user, err := c.Get(ctx, userID)
	if err != nil {
		return err
	}

	key := userKey(userID)
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete user from cache: %w", err)
	}

	// Also delete facebook index if we found the user
	if user != nil && user.HasFacebook() {
		fbKey := userFBKey(user.Facebook().MustGet().UserID())
		if err := c.client.Del(ctx, fbKey).Err(); err != nil {
			return fmt.Errorf("failed to delete user facebook index: %w", err)
		}
	}

	return nil
}

// dropStaleFacebookIndex removes the index entry left by a previously cached
// linkage when the incoming user carries a different Facebook id, or none.
func (c *userCache) dropStaleFacebookIndex(ctx context.Context, user *model.User) error {
	prev, err := c.Get(ctx, user.ID())
	if err != nil || prev == nil || !prev.HasFacebook() {
		return err
	}

	oldID := prev.Facebook().MustGet().UserID()
	if user.HasFacebook() && user.Facebook().MustGet().UserID() == oldID {
		return nil
	}

	if err := c.client.Del(ctx, userFBKey(oldID)).Err(); err != nil {
		return fmt.Errorf("failed to drop stale facebook index: %w", err)
	}
	return nil
}

func (c *userCache) DeleteByFacebookUserID(ctx context.Context, facebookUserID string) error {
	// Get user ID from facebook index
	fbKey := userFBKey(facebookUserID)
	userID, err := c.client.Get(ctx, fbKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil // Not in cache
		}
		return fmt.Errorf("failed to get user ID from facebook index: %w", err)
	}

	// Delete both keys
	key := userKeyPrefix + userID
	if err := c.client.Del(ctx, key, fbKey).Err(); err != nil {
		return fmt.Errorf("failed to delete user from cache: %w", err)
	}

	return nil
}

// Key helpers

func userKey(id types.ID) string {
	return userKeyPrefix + id.String()
}

func userFBKey(facebookUserID string) string {
	return userFBKeyPrefix + facebookUserID
}

// Cached user structure for JSON serialization

type cachedUser struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Email     *string         `json:"email,omitempty"`
	Name      *string         `json:"name,omitempty"`
	Facebook  *cachedFacebook `json:"facebook,omitempty"`
	CreatedAt int64           `json:"created_at"`
	UpdatedAt int64           `json:"updated_at"`
}

type cachedFacebook struct {
	UserID      string `json:"user_id"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	AccessToken string `json:"access_token"`
}

func newCachedUser(u *model.User) cachedUser {
	cached := cachedUser{
		ID:        u.ID().String(),
		Username:  u.Username(),
		CreatedAt: u.CreatedAt().Time().Unix(),
		UpdatedAt: u.UpdatedAt().Time().Unix(),
	}

	if u.Email().IsPresent() {
		email := u.Email().MustGet().String()
		cached.Email = &email
	}

	if u.Name().IsPresent() {
		name := u.Name().MustGet()
		cached.Name = &name
	}

	if u.HasFacebook() {
		fb := u.Facebook().MustGet()
		cached.Facebook = &cachedFacebook{
			UserID:      fb.UserID(),
			Name:        fb.Name(),
			Email:       fb.Email(),
			AccessToken: fb.AccessToken(),
		}
	}

	return cached
}

func (c cachedUser) toModel() (*model.User, error) {
	id, err := types.ParseID(c.ID)
	if err != nil {
		return nil, err
	}

	email := types.None[types.Email]()
	if c.Email != nil {
		e, err := types.NewEmail(*c.Email)
		if err == nil {
			email = types.Some(e)
		}
	}

	name := types.None[string]()
	if c.Name != nil {
		name = types.Some(*c.Name)
	}

	facebook := types.None[model.FacebookIdentity]()
	if c.Facebook != nil {
		facebook = types.Some(model.ReconstructFacebookIdentity(
			c.Facebook.UserID,
			c.Facebook.Name,
			c.Facebook.Email,
			c.Facebook.AccessToken,
		))
	}

	return model.ReconstructUser(
		id,
		c.Username,
		email,
		name,
		facebook,
		types.FromTime(time.Unix(c.CreatedAt, 0)),
		types.FromTime(time.Unix(c.UpdatedAt, 0)),
	), nil
}
