package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
)

// --- UserCache Mock ---

// UserCache is a mock implementation of cache.UserCache.
type UserCache struct {
	mu sync.RWMutex

	// Storage
	users      map[string]*model.User // by user ID
	byFacebook map[string]string      // facebook user id -> userID

	// Call tracking
	Calls struct {
		Get                    int
		GetByFacebookUserID    int
		Set                    int
		Delete                 int
		DeleteByFacebookUserID int
	}

	// Error injection
	Errors struct {
		Get                    error
		GetByFacebookUserID    error
		Set                    error
		Delete                 error
		DeleteByFacebookUserID error
	}
}

// NewUserCache creates a new mock UserCache.
func NewUserCache() *UserCache {
	return &UserCache{
		users:      make(map[string]*model.User),
		byFacebook: make(map[string]string),
	}
}

func (m *UserCache) Get(ctx context.Context, userID types.ID) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.Get++

	if m.Errors.Get != nil {
		return nil, m.Errors.Get
	}

	user, ok := m.users[userID.String()]
	if !ok {
		return nil, nil // Cache miss
	}
	return user, nil
}

func (m *UserCache) GetByFacebookUserID(ctx context.Context, facebookUserID string) (*model.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.GetByFacebookUserID++

	if m.Errors.GetByFacebookUserID != nil {
		return nil, m.Errors.GetByFacebookUserID
	}

	userID, ok := m.byFacebook[facebookUserID]
	if !ok {
		return nil, nil // Cache miss
	}
	return m.users[userID], nil
}

func (m *UserCache) Set(ctx context.Context, user *model.User, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Set++

	if m.Errors.Set != nil {
		return m.Errors.Set
	}

	userID := user.ID().String()
	m.users[userID] = user
	if user.HasFacebook() {
		m.byFacebook[user.Facebook().MustGet().UserID()] = userID
	}

	return nil
}

func (m *UserCache) Delete(ctx context.Context, userID types.ID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Delete++

	if m.Errors.Delete != nil {
		return m.Errors.Delete
	}

	user, ok := m.users[userID.String()]
	if ok {
		if user.HasFacebook() {
			delete(m.byFacebook, user.Facebook().MustGet().UserID())
		}
		delete(m.users, userID.String())
	}

	return nil
}

func (m *UserCache) DeleteByFacebookUserID(ctx context.Context, facebookUserID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.DeleteByFacebookUserID++

	if m.Errors.DeleteByFacebookUserID != nil {
		return m.Errors.DeleteByFacebookUserID
	}

	userID, ok := m.byFacebook[facebookUserID]
	if ok {
		delete(m.users, userID)
		delete(m.byFacebook, facebookUserID)
	}

	return nil
}

// Reset clears all data and call counts.
func (m *UserCache) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.users = make(map[string]*model.User)
	m.byFacebook = make(map[string]string)
	m.Calls = struct {
		Get                    int
		GetByFacebookUserID    int
		Set                    int
		Delete                 int
		DeleteByFacebookUserID int
	}{}
	m.Errors = struct {
		Get                    error
		GetByFacebookUserID    error
		Set                    error
		Delete                 error
		DeleteByFacebookUserID error
	}{}
}

// Seed adds a user directly to the mock cache.
func (m *UserCache) Seed(user *model.User) {
	m.mu.Lock()
	defer m.mu.Unlock()

	userID := user.ID().String()
	m.users[userID] = user
	if user.HasFacebook() {
		m.byFacebook[user.Facebook().MustGet().UserID()] = userID
	}
}
