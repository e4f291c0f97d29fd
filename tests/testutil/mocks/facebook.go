package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/azkarapp/azkar-backend/internal/app/service"
)

// FacebookService is a mock implementation of service.FacebookService.
// Profiles are registered per access token; fetching with an unknown token
// fails the way the Graph API does for an invalid or expired token.
type FacebookService struct {
	mu sync.RWMutex

	// Profiles by access token
	profiles map[string]service.FacebookProfile

	// Call tracking
	Calls struct {
		FetchProfile int
	}

	// Error injection
	Errors struct {
		FetchProfile error
	}
}

// NewFacebookService creates a new mock FacebookService.
func NewFacebookService() *FacebookService {
	return &FacebookService{
		profiles: make(map[string]service.FacebookProfile),
	}
}

func (m *FacebookService) FetchProfile(ctx context.Context, accessToken string) (*service.FacebookProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.FetchProfile++

	if m.Errors.FetchProfile != nil {
		return nil, m.Errors.FetchProfile
	}

	profile, ok := m.profiles[accessToken]
	if !ok {
		return nil, fmt.Errorf("invalid access token")
	}
	return &profile, nil
}

// SeedProfile registers the profile the given access token resolves to.
func (m *FacebookService) SeedProfile(accessToken string, profile service.FacebookProfile) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[accessToken] = profile
}

// Reset clears all profiles and call counts.
func (m *FacebookService) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = make(map[string]service.FacebookProfile)
	m.Calls = struct {
		FetchProfile int
	}{}
	m.Errors = struct {
		FetchProfile error
	}{}
}
