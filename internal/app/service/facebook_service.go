package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// FacebookProfile represents the profile returned by the Facebook Graph API.
type FacebookProfile struct {
	UserID string
	Name   string
	Email  string
}

// FacebookService verifies Facebook access tokens against the Graph API.
type FacebookService interface {
	// FetchProfile fetches the profile of the user the access token belongs to.
	FetchProfile(ctx context.Context, accessToken string) (*FacebookProfile, error)
}

// FacebookConfig holds configuration for the Facebook Graph API client.
type FacebookConfig struct {
	GraphURL string
	Timeout  time.Duration
}

// DefaultFacebookConfig returns default Facebook configuration.
func DefaultFacebookConfig() FacebookConfig {
	return FacebookConfig{
		GraphURL: "https://graph.facebook.com/v7.0",
		Timeout:  10 * time.Second,
	}
}

// facebookService implements FacebookService using the standard HTTP client.
type facebookService struct {
	config FacebookConfig
	client *http.Client
}

// NewFacebookService creates a new FacebookService.
func NewFacebookService(config FacebookConfig) FacebookService {
	if config.GraphURL == "" {
		config.GraphURL = DefaultFacebookConfig().GraphURL
	}
	if config.Timeout == 0 {
		config.Timeout = DefaultFacebookConfig().Timeout
	}
	return &facebookService{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

func (s *facebookService) FetchProfile(ctx context.Context, accessToken string) (*FacebookProfile, error) {
	params := url.Values{
		"fields":       {"id,name,email"},
		"access_token": {accessToken},
	}
	endpoint := s.config.GraphURL + "/me?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("profile request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var profile struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile response: %w", err)
	}

	if profile.ID == "" {
		return nil, fmt.Errorf("profile response missing id")
	}

	return &FacebookProfile{
		UserID: profile.ID,
		Name:   profile.Name,
		Email:  profile.Email,
	}, nil
}
