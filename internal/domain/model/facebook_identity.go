package model

import (
	domainerror "github.com/azkarapp/azkar-backend/internal/domain/error"
)

// FacebookIdentity is the snapshot of a verified Facebook profile stored on a
// User. It marks that user as the resolution target for the Facebook user id.
// At most one User may hold a given Facebook user id; the user repository
// enforces this with a unique index.
type FacebookIdentity struct {
	userID      string
	name        string
	email       string
	accessToken string
}

// NewFacebookIdentity creates a FacebookIdentity from a provider-verified
// profile and the access token it was verified with. Name and email may be
// empty; Facebook only returns them when the user granted those permissions.
func NewFacebookIdentity(userID, name, email, accessToken string) (FacebookIdentity, error) {
	if userID == "" {
		return FacebookIdentity{}, domainerror.ErrFacebookUserIDRequired
	}
	if accessToken == "" {
		return FacebookIdentity{}, domainerror.ErrFacebookAccessTokenRequired
	}

	return FacebookIdentity{
		userID:      userID,
		name:        name,
		email:       email,
		accessToken: accessToken,
	}, nil
}

// ReconstructFacebookIdentity creates a FacebookIdentity from persisted data.
func ReconstructFacebookIdentity(userID, name, email, accessToken string) FacebookIdentity {
	return FacebookIdentity{
		userID:      userID,
		name:        name,
		email:       email,
		accessToken: accessToken,
	}
}

// Getters

func (f FacebookIdentity) UserID() string      { return f.userID }
func (f FacebookIdentity) Name() string        { return f.name }
func (f FacebookIdentity) Email() string       { return f.email }
func (f FacebookIdentity) AccessToken() string { return f.accessToken }
