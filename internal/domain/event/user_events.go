package event

import (
	"github.com/0xsj/overwatch-pkg/types"
)

// UserRegistered is emitted when a first-time Facebook login creates a user.
type UserRegistered struct {
	BaseEvent
	UserID   types.ID
	Username string
	Email    types.Optional[string]
	Name     types.Optional[string]
}

// NewUserRegistered creates a new UserRegistered event.
func NewUserRegistered(
	userID types.ID,
	username string,
	email types.Optional[string],
	name types.Optional[string],
) UserRegistered {
	return UserRegistered{
		BaseEvent: NewBaseEvent(EventTypeUserRegistered, userID, AggregateTypeUser),
		UserID:    userID,
		Username:  username,
		Email:     email,
		Name:      name,
	}
}

// FacebookLinked is emitted when a Facebook identity is linked (or relinked)
// to a user.
type FacebookLinked struct {
	BaseEvent
	UserID         types.ID
	FacebookUserID string
	Email          string
}

// NewFacebookLinked creates a new FacebookLinked event.
func NewFacebookLinked(userID types.ID, facebookUserID, email string) FacebookLinked {
	return FacebookLinked{
		BaseEvent:      NewBaseEvent(EventTypeFacebookLinked, userID, AggregateTypeUser),
		UserID:         userID,
		FacebookUserID: facebookUserID,
		Email:          email,
	}
}

// AuthMethod represents how the user authenticated.
type AuthMethod string

const (
	AuthMethodFacebookLogin   AuthMethod = "facebook_login"
	AuthMethodFacebookConnect AuthMethod = "facebook_connect"
)

// AuthenticationSucceeded is emitted when a user successfully authenticates.
type AuthenticationSucceeded struct {
	BaseEvent
	UserID types.ID
	Method AuthMethod
}

// NewAuthenticationSucceeded creates a new AuthenticationSucceeded event.
func NewAuthenticationSucceeded(userID types.ID, method AuthMethod) AuthenticationSucceeded {
	return AuthenticationSucceeded{
		BaseEvent: NewBaseEvent(EventTypeAuthenticationSucceeded, userID, AggregateTypeUser),
		UserID:    userID,
		Method:    method,
	}
}

// AuthenticationFailed is emitted when an authentication attempt fails.
type AuthenticationFailed struct {
	BaseEvent
	FacebookUserID string
	Reason         string
}

// NewAuthenticationFailed creates a new AuthenticationFailed event.
func NewAuthenticationFailed(facebookUserID, reason string) AuthenticationFailed {
	// Zero aggregate ID: no user resolved for a failed attempt.
	return AuthenticationFailed{
		BaseEvent:      NewBaseEvent(EventTypeAuthenticationFailed, types.ID(""), AggregateTypeUser),
		FacebookUserID: facebookUserID,
		Reason:         reason,
	}
}
