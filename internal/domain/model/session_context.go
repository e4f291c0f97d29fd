package model

import (
	"github.com/0xsj/overwatch-pkg/types"
)

// SessionContext carries the caller's session state into the identity flows.
// It is supplied by the HTTP layer (from the JWT middleware) and never
// persisted; the flows use it to pick the login vs connect path and to detect
// link conflicts.
type SessionContext struct {
	userID types.Optional[types.ID]
}

// AnonymousSession returns the session context of an unauthenticated caller.
func AnonymousSession() SessionContext {
	return SessionContext{userID: types.None[types.ID]()}
}

// AuthenticatedSession returns the session context of a caller authenticated
// as the given user.
func AuthenticatedSession(userID types.ID) SessionContext {
	return SessionContext{userID: types.Some(userID)}
}

func (s SessionContext) IsAuthenticated() bool {
	return s.userID.IsPresent()
}

// UserID returns the authenticated user's id. Only valid when
// IsAuthenticated reports true.
func (s SessionContext) UserID() types.ID {
	if !s.userID.IsPresent() {
		return types.ID("")
	}
	return s.userID.MustGet()
}
