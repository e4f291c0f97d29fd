package command

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
)

// LoginWithFacebook authenticates a caller with a Facebook access token.
// Covers both first-time logins (a user is created) and returning users.
// The session must be anonymous; authenticated callers use ConnectFacebook.
type LoginWithFacebook struct {
	FacebookUserID string
	AccessToken    string
	Session        model.SessionContext
}

func (c LoginWithFacebook) CommandName() string {
	return "identity.login_with_facebook"
}

// LoginWithFacebookResult contains the resolved user, the issued credential,
// and whether the login created a new user.
type LoginWithFacebookResult struct {
	User        *model.User
	AccessToken string
	ExpiresAt   types.Timestamp
	IsNewUser   bool
}

// LoginWithFacebookHandler handles the LoginWithFacebook command.
type LoginWithFacebookHandler interface {
	Handle(ctx context.Context, cmd LoginWithFacebook) (LoginWithFacebookResult, error)
}
