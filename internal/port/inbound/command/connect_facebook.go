package command

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
)

// ConnectFacebook links a Facebook identity to the authenticated caller's
// account. Reconnecting the same account refreshes the stored identity;
// an identity owned by a different account is a conflict.
type ConnectFacebook struct {
	FacebookUserID string
	AccessToken    string
	Session        model.SessionContext
}

func (c ConnectFacebook) CommandName() string {
	return "identity.connect_facebook"
}

// ConnectFacebookResult contains the linked user and a fresh credential.
type ConnectFacebookResult struct {
	User        *model.User
	AccessToken string
	ExpiresAt   types.Timestamp
}

// ConnectFacebookHandler handles the ConnectFacebook command.
type ConnectFacebookHandler interface {
	Handle(ctx context.Context, cmd ConnectFacebook) (ConnectFacebookResult, error)
}
