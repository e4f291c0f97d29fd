package query

import (
	"context"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
)

// GetUserByFacebookID retrieves a user by their linked Facebook user id.
type GetUserByFacebookID struct {
	FacebookUserID string
}

func (q GetUserByFacebookID) QueryName() string {
	return "user.get_by_facebook_id"
}

// GetUserByFacebookIDResult contains the user.
type GetUserByFacebookIDResult struct {
	User *model.User
}

// GetUserByFacebookIDHandler handles the GetUserByFacebookID query.
type GetUserByFacebookIDHandler interface {
	Handle(ctx context.Context, qry GetUserByFacebookID) (GetUserByFacebookIDResult, error)
}
