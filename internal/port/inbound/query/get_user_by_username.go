package query

import (
	"context"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
)

// GetUserByUsername retrieves a user by their unique username.
type GetUserByUsername struct {
	Username string
}

func (q GetUserByUsername) QueryName() string {
	return "user.get_by_username"
}

// GetUserByUsernameResult contains the user.
type GetUserByUsernameResult struct {
	User *model.User
}

// GetUserByUsernameHandler handles the GetUserByUsername query.
type GetUserByUsernameHandler interface {
	Handle(ctx context.Context, qry GetUserByUsername) (GetUserByUsernameResult, error)
}
