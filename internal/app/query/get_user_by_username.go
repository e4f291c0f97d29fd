package query

import (
	"context"
	"errors"

	domainerror "github.com/azkarapp/azkar-backend/internal/domain/error"
	"github.com/azkarapp/azkar-backend/internal/port/inbound/query"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/repository"
)

// getUserByUsernameHandler implements query.GetUserByUsernameHandler.
type getUserByUsernameHandler struct {
	userRepo repository.UserRepository
}

// NewGetUserByUsernameHandler creates a new GetUserByUsernameHandler.
func NewGetUserByUsernameHandler(
	userRepo repository.UserRepository,
) query.GetUserByUsernameHandler {
	return &getUserByUsernameHandler{
		userRepo: userRepo,
	}
}

func (h *getUserByUsernameHandler) Handle(ctx context.Context, qry query.GetUserByUsername) (query.GetUserByUsernameResult, error) {
	if qry.Username == "" {
		return query.GetUserByUsernameResult{}, domainerror.ErrUserUsernameRequired
	}

	user, err := h.userRepo.FindByUsername(ctx, qry.Username)
	if errors.Is(err, repository.ErrNotFound) {
		return query.GetUserByUsernameResult{}, domainerror.ErrUserNotFound
	}
	if err != nil {
		return query.GetUserByUsernameResult{}, err
	}

	return query.GetUserByUsernameResult{User: user}, nil
}
