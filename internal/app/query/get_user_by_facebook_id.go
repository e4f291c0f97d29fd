package query

import (
	"context"
	"errors"
	"time"

	domainerror "github.com/azkarapp/azkar-backend/internal/domain/error"
	"github.com/azkarapp/azkar-backend/internal/port/inbound/query"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/cache"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/repository"
)

// getUserByFacebookIDHandler implements query.GetUserByFacebookIDHandler.
// Reads go through the cache's Facebook index; the auth flows never use this
// path, as they must see the repository's current linkage.
type getUserByFacebookIDHandler struct {
	userRepo  repository.UserRepository
	userCache cache.UserCache
	cacheTTL  time.Duration
}

// NewGetUserByFacebookIDHandler creates a new GetUserByFacebookIDHandler.
func NewGetUserByFacebookIDHandler(
	userRepo repository.UserRepository,
	userCache cache.UserCache,
) query.GetUserByFacebookIDHandler {
	return &getUserByFacebookIDHandler{
		userRepo:  userRepo,
		userCache: userCache,
		cacheTTL:  userCacheTTL,
	}
}

func (h *getUserByFacebookIDHandler) Handle(ctx context.Context, qry query.GetUserByFacebookID) (query.GetUserByFacebookIDResult, error) {
	if qry.FacebookUserID == "" {
		return query.GetUserByFacebookIDResult{}, domainerror.ErrFacebookUserIDRequired
	}

	if cached, err := h.userCache.GetByFacebookUserID(ctx, qry.FacebookUserID); err == nil && cached != nil {
		return query.GetUserByFacebookIDResult{User: cached}, nil
	}

	user, err := h.userRepo.FindByFacebookUserID(ctx, qry.FacebookUserID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return query.GetUserByFacebookIDResult{}, domainerror.ErrUserNotFound
	case err != nil:
		return query.GetUserByFacebookIDResult{}, err
	}

	_ = h.userCache.Set(ctx, user, h.cacheTTL)

	return query.GetUserByFacebookIDResult{User: user}, nil
}
