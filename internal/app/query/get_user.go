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

// How long a read-through entry may serve before the repository is consulted
// again. Auth flows invalidate eagerly, so this only bounds staleness from
// writes that bypass this service.
const userCacheTTL = 15 * time.Minute

// getUserHandler implements query.GetUserHandler with a read-through cache in
// front of the user repository.
type getUserHandler struct {
	userRepo  repository.UserRepository
	userCache cache.UserCache
	cacheTTL  time.Duration
}

// NewGetUserHandler creates a new GetUserHandler.
func NewGetUserHandler(
	userRepo repository.UserRepository,
	userCache cache.UserCache,
) query.GetUserHandler {
	return &getUserHandler{
		userRepo:  userRepo,
		userCache: userCache,
		cacheTTL:  userCacheTTL,
	}
}

// Handle resolves a user by id. Cache errors degrade to a repository read;
// only the repository decides whether the user exists.
func (h *getUserHandler) Handle(ctx context.Context, qry query.GetUser) (query.GetUserResult, error) {
	if qry.UserID.IsEmpty() {
		return query.GetUserResult{}, domainerror.ErrUserIDRequired
	}

	if cached, err := h.userCache.Get(ctx, qry.UserID); err == nil && cached != nil {
		return query.GetUserResult{User: cached}, nil
	}

	user, err := h.userRepo.FindByID(ctx, qry.UserID)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return query.GetUserResult{}, domainerror.ErrUserNotFound
	case err != nil:
		return query.GetUserResult{}, err
	}

	// Write back on a miss. Failure here costs a future cache hit, nothing
	// else.
	_ = h.userCache.Set(ctx, user, h.cacheTTL)

	return query.GetUserResult{User: user}, nil
}
