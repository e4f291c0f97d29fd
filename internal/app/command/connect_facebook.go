package command

import (
	"context"
	"errors"

	domainerror "github.com/azkarapp/azkar-backend/internal/domain/error"
	"github.com/azkarapp/azkar-backend/internal/domain/event"
	"github.com/azkarapp/azkar-backend/internal/domain/model"
	"github.com/azkarapp/azkar-backend/internal/port/inbound/command"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/cache"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/messaging"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/repository"

	"github.com/azkarapp/azkar-backend/internal/app/service"
)

type connectFacebookHandler struct {
	userRepo        repository.UserRepository
	userCache       cache.UserCache
	facebookService service.FacebookService
	tokenService    service.TokenService
	publisher       messaging.EventPublisher
}

func NewConnectFacebookHandler(
	userRepo repository.UserRepository,
	userCache cache.UserCache,
	facebookService service.FacebookService,
	tokenService service.TokenService,
	publisher messaging.EventPublisher,
) command.ConnectFacebookHandler {
	return &connectFacebookHandler{
		userRepo:        userRepo,
		userCache:       userCache,
		facebookService: facebookService,
		tokenService:    tokenService,
		publisher:       publisher,
	}
}

func (h *connectFacebookHandler) Handle(ctx context.Context, cmd command.ConnectFacebook) (command.ConnectFacebookResult, error) {
	// 1. Precondition: connect is only for authenticated callers
	if !cmd.Session.IsAuthenticated() {
		return command.ConnectFacebookResult{}, domainerror.ErrConnectRequiresAuthenticatedSession
	}
	currentUserID := cmd.Session.UserID()

	if cmd.FacebookUserID == "" {
		return command.ConnectFacebookResult{}, domainerror.ErrFacebookUserIDRequired
	}
	if cmd.AccessToken == "" {
		return command.ConnectFacebookResult{}, domainerror.ErrFacebookAccessTokenRequired
	}

	// 2. Verify the claimed identity against the Graph API
	profile, err := h.facebookService.FetchProfile(ctx, cmd.AccessToken)
	if err != nil {
		_ = h.publisher.Publish(ctx, event.NewAuthenticationFailed(cmd.FacebookUserID, "profile fetch failed"))
		return command.ConnectFacebookResult{}, domainerror.ErrFacebookVerificationFailed
	}
	if profile.UserID != cmd.FacebookUserID {
		_ = h.publisher.Publish(ctx, event.NewAuthenticationFailed(cmd.FacebookUserID, "profile id mismatch"))
		return command.ConnectFacebookResult{}, domainerror.ErrFacebookVerificationFailed
	}

	identity, err := model.NewFacebookIdentity(profile.UserID, profile.Name, profile.Email, cmd.AccessToken)
	if err != nil {
		return command.ConnectFacebookResult{}, err
	}

	// 3. Resolve who holds this Facebook account already, if anyone
	var user *model.User
	linked, err := h.userRepo.FindByFacebookUserID(ctx, cmd.FacebookUserID)
	switch {
	case err == nil && linked.ID() != currentUserID:
		// Another account holds the Facebook identity. Nothing is mutated.
		return command.ConnectFacebookResult{}, domainerror.ErrFacebookAccountAlreadyLinked

	case err == nil:
		// The caller already holds it. Relink to rotate the stored token.
		user = linked

	case errors.Is(err, repository.ErrNotFound):
		user, err = h.userRepo.FindByID(ctx, currentUserID)
		if err != nil {
			return command.ConnectFacebookResult{}, err
		}

	default:
		return command.ConnectFacebookResult{}, err
	}

	// 4. Link and persist. The unique index backs the lookup above: if a
	// concurrent connect claimed the same Facebook id between lookup and
	// write, the write fails instead of double-linking.
	user.LinkFacebook(identity)
	if err := h.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateFacebookID) {
			return command.ConnectFacebookResult{}, domainerror.ErrFacebookAccountAlreadyLinked
		}
		return command.ConnectFacebookResult{}, err
	}
	h.invalidateCache(ctx, user)

	// 5. Issue a fresh credential
	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(user)
	if err != nil {
		return command.ConnectFacebookResult{}, err
	}

	// 6. Publish auth events
	authEvents := []event.Event{
		event.NewFacebookLinked(user.ID(), identity.UserID(), identity.Email()),
		event.NewAuthenticationSucceeded(user.ID(), event.AuthMethodFacebookConnect),
	}
	_ = h.publisher.PublishAll(ctx, authEvents)

	return command.ConnectFacebookResult{
		User:        user,
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}, nil
}

func (h *connectFacebookHandler) invalidateCache(ctx context.Context, user *model.User) {
	_ = h.userCache.Delete(ctx, user.ID())
	if user.HasFacebook() {
		_ = h.userCache.DeleteByFacebookUserID(ctx, user.Facebook().MustGet().UserID())
	}
}
