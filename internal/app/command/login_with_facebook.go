package command

import (
	"context"
	"errors"

	"github.com/0xsj/overwatch-pkg/types"

	domainerror "github.com/azkarapp/azkar-backend/internal/domain/error"
	"github.com/azkarapp/azkar-backend/internal/domain/event"
	"github.com/azkarapp/azkar-backend/internal/domain/model"
	"github.com/azkarapp/azkar-backend/internal/port/inbound/command"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/cache"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/messaging"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/repository"

	"github.com/azkarapp/azkar-backend/internal/app/service"
)

type loginWithFacebookHandler struct {
	userRepo        repository.UserRepository
	userCache       cache.UserCache
	facebookService service.FacebookService
	tokenService    service.TokenService
	publisher       messaging.EventPublisher
}

func NewLoginWithFacebookHandler(
	userRepo repository.UserRepository,
	userCache cache.UserCache,
	facebookService service.FacebookService,
	tokenService service.TokenService,
	publisher messaging.EventPublisher,
) command.LoginWithFacebookHandler {
	return &loginWithFacebookHandler{
		userRepo:        userRepo,
		userCache:       userCache,
		facebookService: facebookService,
		tokenService:    tokenService,
		publisher:       publisher,
	}
}

func (h *loginWithFacebookHandler) Handle(ctx context.Context, cmd command.LoginWithFacebook) (command.LoginWithFacebookResult, error) {
	// 1. Precondition: login is only for unauthenticated callers
	if cmd.Session.IsAuthenticated() {
		return command.LoginWithFacebookResult{}, domainerror.ErrLoginRequiresAnonymousSession
	}

	if cmd.FacebookUserID == "" {
		return command.LoginWithFacebookResult{}, domainerror.ErrFacebookUserIDRequired
	}
	if cmd.AccessToken == "" {
		return command.LoginWithFacebookResult{}, domainerror.ErrFacebookAccessTokenRequired
	}

	// 2. Verify the claimed identity against the Graph API
	profile, err := h.facebookService.FetchProfile(ctx, cmd.AccessToken)
	if err != nil {
		_ = h.publisher.Publish(ctx, event.NewAuthenticationFailed(cmd.FacebookUserID, "profile fetch failed"))
		return command.LoginWithFacebookResult{}, domainerror.ErrFacebookVerificationFailed
	}
	if profile.UserID != cmd.FacebookUserID {
		_ = h.publisher.Publish(ctx, event.NewAuthenticationFailed(cmd.FacebookUserID, "profile id mismatch"))
		return command.LoginWithFacebookResult{}, domainerror.ErrFacebookVerificationFailed
	}

	identity, err := model.NewFacebookIdentity(profile.UserID, profile.Name, profile.Email, cmd.AccessToken)
	if err != nil {
		return command.LoginWithFacebookResult{}, err
	}

	// 3. Resolve the account: returning user or first login
	isNewUser := false
	user, err := h.userRepo.FindByFacebookUserID(ctx, cmd.FacebookUserID)
	switch {
	case err == nil:
		// Returning user. Relink to rotate the stored access token and pick
		// up profile changes.
		user.LinkFacebook(identity)
		if err := h.userRepo.Update(ctx, user); err != nil {
			return command.LoginWithFacebookResult{}, err
		}
		h.invalidateCache(ctx, user)

	case errors.Is(err, repository.ErrNotFound):
		// First login: create an account from the verified profile.
		user, err = h.registerUser(ctx, profile, identity)
		if err != nil {
			return command.LoginWithFacebookResult{}, err
		}
		isNewUser = true

	default:
		return command.LoginWithFacebookResult{}, err
	}

	// 4. Issue credential
	accessToken, expiresAt, err := h.tokenService.GenerateAccessToken(user)
	if err != nil {
		return command.LoginWithFacebookResult{}, err
	}

	// 5. Publish auth events
	authEvents := []event.Event{
		event.NewFacebookLinked(user.ID(), identity.UserID(), identity.Email()),
		event.NewAuthenticationSucceeded(user.ID(), event.AuthMethodFacebookLogin),
	}
	_ = h.publisher.PublishAll(ctx, authEvents)

	return command.LoginWithFacebookResult{
		User:        user,
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		IsNewUser:   isNewUser,
	}, nil
}

func (h *loginWithFacebookHandler) registerUser(ctx context.Context, profile *service.FacebookProfile, identity model.FacebookIdentity) (*model.User, error) {
	username, err := model.GenerateUsername(profile.Email)
	if err != nil {
		return nil, err
	}

	user, err := model.NewUser(
		username,
		optionalEmail(profile.Email),
		optionalString(profile.Name),
	)
	if err != nil {
		return nil, err
	}
	user.LinkFacebook(identity)

	if err := h.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	_ = h.publisher.Publish(ctx, event.NewUserRegistered(
		user.ID(),
		user.Username(),
		optionalEmailString(user.Email()),
		user.Name(),
	))

	return user, nil
}

func (h *loginWithFacebookHandler) invalidateCache(ctx context.Context, user *model.User) {
	_ = h.userCache.Delete(ctx, user.ID())
	if user.HasFacebook() {
		_ = h.userCache.DeleteByFacebookUserID(ctx, user.Facebook().MustGet().UserID())
	}
}

func optionalString(s string) types.Optional[string] {
	if s == "" {
		return types.None[string]()
	}
	return types.Some(s)
}

func optionalEmail(s string) types.Optional[types.Email] {
	if s == "" {
		return types.None[types.Email]()
	}
	email, err := types.NewEmail(s)
	if err != nil {
		return types.None[types.Email]()
	}
	return types.Some(email)
}

func optionalEmailString(email types.Optional[types.Email]) types.Optional[string] {
	if email.IsPresent() {
		return types.Some(email.MustGet().String())
	}
	return types.None[string]()
}
