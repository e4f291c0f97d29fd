package command_test

import (
	"context"
	"errors"
	"testing"

	appcommand "github.com/azkarapp/azkar-backend/internal/app/command"
	"github.com/azkarapp/azkar-backend/internal/app/service"
	domainerror "github.com/azkarapp/azkar-backend/internal/domain/error"
	"github.com/azkarapp/azkar-backend/internal/domain/event"
	"github.com/azkarapp/azkar-backend/internal/domain/model"
	"github.com/azkarapp/azkar-backend/internal/port/inbound/command"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/repository"
	"github.com/azkarapp/azkar-backend/tests/testutil"
	"github.com/azkarapp/azkar-backend/tests/testutil/mocks"
)

type connectFixture struct {
	userRepo  *mocks.UserRepository
	userCache *mocks.UserCache
	facebook  *mocks.FacebookService
	publisher *mocks.EventPublisher
	handler   command.ConnectFacebookHandler
}

func newConnectFixture(t *testing.T) *connectFixture {
	t.Helper()

	tokenService, err := service.NewTokenService(service.TokenConfig{
		Issuer:              "azkar-backend-test",
		Audience:            "azkar-test",
		AccessTokenDuration: service.DefaultTokenConfig().AccessTokenDuration,
		SigningKey:          []byte("test-signing-key-at-least-32-bytes-long"),
	})
	if err != nil {
		t.Fatalf("failed to create token service: %v", err)
	}

	f := &connectFixture{
		userRepo:  mocks.NewUserRepository(),
		userCache: mocks.NewUserCache(),
		facebook:  mocks.NewFacebookService(),
		publisher: mocks.NewEventPublisher(),
	}
	f.handler = appcommand.NewConnectFacebookHandler(
		f.userRepo,
		f.userCache,
		f.facebook,
		tokenService,
		f.publisher,
	)
	return f
}

func TestConnectFacebook_Preconditions(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects anonymous session", func(t *testing.T) {
		f := newConnectFixture(t)

		_, err := f.handler.Handle(ctx, command.ConnectFacebook{
			FacebookUserID: "fb42",
			AccessToken:    "token",
			Session:        model.AnonymousSession(),
		})
		if !errors.Is(err, domainerror.ErrConnectRequiresAuthenticatedSession) {
			t.Fatalf("expected ErrConnectRequiresAuthenticatedSession, got %v", err)
		}
	})

	t.Run("rejects failed verification", func(t *testing.T) {
		f := newConnectFixture(t)
		user := testutil.Fixtures.User()
		f.userRepo.Seed(user)

		_, err := f.handler.Handle(ctx, command.ConnectFacebook{
			FacebookUserID: "fb42",
			AccessToken:    "bad-token",
			Session:        model.AuthenticatedSession(user.ID()),
		})
		if !errors.Is(err, domainerror.ErrFacebookVerificationFailed) {
			t.Fatalf("expected ErrFacebookVerificationFailed, got %v", err)
		}
		if f.userRepo.Calls.Update != 0 {
			t.Error("no user should be mutated on verification failure")
		}
	})
}

func TestConnectFacebook_Linking(t *testing.T) {
	ctx := context.Background()

	t.Run("links an unclaimed facebook account to the caller", func(t *testing.T) {
		f := newConnectFixture(t)
		user := testutil.Fixtures.UserBuilder().WithUsername("u1").Build()
		f.userRepo.Seed(user)

		f.facebook.SeedProfile("tok", service.FacebookProfile{
			UserID: "fb42",
			Name:   "Amir",
			Email:  "a@x.com",
		})

		result, err := f.handler.Handle(ctx, command.ConnectFacebook{
			FacebookUserID: "fb42",
			AccessToken:    "tok",
			Session:        model.AuthenticatedSession(user.ID()),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if result.User.ID() != user.ID() {
			t.Error("expected the caller's own account")
		}
		if result.AccessToken == "" {
			t.Error("expected a fresh credential")
		}

		stored, err := f.userRepo.FindByFacebookUserID(ctx, "fb42")
		if err != nil {
			t.Fatalf("caller not resolvable by facebook id: %v", err)
		}
		if stored.ID() != user.ID() {
			t.Error("facebook id should resolve to the caller")
		}

		if !f.publisher.HasEvent(event.EventTypeFacebookLinked) {
			t.Error("expected FacebookLinked event")
		}
	})

	t.Run("relinking the caller's own facebook account rotates the token", func(t *testing.T) {
		f := newConnectFixture(t)
		user := testutil.Fixtures.UserBuilder().
			WithUsername("u1").
			WithFacebook("fb42", "old-token").
			Build()
		f.userRepo.Seed(user)

		f.facebook.SeedProfile("new-token", service.FacebookProfile{
			UserID: "fb42",
			Name:   "Amir",
			Email:  "a@x.com",
		})

		result, err := f.handler.Handle(ctx, command.ConnectFacebook{
			FacebookUserID: "fb42",
			AccessToken:    "new-token",
			Session:        model.AuthenticatedSession(user.ID()),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.User.ID() != user.ID() {
			t.Error("expected the caller's own account")
		}

		stored, _ := f.userRepo.FindByFacebookUserID(ctx, "fb42")
		if stored.Facebook().MustGet().AccessToken() != "new-token" {
			t.Error("stored access token should be rotated")
		}
	})
}

func TestConnectFacebook_Conflict(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects a facebook account held by another user", func(t *testing.T) {
		f := newConnectFixture(t)
		holder := testutil.Fixtures.UserBuilder().
			WithUsername("u2").
			WithFacebook("fb42", "holder-token").
			Build()
		caller := testutil.Fixtures.UserBuilder().WithUsername("u1").Build()
		f.userRepo.Seed(holder)
		f.userRepo.Seed(caller)

		f.facebook.SeedProfile("tok", service.FacebookProfile{
			UserID: "fb42",
			Name:   "Amir",
			Email:  "a@x.com",
		})

		_, err := f.handler.Handle(ctx, command.ConnectFacebook{
			FacebookUserID: "fb42",
			AccessToken:    "tok",
			Session:        model.AuthenticatedSession(caller.ID()),
		})
		if !errors.Is(err, domainerror.ErrFacebookAccountAlreadyLinked) {
			t.Fatalf("expected ErrFacebookAccountAlreadyLinked, got %v", err)
		}

		// Nothing was mutated
		if f.userRepo.Calls.Update != 0 {
			t.Error("conflict must not write anything")
		}
		stored, _ := f.userRepo.FindByFacebookUserID(ctx, "fb42")
		if stored.ID() != holder.ID() {
			t.Error("facebook id should still resolve to the original holder")
		}
		unchanged, _ := f.userRepo.FindByID(ctx, caller.ID())
		if unchanged.HasFacebook() {
			t.Error("caller must stay unlinked")
		}
	})

	t.Run("maps a lost write race to the conflict error", func(t *testing.T) {
		f := newConnectFixture(t)
		caller := testutil.Fixtures.UserBuilder().WithUsername("u1").Build()
		f.userRepo.Seed(caller)
		f.userRepo.Errors.Update = repository.ErrDuplicateFacebookID

		f.facebook.SeedProfile("tok", service.FacebookProfile{
			UserID: "fb42",
			Name:   "Amir",
			Email:  "a@x.com",
		})

		_, err := f.handler.Handle(ctx, command.ConnectFacebook{
			FacebookUserID: "fb42",
			AccessToken:    "tok",
			Session:        model.AuthenticatedSession(caller.ID()),
		})
		if !errors.Is(err, domainerror.ErrFacebookAccountAlreadyLinked) {
			t.Fatalf("expected ErrFacebookAccountAlreadyLinked, got %v", err)
		}
	})
}
