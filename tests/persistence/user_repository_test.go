package persistence

import (
	"errors"
	"testing"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/adapter/outbound/postgres"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/repository"
	"github.com/azkarapp/azkar-backend/tests/testutil"
)

func TestUserRepository_Create(t *testing.T) {
	truncateTables(t)
	repo := postgres.NewUserRepository(getPool())
	ctx := getContext()

	user := testutil.Fixtures.UserBuilder().
		WithEmail("ahmad@example.com").
		WithName("Ahmad").
		Build()

	err := repo.Create(ctx, user)

	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	// Verify by reading back
	found, err := repo.FindByID(ctx, user.ID())
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.ID() != user.ID() {
		t.Errorf("ID = %v, want %v", found.ID(), user.ID())
	}
	if found.Username() != user.Username() {
		t.Errorf("Username = %v, want %v", found.Username(), user.Username())
	}
	if !found.Email().IsPresent() || found.Email().MustGet().String() != "ahmad@example.com" {
		t.Errorf("Email = %v, want ahmad@example.com", found.Email())
	}
}

func TestUserRepository_Create_DuplicateUsername(t *testing.T) {
	truncateTables(t)
	repo := postgres.NewUserRepository(getPool())
	ctx := getContext()

	user1 := testutil.Fixtures.UserBuilder().WithUsername("ahmad_1234").Build()
	user2 := testutil.Fixtures.UserBuilder().WithUsername("ahmad_1234").Build()

	repo.Create(ctx, user1)
	err := repo.Create(ctx, user2)

	if !errors.Is(err, repository.ErrDuplicateUsername) {
		t.Errorf("Create() error = %v, want ErrDuplicateUsername", err)
	}
}

func TestUserRepository_Create_DuplicateFacebookUserID(t *testing.T) {
	truncateTables(t)
	repo := postgres.NewUserRepository(getPool())
	ctx := getContext()

	user1 := testutil.Fixtures.UserBuilder().WithFacebook("fb42", "token-1").Build()
	user2 := testutil.Fixtures.UserBuilder().WithFacebook("fb42", "token-2").Build()

	if err := repo.Create(ctx, user1); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	err := repo.Create(ctx, user2)

	if !errors.Is(err, repository.ErrDuplicateFacebookID) {
		t.Errorf("Create() error = %v, want ErrDuplicateFacebookID", err)
	}
}

func TestUserRepository_Update(t *testing.T) {
	truncateTables(t)
	repo := postgres.NewUserRepository(getPool())
	ctx := getContext()

	user := testutil.Fixtures.User()
	repo.Create(ctx, user)

	email, _ := types.NewEmail("updated@example.com")
	user.SetEmail(email)
	user.SetName("Updated Name")

	err := repo.Update(ctx, user)

	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	found, _ := repo.FindByID(ctx, user.ID())
	if !found.Email().IsPresent() || found.Email().MustGet().String() != "updated@example.com" {
		t.Errorf("Email = %v, want updated@example.com", found.Email())
	}
	if !found.Name().IsPresent() || found.Name().MustGet() != "Updated Name" {
		t.Errorf("Name = %v, want Updated Name", found.Name())
	}
}

func TestUserRepository_Update_LinkFacebook(t *testing.T) {
	truncateTables(t)
	repo := postgres.NewUserRepository(getPool())
	ctx := getContext()

	user := testutil.Fixtures.User()
	repo.Create(ctx, user)

	user.LinkFacebook(testutil.Fixtures.FacebookIdentity())

	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	found, _ := repo.FindByID(ctx, user.ID())
	if !found.HasFacebook() {
		t.Fatal("user should have a facebook identity after update")
	}
	got := found.Facebook().MustGet()
	want := user.Facebook().MustGet()
	if got.UserID() != want.UserID() {
		t.Errorf("facebook UserID = %v, want %v", got.UserID(), want.UserID())
	}
	if got.AccessToken() != want.AccessToken() {
		t.Errorf("facebook AccessToken = %v, want %v", got.AccessToken(), want.AccessToken())
	}
}

func TestUserRepository_Update_DuplicateFacebookUserID(t *testing.T) {
	truncateTables(t)
	repo := postgres.NewUserRepository(getPool())
	ctx := getContext()

	holder := testutil.Fixtures.UserBuilder().WithFacebook("fb42", "token-1").Build()
	other := testutil.Fixtures.User()
	repo.Create(ctx, holder)
	repo.Create(ctx, other)

	// A lost race on connect surfaces here, not at the lookup
	identity := testutil.Fixtures.UserBuilder().WithFacebook("fb42", "token-2").Build().Facebook().MustGet()
	other.LinkFacebook(identity)
	err := repo.Update(ctx, other)

	if !errors.Is(err, repository.ErrDuplicateFacebookID) {
		t.Errorf("Update() error = %v, want ErrDuplicateFacebookID", err)
	}
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	truncateTables(t)
	repo := postgres.NewUserRepository(getPool())
	ctx := getContext()

	user := testutil.Fixtures.User()

	err := repo.Update(ctx, user)

	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestUserRepository_FindByUsername(t *testing.T) {
	truncateTables(t)
	repo := postgres.NewUserRepository(getPool())
	ctx := getContext()

	user := testutil.Fixtures.User()
	repo.Create(ctx, user)

	found, err := repo.FindByUsername(ctx, user.Username())

	if err != nil {
		t.Fatalf("FindByUsername() error = %v", err)
	}
	if found.ID() != user.ID() {
		t.Errorf("ID = %v, want %v", found.ID(), user.ID())
	}
}

func TestUserRepository_FindByFacebookUserID(t *testing.T) {
	truncateTables(t)
	repo := postgres.NewUserRepository(getPool())
	ctx := getContext()

	user := testutil.Fixtures.UserBuilder().WithFacebook("fb42", "token").Build()
	repo.Create(ctx, user)

	found, err := repo.FindByFacebookUserID(ctx, "fb42")

	if err != nil {
		t.Fatalf("FindByFacebookUserID() error = %v", err)
	}
	if found.ID() != user.ID() {
		t.Errorf("ID = %v, want %v", found.ID(), user.ID())
	}
}

func TestUserRepository_FindByFacebookUserID_NotFound(t *testing.T) {
	truncateTables(t)
	repo := postgres.NewUserRepository(getPool())
	ctx := getContext()

	_, err := repo.FindByFacebookUserID(ctx, "unknown")

	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("FindByFacebookUserID() error = %v, want ErrNotFound", err)
	}
}

func TestUserRepository_ExistsByUsername(t *testing.T) {
	truncateTables(t)
	repo := postgres.NewUserRepository(getPool())
	ctx := getContext()

	user := testutil.Fixtures.User()
	repo.Create(ctx, user)

	exists, err := repo.ExistsByUsername(ctx, user.Username())
	if err != nil {
		t.Fatalf("ExistsByUsername() error = %v", err)
	}
	if !exists {
		t.Error("ExistsByUsername() = false, want true")
	}

	exists, err = repo.ExistsByUsername(ctx, "nonexistent_user")
	if err != nil {
		t.Fatalf("ExistsByUsername() error = %v", err)
	}
	if exists {
		t.Error("ExistsByUsername() = true, want false")
	}
}
