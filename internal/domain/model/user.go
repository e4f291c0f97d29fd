package model

import (
	"strings"

	"github.com/0xsj/overwatch-pkg/security"
	"github.com/0xsj/overwatch-pkg/types"

	domainerror "github.com/azkarapp/azkar-backend/internal/domain/error"
)

// User is the root aggregate for an account.
type User struct {
	id        types.ID
	username  string
	email     types.Optional[types.Email]
	name      types.Optional[string]
	facebook  types.Optional[FacebookIdentity]
	createdAt types.Timestamp
	updatedAt types.Timestamp
}

// NewUser creates a new User aggregate.
func NewUser(
	username string,
	email types.Optional[types.Email],
	name types.Optional[string],
) (*User, error) {
	if username == "" {
		return nil, domainerror.ErrUserUsernameRequired
	}

	now := types.Now()

	return &User{
		id:        types.NewID(),
		username:  username,
		email:     email,
		name:      name,
		facebook:  types.None[FacebookIdentity](),
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructUser creates a User from persisted data (bypasses validation).
// Used by repository when loading from database.
func ReconstructUser(
	id types.ID,
	username string,
	email types.Optional[types.Email],
	name types.Optional[string],
	facebook types.Optional[FacebookIdentity],
	createdAt types.Timestamp,
	updatedAt types.Timestamp,
) *User {
	return &User{
		id:        id,
		username:  username,
		email:     email,
		name:      name,
		facebook:  facebook,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Getters

func (u *User) ID() types.ID                               { return u.id }
func (u *User) Username() string                           { return u.username }
func (u *User) Email() types.Optional[types.Email]         { return u.email }
func (u *User) Name() types.Optional[string]               { return u.name }
func (u *User) Facebook() types.Optional[FacebookIdentity] { return u.facebook }
func (u *User) CreatedAt() types.Timestamp                 { return u.createdAt }
func (u *User) UpdatedAt() types.Timestamp                 { return u.updatedAt }

// Commands

func (u *User) SetEmail(email types.Email) {
	u.email = types.Some(email)
	u.updatedAt = types.Now()
}

func (u *User) SetName(name string) {
	u.name = types.Some(name)
	u.updatedAt = types.Now()
}

// LinkFacebook overwrites the linked Facebook identity. Relinking is allowed:
// access tokens expire and the stored one must stay fresh.
func (u *User) LinkFacebook(identity FacebookIdentity) {
	u.facebook = types.Some(identity)
	u.updatedAt = types.Now()
}

// Queries

func (u *User) HasFacebook() bool {
	return u.facebook.IsPresent()
}

// GenerateUsername derives a username for a first-time Facebook login from the
// verified email's local part, suffixed with random hex to keep it unique.
func GenerateUsername(email string) (string, error) {
	local := email
	if at := strings.IndexByte(email, '@'); at > 0 {
		local = email[:at]
	}

	var b strings.Builder
	for _, r := range strings.ToLower(local) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	base := b.String()
	if base == "" {
		base = "user"
	}

	suffix, err := security.RandomHex(4)
	if err != nil {
		return "", err
	}

	return base + "_" + suffix, nil
}
