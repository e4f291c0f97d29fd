package testutil

import (
	"time"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
)

// Fixtures provides builders for domain models in tests.
var Fixtures = &fixtures{}

type fixtures struct{}

// --- User ---

// User creates a new User with default values.
func (f *fixtures) User() *model.User {
	user, err := model.NewUser(
		Fake.Username(),
		types.None[types.Email](),
		types.None[string](),
	)
	if err != nil {
		panic("fixtures: failed to create user: " + err.Error())
	}
	return user
}

// FacebookIdentity creates a FacebookIdentity with default values.
func (f *fixtures) FacebookIdentity() model.FacebookIdentity {
	identity, err := model.NewFacebookIdentity(
		Fake.FacebookUserID(),
		Fake.Name(),
		Fake.Email(),
		Fake.AccessToken(),
	)
	if err != nil {
		panic("fixtures: failed to create facebook identity: " + err.Error())
	}
	return identity
}

// UserBuilder returns a builder for customizing User creation.
func (f *fixtures) UserBuilder() *UserBuilder {
	return &UserBuilder{
		username: Fake.Username(),
	}
}

type UserBuilder struct {
	username string
	email    types.Optional[types.Email]
	name     types.Optional[string]
	facebook types.Optional[model.FacebookIdentity]

	// For reconstruction
	id          types.ID
	createdAt   types.Timestamp
	updatedAt   types.Timestamp
	reconstruct bool
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	e, err := types.NewEmail(email)
	if err != nil {
		panic("fixtures: invalid email: " + err.Error())
	}
	b.email = types.Some(e)
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.name = types.Some(name)
	return b
}

func (b *UserBuilder) WithFacebook(facebookUserID, accessToken string) *UserBuilder {
	identity, err := model.NewFacebookIdentity(facebookUserID, Fake.Name(), Fake.Email(), accessToken)
	if err != nil {
		panic("fixtures: failed to create facebook identity: " + err.Error())
	}
	b.facebook = types.Some(identity)
	return b
}

func (b *UserBuilder) WithFacebookIdentity(identity model.FacebookIdentity) *UserBuilder {
	b.facebook = types.Some(identity)
	return b
}

func (b *UserBuilder) WithID(id types.ID) *UserBuilder {
	b.id = id
	b.reconstruct = true
	return b
}

func (b *UserBuilder) WithCreatedAt(t time.Time) *UserBuilder {
	b.createdAt = types.FromTime(t)
	b.reconstruct = true
	return b
}

func (b *UserBuilder) Build() *model.User {
	if b.reconstruct {
		id := b.id
		if id.IsEmpty() {
			id = types.NewID()
		}
		createdAt := b.createdAt
		if createdAt.IsZero() {
			createdAt = types.Now()
		}
		updatedAt := b.updatedAt
		if updatedAt.IsZero() {
			updatedAt = createdAt
		}

		return model.ReconstructUser(
			id,
			b.username,
			b.email,
			b.name,
			b.facebook,
			createdAt,
			updatedAt,
		)
	}

	user, err := model.NewUser(b.username, b.email, b.name)
	if err != nil {
		panic("fixtures: failed to create user: " + err.Error())
	}

	if b.facebook.IsPresent() {
		user.LinkFacebook(b.facebook.MustGet())
	}

	return user
}

// --- Group ---

// Group creates a new Group with default values.
func (f *fixtures) Group(adminID types.ID) *model.Group {
	group, err := model.NewGroup(Fake.String("group"), adminID, false)
	if err != nil {
		panic("fixtures: failed to create group: " + err.Error())
	}
	return group
}

// GroupBuilder returns a builder for customizing Group creation.
func (f *fixtures) GroupBuilder(adminID types.ID) *GroupBuilder {
	return &GroupBuilder{
		name:    Fake.String("group"),
		adminID: adminID,
	}
}

type GroupBuilder struct {
	name    string
	adminID types.ID
	binary  bool
	members []types.ID
}

func (b *GroupBuilder) WithName(name string) *GroupBuilder {
	b.name = name
	return b
}

func (b *GroupBuilder) Binary() *GroupBuilder {
	b.binary = true
	return b
}

func (b *GroupBuilder) WithMembers(members ...types.ID) *GroupBuilder {
	b.members = members
	return b
}

func (b *GroupBuilder) Build() *model.Group {
	group, err := model.NewGroup(b.name, b.adminID, b.binary)
	if err != nil {
		panic("fixtures: failed to create group: " + err.Error())
	}
	for _, member := range b.members {
		if err := group.AddMember(member); err != nil {
			panic("fixtures: failed to add member: " + err.Error())
		}
	}
	return group
}

// --- Challenge ---

// Challenge creates a new personal Challenge with default values.
func (f *fixtures) Challenge(creatingUserID types.ID) *model.Challenge {
	return f.ChallengeBuilder(creatingUserID).Build()
}

// ChallengeBuilder returns a builder for customizing Challenge creation.
func (f *fixtures) ChallengeBuilder(creatingUserID types.ID) *ChallengeBuilder {
	return &ChallengeBuilder{
		creatingUserID: creatingUserID,
		name:           Fake.String("challenge"),
		motivation:     "For the sake of Allah",
		expiresAt:      types.FromTime(Fake.FutureTime(30 * 24 * time.Hour)),
	}
}

type ChallengeBuilder struct {
	creatingUserID types.ID
	name           string
	motivation     string
	expiresAt      types.Timestamp
	subChallenges  []model.SubChallenge
}

func (b *ChallengeBuilder) WithName(name string) *ChallengeBuilder {
	b.name = name
	return b
}

func (b *ChallengeBuilder) WithMotivation(motivation string) *ChallengeBuilder {
	b.motivation = motivation
	return b
}

func (b *ChallengeBuilder) WithExpiry(t time.Time) *ChallengeBuilder {
	b.expiresAt = types.FromTime(t)
	return b
}

func (b *ChallengeBuilder) WithSubChallenge(zekr string, repetitions int) *ChallengeBuilder {
	sub, err := model.NewSubChallenge(zekr, repetitions)
	if err != nil {
		panic("fixtures: failed to create sub-challenge: " + err.Error())
	}
	b.subChallenges = append(b.subChallenges, sub)
	return b
}

func (b *ChallengeBuilder) Build() *model.Challenge {
	subChallenges := b.subChallenges
	if len(subChallenges) == 0 {
		sub, err := model.NewSubChallenge(Fake.Zekr(), 33)
		if err != nil {
			panic("fixtures: failed to create sub-challenge: " + err.Error())
		}
		subChallenges = []model.SubChallenge{sub}
	}

	challenge, err := model.NewPersonalChallenge(
		b.creatingUserID,
		b.name,
		b.motivation,
		b.expiresAt,
		subChallenges,
	)
	if err != nil {
		panic("fixtures: failed to create challenge: " + err.Error())
	}
	return challenge
}
