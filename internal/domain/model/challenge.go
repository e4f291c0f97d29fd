package model

import (
	"github.com/0xsj/overwatch-pkg/types"

	domainerror "github.com/azkarapp/azkar-backend/internal/domain/error"
)

// SubChallenge is one zekr within a challenge with a repetition target.
// leftRepetitions counts down as the user reports progress and never goes
// below zero.
type SubChallenge struct {
	zekr                string
	originalRepetitions int
	leftRepetitions     int
}

// NewSubChallenge creates a SubChallenge with all repetitions remaining.
func NewSubChallenge(zekr string, repetitions int) (SubChallenge, error) {
	if zekr == "" {
		return SubChallenge{}, domainerror.ErrChallengeZekrRequired
	}
	if repetitions <= 0 {
		return SubChallenge{}, domainerror.ErrChallengeRepetitionsInvalid
	}

	return SubChallenge{
		zekr:                zekr,
		originalRepetitions: repetitions,
		leftRepetitions:     repetitions,
	}, nil
}

// ReconstructSubChallenge creates a SubChallenge from persisted data.
func ReconstructSubChallenge(zekr string, originalRepetitions, leftRepetitions int) SubChallenge {
	return SubChallenge{
		zekr:                zekr,
		originalRepetitions: originalRepetitions,
		leftRepetitions:     leftRepetitions,
	}
}

func (s SubChallenge) Zekr() string             { return s.zekr }
func (s SubChallenge) OriginalRepetitions() int { return s.originalRepetitions }
func (s SubChallenge) LeftRepetitions() int     { return s.leftRepetitions }

func (s SubChallenge) IsDone() bool {
	return s.leftRepetitions == 0
}

// Challenge is a personal goal with sub-challenges and an expiry date.
// The creating user accepts their own challenge on creation.
type Challenge struct {
	id             types.ID
	name           string
	motivation     string
	creatingUserID types.ID
	usersAccepted  []types.ID
	subChallenges  []SubChallenge
	ongoing        bool
	expiresAt      types.Timestamp
	createdAt      types.Timestamp
	updatedAt      types.Timestamp
}

// NewPersonalChallenge creates a personal Challenge. The expiry date must be
// in the future at creation time.
func NewPersonalChallenge(
	creatingUserID types.ID,
	name string,
	motivation string,
	expiresAt types.Timestamp,
	subChallenges []SubChallenge,
) (*Challenge, error) {
	if creatingUserID.IsEmpty() {
		return nil, domainerror.ErrUserIDRequired
	}
	if name == "" {
		return nil, domainerror.ErrChallengeNameRequired
	}
	if motivation == "" {
		return nil, domainerror.ErrChallengeMotivationRequired
	}
	if len(subChallenges) == 0 {
		return nil, domainerror.ErrChallengeSubChallengesRequired
	}

	now := types.Now()
	if !expiresAt.After(now) {
		return nil, domainerror.ErrChallengeExpiryInPast
	}

	return &Challenge{
		id:             types.NewID(),
		name:           name,
		motivation:     motivation,
		creatingUserID: creatingUserID,
		usersAccepted:  []types.ID{creatingUserID},
		subChallenges:  subChallenges,
		ongoing:        true,
		expiresAt:      expiresAt,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// ReconstructChallenge creates a Challenge from persisted data.
func ReconstructChallenge(
	id types.ID,
	name string,
	motivation string,
	creatingUserID types.ID,
	usersAccepted []types.ID,
	subChallenges []SubChallenge,
	ongoing bool,
	expiresAt types.Timestamp,
	createdAt types.Timestamp,
	updatedAt types.Timestamp,
) *Challenge {
	return &Challenge{
		id:             id,
		name:           name,
		motivation:     motivation,
		creatingUserID: creatingUserID,
		usersAccepted:  usersAccepted,
		subChallenges:  subChallenges,
		ongoing:        ongoing,
		expiresAt:      expiresAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

// Getters

func (c *Challenge) ID() types.ID              { return c.id }
func (c *Challenge) Name() string              { return c.name }
func (c *Challenge) Motivation() string        { return c.motivation }
func (c *Challenge) CreatingUserID() types.ID  { return c.creatingUserID }
func (c *Challenge) IsOngoing() bool           { return c.ongoing }
func (c *Challenge) ExpiresAt() types.Timestamp { return c.expiresAt }
func (c *Challenge) CreatedAt() types.Timestamp { return c.createdAt }
func (c *Challenge) UpdatedAt() types.Timestamp { return c.updatedAt }

// UsersAccepted returns a copy of the accepted-user list.
func (c *Challenge) UsersAccepted() []types.ID {
	users := make([]types.ID, len(c.usersAccepted))
	copy(users, c.usersAccepted)
	return users
}

// SubChallenges returns a copy of the sub-challenge list.
func (c *Challenge) SubChallenges() []SubChallenge {
	subs := make([]SubChallenge, len(c.subChallenges))
	copy(subs, c.subChallenges)
	return subs
}

// Commands

// RecordRepetitions decrements the remaining repetitions of the sub-challenge
// at index by count. The challenge stops being ongoing once every
// sub-challenge reaches zero.
func (c *Challenge) RecordRepetitions(index, count int) error {
	if index < 0 || index >= len(c.subChallenges) {
		return domainerror.ErrChallengeSubChallengeOutOfRange
	}
	if count <= 0 {
		return domainerror.ErrChallengeRepetitionsInvalid
	}

	sub := &c.subChallenges[index]
	if sub.leftRepetitions < count {
		return domainerror.ErrChallengeRepetitionsExhausted
	}

	sub.leftRepetitions -= count
	c.updatedAt = types.Now()

	if c.allSubChallengesDone() {
		c.ongoing = false
	}
	return nil
}

func (c *Challenge) allSubChallengesDone() bool {
	for _, sub := range c.subChallenges {
		if !sub.IsDone() {
			return false
		}
	}
	return true
}

// Queries

func (c *Challenge) IsExpired() bool {
	return types.Now().After(c.expiresAt)
}
