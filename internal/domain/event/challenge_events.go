package event

import (
	"github.com/0xsj/overwatch-pkg/types"
)

// ChallengeCreated is emitted when a user creates a personal challenge.
type ChallengeCreated struct {
	BaseEvent
	ChallengeID    types.ID
	CreatingUserID types.ID
	Name           string
	ExpiresAt      types.Timestamp
}

// NewChallengeCreated creates a new ChallengeCreated event.
func NewChallengeCreated(challengeID, creatingUserID types.ID, name string, expiresAt types.Timestamp) ChallengeCreated {
	return ChallengeCreated{
		BaseEvent:      NewBaseEvent(EventTypeChallengeCreated, challengeID, AggregateTypeChallenge),
		ChallengeID:    challengeID,
		CreatingUserID: creatingUserID,
		Name:           name,
		ExpiresAt:      expiresAt,
	}
}
