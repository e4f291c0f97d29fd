package command

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
)

// SubChallengeInput is one zekr with its repetition target.
type SubChallengeInput struct {
	Zekr        string
	Repetitions int
}

// CreatePersonalChallenge creates a personal challenge for the requesting
// user.
type CreatePersonalChallenge struct {
	CreatingUserID types.ID
	Name           string
	Motivation     string
	ExpiresAt      types.Timestamp
	SubChallenges  []SubChallengeInput
}

func (c CreatePersonalChallenge) CommandName() string {
	return "challenge.create_personal"
}

// CreatePersonalChallengeResult contains the created challenge.
type CreatePersonalChallengeResult struct {
	Challenge *model.Challenge
}

// CreatePersonalChallengeHandler handles the CreatePersonalChallenge command.
type CreatePersonalChallengeHandler interface {
	Handle(ctx context.Context, cmd CreatePersonalChallenge) (CreatePersonalChallengeResult, error)
}
