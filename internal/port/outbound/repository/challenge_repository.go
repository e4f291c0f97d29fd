package repository

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
)

// ChallengeRepository manages persistence of personal challenges.
type ChallengeRepository interface {
	Create(ctx context.Context, challenge *model.Challenge) error
	Update(ctx context.Context, challenge *model.Challenge) error
	FindByID(ctx context.Context, id types.ID) (*model.Challenge, error)
	FindByCreatingUserID(ctx context.Context, userID types.ID) ([]*model.Challenge, error)
}
