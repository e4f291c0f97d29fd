package query

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
)

// ListPersonalChallenges retrieves the personal challenges a user created.
type ListPersonalChallenges struct {
	UserID types.ID
}

func (q ListPersonalChallenges) QueryName() string {
	return "challenge.list_personal"
}

// ListPersonalChallengesResult contains the user's personal challenges.
type ListPersonalChallengesResult struct {
	Challenges []*model.Challenge
}

// ListPersonalChallengesHandler handles the ListPersonalChallenges query.
type ListPersonalChallengesHandler interface {
	Handle(ctx context.Context, qry ListPersonalChallenges) (ListPersonalChallengesResult, error)
}
