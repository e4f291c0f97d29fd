package query

import (
	"context"

	domainerror "github.com/azkarapp/azkar-backend/internal/domain/error"
	"github.com/azkarapp/azkar-backend/internal/port/inbound/query"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/repository"
)

// listPersonalChallengesHandler implements query.ListPersonalChallengesHandler.
type listPersonalChallengesHandler struct {
	challengeRepo repository.ChallengeRepository
}

// NewListPersonalChallengesHandler creates a new ListPersonalChallengesHandler.
func NewListPersonalChallengesHandler(
	challengeRepo repository.ChallengeRepository,
) query.ListPersonalChallengesHandler {
	return &listPersonalChallengesHandler{
		challengeRepo: challengeRepo,
	}
}

func (h *listPersonalChallengesHandler) Handle(ctx context.Context, qry query.ListPersonalChallenges) (query.ListPersonalChallengesResult, error) {
	if qry.UserID.IsEmpty() {
		return query.ListPersonalChallengesResult{}, domainerror.ErrUserIDRequired
	}

	challenges, err := h.challengeRepo.FindByCreatingUserID(ctx, qry.UserID)
	if err != nil {
		return query.ListPersonalChallengesResult{}, err
	}

	return query.ListPersonalChallengesResult{Challenges: challenges}, nil
}
