package command

import (
	"context"

	"github.com/azkarapp/azkar-backend/internal/domain/event"
	"github.com/azkarapp/azkar-backend/internal/domain/model"
	"github.com/azkarapp/azkar-backend/internal/port/inbound/command"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/messaging"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/repository"
)

type createPersonalChallengeHandler struct {
	challengeRepo repository.ChallengeRepository
	publisher     messaging.EventPublisher
}

func NewCreatePersonalChallengeHandler(
	challengeRepo repository.ChallengeRepository,
	publisher messaging.EventPublisher,
) command.CreatePersonalChallengeHandler {
	return &createPersonalChallengeHandler{
		challengeRepo: challengeRepo,
		publisher:     publisher,
	}
}

func (h *createPersonalChallengeHandler) Handle(ctx context.Context, cmd command.CreatePersonalChallenge) (command.CreatePersonalChallengeResult, error) {
	subChallenges := make([]model.SubChallenge, 0, len(cmd.SubChallenges))
	for _, input := range cmd.SubChallenges {
		sub, err := model.NewSubChallenge(input.Zekr, input.Repetitions)
		if err != nil {
			return command.CreatePersonalChallengeResult{}, err
		}
		subChallenges = append(subChallenges, sub)
	}

	challenge, err := model.NewPersonalChallenge(
		cmd.CreatingUserID,
		cmd.Name,
		cmd.Motivation,
		cmd.ExpiresAt,
		subChallenges,
	)
	if err != nil {
		return command.CreatePersonalChallengeResult{}, err
	}

	if err := h.challengeRepo.Create(ctx, challenge); err != nil {
		return command.CreatePersonalChallengeResult{}, err
	}

	_ = h.publisher.Publish(ctx, event.NewChallengeCreated(
		challenge.ID(),
		challenge.CreatingUserID(),
		challenge.Name(),
		challenge.ExpiresAt(),
	))

	return command.CreatePersonalChallengeResult{Challenge: challenge}, nil
}
