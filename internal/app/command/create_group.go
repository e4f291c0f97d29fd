package command

import (
	"context"

	"github.com/azkarapp/azkar-backend/internal/domain/event"
	"github.com/azkarapp/azkar-backend/internal/domain/model"
	"github.com/azkarapp/azkar-backend/internal/port/inbound/command"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/messaging"
	"github.com/azkarapp/azkar-backend/internal/port/outbound/repository"
)

type createGroupHandler struct {
	groupRepo repository.GroupRepository
	publisher messaging.EventPublisher
}

func NewCreateGroupHandler(
	groupRepo repository.GroupRepository,
	publisher messaging.EventPublisher,
) command.CreateGroupHandler {
	return &createGroupHandler{
		groupRepo: groupRepo,
		publisher: publisher,
	}
}

func (h *createGroupHandler) Handle(ctx context.Context, cmd command.CreateGroup) (command.CreateGroupResult, error) {
	group, err := model.NewGroup(cmd.Name, cmd.AdminID, cmd.Binary)
	if err != nil {
		return command.CreateGroupResult{}, err
	}

	if err := h.groupRepo.Create(ctx, group); err != nil {
		return command.CreateGroupResult{}, err
	}

	_ = h.publisher.Publish(ctx, event.NewGroupCreated(
		group.ID(),
		group.AdminID(),
		group.Name(),
		group.IsBinary(),
	))

	return command.CreateGroupResult{Group: group}, nil
}
