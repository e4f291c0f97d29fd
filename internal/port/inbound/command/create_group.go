package command

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
)

// CreateGroup creates a group administered by the requesting user.
type CreateGroup struct {
	AdminID types.ID
	Name    string
	Binary  bool
}

func (c CreateGroup) CommandName() string {
	return "group.create"
}

// CreateGroupResult contains the created group.
type CreateGroupResult struct {
	Group *model.Group
}

// CreateGroupHandler handles the CreateGroup command.
type CreateGroupHandler interface {
	Handle(ctx context.Context, cmd CreateGroup) (CreateGroupResult, error)
}
