package repository

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/azkarapp/azkar-backend/internal/domain/model"
)

// GroupRepository manages persistence of groups.
type GroupRepository interface {
	Create(ctx context.Context, group *model.Group) error
	Update(ctx context.Context, group *model.Group) error
	FindByID(ctx context.Context, id types.ID) (*model.Group, error)
	FindByMemberID(ctx context.Context, memberID types.ID) ([]*model.Group, error)
}
