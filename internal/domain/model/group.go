package model

import (
	"github.com/0xsj/overwatch-pkg/types"

	domainerror "github.com/azkarapp/azkar-backend/internal/domain/error"
)

// Group is a set of users doing challenges together. A binary group is
// capped at two members and backs one-on-one challenges.
type Group struct {
	id        types.ID
	name      string
	adminID   types.ID
	memberIDs []types.ID
	binary    bool
	createdAt types.Timestamp
	updatedAt types.Timestamp
}

// NewGroup creates a new Group with the admin as its first member.
func NewGroup(name string, adminID types.ID, binary bool) (*Group, error) {
	if name == "" {
		return nil, domainerror.ErrGroupNameRequired
	}
	if adminID.IsEmpty() {
		return nil, domainerror.ErrUserIDRequired
	}

	now := types.Now()

	return &Group{
		id:        types.NewID(),
		name:      name,
		adminID:   adminID,
		memberIDs: []types.ID{adminID},
		binary:    binary,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructGroup creates a Group from persisted data.
func ReconstructGroup(
	id types.ID,
	name string,
	adminID types.ID,
	memberIDs []types.ID,
	binary bool,
	createdAt types.Timestamp,
	updatedAt types.Timestamp,
) *Group {
	return &Group{
		id:        id,
		name:      name,
		adminID:   adminID,
		memberIDs: memberIDs,
		binary:    binary,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Getters

func (g *Group) ID() types.ID              { return g.id }
func (g *Group) Name() string              { return g.name }
func (g *Group) AdminID() types.ID         { return g.adminID }
func (g *Group) IsBinary() bool            { return g.binary }
func (g *Group) CreatedAt() types.Timestamp { return g.createdAt }
func (g *Group) UpdatedAt() types.Timestamp { return g.updatedAt }

// MemberIDs returns a copy of the member list.
func (g *Group) MemberIDs() []types.ID {
	members := make([]types.ID, len(g.memberIDs))
	copy(members, g.memberIDs)
	return members
}

// Commands

func (g *Group) AddMember(userID types.ID) error {
	if userID.IsEmpty() {
		return domainerror.ErrUserIDRequired
	}
	if g.IsMember(userID) {
		return domainerror.ErrGroupMemberAlreadyExists
	}
	if g.binary && len(g.memberIDs) >= 2 {
		return domainerror.ErrGroupFull
	}
	g.memberIDs = append(g.memberIDs, userID)
	g.updatedAt = types.Now()
	return nil
}

// Queries

func (g *Group) IsMember(userID types.ID) bool {
	for _, id := range g.memberIDs {
		if id == userID {
			return true
		}
	}
	return false
}
