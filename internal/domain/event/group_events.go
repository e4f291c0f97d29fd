package event

import (
	"github.com/0xsj/overwatch-pkg/types"
)

// GroupCreated is emitted when a user creates a group.
type GroupCreated struct {
	BaseEvent
	GroupID types.ID
	AdminID types.ID
	Name    string
	Binary  bool
}

// NewGroupCreated creates a new GroupCreated event.
func NewGroupCreated(groupID, adminID types.ID, name string, binary bool) GroupCreated {
	return GroupCreated{
		BaseEvent: NewBaseEvent(EventTypeGroupCreated, groupID, AggregateTypeGroup),
		GroupID:   groupID,
		AdminID:   adminID,
		Name:      name,
		Binary:    binary,
	}
}
