package domain

import (
	"time"

	"github.com/google/uuid"
)

// Board is a named workspace owning an ordered set of lists.
type Board struct {
	ID          uuid.UUID
	Name        string
	Description *string
	OwnerID     uuid.UUID
	CreatedAt   time.Time
}

// List is a column on a board. At most one list per board carries the
// completion role.
type List struct {
	ID               uuid.UUID
	BoardID          uuid.UUID
	Name             string
	Position         int
	IsCompletionList bool
	CreatedAt        time.Time
}

// ListTemplate describes a list seeded into every new board.
type ListTemplate struct {
	Name             string
	IsCompletionList bool
}

// DefaultLists returns the lists a new board starts with, in display order.
func DefaultLists() []ListTemplate {
	return []ListTemplate{
		{Name: "Backlog"},
		{Name: "Prioritized"},
		{Name: "Doing"},
		{Name: "Done", IsCompletionList: true},
	}
}

// GroupName returns the real-time delivery group for a board.
func GroupName(boardID uuid.UUID) string {
	return "board-" + boardID.String()
}
