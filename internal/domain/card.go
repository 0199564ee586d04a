package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card is a unit of work that belongs to exactly one list at a time.
type Card struct {
	ID          uuid.UUID
	ListID      uuid.UUID
	Title       string
	Description *string
	DueDate     *time.Time
	CompletedAt *time.Time
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CardWithList pairs a card with the list it currently sits in.
type CardWithList struct {
	Card Card
	List List
}

// ApplyCompletion re-establishes the completion invariant for a card resting
// in list: CompletedAt is set when the list is the completion list and
// cleared otherwise. An existing completion timestamp is kept when the card
// already sits in the completion list. On a move, call it before ListID is
// reassigned so that entering the completion list stamps a fresh time.
func (c *Card) ApplyCompletion(list List, now time.Time) {
	if !list.IsCompletionList {
		c.CompletedAt = nil
		return
	}
	if c.CompletedAt == nil || c.ListID != list.ID {
		t := now
		c.CompletedAt = &t
	}
}

// IsCompleted reports whether the card carries a completion timestamp.
func (c *Card) IsCompleted() bool {
	return c.CompletedAt != nil
}

// CardHistory is an immutable record of one card moving between lists.
type CardHistory struct {
	ID         uuid.UUID
	CardID     uuid.UUID
	FromListID uuid.UUID
	ToListID   uuid.UUID
	MovedAt    time.Time
	UserID     uuid.UUID
	Seq        int64
}
