package domain

import "github.com/google/uuid"

// BoardEvent is a lifecycle event scoped to one board. The set of
// implementations is closed: CardAdded, CardUpdated, CardMoved, CardDeleted.
type BoardEvent interface {
	Kind() EventKind
	Board() uuid.UUID
	isBoardEvent()
}

// CardAdded is published after a card is created.
type CardAdded struct {
	BoardID   uuid.UUID
	Card      Card
	ActorName string
}

// CardUpdated is published after a card's content changes.
type CardUpdated struct {
	BoardID   uuid.UUID
	Card      Card
	ActorName string
}

// CardMoved is published after a card changes lists. Card holds the
// committed post-move state.
type CardMoved struct {
	BoardID    uuid.UUID
	Card       Card
	FromListID uuid.UUID
	ToListID   uuid.UUID
	ActorName  string
}

// CardDeleted is published after a card is removed.
type CardDeleted struct {
	BoardID   uuid.UUID
	CardID    uuid.UUID
	ActorName string
}

func (CardAdded) Kind() EventKind   { return EventCardAdded }
func (CardUpdated) Kind() EventKind { return EventCardUpdated }
func (CardMoved) Kind() EventKind   { return EventCardMoved }
func (CardDeleted) Kind() EventKind { return EventCardDeleted }

func (e CardAdded) Board() uuid.UUID   { return e.BoardID }
func (e CardUpdated) Board() uuid.UUID { return e.BoardID }
func (e CardMoved) Board() uuid.UUID   { return e.BoardID }
func (e CardDeleted) Board() uuid.UUID { return e.BoardID }

func (CardAdded) isBoardEvent()   {}
func (CardUpdated) isBoardEvent() {}
func (CardMoved) isBoardEvent()   {}
func (CardDeleted) isBoardEvent() {}
