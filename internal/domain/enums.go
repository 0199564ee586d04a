package domain

// EventKind names a board event on the wire.
type EventKind string

const (
	EventCardAdded   EventKind = "CardAdded"
	EventCardUpdated EventKind = "CardUpdated"
	EventCardMoved   EventKind = "CardMoved"
	EventCardDeleted EventKind = "CardDeleted"
)

func (k EventKind) String() string { return string(k) }

func (k EventKind) IsValid() bool {
	switch k {
	case EventCardAdded, EventCardUpdated, EventCardMoved, EventCardDeleted:
		return true
	}
	return false
}

// AllEventKinds returns every event kind in a stable order.
func AllEventKinds() []EventKind {
	return []EventKind{EventCardAdded, EventCardUpdated, EventCardMoved, EventCardDeleted}
}
