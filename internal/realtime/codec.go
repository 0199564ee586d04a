package realtime

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
)

// Envelope is the wire form of a board event.
type Envelope struct {
	Type    domain.EventKind `json:"type"`
	BoardID uuid.UUID        `json:"boardId"`
	Group   string           `json:"group"`
	Payload json.RawMessage  `json:"payload"`
}

// CardDTO is the wire form of a card.
type CardDTO struct {
	ID          uuid.UUID  `json:"id"`
	ListID      uuid.UUID  `json:"listId"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	Version     int64      `json:"version"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// NewCardDTO converts a domain card to its wire form.
func NewCardDTO(c domain.Card) CardDTO {
	return CardDTO{
		ID:          c.ID,
		ListID:      c.ListID,
		Title:       c.Title,
		Description: c.Description,
		DueDate:     c.DueDate,
		CompletedAt: c.CompletedAt,
		Version:     c.Version,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func (d CardDTO) toDomain() domain.Card {
	return domain.Card{
		ID:          d.ID,
		ListID:      d.ListID,
		Title:       d.Title,
		Description: d.Description,
		DueDate:     d.DueDate,
		CompletedAt: d.CompletedAt,
		Version:     d.Version,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type cardPayload struct {
	Card      CardDTO `json:"card"`
	ActorName string  `json:"actorName"`
}

type movedPayload struct {
	Card       CardDTO   `json:"card"`
	FromListID uuid.UUID `json:"fromListId"`
	ToListID   uuid.UUID `json:"toListId"`
	ActorName  string    `json:"actorName"`
}

type deletedPayload struct {
	CardID    uuid.UUID `json:"cardId"`
	ActorName string    `json:"actorName"`
}

// EncodeEvent marshals evt into its JSON envelope.
func EncodeEvent(evt domain.BoardEvent) ([]byte, error) {
	var payload any
	switch e := evt.(type) {
	case domain.CardAdded:
		payload = cardPayload{Card: NewCardDTO(e.Card), ActorName: e.ActorName}
	case domain.CardUpdated:
		payload = cardPayload{Card: NewCardDTO(e.Card), ActorName: e.ActorName}
	case domain.CardMoved:
		payload = movedPayload{
			Card:       NewCardDTO(e.Card),
			FromListID: e.FromListID,
			ToListID:   e.ToListID,
			ActorName:  e.ActorName,
		}
	case domain.CardDeleted:
		payload = deletedPayload{CardID: e.CardID, ActorName: e.ActorName}
	default:
		return nil, fmt.Errorf("encode event: unsupported type %T", evt)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", evt.Kind(), err)
	}

	return json.Marshal(Envelope{
		Type:    evt.Kind(),
		BoardID: evt.Board(),
		Group:   domain.GroupName(evt.Board()),
		Payload: raw,
	})
}

// DecodeEvent parses a JSON envelope back into a board event.
func DecodeEvent(data []byte) (domain.BoardEvent, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if env.BoardID == uuid.Nil {
		return nil, fmt.Errorf("decode envelope: missing boardId")
	}

	switch env.Type {
	case domain.EventCardAdded, domain.EventCardUpdated:
		var p cardPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", env.Type, err)
		}
		if env.Type == domain.EventCardAdded {
			return domain.CardAdded{BoardID: env.BoardID, Card: p.Card.toDomain(), ActorName: p.ActorName}, nil
		}
		return domain.CardUpdated{BoardID: env.BoardID, Card: p.Card.toDomain(), ActorName: p.ActorName}, nil

	case domain.EventCardMoved:
		var p movedPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", env.Type, err)
		}
		return domain.CardMoved{
			BoardID:    env.BoardID,
			Card:       p.Card.toDomain(),
			FromListID: p.FromListID,
			ToListID:   p.ToListID,
			ActorName:  p.ActorName,
		}, nil

	case domain.EventCardDeleted:
		var p deletedPayload
		if err := json.Unmarshal(env.Payload, &p); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", env.Type, err)
		}
		return domain.CardDeleted{BoardID: env.BoardID, CardID: p.CardID, ActorName: p.ActorName}, nil
	}

	return nil, fmt.Errorf("decode envelope: unknown type %q", env.Type)
}
