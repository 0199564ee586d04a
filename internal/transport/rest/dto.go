package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
	"github.com/binharademo/trelloclone/internal/realtime"
	"github.com/binharademo/trelloclone/internal/service/board"
)

type boardResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	OwnerID     uuid.UUID `json:"ownerId"`
	OwnerName   string    `json:"ownerName"`
	CreatedAt   time.Time `json:"createdAt"`
}

type boardDetailsResponse struct {
	boardResponse
	Lists []listResponse `json:"lists"`
}

type listResponse struct {
	ID               uuid.UUID          `json:"id"`
	Name             string             `json:"name"`
	Position         int                `json:"position"`
	IsCompletionList bool               `json:"isCompletionList"`
	Cards            []realtime.CardDTO `json:"cards"`
}

type historyResponse struct {
	ID         uuid.UUID `json:"id"`
	CardID     uuid.UUID `json:"cardId"`
	FromListID uuid.UUID `json:"fromListId"`
	ToListID   uuid.UUID `json:"toListId"`
	MovedAt    time.Time `json:"movedAt"`
	UserID     uuid.UUID `json:"userId"`
	UserName   string    `json:"userName"`
}

func toBoardResponse(b domain.Board, names map[uuid.UUID]string) boardResponse {
	return boardResponse{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		OwnerID:     b.OwnerID,
		OwnerName:   nameOf(names, b.OwnerID),
		CreatedAt:   b.CreatedAt,
	}
}

func toBoardDetailsResponse(d *board.Details, names map[uuid.UUID]string) boardDetailsResponse {
	resp := boardDetailsResponse{
		boardResponse: toBoardResponse(d.Board, names),
		Lists:         make([]listResponse, len(d.Lists)),
	}
	for i, lc := range d.Lists {
		resp.Lists[i] = listResponse{
			ID:               lc.List.ID,
			Name:             lc.List.Name,
			Position:         lc.List.Position,
			IsCompletionList: lc.List.IsCompletionList,
			Cards:            toCardDTOs(lc.Cards),
		}
	}
	return resp
}

func toCardDTOs(cards []domain.Card) []realtime.CardDTO {
	out := make([]realtime.CardDTO, len(cards))
	for i, c := range cards {
		out[i] = realtime.NewCardDTO(c)
	}
	return out
}

func toHistoryResponse(rows []domain.CardHistory, names map[uuid.UUID]string) []historyResponse {
	out := make([]historyResponse, len(rows))
	for i, h := range rows {
		out[i] = historyResponse{
			ID:         h.ID,
			CardID:     h.CardID,
			FromListID: h.FromListID,
			ToListID:   h.ToListID,
			MovedAt:    h.MovedAt,
			UserID:     h.UserID,
			UserName:   nameOf(names, h.UserID),
		}
	}
	return out
}

func nameOf(names map[uuid.UUID]string, id uuid.UUID) string {
	if n, ok := names[id]; ok && n != "" {
		return n
	}
	return domain.AnonymousName
}
