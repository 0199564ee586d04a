package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
)

// CreateCard adds a card to a list. A card created directly in the
// completion list is stamped as completed.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (*domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		created domain.Card
		boardID uuid.UUID
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		list, err := s.lists.GetByID(txCtx, input.ListID)
		if err != nil {
			return fmt.Errorf("get list: %w", err)
		}

		now := s.now()
		card := domain.Card{
			ID:          uuid.New(),
			ListID:      list.ID,
			Title:       strings.TrimSpace(input.Title),
			Description: trimOrNil(input.Description),
			DueDate:     input.DueDate,
			Version:     1,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		card.ApplyCompletion(list, now)

		created, err = s.cards.Create(txCtx, card)
		if err != nil {
			return fmt.Errorf("create card: %w", err)
		}
		boardID = list.BoardID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, domain.CardAdded{
		BoardID:   boardID,
		Card:      created,
		ActorName: input.Actor.DisplayName(),
	})

	s.log.InfoContext(ctx, "card created",
		slog.String("card_id", created.ID.String()),
		slog.String("list_id", created.ListID.String()),
		slog.String("board_id", boardID.String()),
	)

	return &created, nil
}
