package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
)

// MoveCard moves a card to another list of the same board, re-establishes
// the completion timestamp against the target list and appends one history
// row, all in one transaction. Moving a card to the list it already sits in
// returns it unchanged: no history row, no version bump, no event.
func (s *Service) MoveCard(ctx context.Context, input MoveCardInput) (*domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		result  domain.Card
		from    domain.List
		moved   bool
		boardID uuid.UUID
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.cards.GetWithList(txCtx, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}

		target, err := s.lists.GetByID(txCtx, input.ToListID)
		if err != nil {
			return fmt.Errorf("get target list: %w", err)
		}
		// A list on another board is invisible from this card.
		if target.BoardID != current.List.BoardID {
			return fmt.Errorf("get target list: %w", domain.NewNotFoundError(domain.EntityList, input.ToListID))
		}

		if input.ExpectedVersion != nil && *input.ExpectedVersion != current.Card.Version {
			return fmt.Errorf("card %s at version %d, expected %d: %w",
				input.CardID, current.Card.Version, *input.ExpectedVersion, domain.ErrConflict)
		}

		if target.ID == current.Card.ListID {
			result = current.Card
			return nil
		}

		now := s.now()
		card := current.Card
		card.ApplyCompletion(target, now)
		card.ListID = target.ID
		card.UpdatedAt = now

		result, err = s.cards.Update(txCtx, card, current.Card.Version)
		if err != nil {
			return fmt.Errorf("update card: %w", err)
		}

		_, err = s.history.Append(txCtx, domain.CardHistory{
			ID:         uuid.New(),
			CardID:     card.ID,
			FromListID: current.Card.ListID,
			ToListID:   target.ID,
			MovedAt:    now,
			UserID:     input.Actor.ID,
		})
		if err != nil {
			return fmt.Errorf("append history: %w", err)
		}

		from = current.List
		boardID = target.BoardID
		moved = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !moved {
		s.log.DebugContext(ctx, "move to current list ignored", slog.String("card_id", result.ID.String()))
		return &result, nil
	}

	s.events.Publish(ctx, domain.CardMoved{
		BoardID:    boardID,
		Card:       result,
		FromListID: from.ID,
		ToListID:   result.ListID,
		ActorName:  input.Actor.DisplayName(),
	})

	s.log.InfoContext(ctx, "card moved",
		slog.String("card_id", result.ID.String()),
		slog.String("from_list_id", from.ID.String()),
		slog.String("to_list_id", result.ListID.String()),
		slog.Bool("completed", result.IsCompleted()),
	)

	return &result, nil
}
