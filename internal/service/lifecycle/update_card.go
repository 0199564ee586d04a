package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/binharademo/trelloclone/internal/domain"
)

// UpdateCard edits a card's title, description and due date. It never
// changes lists: a ListID different from the current list is rejected, and
// the completion timestamp is re-checked against the current list so an edit
// can not leave it inconsistent.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (*domain.Card, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		updated domain.Card
		current domain.CardWithList
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		current, err = s.cards.GetWithList(txCtx, input.CardID)
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}

		if input.ListID != nil && *input.ListID != current.Card.ListID {
			return domain.NewValidationError("list_id", "use move to change the list of a card")
		}
		if input.ExpectedVersion != nil && *input.ExpectedVersion != current.Card.Version {
			return fmt.Errorf("card %s at version %d, expected %d: %w",
				input.CardID, current.Card.Version, *input.ExpectedVersion, domain.ErrConflict)
		}

		now := s.now()
		card := current.Card
		card.Title = strings.TrimSpace(input.Title)
		card.Description = trimOrNil(input.Description)
		card.DueDate = input.DueDate
		card.UpdatedAt = now
		card.ApplyCompletion(current.List, now)

		updated, err = s.cards.Update(txCtx, card, current.Card.Version)
		if err != nil {
			return fmt.Errorf("update card: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, domain.CardUpdated{
		BoardID:   current.List.BoardID,
		Card:      updated,
		ActorName: input.Actor.DisplayName(),
	})

	s.log.InfoContext(ctx, "card updated",
		slog.String("card_id", updated.ID.String()),
		slog.Int64("version", updated.Version),
	)

	return &updated, nil
}
