package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/binharademo/trelloclone/internal/domain"
)

// DeleteCard removes a card and its history. It reports false, without an
// error, when the card does not exist.
func (s *Service) DeleteCard(ctx context.Context, input DeleteCardInput) (bool, error) {
	if err := input.Validate(); err != nil {
		return false, err
	}

	var (
		deleted bool
		current domain.CardWithList
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		current, err = s.cards.GetWithList(txCtx, input.CardID)
		if domain.IsNotFoundEntity(err, domain.EntityCard) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get card: %w", err)
		}

		deleted, err = s.cards.Delete(txCtx, input.CardID)
		if err != nil {
			return fmt.Errorf("delete card: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if !deleted {
		return false, nil
	}

	s.events.Publish(ctx, domain.CardDeleted{
		BoardID:   current.List.BoardID,
		CardID:    input.CardID,
		ActorName: input.Actor.DisplayName(),
	})

	s.log.InfoContext(ctx, "card deleted", slog.String("card_id", input.CardID.String()))

	return true, nil
}
