package lifecycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
)

// GetHistory returns the moves of a card, newest first. A card without
// moves, or one that does not exist, yields an empty slice.
func (s *Service) GetHistory(ctx context.Context, cardID uuid.UUID) ([]domain.CardHistory, error) {
	entries, err := s.history.ListByCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	if entries == nil {
		entries = []domain.CardHistory{}
	}
	return entries, nil
}
