package lifecycle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
)

// GetCard returns a card by id.
func (s *Service) GetCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	card, err := s.cards.GetByID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	return &card, nil
}

// GetCardWithList returns a card together with its current list.
func (s *Service) GetCardWithList(ctx context.Context, cardID uuid.UUID) (*domain.CardWithList, error) {
	cwl, err := s.cards.GetWithList(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("get card: %w", err)
	}
	return &cwl, nil
}
