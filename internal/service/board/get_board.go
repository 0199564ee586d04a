package board

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
	"github.com/binharademo/trelloclone/pkg/ctxutil"
)

// GetBoard returns a board with its lists and their cards. Any
// authenticated user may read any board.
func (s *Service) GetBoard(ctx context.Context, boardID uuid.UUID) (*Details, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	board, err := s.boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("get board: %w", err)
	}

	lists, err := s.lists.ListByBoard(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("list lists: %w", err)
	}

	ids := make([]uuid.UUID, len(lists))
	for i, l := range lists {
		ids[i] = l.ID
	}
	cards, err := s.cards.ListByListIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	byList := make(map[uuid.UUID][]domain.Card, len(lists))
	for _, c := range cards {
		byList[c.ListID] = append(byList[c.ListID], c)
	}

	details := &Details{Board: board, Lists: make([]ListCards, len(lists))}
	for i, l := range lists {
		lc := byList[l.ID]
		if lc == nil {
			lc = []domain.Card{}
		}
		details.Lists[i] = ListCards{List: l, Cards: lc}
	}
	return details, nil
}

// ListBoards returns the boards owned by the authenticated user, newest
// first.
func (s *Service) ListBoards(ctx context.Context) ([]domain.Board, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	boards, err := s.boards.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	if boards == nil {
		boards = []domain.Board{}
	}
	return boards, nil
}

// ListCards returns the cards of one list, oldest first.
func (s *Service) ListCards(ctx context.Context, listID uuid.UUID) ([]domain.Card, error) {
	if _, err := s.lists.GetByID(ctx, listID); err != nil {
		return nil, fmt.Errorf("get list: %w", err)
	}

	cards, err := s.cards.ListByList(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	if cards == nil {
		cards = []domain.Card{}
	}
	return cards, nil
}
