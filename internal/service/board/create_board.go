package board

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
	"github.com/binharademo/trelloclone/pkg/ctxutil"
)

// CreateBoard creates a board for the authenticated user and seeds it with
// the default lists. The last default list is the completion list.
func (s *Service) CreateBoard(ctx context.Context, input CreateBoardInput) (*Details, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	var details Details
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		board, err := s.boards.Create(txCtx, domain.Board{
			ID:          uuid.New(),
			Name:        strings.TrimSpace(input.Name),
			Description: trimOrNil(input.Description),
			OwnerID:     userID,
			CreatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create board: %w", err)
		}

		templates := domain.DefaultLists()
		seed := make([]domain.List, len(templates))
		for i, tpl := range templates {
			seed[i] = domain.List{
				ID:               uuid.New(),
				BoardID:          board.ID,
				Name:             tpl.Name,
				Position:         i,
				IsCompletionList: tpl.IsCompletionList,
				CreatedAt:        now,
			}
		}

		lists, err := s.lists.CreateBatch(txCtx, seed)
		if err != nil {
			return fmt.Errorf("create lists: %w", err)
		}
		sort.Slice(lists, func(i, j int) bool { return lists[i].Position < lists[j].Position })

		details = Details{Board: board, Lists: make([]ListCards, len(lists))}
		for i, l := range lists {
			details.Lists[i] = ListCards{List: l, Cards: []domain.Card{}}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "board created",
		slog.String("user_id", userID.String()),
		slog.String("board_id", details.Board.ID.String()),
		slog.Int("lists", len(details.Lists)),
	)

	return &details, nil
}
