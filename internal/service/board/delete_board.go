package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
	"github.com/binharademo/trelloclone/pkg/ctxutil"
)

// DeleteBoard removes a board owned by the authenticated user together with
// its lists, cards and history. It reports false when the user owns no such
// board.
func (s *Service) DeleteBoard(ctx context.Context, boardID uuid.UUID) (bool, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return false, domain.ErrUnauthorized
	}

	deleted, err := s.boards.Delete(ctx, boardID, userID)
	if err != nil {
		return false, fmt.Errorf("delete board: %w", err)
	}

	if deleted {
		s.log.InfoContext(ctx, "board deleted",
			slog.String("user_id", userID.String()),
			slog.String("board_id", boardID.String()),
		)
	}
	return deleted, nil
}
