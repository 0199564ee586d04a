// Package board manages boards and their lists: creation with the default
// lists, owner listings, deletion and read views of a board's cards.
package board

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
)

type boardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Board, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Board, error)
	Create(ctx context.Context, b domain.Board) (domain.Board, error)
	Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error)
}

type listRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.List, error)
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.List, error)
	CreateBatch(ctx context.Context, lists []domain.List) ([]domain.List, error)
}

type cardRepo interface {
	ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Card, error)
	ListByListIDs(ctx context.Context, listIDs []uuid.UUID) ([]domain.Card, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides board management operations.
type Service struct {
	boards boardRepo
	lists  listRepo
	cards  cardRepo
	tx     txManager
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a new board Service.
func NewService(
	log *slog.Logger,
	boards boardRepo,
	lists listRepo,
	cards cardRepo,
	tx txManager,
) *Service {
	return &Service{
		boards: boards,
		lists:  lists,
		cards:  cards,
		tx:     tx,
		log:    log.With("service", "board"),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
