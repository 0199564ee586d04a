// Package lifecycle implements card creation, editing, moves between lists,
// deletion and the move history.
//
// Every mutation runs in one store transaction. The matching board event is
// published only after that transaction commits, so subscribers never see a
// change that was rolled back.
package lifecycle

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/binharademo/trelloclone/internal/domain"
)

type cardRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.Card, error)
	GetWithList(ctx context.Context, id uuid.UUID) (domain.CardWithList, error)
	Create(ctx context.Context, c domain.Card) (domain.Card, error)
	Update(ctx context.Context, c domain.Card, expectedVersion int64) (domain.Card, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type listRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (domain.List, error)
}

type historyRepo interface {
	Append(ctx context.Context, h domain.CardHistory) (domain.CardHistory, error)
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.CardHistory, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(ctx context.Context, evt domain.BoardEvent)
}

// Service is the card lifecycle manager.
type Service struct {
	cards   cardRepo
	lists   listRepo
	history historyRepo
	tx      txManager
	events  eventPublisher
	log     *slog.Logger
	now     func() time.Time
}

// NewService creates a new lifecycle Service.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	lists listRepo,
	history historyRepo,
	tx txManager,
	events eventPublisher,
) *Service {
	return &Service{
		cards:   cards,
		lists:   lists,
		history: history,
		tx:      tx,
		events:  events,
		log:     log.With("service", "lifecycle"),
		now:     func() time.Time { return time.Now().UTC() },
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
