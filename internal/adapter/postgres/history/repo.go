// Package history implements the card move log using PostgreSQL.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/binharademo/trelloclone/internal/adapter/postgres"
	"github.com/binharademo/trelloclone/internal/domain"
)

const table = "card_history"

var columns = []string{"id", "seq", "card_id", "from_list_id", "to_list_id", "moved_at", "user_id"}

// Repo provides card history persistence backed by PostgreSQL.
// Rows are append-only.
type Repo struct {
	pool postgres.Querier
}

// New creates a new history repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// Append records one move. The store assigns Seq.
func (r *Repo) Append(ctx context.Context, h domain.CardHistory) (domain.CardHistory, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("id", "card_id", "from_list_id", "to_list_id", "moved_at", "user_id").
		Values(h.ID, h.CardID, h.FromListID, h.ToListID, h.MovedAt, h.UserID).
		Suffix("RETURNING id, seq, card_id, from_list_id, to_list_id, moved_at, user_id").
		ToSql()
	if err != nil {
		return domain.CardHistory{}, fmt.Errorf("build insert history: %w", err)
	}

	var row historyRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return domain.CardHistory{}, postgres.MapError(err, domain.EntityHistory, h.ID)
	}
	return row.toDomain(), nil
}

// ListByCard returns the moves of a card, newest first. Moves sharing a
// timestamp are ordered by insertion, newest inserted first.
func (r *Repo) ListByCard(ctx context.Context, cardID uuid.UUID) ([]domain.CardHistory, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"card_id": cardID}).
		OrderBy("moved_at DESC", "seq DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list history: %w", err)
	}

	var rows []historyRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.EntityCard, cardID)
	}

	out := make([]domain.CardHistory, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

type historyRow struct {
	ID         uuid.UUID `db:"id"`
	Seq        int64     `db:"seq"`
	CardID     uuid.UUID `db:"card_id"`
	FromListID uuid.UUID `db:"from_list_id"`
	ToListID   uuid.UUID `db:"to_list_id"`
	MovedAt    time.Time `db:"moved_at"`
	UserID     uuid.UUID `db:"user_id"`
}

func (r historyRow) toDomain() domain.CardHistory {
	return domain.CardHistory{
		ID:         r.ID,
		CardID:     r.CardID,
		FromListID: r.FromListID,
		ToListID:   r.ToListID,
		MovedAt:    r.MovedAt,
		UserID:     r.UserID,
		Seq:        r.Seq,
	}
}
