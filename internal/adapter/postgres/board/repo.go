// Package board implements the Board repository using PostgreSQL.
package board

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/binharademo/trelloclone/internal/adapter/postgres"
	"github.com/binharademo/trelloclone/internal/domain"
)

const table = "boards"

var columns = []string{"id", "name", "description", "owner_id", "created_at"}

// Repo provides board persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new board repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a board by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Board, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Board{}, fmt.Errorf("build get board: %w", err)
	}

	var row boardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return domain.Board{}, postgres.MapError(err, domain.EntityBoard, id)
	}
	return row.toDomain(), nil
}

// ListByOwner returns the boards owned by a user, newest first.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Board, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list boards: %w", err)
	}

	var rows []boardRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.EntityUser, ownerID)
	}

	boards := make([]domain.Board, len(rows))
	for i, row := range rows {
		boards[i] = row.toDomain()
	}
	return boards, nil
}

// Create inserts a board.
func (r *Repo) Create(ctx context.Context, b domain.Board) (domain.Board, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(b.ID, b.Name, b.Description, b.OwnerID, b.CreatedAt).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return domain.Board{}, fmt.Errorf("build insert board: %w", err)
	}

	var row boardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return domain.Board{}, postgres.MapError(err, domain.EntityBoard, b.ID)
	}
	return row.toDomain(), nil
}

// Delete removes a board owned by ownerID together with its lists, cards
// and history. Returns false when no such board exists for that owner.
func (r *Repo) Delete(ctx context.Context, id, ownerID uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete board: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, domain.EntityBoard, id)
	}
	return tag.RowsAffected() > 0, nil
}

type boardRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Description *string   `db:"description"`
	OwnerID     uuid.UUID `db:"owner_id"`
	CreatedAt   time.Time `db:"created_at"`
}

func (r boardRow) toDomain() domain.Board {
	return domain.Board{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		OwnerID:     r.OwnerID,
		CreatedAt:   r.CreatedAt,
	}
}
