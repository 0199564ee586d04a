// Package list implements the List repository using PostgreSQL.
package list

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

const table = "lists"

var columns = []string{"id", "board_id", "name", "position", "is_completion_list", "created_at"}

// Repo provides list persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new list repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a list by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.List, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.List{}, fmt.Errorf("build get list: %w", err)
	}

	var row listRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return domain.List{}, postgres.MapError(err, domain.EntityList, id)
	}
	return row.toDomain(), nil
}

// ListByBoard returns the lists of a board ordered by position.
func (r *Repo) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]domain.List, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"board_id": boardID}).
		OrderBy("position ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list lists: %w", err)
	}

	var rows []listRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.EntityBoard, boardID)
	}

	lists := make([]domain.List, len(rows))
	for i, row := range rows {
		lists[i] = row.toDomain()
	}
	return lists, nil
}

// CreateBatch inserts several lists in one statement.
func (r *Repo) CreateBatch(ctx context.Context, lists []domain.List) ([]domain.List, error) {
	if len(lists) == 0 {
		return []domain.List{}, nil
	}

	insert := postgres.Builder().Insert(table).Columns(columns...)
	for _, l := range lists {
		insert = insert.Values(l.ID, l.BoardID, l.Name, l.Position, l.IsCompletionList, l.CreatedAt)
	}

	query, args, err := insert.
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert lists: %w", err)
	}

	var rows []listRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.EntityList, lists[0].ID)
	}

	out := make([]domain.List, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

type listRow struct {
	ID               uuid.UUID `db:"id"`
	BoardID          uuid.UUID `db:"board_id"`
	Name             string    `db:"name"`
	Position         int       `db:"position"`
	IsCompletionList bool      `db:"is_completion_list"`
	CreatedAt        time.Time `db:"created_at"`
}

func (r listRow) toDomain() domain.List {
	return domain.List{
		ID:               r.ID,
		BoardID:          r.BoardID,
		Name:             r.Name,
		Position:         r.Position,
		IsCompletionList: r.IsCompletionList,
		CreatedAt:        r.CreatedAt,
	}
}
