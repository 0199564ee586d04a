// Package card implements the Card repository using PostgreSQL.
// Queries are built with squirrel and scanned with pgxscan.
package card

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

const table = "cards"

var columns = []string{
	"id", "list_id", "title", "description", "due_date",
	"completed_at", "version", "created_at", "updated_at",
}

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	pool postgres.Querier
}

// New creates a new card repository.
func New(pool postgres.Querier) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a card by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.Card, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Card{}, fmt.Errorf("build get card: %w", err)
	}

	var row cardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return domain.Card{}, postgres.MapError(err, domain.EntityCard, id)
	}

	return row.toDomain(), nil
}

// GetWithList returns a card together with the list it currently belongs to.
func (r *Repo) GetWithList(ctx context.Context, id uuid.UUID) (domain.CardWithList, error) {
	query, args, err := postgres.Builder().
		Select(
			"c.id", "c.list_id", "c.title", "c.description", "c.due_date",
			"c.completed_at", "c.version", "c.created_at", "c.updated_at",
			"l.board_id AS list_board_id", "l.name AS list_name",
			"l.position AS list_position", "l.is_completion_list AS list_is_completion",
			"l.created_at AS list_created_at",
		).
		From("cards c").
		Join("lists l ON l.id = c.list_id").
		Where(squirrel.Eq{"c.id": id}).
		ToSql()
	if err != nil {
		return domain.CardWithList{}, fmt.Errorf("build get card with list: %w", err)
	}

	var row cardWithListRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return domain.CardWithList{}, postgres.MapError(err, domain.EntityCard, id)
	}

	return row.toDomain(), nil
}

// ListByList returns all cards in a list ordered by creation time.
func (r *Repo) ListByList(ctx context.Context, listID uuid.UUID) ([]domain.Card, error) {
	return r.list(ctx, squirrel.Eq{"list_id": listID})
}

// ListByListIDs returns the cards of several lists at once. Used by the
// per-request batch loader.
func (r *Repo) ListByListIDs(ctx context.Context, listIDs []uuid.UUID) ([]domain.Card, error) {
	if len(listIDs) == 0 {
		return []domain.Card{}, nil
	}
	return r.list(ctx, squirrel.Eq{"list_id": listIDs})
}

func (r *Repo) list(ctx context.Context, where squirrel.Sqlizer) ([]domain.Card, error) {
	query, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cards: %w", err)
	}

	var rows []cardRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, domain.EntityCard, uuid.Nil)
	}

	cards := make([]domain.Card, len(rows))
	for i, row := range rows {
		cards[i] = row.toDomain()
	}
	return cards, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a card and returns the stored row.
func (r *Repo) Create(ctx context.Context, c domain.Card) (domain.Card, error) {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(c.ID, c.ListID, c.Title, c.Description, c.DueDate,
			c.CompletedAt, c.Version, c.CreatedAt, c.UpdatedAt).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return domain.Card{}, fmt.Errorf("build insert card: %w", err)
	}

	var row cardRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &row, query, args...); err != nil {
		return domain.Card{}, postgres.MapError(err, domain.EntityCard, c.ID)
	}

	return row.toDomain(), nil
}

// Update persists the mutable fields of c if the stored version still equals
// expectedVersion, and increments the version. A version mismatch yields
// domain.ErrConflict; a missing card yields NotFound.
func (r *Repo) Update(ctx context.Context, c domain.Card, expectedVersion int64) (domain.Card, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := postgres.Builder().
		Update(table).
		Set("list_id", c.ListID).
		Set("title", c.Title).
		Set("description", c.Description).
		Set("due_date", c.DueDate).
		Set("completed_at", c.CompletedAt).
		Set("version", squirrel.Expr("version + 1")).
		Set("updated_at", c.UpdatedAt).
		Where(squirrel.Eq{"id": c.ID, "version": expectedVersion}).
		Suffix("RETURNING " + returning()).
		ToSql()
	if err != nil {
		return domain.Card{}, fmt.Errorf("build update card: %w", err)
	}

	var row cardRow
	err = pgxscan.Get(ctx, q, &row, query, args...)
	if err == nil {
		return row.toDomain(), nil
	}
	if !pgxscan.NotFound(err) {
		return domain.Card{}, postgres.MapError(err, domain.EntityCard, c.ID)
	}

	exists, existsErr := r.exists(ctx, q, c.ID)
	if existsErr != nil {
		return domain.Card{}, existsErr
	}
	if !exists {
		return domain.Card{}, domain.NewNotFoundError(domain.EntityCard, c.ID)
	}
	return domain.Card{}, fmt.Errorf("card %s version %d: %w", c.ID, expectedVersion, domain.ErrConflict)
}

// Delete removes a card. History rows are removed by the FK cascade.
// Returns false when no card had that id.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	query, args, err := postgres.Builder().
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete card: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, domain.EntityCard, id)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repo) exists(ctx context.Context, q postgres.Querier, id uuid.UUID) (bool, error) {
	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM cards WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, postgres.MapError(err, domain.EntityCard, id)
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Row mapping
// ---------------------------------------------------------------------------

type cardRow struct {
	ID          uuid.UUID  `db:"id"`
	ListID      uuid.UUID  `db:"list_id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	DueDate     *time.Time `db:"due_date"`
	CompletedAt *time.Time `db:"completed_at"`
	Version     int64      `db:"version"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r cardRow) toDomain() domain.Card {
	return domain.Card{
		ID:          r.ID,
		ListID:      r.ListID,
		Title:       r.Title,
		Description: r.Description,
		DueDate:     r.DueDate,
		CompletedAt: r.CompletedAt,
		Version:     r.Version,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type cardWithListRow struct {
	ID               uuid.UUID  `db:"id"`
	ListID           uuid.UUID  `db:"list_id"`
	Title            string     `db:"title"`
	Description      *string    `db:"description"`
	DueDate          *time.Time `db:"due_date"`
	CompletedAt      *time.Time `db:"completed_at"`
	Version          int64      `db:"version"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
	ListBoardID      uuid.UUID  `db:"list_board_id"`
	ListName         string     `db:"list_name"`
	ListPosition     int        `db:"list_position"`
	ListIsCompletion bool       `db:"list_is_completion"`
	ListCreatedAt    time.Time  `db:"list_created_at"`
}

func (r cardWithListRow) toDomain() domain.CardWithList {
	return domain.CardWithList{
		Card: cardRow{
			ID:          r.ID,
			ListID:      r.ListID,
			Title:       r.Title,
			Description: r.Description,
			DueDate:     r.DueDate,
			CompletedAt: r.CompletedAt,
			Version:     r.Version,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		}.toDomain(),
		List: domain.List{
			ID:               r.ListID,
			BoardID:          r.ListBoardID,
			Name:             r.ListName,
			Position:         r.ListPosition,
			IsCompletionList: r.ListIsCompletion,
			CreatedAt:        r.ListCreatedAt,
		},
	}
}

func returning() string {
	return strings.Join(columns, ", ")
}
