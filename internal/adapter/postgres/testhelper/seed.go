package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/binharademo/trelloclone/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with a throwaway password hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "user-" + suffix,
		PasswordHash: "$2a$04$not-a-real-hash",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, email, username, password_hash, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		user.ID, user.Email, user.Username, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// SeededBoard is a board together with its default lists, in position order.
type SeededBoard struct {
	Board domain.Board
	Lists []domain.List
}

// Completion returns the board's completion list.
func (b SeededBoard) Completion() domain.List {
	for _, l := range b.Lists {
		if l.IsCompletionList {
			return l
		}
	}
	return domain.List{}
}

// SeedBoard creates a board owned by ownerID with the default lists
// (Backlog, Prioritized, Doing, Done).
func SeedBoard(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) SeededBoard {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	board := domain.Board{
		ID:        uuid.New(),
		Name:      "Board " + uniqueSuffix(),
		OwnerID:   ownerID,
		CreatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO boards (id, name, owner_id, created_at) VALUES ($1, $2, $3, $4)`,
		board.ID, board.Name, board.OwnerID, board.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedBoard insert board: %v", err)
	}

	seeded := SeededBoard{Board: board}
	for i, tmpl := range domain.DefaultLists() {
		list := domain.List{
			ID:               uuid.New(),
			BoardID:          board.ID,
			Name:             tmpl.Name,
			Position:         i,
			IsCompletionList: tmpl.IsCompletionList,
			CreatedAt:        now,
		}
		_, err := pool.Exec(ctx,
			`INSERT INTO lists (id, board_id, name, position, is_completion_list, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			list.ID, list.BoardID, list.Name, list.Position, list.IsCompletionList, list.CreatedAt,
		)
		if err != nil {
			t.Fatalf("testhelper: SeedBoard insert list %q: %v", tmpl.Name, err)
		}
		seeded.Lists = append(seeded.Lists, list)
	}

	return seeded
}

// SeedCard creates a card in list. When the list is the completion list the
// card is stamped as completed.
func SeedCard(t *testing.T, pool *pgxpool.Pool, list domain.List, title string) domain.Card {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	card := domain.Card{
		ID:        uuid.New(),
		ListID:    list.ID,
		Title:     title,
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	card.ApplyCompletion(list, now)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO cards (id, list_id, title, completed_at, version, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		card.ID, card.ListID, card.Title, card.CompletedAt, card.Version, card.CreatedAt, card.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCard: %v", err)
	}

	return card
}
