package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/binharademo/trelloclone/internal/adapter/postgres"
	cardrepo "github.com/binharademo/trelloclone/internal/adapter/postgres/card"
	historyrepo "github.com/binharademo/trelloclone/internal/adapter/postgres/history"
	listrepo "github.com/binharademo/trelloclone/internal/adapter/postgres/list"
	userrepo "github.com/binharademo/trelloclone/internal/adapter/postgres/user"
	"github.com/binharademo/trelloclone/internal/adapter/pubsub"
	"github.com/binharademo/trelloclone/internal/domain"
	"github.com/binharademo/trelloclone/internal/realtime"
	"github.com/binharademo/trelloclone/internal/service/lifecycle"
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Inspect and move cards",
}

var cardMoveFlags struct {
	to      string
	as      string
	version int64
}

// newLifecycle builds the card service. When Redis is enabled, events are
// relayed so that running servers push them to their clients. The returned
// func waits for pending relay forwards and releases the Redis client.
func newLifecycle(ctx context.Context, e *env) (*lifecycle.Service, func(), error) {
	bus := realtime.NewBus(e.logger, nil, realtime.Config{
		BufferSize:     e.cfg.Realtime.SendBuffer,
		ForwardTimeout: e.cfg.Realtime.ForwardTimeout,
	})
	done := func() {}

	if e.cfg.Redis.Enabled {
		rdb, err := pubsub.NewClient(ctx, e.cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		bus.SetRelay(pubsub.NewRelay(e.logger, rdb, e.cfg.Redis.Channel))
		done = func() {
			bus.Wait()
			_ = rdb.Close()
		}
	}

	svc := lifecycle.NewService(e.logger,
		cardrepo.New(e.pool),
		listrepo.New(e.pool),
		historyrepo.New(e.pool),
		postgres.NewTxManager(e.pool),
		bus,
	)
	return svc, done, nil
}

var cardMoveCmd = &cobra.Command{
	Use:   "move <card-id>",
	Short: "Move a card to another list on its board",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cardID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("card id: %w", err)
		}
		toList, err := uuid.Parse(cardMoveFlags.to)
		if err != nil {
			return fmt.Errorf("--to: %w", err)
		}
		actorID, err := uuid.Parse(cardMoveFlags.as)
		if err != nil {
			return fmt.Errorf("--as: %w", err)
		}

		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		actor := domain.Actor{ID: actorID}
		if u, err := userrepo.New(e.pool).GetByID(ctx, actorID); err == nil {
			actor.Name = u.Username
		}

		svc, done, err := newLifecycle(ctx, e)
		if err != nil {
			return err
		}
		defer done()

		in := lifecycle.MoveCardInput{CardID: cardID, ToListID: toList, Actor: actor}
		if cardMoveFlags.version > 0 {
			in.ExpectedVersion = &cardMoveFlags.version
		}
		card, err := svc.MoveCard(ctx, in)
		if err != nil {
			return fmt.Errorf("move card: %w", err)
		}

		printSuccess("card %s is now in list %s (version %d)", card.ID, card.ListID, card.Version)
		if card.CompletedAt != nil {
			printSuccess("completed at %s", card.CompletedAt.Format(time.RFC3339))
		}
		return nil
	},
}

var cardHistoryCmd = &cobra.Command{
	Use:   "history <card-id>",
	Short: "Print a card's move history, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cardID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("card id: %w", err)
		}

		e, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer e.Close()

		svc, done, err := newLifecycle(ctx, e)
		if err != nil {
			return err
		}
		defer done()

		rows, err := svc.GetHistory(ctx, cardID)
		if err != nil {
			return fmt.Errorf("get history: %w", err)
		}
		if len(rows) == 0 {
			printEmpty("moves recorded")
			return nil
		}

		names, err := userNames(ctx, e, rows)
		if err != nil {
			return err
		}

		table := make([][]string, len(rows))
		for i, h := range rows {
			name, ok := names[h.UserID]
			if !ok {
				name = domain.AnonymousName
			}
			table[i] = []string{
				strconv.FormatInt(h.Seq, 10),
				h.MovedAt.Format(time.RFC3339),
				h.FromListID.String(),
				h.ToListID.String(),
				name,
			}
		}
		renderTable(os.Stdout, []string{"Seq", "Moved at", "From", "To", "By"}, table)
		return nil
	},
}

func userNames(ctx context.Context, e *env, rows []domain.CardHistory) (map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0, len(rows))
	for _, h := range rows {
		ids = append(ids, h.UserID)
	}
	users, err := userrepo.New(e.pool).GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	names := make(map[uuid.UUID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}
	return names, nil
}

func init() {
	f := cardMoveCmd.Flags()
	f.StringVar(&cardMoveFlags.to, "to", "", "target list id")
	f.StringVar(&cardMoveFlags.as, "as", "", "acting user id")
	f.Int64Var(&cardMoveFlags.version, "expected-version", 0, "fail unless the card is at this version")
	_ = cardMoveCmd.MarkFlagRequired("to")
	_ = cardMoveCmd.MarkFlagRequired("as")

	cardCmd.AddCommand(cardMoveCmd, cardHistoryCmd)
}
