package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/binharademo/trelloclone/internal/adapter/postgres"
	boardrepo "github.com/binharademo/trelloclone/internal/adapter/postgres/board"
	cardrepo "github.com/binharademo/trelloclone/internal/adapter/postgres/card"
	listrepo "github.com/binharademo/trelloclone/internal/adapter/postgres/list"
	"github.com/binharademo/trelloclone/internal/service/board"
	"github.com/binharademo/trelloclone/pkg/ctxutil"
)

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Manage boards",
}

var boardFlags struct {
	owner       string
	name        string
	description string
}

func newBoardService(e *env) *board.Service {
	return board.NewService(e.logger,
		boardrepo.New(e.pool),
		listrepo.New(e.pool),
		cardrepo.New(e.pool),
		postgres.NewTxManager(e.pool),
	)
}

var boardCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a board with the default lists",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		owner, err := uuid.Parse(boardFlags.owner)
		if err != nil {
			return fmt.Errorf("--owner: %w", err)
		}

		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		var desc *string
		if boardFlags.description != "" {
			desc = &boardFlags.description
		}

		ctx := ctxutil.WithUserID(cmd.Context(), owner)
		details, err := newBoardService(e).CreateBoard(ctx, board.CreateBoardInput{
			Name:        boardFlags.name,
			Description: desc,
		})
		if err != nil {
			return fmt.Errorf("create board: %w", err)
		}

		printSuccess("created board %q (%s)", details.Board.Name, details.Board.ID)
		printLists(details)
		return nil
	},
}

var boardShowCmd = &cobra.Command{
	Use:   "show <board-id>",
	Short: "Print a board's lists and cards",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		boardID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("board id: %w", err)
		}

		e, err := openEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer e.Close()

		// GetBoard only checks that some user is authenticated.
		ctx := ctxutil.WithUserID(cmd.Context(), uuid.New())
		details, err := newBoardService(e).GetBoard(ctx, boardID)
		if err != nil {
			return fmt.Errorf("get board: %w", err)
		}

		fmt.Printf("%s (%s)\n", details.Board.Name, details.Board.ID)
		printLists(details)
		return nil
	},
}

func printLists(d *board.Details) {
	rows := make([][]string, 0, len(d.Lists))
	for _, lc := range d.Lists {
		completion := ""
		if lc.List.IsCompletionList {
			completion = "yes"
		}
		rows = append(rows, []string{
			strconv.Itoa(lc.List.Position),
			lc.List.Name,
			lc.List.ID.String(),
			completion,
			strconv.Itoa(len(lc.Cards)),
		})
	}
	renderTable(os.Stdout, []string{"Pos", "List", "ID", "Completion", "Cards"}, rows)
}

func init() {
	f := boardCreateCmd.Flags()
	f.StringVar(&boardFlags.owner, "owner", "", "owner user id")
	f.StringVar(&boardFlags.name, "name", "", "board name")
	f.StringVar(&boardFlags.description, "description", "", "optional description")
	_ = boardCreateCmd.MarkFlagRequired("owner")
	_ = boardCreateCmd.MarkFlagRequired("name")

	boardCmd.AddCommand(boardCreateCmd, boardShowCmd)
}
