// Command boardctl administers a board deployment: schema migrations, user
// and board bootstrap, and card inspection.
package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/binharademo/trelloclone/cmd/boardctl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
