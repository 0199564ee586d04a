package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

var (
	green = color.New(color.FgGreen)
	red   = color.New(color.FgRed, color.Bold)
	faint = color.New(color.Faint)
)

func printSuccess(format string, a ...any) {
	green.Printf("✓ "+format+"\n", a...)
}

func printError(err error) {
	red.Fprintf(os.Stderr, "error: ")
	fmt.Fprintln(os.Stderr, err)
}

func printEmpty(what string) {
	faint.Printf("no %s\n", what)
}

func renderTable(w io.Writer, header []string, rows [][]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	for _, row := range rows {
		table.Append(row)
	}
	table.Render()
}
