package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all novels in the catalog",
	Long:  "Fetch the catalog and display it in a formatted table",
	RunE: func(cmd *cobra.Command, args []string) error {
		controller, logger, err := newController(false)
		if err != nil {
			return err
		}
		defer logger.Sync()
		defer controller.Close()

		novels, err := controller.Catalog().Fetch(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(novels) == 0 {
			fmt.Fprintln(out, "📚 No novels available")
			return nil
		}

		columns := []table.Column{
			{Title: "ID", Width: 16},
			{Title: "Title", Width: 36},
			{Title: "Author", Width: 20},
			{Title: "Chapters", Width: 10},
		}

		rows := []table.Row{}
		for _, novel := range novels {
			chapters := "-"
			if novel.HasChapters() {
				chapters = fmt.Sprintf("%d", len(novel.Chapters))
			}
			rows = append(rows, table.Row{
				ansi.Truncate(novel.ID, 16, "…"),
				ansi.Truncate(novel.Title, 36, "…"),
				ansi.Truncate(novel.Author, 20, "…"),
				chapters,
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Cell
		t.SetStyles(s)

		fmt.Fprintf(out, "\n📚 Catalog (%d novels)\n\n", len(novels))
		fmt.Fprintln(out, t.View())
		return nil
	},
}
