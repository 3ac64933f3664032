package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/kerbaras/novels/pkg/app/components"
	"github.com/kerbaras/novels/pkg/app/styles"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show saved reading positions",
	RunE: func(cmd *cobra.Command, args []string) error {
		controller, logger, err := newController(false)
		if err != nil {
			return err
		}
		defer logger.Sync()
		defer controller.Close()

		entries, err := controller.Progress()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "📖 Nothing read yet.")
			return nil
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(styles.Muted)).
			Headers("NOVEL", "CHAPTER", "LAST READ").
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return styles.SubtitleStyle.Padding(0, 1)
				}
				return lipgloss.NewStyle().Padding(0, 1)
			})

		for _, p := range entries {
			t.Row(p.NovelID, components.ChapterPosition(p.Chapter), p.UpdatedAt.Format("2006-01-02 15:04"))
		}

		fmt.Fprintln(out, t)
		return nil
	},
}
