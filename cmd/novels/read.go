package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kerbaras/novels/pkg/app/components"
	"github.com/kerbaras/novels/pkg/app/styles"
)

var readChapter int

var readCmd = &cobra.Command{
	Use:   "read [novel]",
	Short: "Print a chapter to the terminal",
	Long:  "Print one chapter of a novel, by ID or title, and remember it as your reading position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		controller, logger, err := newController(false)
		if err != nil {
			return err
		}
		defer logger.Sync()
		defer controller.Close()

		ctx := cmd.Context()
		novel, err := controller.FindNovel(ctx, args[0])
		if err != nil {
			return err
		}

		page, err := controller.ReadChapter(ctx, novel, readChapter)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, styles.TitleStyle.Render(novel.Title))
		if ch := novel.Chapter(page.Chapter); ch != nil {
			fmt.Fprintln(out, styles.SubtitleStyle.Render(components.ChapterPosition(page.Chapter)+"  "+ch.Title))
		}
		fmt.Fprintln(out)
		for _, p := range page.Paragraphs {
			fmt.Fprintln(out, p)
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	readCmd.Flags().IntVarP(&readChapter, "chapter", "c", 0, "chapter index, starting at 0")
}
