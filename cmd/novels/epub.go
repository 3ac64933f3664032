package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var epubOutput string

var epubCmd = &cobra.Command{
	Use:   "epub [novel]",
	Short: "Export a novel as EPUB",
	Long:  "Fetch every chapter of a novel and bundle them into an EPUB file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if epubOutput != "" {
			cfg.Export.OutputDir = epubOutput
		}

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

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "📦 Exporting %s...\n", novel.Title)
		path, err := controller.ExportEPUB(ctx, novel)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "✅ EPUB written to %s\n", path)
		return nil
	},
}

func init() {
	epubCmd.Flags().StringVarP(&epubOutput, "output", "o", "", "output directory (default from config)")
}
