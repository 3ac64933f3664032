package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kerbaras/novels/pkg/app"
	"github.com/kerbaras/novels/pkg/config"
	"github.com/kerbaras/novels/pkg/logging"
	"github.com/kerbaras/novels/pkg/services"
)

var (
	configPath string
	sourceFlag string
	dbFlag     string
	verbose    bool

	cfg config.Config
)

var rootCmd = &cobra.Command{
	Use:   "novels",
	Short: "A quiet terminal reader for web novels",
	Long:  "Browse a static novel catalog, read chapters in a TUI and keep your place between sessions",

	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if sourceFlag != "" {
			loaded.Source.Location = sourceFlag
		}
		if dbFlag != "" {
			loaded.Storage.DatabasePath = dbFlag
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Launch TUI by default
		controller, logger, err := newController(true)
		if err != nil {
			return err
		}
		defer logger.Sync()
		defer controller.Close()

		return app.NewApp(controller).Run()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.novels/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "novel site base URL or local directory")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "reading progress database path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(epubCmd)
}

// newController wires logging and storage for a command. The TUI logs to a
// file because it owns the terminal.
func newController(tui bool) (*services.NovelController, *zap.Logger, error) {
	logger, err := logging.New(cfg.Logging, verbose, tui)
	if err != nil {
		return nil, nil, err
	}

	controller, err := services.NewNovelController(cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, nil, err
	}

	logger.Debug("Controller ready",
		zap.String("source", cfg.Source.Location),
		zap.String("db", cfg.Storage.DatabasePath))
	return controller, logger, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
