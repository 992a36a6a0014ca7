// Package root contains the root command for the application
package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"fjacquet/financas/internal/config"
	"fjacquet/financas/internal/container"
	"fjacquet/financas/internal/logging"
)

// CommonFlags represents the flags that are common to every command
type CommonFlags struct {
	LogLevel string
	Backend  string
	DataFile string
}

var (
	// Log is the shared logger instance for commands. It is replaced once
	// the configuration has been loaded.
	Log = logging.NewLogrusAdapter("info", "text", nil)

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "financas",
		Short: "A personal-finance assistant driven by short Portuguese chat messages.",
		Long: `financas interprets WhatsApp-style messages such as "gastei 50 no mercado"
or "vr 35 almoço", keeps per-user balances for money, meal voucher (VR) and
food voucher (VA), and answers in Portuguese.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to financas!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app == nil {
				return
			}
			if err := app.Close(); err != nil {
				Log.WithError(err).Warn("Failed to close storage")
			}
			app = nil
		},
	}

	// SharedFlags holds the persistent flag values.
	SharedFlags = CommonFlags{}

	// containerOptions lets tests swap the store or the clock.
	containerOptions []container.Option

	app *container.Container
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVar(&SharedFlags.LogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Backend, "backend", "", "Storage backend (file, sqlite, memory)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.DataFile, "data", "d", "", "Data file for the file backend")
}

// SetContainerOptions replaces the options used to build the container on
// the next command run.
func SetContainerOptions(opts ...container.Option) {
	containerOptions = opts
}

// App returns the container built for the running command.
func App() (*container.Container, error) {
	if app == nil {
		return nil, fmt.Errorf("application not initialized")
	}
	return app, nil
}

func setup(cmd *cobra.Command, args []string) error {
	if _, err := config.LoadEnv(); err != nil {
		return fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg, err := config.InitializeConfig()
	if err != nil {
		return err
	}
	applyFlags(cfg)

	opts := append([]container.Option{container.WithLogOutput(cmd.ErrOrStderr())}, containerOptions...)
	c, err := container.NewContainer(cfg, opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	app = c
	Log = c.GetLogger()
	return nil
}

func applyFlags(cfg *config.Config) {
	if SharedFlags.LogLevel != "" {
		cfg.Log.Level = SharedFlags.LogLevel
	}
	if SharedFlags.Backend != "" {
		cfg.Data.Backend = SharedFlags.Backend
	}
	if SharedFlags.DataFile != "" {
		cfg.Data.File = SharedFlags.DataFile
	}
}
