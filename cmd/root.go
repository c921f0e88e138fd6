// Package cmd provides the root command and CLI setup for bracemend.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mouse-blink/bracemend/internal/adapter"
	"github.com/mouse-blink/bracemend/internal/config"
	"github.com/mouse-blink/bracemend/internal/controller"
	"github.com/mouse-blink/bracemend/internal/domain"
	"github.com/mouse-blink/bracemend/internal/logging"
	m "github.com/mouse-blink/bracemend/internal/model"
)

// workflow is built lazily in setup unless a test has already replaced it.
var workflow domain.Workflow
var cfg = config.DefaultConfig()
var logger = zap.NewNop()

var configFlag string
var logLevelFlag string
var logFormatFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bracemend",
		Short: "Repair brace-delimited stylesheets",
		Long: `Bracemend repairs SCSS, CSS and LESS files that were corrupted by
truncation or accidental duplication, and checks that braces balance.

Braces are counted as raw characters: braces inside strings or comments
count like any other brace.

Supports Go-style path patterns:
  - ./...            recursively scan current directory
  - ./styles/...     recursively scan styles directory
  - a.scss b.scss    individual files`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
	}
	cmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "config file (default "+config.DefaultFile+" when present)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "log format: console, json")

	return cmd
}

func setup(cmd *cobra.Command) error {
	loaded, err := loadConfig()
	if err != nil {
		return err
	}

	if logLevelFlag != "" {
		loaded.Logging.Level = logLevelFlag
	}

	if logFormatFlag != "" {
		loaded.Logging.Format = logFormatFlag
	}

	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	cfg = loaded

	logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}

	if workflow == nil {
		workflow = domain.NewWorkflow(
			adapter.NewLocalSourceFSAdapter(),
			adapter.NewFSNotifyWatcher(),
			controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout())),
			domain.NewRepairer(),
			logger,
		)
	}

	return nil
}

func loadConfig() (*config.Config, error) {
	if configFlag != "" {
		return config.Load(configFlag)
	}

	return config.LoadDefault()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// defaultPaths scans the working directory recursively when no path is given.
func defaultPaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"./..."}
	}

	return parsePaths(args)
}

// extensionsOr returns the --ext values when set, otherwise the configured ones.
func extensionsOr(cmd *cobra.Command, flag []string) []string {
	if cmd.Flags().Changed("ext") {
		return flag
	}

	return cfg.Extensions
}

// contextOr returns the --context value when set, otherwise the configured one.
func contextOr(cmd *cobra.Command, flag int) int {
	if cmd.Flags().Changed("context") {
		return flag
	}

	return cfg.Context
}
