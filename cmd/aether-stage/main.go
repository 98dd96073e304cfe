// Command aether-stage previews the panel stage in a terminal or dumps frames headlessly
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lixenwraith/aether-stage/config"
)

var (
	// Global flags
	configPath string
	verbose    bool
	logFile    string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "aether-stage",
	Short: "Boot choreography and synchronized pulse animation for a five-panel stage",
	Long: `aether-stage runs the panel stage animation engine.

During boot the panels are compressed into a singularity while the camera flies
in; when boot ends the panels fan out, the grid cools and the camera is released
to a clamped free orbit.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		logger, err = newLogger(cfg, verbose, logFile, cmd.Name() == previewCmd.Name())
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "aether-stage.yaml", "path to YAML config, missing file uses defaults")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file (preview discards logs without it)")

	rootCmd.AddCommand(previewCmd, dumpCmd)
}

// newLogger builds from the logging section; the preview owns the terminal so it only logs to a file
func newLogger(cfg *config.Config, verbose bool, path string, ownsTerminal bool) (*zap.Logger, error) {
	zc := cfg.ZapConfig()
	if verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	switch {
	case path != "":
		zc.OutputPaths = []string{path}
		zc.ErrorOutputPaths = []string{path}
	case ownsTerminal:
		return zap.NewNop(), nil
	default:
		zc.OutputPaths = []string{"stderr"}
	}
	return zc.Build()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
