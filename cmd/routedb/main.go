// Command routedb runs the IMPORT -> MERGE -> VALIDATE -> WRITE pipeline,
// producing a single routedb_v1.sqlite file in the given output directory.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nicowilhelm/routedb/internal/applog"
	"github.com/nicowilhelm/routedb/internal/appmeta"
	"github.com/nicowilhelm/routedb/internal/config"
	"github.com/nicowilhelm/routedb/internal/wiring"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		writef(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func writef(w *os.File, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

func newRootCommand() *cobra.Command {
	var cfg config.Config
	var configPath string

	cmd := &cobra.Command{
		Use:     "routedb <output_dir>",
		Short:   fmt.Sprintf("%s scrapes climbing routes into a relational database", appmeta.Name),
		Version: appmeta.Version(),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.OutputDir = args[0]

			runCfg, err := config.LoadRunConfig(configPath)
			if err != nil {
				return err
			}
			cfg.Run = runCfg

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, closeLog, err := buildLogger(cfg)
			if err != nil {
				return err
			}
			defer closeLog()

			engine, err := wiring.Build(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return engine.Run(ctx)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug-level logging")
	flags.StringVarP(&cfg.LogFile, "logfile", "l", "", "write log output to this file instead of stderr")
	flags.StringVar(&cfg.RecordTrafficDir, "record-traffic", "", "record HTTP traffic to this directory")
	flags.StringVar(&cfg.ReplayTrafficDir, "replay-traffic", "", "replay HTTP traffic from this directory instead of making live requests")
	flags.StringVarP(&configPath, "config", "c", "", "optional YAML run-config file")

	cmd.SetContext(context.Background())

	return cmd
}

// buildLogger constructs the applog.Logger for this run from cfg, following
// the teacher's zap-by-default logging style. The returned close func must
// be called before the process exits to flush buffered log output.
func buildLogger(cfg config.Config) (applog.Logger, func(), error) {
	level := zap.InfoLevel
	if cfg.Verbose {
		level = zap.DebugLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.LogFile != "" {
		zapCfg.OutputPaths = []string{cfg.LogFile}
	} else {
		zapCfg.OutputPaths = []string{"stderr"}
	}

	zapLogger, err := zapCfg.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("building logger: %w", err)
	}

	logger := applog.NewZapAdapter(zapLogger.Sugar())
	return logger, func() { _ = zapLogger.Sync() }, nil
}
