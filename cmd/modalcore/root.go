package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dshills/modalcore/internal/app"
	"github.com/dshills/modalcore/internal/config"
)

type rootOptions struct {
	configPath  string
	logLevel    string
	logFile     string
	noClipboard bool
	noWatch     bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions
	cmd := &cobra.Command{
		Use:          "modalcore [file]",
		Short:        "A modal text editor for the terminal",
		Version:      fmt.Sprintf("%s (commit %s)", version, commit),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runEditor(cmd.Context(), opts, path)
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&opts.configPath, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/modalcore/config.toml)")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	f.BoolVar(&opts.noClipboard, "no-clipboard", false, "do not use the system clipboard for + and *")
	cmd.Flags().BoolVar(&opts.noWatch, "no-watch", false, "do not reload the config file when it changes")

	cmd.AddCommand(newConfigCmd(&opts))
	return cmd
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadConfig(*opts)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// loadConfig reads the config file and applies command line overrides. It
// returns the path that was read, or "" when none exists.
func loadConfig(opts rootOptions) (*config.Config, string, error) {
	path := opts.configPath
	if path == "" {
		if p, err := config.DefaultPath(); err == nil {
			path = p
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.noClipboard {
		cfg.Clipboard.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(path); err != nil {
		path = ""
	}
	return cfg, path, nil
}

// newLogger opens the log file. Without one, logging is off since the
// terminal belongs to the editor.
func newLogger(cfg *config.Config) (*app.Logger, io.Closer, error) {
	if cfg.Log.File == "" {
		return app.NopLogger, io.NopCloser(nil), nil
	}
	f, err := app.OpenLogFile(cfg.Log.File)
	if err != nil {
		return nil, nil, err
	}
	log := app.NewLogger(app.LoggerConfig{
		Level:  app.ParseLogLevel(cfg.Log.Level),
		Output: f,
		Prefix: "modalcore",
	})
	return log, f, nil
}

func runEditor(ctx context.Context, opts rootOptions, path string) error {
	cfg, cfgPath, err := loadConfig(opts)
	if err != nil {
		return err
	}
	log, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	if opts.noWatch {
		cfgPath = ""
	}
	a, err := app.New(app.Options{
		Config:     cfg,
		ConfigPath: cfgPath,
		Path:       path,
		Logger:     log,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn("shutdown", "error", err)
		}
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()
	return a.Run(ctx)
}
