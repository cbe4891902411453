package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/harrison/dir2md/internal/config"
	"github.com/harrison/dir2md/internal/logger"
	"github.com/harrison/dir2md/internal/snapshot"
	"github.com/spf13/cobra"
)

// runCommand implements the root command logic
func runCommand(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	log, closeLog, err := newRunLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	_, err = snapshot.Generate(ctx, snapshot.Options{
		Root:      args[0],
		Output:    cfg.Output,
		Types:     cfg.Types,
		Ignore:    cfg.Ignore,
		Recursive: cfg.Recursive,
		MaxSizeMB: cfg.MaxSizeMB,
	}, log)
	return err
}

// resolveConfig layers defaults, the config file, the environment and CLI flags
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		if _, statErr := os.Stat(configPath); statErr != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, statErr)
		}
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	cfg.MergeWithFlags(overridesFromFlags(cmd))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// overridesFromFlags collects only the flags the user actually set
func overridesFromFlags(cmd *cobra.Command) config.Overrides {
	var o config.Overrides
	flags := cmd.Flags()

	if flags.Changed("output") {
		v, _ := flags.GetString("output")
		o.Output = &v
	}
	if flags.Changed("types") {
		v, _ := flags.GetStringSlice("types")
		o.Types = &v
	}
	if flags.Changed("ignore") {
		v, _ := flags.GetStringSlice("ignore")
		o.Ignore = &v
	}
	if flags.Changed("no-recursive") {
		noRecursive, _ := flags.GetBool("no-recursive")
		recursive := !noRecursive
		o.Recursive = &recursive
	}
	if flags.Changed("max-size") {
		v, _ := flags.GetInt("max-size")
		o.MaxSizeMB = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		o.LogLevel = &v
	}
	if flags.Changed("log-dir") {
		v, _ := flags.GetString("log-dir")
		o.LogDir = &v
	}
	return o
}

// newRunLogger creates the console logger and, when a log dir is configured,
// a file logger alongside it. The returned func closes the file logger.
func newRunLogger(w io.Writer, cfg *config.Config) (logger.Logger, func(), error) {
	consoleLog := logger.NewConsoleLogger(w, cfg.LogLevel)
	if cfg.LogDir == "" {
		return consoleLog, func() {}, nil
	}

	fileLog, err := logger.NewFileLoggerWithDirAndLevel(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create file logger: %w", err)
	}

	closeLog := func() {
		if err := fileLog.Close(); err != nil {
			consoleLog.LogWarn(err.Error())
		}
	}
	return logger.NewMultiLogger(consoleLog, fileLog), closeLog, nil
}
