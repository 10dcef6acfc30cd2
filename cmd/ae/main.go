package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"cmd-agent/config"
	"cmd-agent/internal/application"
	"cmd-agent/internal/infra/console"
	"cmd-agent/internal/infra/desktop"
	"cmd-agent/internal/infra/desktopagent"
	"cmd-agent/internal/infra/rules"
	"cmd-agent/internal/infra/shell"
	"cmd-agent/internal/infra/terminal"
)

// exitError carries a status code for failures the user has already been
// told about.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	var (
		configPath string
		quiet      bool
	)

	root := &cobra.Command{
		Use:   "ae <command...>",
		Short: "Change desktop settings with plain-language commands",
		Long: `ae turns a short phrase into desktop settings commands.
It understands the screensaver, volume, brightness and wifi.`,
		Example: `  ae turn on the screensaver
  ae set volume to 40%
  ae brightness down
  ae wifi connect to "HomeNet"
  ae set screensaver timeout to 10 minutes`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), configPath, quiet, strings.Join(args, " "))
		},
	}
	root.Flags().StringVar(&configPath, "config", "", "path to config file (default $XDG_CONFIG_HOME/ae/config.yaml)")
	root.Flags().BoolVarP(&quiet, "quiet", "q", false, "print nothing but prompts; rely on the exit status")
	// Everything after the first word belongs to the phrase, even "-5".
	root.Flags().SetInterspersed(false)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := root.ExecuteContext(ctx)
	stop()

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.code)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, quiet bool, text string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log).With("invocation", uuid.NewString())

	notifier := createNotifier(quiet)
	runner := shell.NewRunner(cfg.Executor.Shell, logger)

	assistant := application.NewAssistant(
		rules.NewParser(),
		desktop.NewCatalog(),
		runner,
		createAgent(cfg, logger),
		terminal.NewPrompter(os.Stdin, os.Stdout),
		notifier,
		logger,
	)

	logger.Debug("handling command", "text", text)

	if err := assistant.Handle(ctx, text); err != nil {
		logger.Info("command not completed", "error", err)
		if cfg.ExitZeroOnFailure {
			return nil
		}
		return &exitError{code: 1}
	}

	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	defaultPath, err := config.DefaultPath()
	if err != nil {
		return config.Default(), nil
	}
	return config.LoadOptional(defaultPath)
}

func createAgent(cfg *config.Config, logger *slog.Logger) application.DesktopAgent {
	if !cfg.Agent.IsEnabled() {
		return &application.DisabledAgent{}
	}

	grace, err := time.ParseDuration(cfg.Agent.GracePeriod)
	if err != nil || grace <= 0 {
		logger.Warn("invalid agent grace period, using default", "error", err, "value", cfg.Agent.GracePeriod)
		grace = 5 * time.Second
	}

	return desktopagent.NewClient(cfg.Agent.Binary, cfg.Executor.Shell, grace, logger)
}

func createNotifier(quiet bool) application.Notifier {
	if quiet {
		return &application.NoopNotifier{}
	}
	return console.NewNotifier(os.Stdout)
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
