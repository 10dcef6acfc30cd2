package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// Executor runs commands through a CommandRunner and turns every outcome
// into a boolean plus a printed diagnostic. It never returns an error.
type Executor struct {
	runner   CommandRunner
	notifier Notifier
	logger   *slog.Logger
}

func NewExecutor(runner CommandRunner, notifier Notifier, logger *slog.Logger) *Executor {
	return &Executor{
		runner:   runner,
		notifier: notifier,
		logger:   logger,
	}
}

func (e *Executor) Execute(ctx context.Context, command string) bool {
	start := time.Now()
	result, err := e.runner.Run(ctx, command)
	if err != nil {
		e.logger.Debug("command invocation failed", "command", command, "error", err)
		e.notify(ctx, NoticeError, fmt.Sprintf("Error executing command: %s", err))
		return false
	}

	e.logger.Debug("command finished",
		"command", command,
		"exit_code", result.ExitCode,
		"duration", time.Since(start),
	)

	if !result.Success() {
		e.notify(ctx, NoticeError, fmt.Sprintf("Command failed: %s", strings.TrimRight(result.Stderr, "\n")))
		return false
	}

	if result.Stdout != "" {
		e.notify(ctx, NoticeInfo, strings.TrimRight(result.Stdout, "\n"))
	}

	return true
}

// ExecuteSequence runs commands in order and stops at the first failure.
// Commands already applied are not rolled back.
func (e *Executor) ExecuteSequence(ctx context.Context, commands ...string) bool {
	for i, cmd := range commands {
		e.notify(ctx, NoticeInfo, fmt.Sprintf("Executing: %s", cmd))
		if !e.Execute(ctx, cmd) {
			if skipped := len(commands) - i - 1; skipped > 0 {
				e.logger.Debug("sequence halted", "failed", cmd, "skipped", skipped)
			}
			return false
		}
	}
	return true
}

func (e *Executor) notify(ctx context.Context, level NoticeLevel, msg string) {
	if err := e.notifier.Notify(ctx, level, msg); err != nil {
		e.logger.Error("notifying", "error", err)
	}
}
