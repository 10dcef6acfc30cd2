// Package desktopagent drives the external desktop command agent, a helper
// that takes a natural-language instruction and never exits on its own.
package desktopagent

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"
	"time"

	"cmd-agent/internal/infra/shell"
)

const DefaultBinary = "dsktp-cmd-aegnt"

type Client struct {
	binary      string
	shell       string
	gracePeriod time.Duration
	killAfter   time.Duration
	logger      *slog.Logger
}

func NewClient(binary, shellPath string, gracePeriod time.Duration, logger *slog.Logger) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	return &Client{
		binary:      binary,
		shell:       shellPath,
		gracePeriod: gracePeriod,
		killAfter:   time.Second,
		logger:      logger,
	}
}

func (c *Client) Name() string {
	return c.binary
}

func (c *Client) SetScreensaverTimeout(ctx context.Context, minutes int) error {
	return c.Instruct(ctx, fmt.Sprintf("set screensaver timeout to %d minutes", minutes))
}

// Instruct starts the agent with text, lets it work for the grace period
// and then terminates it. An agent that exits before the grace period is
// judged by its exit status.
func (c *Client) Instruct(ctx context.Context, text string) error {
	line := fmt.Sprintf("%s --text %q", c.binary, text)
	c.logger.Info("starting desktop agent", "command", line, "grace_period", c.gracePeriod)

	cmd, err := shell.Command(ctx, c.shell, line)
	if err != nil {
		return err
	}

	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	cmd.WaitDelay = c.killAfter

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", c.binary, err)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	timer := time.NewTimer(c.gracePeriod)
	defer timer.Stop()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%s exited early: %w: %s", c.binary, err, strings.TrimSpace(stderr.String()))
		}
		c.logger.Debug("desktop agent exited on its own")
		return nil
	case <-ctx.Done():
		<-done
		return ctx.Err()
	case <-timer.C:
	}

	if err := cmd.Process.Signal(syscall.SIGTERM); err != nil && !errors.Is(err, os.ErrProcessDone) {
		c.logger.Warn("terminating desktop agent", "error", err)
		_ = cmd.Process.Kill()
	}

	select {
	case <-done:
	case <-time.After(c.killAfter):
		c.logger.Warn("desktop agent ignored SIGTERM, killing it")
		_ = cmd.Process.Kill()
		<-done
	}

	c.logger.Debug("desktop agent stopped after grace period")
	return nil
}
