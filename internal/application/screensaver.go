package application

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"cmd-agent/internal/domain"
)

// ScreensaverConfigurator is the guided flow behind "turn on the
// screensaver": pick a style, optionally a message, and an idle timeout.
type ScreensaverConfigurator struct {
	catalog  CommandCatalog
	executor *Executor
	agent    DesktopAgent
	prompter Prompter
	notifier Notifier
	logger   *slog.Logger
}

func NewScreensaverConfigurator(
	catalog CommandCatalog,
	executor *Executor,
	agent DesktopAgent,
	prompter Prompter,
	notifier Notifier,
	logger *slog.Logger,
) *ScreensaverConfigurator {
	return &ScreensaverConfigurator{
		catalog:  catalog,
		executor: executor,
		agent:    agent,
		prompter: prompter,
		notifier: notifier,
		logger:   logger,
	}
}

// Run returns ErrCommandFailed when applying the style failed. A failed
// timeout step is compensated by the idle-delay fallback and does not
// change the result.
func (c *ScreensaverConfigurator) Run(ctx context.Context) error {
	c.say(ctx, NoticeInfo, "Sure, I'll help you turn on the screensaver. Do you prefer:")
	for _, style := range domain.ScreensaverStyles {
		c.say(ctx, NoticeInfo, "Option %s) [%s]", style.Key, style.Name)
	}

	style, err := c.askStyle(ctx)
	if err != nil {
		return err
	}
	c.say(ctx, NoticeInfo, "You selected: %s", style.Name)

	var customMessage string
	if style.CustomMessage {
		customMessage, err = c.prompter.Prompt(ctx, "Please enter your custom message: ")
		if err != nil {
			return fmt.Errorf("reading custom message: %w", err)
		}
		c.say(ctx, NoticeInfo, "Custom message set to: %s", customMessage)
	}

	minutes, err := c.askTimeout(ctx)
	if err != nil {
		return err
	}
	c.say(ctx, NoticeInfo, "Screensaver will start after %d minutes of inactivity", minutes)

	commands, err := c.styleCommands(style)
	if err != nil {
		c.say(ctx, NoticeError, "Failed to configure screensaver completely.")
		return err
	}

	if style.CustomMessage {
		// gsettings can only toggle the status message; its text is set in the GNOME UI.
		c.say(ctx, NoticeWarning, "Note: Custom message is enabled, but you'll need to set the message content via the GNOME screensaver settings.")
	}

	applied := c.executor.ExecuteSequence(ctx, commands...)

	c.applyTimeout(ctx, minutes)

	if !applied {
		c.say(ctx, NoticeError, "Failed to configure screensaver completely.")
		return fmt.Errorf("configuring screensaver: %w", domain.ErrCommandFailed)
	}

	c.say(ctx, NoticeSuccess, "Successfully configured screensaver with %s and %d minute timeout.", style.Name, minutes)
	return nil
}

func (c *ScreensaverConfigurator) askStyle(ctx context.Context) (domain.ScreensaverStyle, error) {
	keys := domain.ScreensaverStyleKeys()
	label := fmt.Sprintf("Enter your choice (%s): ", strings.Join(keys, "/"))

	for {
		answer, err := c.prompter.Prompt(ctx, label)
		if err != nil {
			return domain.ScreensaverStyle{}, fmt.Errorf("reading style choice: %w", err)
		}
		if style, ok := domain.FindScreensaverStyle(answer); ok {
			return style, nil
		}
		c.logger.Debug("rejected style choice", "input", answer)
		label = fmt.Sprintf("Invalid choice. Please enter %s, or %s: ",
			strings.Join(keys[:len(keys)-1], ", "), keys[len(keys)-1])
	}
}

func (c *ScreensaverConfigurator) askTimeout(ctx context.Context) (int, error) {
	label := "Enter timeout in minutes before starting screensaver: "

	for {
		answer, err := c.prompter.Prompt(ctx, label)
		if err != nil {
			return 0, fmt.Errorf("reading timeout: %w", err)
		}
		if minutes, err := strconv.Atoi(strings.TrimSpace(answer)); err == nil && minutes >= 1 && minutes <= domain.MaxTimeoutMinutes {
			return minutes, nil
		}
		c.logger.Debug("rejected timeout", "input", answer)
		label = "Please enter a valid number of minutes (must be at least 1): "
	}
}

func (c *ScreensaverConfigurator) styleCommands(style domain.ScreensaverStyle) ([]string, error) {
	type step struct {
		action domain.Action
		param  string
	}
	steps := []step{
		{domain.ActionEnable, ""},
		{domain.ActionSetLockDelay, "0"},
		{domain.ActionSetStyle, style.URI},
	}
	if style.CustomMessage {
		steps = append(steps, step{domain.ActionEnableMessage, ""})
	}

	var commands []string
	for _, s := range steps {
		cmds, err := c.render(s.action, s.param)
		if err != nil {
			return nil, err
		}
		commands = append(commands, cmds...)
	}
	return commands, nil
}

// applyTimeout prefers the desktop agent and falls back to the session
// idle-delay when the agent fails.
func (c *ScreensaverConfigurator) applyTimeout(ctx context.Context, minutes int) {
	c.say(ctx, NoticeInfo, "Setting screensaver timeout to %d minutes using %s", minutes, c.agent.Name())

	err := c.agent.SetScreensaverTimeout(ctx, minutes)
	if err == nil {
		return
	}

	c.logger.Warn("desktop agent failed", "agent", c.agent.Name(), "error", err)
	c.say(ctx, NoticeWarning, "Warning: Failed to set timeout via %s. The screensaver will still work, but might not use your timeout setting.", c.agent.Name())
	c.say(ctx, NoticeInfo, "Attempting fallback method for timeout...")

	cmds, err := c.render(domain.ActionSetIdleDelay, strconv.Itoa(minutes*60))
	if err != nil {
		c.logger.Warn("rendering idle-delay fallback", "error", err)
		return
	}
	c.executor.ExecuteSequence(ctx, cmds...)
}

func (c *ScreensaverConfigurator) render(action domain.Action, param string) ([]string, error) {
	tmpl, ok := c.catalog.Lookup(domain.CategoryScreensaver, action)
	if !ok {
		return nil, fmt.Errorf("screensaver %s: %w", action, domain.ErrUnsupported)
	}
	cmds, err := tmpl.Commands(param)
	if err != nil {
		return nil, fmt.Errorf("screensaver %s: %w: %v", action, domain.ErrInvalidParameter, err)
	}
	return cmds, nil
}

func (c *ScreensaverConfigurator) say(ctx context.Context, level NoticeLevel, format string, args ...any) {
	if err := c.notifier.Notify(ctx, level, fmt.Sprintf(format, args...)); err != nil {
		c.logger.Error("notifying", "error", err)
	}
}
