package application

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"cmd-agent/internal/domain"
)

type Assistant struct {
	intent      IntentParser
	catalog     CommandCatalog
	executor    *Executor
	agent       DesktopAgent
	screensaver *ScreensaverConfigurator
	notifier    Notifier
	logger      *slog.Logger
}

func NewAssistant(
	intent IntentParser,
	catalog CommandCatalog,
	runner CommandRunner,
	agent DesktopAgent,
	prompter Prompter,
	notifier Notifier,
	logger *slog.Logger,
) *Assistant {
	executor := NewExecutor(runner, notifier, logger)
	return &Assistant{
		intent:      intent,
		catalog:     catalog,
		executor:    executor,
		agent:       agent,
		screensaver: NewScreensaverConfigurator(catalog, executor, agent, prompter, notifier, logger),
		notifier:    notifier,
		logger:      logger,
	}
}

// Handle interprets one phrase and carries it out. The returned error is
// one of the domain sentinels (possibly wrapped) when the request could not
// be fulfilled; the user has already been told why.
func (a *Assistant) Handle(ctx context.Context, text string) error {
	a.say(ctx, NoticeInfo, "Processing command: %s", text)

	intent, err := a.intent.Parse(ctx, text)
	if err != nil {
		return fmt.Errorf("parsing intent: %w", err)
	}

	if !intent.Recognized() {
		a.logger.Info("unrecognized command", "text", text)
		a.say(ctx, NoticeWarning, "I'm sorry, I don't understand that command.")
		return domain.ErrNotUnderstood
	}

	a.logger.Info("parsed intent",
		"category", intent.Category,
		"action", intent.Action,
		"param", intent.Param,
	)

	if intent.HasParam() {
		a.say(ctx, NoticeInfo, "Recognized intent: %s - %s - %s", intent.Category, intent.Action, intent.Param)
	} else {
		a.say(ctx, NoticeInfo, "Recognized intent: %s - %s", intent.Category, intent.Action)
	}

	return a.Dispatch(ctx, *intent)
}

func (a *Assistant) Dispatch(ctx context.Context, intent domain.Intent) error {
	if intent.Category == domain.CategoryScreensaver {
		switch {
		case intent.Action == domain.ActionSetTimeout && intent.HasParam():
			return a.setScreensaverTimeout(ctx, intent)
		case intent.Action == domain.ActionTurnOn:
			return a.screensaver.Run(ctx)
		}
	}

	tmpl, ok := a.catalog.Lookup(intent.Category, intent.Action)
	if !ok {
		a.say(ctx, NoticeWarning, "I understand you want to %s the %s, but I don't know how to do that yet.", intent.Action, intent.Category)
		return fmt.Errorf("%s %s: %w", intent.Category, intent.Action, domain.ErrUnsupported)
	}

	if tmpl.NeedsParam() && !intent.HasParam() {
		a.say(ctx, NoticeError, "Error: Parameter required for %s %s", intent.Category, intent.Action)
		return fmt.Errorf("%s %s: %w", intent.Category, intent.Action, domain.ErrMissingParameter)
	}

	commands, err := tmpl.Commands(intent.Param)
	if err != nil {
		a.say(ctx, NoticeError, "Error: Invalid parameter for %s %s: %s", intent.Category, intent.Action, err)
		return fmt.Errorf("%s %s: %w: %v", intent.Category, intent.Action, domain.ErrInvalidParameter, err)
	}

	if !a.executor.ExecuteSequence(ctx, commands...) {
		a.say(ctx, NoticeError, "Failed to %s %s", intent.Action, intent.Category)
		return fmt.Errorf("%s %s: %w", intent.Category, intent.Action, domain.ErrCommandFailed)
	}

	if intent.HasParam() {
		a.say(ctx, NoticeSuccess, "Successfully %s %s to %s", domain.ActionMessage(intent.Action), intent.Category, intent.Param)
	} else {
		a.say(ctx, NoticeSuccess, "Successfully %s %s", domain.ActionMessage(intent.Action), intent.Category)
	}

	return nil
}

// setScreensaverTimeout asks the desktop agent first, then always applies
// the lock-delay through the catalog as well. Only the agent outcome decides
// the result.
func (a *Assistant) setScreensaverTimeout(ctx context.Context, intent domain.Intent) error {
	minutes, err := strconv.Atoi(intent.Param)
	if err != nil || minutes < 0 {
		a.say(ctx, NoticeError, "Error: Invalid parameter for %s %s: %q is not a number of minutes", intent.Category, intent.Action, intent.Param)
		return fmt.Errorf("%s %s: %w", intent.Category, intent.Action, domain.ErrInvalidParameter)
	}
	if minutes > domain.MaxTimeoutMinutes {
		a.say(ctx, NoticeError, "Error: Invalid parameter for %s %s: at most %d minutes", intent.Category, intent.Action, domain.MaxTimeoutMinutes)
		return fmt.Errorf("%s %s: %w", intent.Category, intent.Action, domain.ErrInvalidParameter)
	}

	a.say(ctx, NoticeInfo, "Setting screensaver timeout to %d minutes via %s", minutes, a.agent.Name())
	agentErr := a.agent.SetScreensaverTimeout(ctx, minutes)
	if agentErr != nil {
		a.logger.Warn("desktop agent failed", "agent", a.agent.Name(), "error", agentErr)
		a.say(ctx, NoticeError, "Error executing %s: %s", a.agent.Name(), agentErr)
	}

	a.say(ctx, NoticeInfo, "Setting lock-delay to %d seconds", minutes*60)
	if tmpl, ok := a.catalog.Lookup(domain.CategoryScreensaver, domain.ActionSetTimeout); ok {
		commands, err := tmpl.Commands(intent.Param)
		if err != nil {
			a.logger.Warn("rendering lock-delay command", "error", err)
		} else {
			a.executor.ExecuteSequence(ctx, commands...)
		}
	} else {
		a.logger.Warn("no lock-delay command in catalog")
	}

	if agentErr != nil {
		a.say(ctx, NoticeWarning, "Warning: Failed to set screensaver timeout to %d minutes", minutes)
		return fmt.Errorf("setting screensaver timeout: %w", domain.ErrCommandFailed)
	}

	a.say(ctx, NoticeSuccess, "Successfully %s screensaver to %d minutes", domain.ActionMessage(domain.ActionSetTimeout), minutes)
	return nil
}

func (a *Assistant) say(ctx context.Context, level NoticeLevel, format string, args ...any) {
	if err := a.notifier.Notify(ctx, level, fmt.Sprintf(format, args...)); err != nil {
		a.logger.Error("notifying", "error", err)
	}
}
