package application

import (
	"context"

	"cmd-agent/internal/domain"
)

// CommandRunner runs one command string. A non-nil error means the command
// could not be invoked at all; a non-zero exit is reported in the result.
type CommandRunner interface {
	Run(ctx context.Context, command string) (domain.CommandResult, error)
}

type CommandCatalog interface {
	Lookup(category domain.Category, action domain.Action) (domain.Template, bool)
}

// DesktopAgent drives the external desktop command agent helper.
type DesktopAgent interface {
	Name() string
	SetScreensaverTimeout(ctx context.Context, minutes int) error
}

type Prompter interface {
	Prompt(ctx context.Context, label string) (string, error)
}
