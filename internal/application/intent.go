package application

import (
	"context"

	"cmd-agent/internal/domain"
)

// IntentParser returns an intent with ActionUnknown when the text is not
// understood.
type IntentParser interface {
	Parse(ctx context.Context, text string) (*domain.Intent, error)
}
