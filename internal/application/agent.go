package application

import (
	"context"
	"fmt"
)

// DisabledAgent stands in when no desktop agent is configured. It always
// fails so callers take their fallback path.
type DisabledAgent struct{}

func (d *DisabledAgent) Name() string {
	return "desktop agent"
}

func (d *DisabledAgent) SetScreensaverTimeout(_ context.Context, _ int) error {
	return fmt.Errorf("desktop agent not configured: set agent.enabled and agent.binary to enable it")
}
