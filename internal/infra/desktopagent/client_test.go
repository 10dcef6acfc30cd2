package desktopagent_test

import (
	"context"
	"io"
	"log/slog"
	"os/exec"
	"testing"
	"time"

	"cmd-agent/internal/infra/desktopagent"
)

func requireSh(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func newClient(binary, shellPath string, grace time.Duration) *desktopagent.Client {
	return desktopagent.NewClient(binary, shellPath, grace, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_TerminatesAfterGracePeriod(t *testing.T) {
	requireSh(t)

	// The trailing comment swallows the --text argument.
	client := newClient("sleep 30 #", "sh", 100*time.Millisecond)

	start := time.Now()
	if err := client.SetScreensaverTimeout(context.Background(), 5); err != nil {
		t.Fatalf("SetScreensaverTimeout error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("took %s, want the helper terminated shortly after the grace period", elapsed)
	}
}

func TestClient_EarlySuccessfulExit(t *testing.T) {
	requireSh(t)

	client := newClient("true", "sh", 5*time.Second)

	start := time.Now()
	if err := client.SetScreensaverTimeout(context.Background(), 5); err != nil {
		t.Fatalf("SetScreensaverTimeout error: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 4*time.Second {
		t.Errorf("took %s, want an early return", elapsed)
	}
}

func TestClient_EarlyFailureIsAnError(t *testing.T) {
	requireSh(t)

	client := newClient("false", "", 5*time.Second)
	if err := client.SetScreensaverTimeout(context.Background(), 5); err == nil {
		t.Fatal("SetScreensaverTimeout: got nil, want error")
	}
}

func TestClient_MissingBinary(t *testing.T) {
	client := newClient("no-such-desktop-agent-4711", "", time.Second)
	if err := client.SetScreensaverTimeout(context.Background(), 5); err == nil {
		t.Fatal("SetScreensaverTimeout: got nil, want error")
	}
}

func TestClient_DefaultBinary(t *testing.T) {
	client := newClient("", "", time.Second)
	if client.Name() != desktopagent.DefaultBinary {
		t.Errorf("Name: got %s, want %s", client.Name(), desktopagent.DefaultBinary)
	}
}
