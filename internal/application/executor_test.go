package application_test

import (
	"context"
	"errors"
	"testing"

	"cmd-agent/internal/application"
	"cmd-agent/internal/domain"
)

func TestExecutor_ExecuteSuccessPrintsStdout(t *testing.T) {
	runner := &mockRunner{stdout: map[string]string{"echo hi": "hi\n"}}
	notifier := &mockNotifier{}
	exec := application.NewExecutor(runner, notifier, discardLogger())

	if !exec.Execute(context.Background(), "echo hi") {
		t.Fatal("Execute: got false, want true")
	}

	if len(notifier.notices) != 1 || notifier.notices[0].message != "hi" {
		t.Errorf("notices: got %q, want [hi]", notifier.dump())
	}
}

func TestExecutor_ExecuteNonZeroExit(t *testing.T) {
	runner := &mockRunner{failures: map[string]domain.CommandResult{
		"bad": {ExitCode: 2, Stderr: "no such schema\n"},
	}}
	notifier := &mockNotifier{}
	exec := application.NewExecutor(runner, notifier, discardLogger())

	if exec.Execute(context.Background(), "bad") {
		t.Fatal("Execute: got true, want false")
	}

	if !notifier.has("Command failed: no such schema") {
		t.Errorf("missing stderr diagnostic, got:\n%s", notifier.dump())
	}
}

func TestExecutor_ExecuteInvocationError(t *testing.T) {
	runner := &mockRunner{errs: map[string]error{"missing": errors.New("executable file not found")}}
	notifier := &mockNotifier{}
	exec := application.NewExecutor(runner, notifier, discardLogger())

	if exec.Execute(context.Background(), "missing") {
		t.Fatal("Execute: got true, want false")
	}

	if !notifier.has("Error executing command: executable file not found") {
		t.Errorf("missing invocation diagnostic, got:\n%s", notifier.dump())
	}
}

func TestExecutor_SequenceStopsAtFirstFailure(t *testing.T) {
	runner := &mockRunner{failures: map[string]domain.CommandResult{
		"cmdA": {ExitCode: 1},
	}}
	exec := application.NewExecutor(runner, &application.NoopNotifier{}, discardLogger())

	if exec.ExecuteSequence(context.Background(), "cmdA", "cmdB") {
		t.Fatal("ExecuteSequence: got true, want false")
	}

	if len(runner.ran) != 1 || runner.ran[0] != "cmdA" {
		t.Errorf("ran: got %v, want [cmdA]", runner.ran)
	}
}

func TestExecutor_SequenceSingleCommand(t *testing.T) {
	runner := &mockRunner{}
	notifier := &mockNotifier{}
	exec := application.NewExecutor(runner, notifier, discardLogger())

	if !exec.ExecuteSequence(context.Background(), "only") {
		t.Fatal("ExecuteSequence: got false, want true")
	}

	if len(runner.ran) != 1 {
		t.Errorf("ran: got %v, want [only]", runner.ran)
	}
	if !notifier.has("Executing: only") {
		t.Errorf("missing Executing line, got:\n%s", notifier.dump())
	}
}

func TestExecutor_SequenceRunsAllInOrder(t *testing.T) {
	runner := &mockRunner{}
	exec := application.NewExecutor(runner, &application.NoopNotifier{}, discardLogger())

	if !exec.ExecuteSequence(context.Background(), "one", "two", "three") {
		t.Fatal("ExecuteSequence: got false, want true")
	}

	want := []string{"one", "two", "three"}
	if len(runner.ran) != len(want) {
		t.Fatalf("ran: got %v, want %v", runner.ran, want)
	}
	for i := range want {
		if runner.ran[i] != want[i] {
			t.Errorf("ran[%d]: got %s, want %s", i, runner.ran[i], want[i])
		}
	}
}
