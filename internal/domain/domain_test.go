package domain_test

import (
	"errors"
	"testing"

	"cmd-agent/internal/domain"
)

func TestTemplate_Literal(t *testing.T) {
	tmpl := domain.Literal("a", "b")
	if tmpl.NeedsParam() {
		t.Error("literal template should not need a parameter")
	}

	cmds, err := tmpl.Commands("ignored")
	if err != nil {
		t.Fatalf("Commands error: %v", err)
	}
	if len(cmds) != 2 || cmds[0] != "a" || cmds[1] != "b" {
		t.Errorf("Commands: got %v, want [a b]", cmds)
	}

	cmds[0] = "mutated"
	again, _ := tmpl.Commands("")
	if again[0] != "a" {
		t.Error("literal template must not share its backing slice")
	}
}

func TestTemplate_Templated(t *testing.T) {
	tmpl := domain.Templated(func(p string) ([]string, error) {
		if p == "bad" {
			return nil, errors.New("rejected")
		}
		return []string{"run " + p}, nil
	})
	if !tmpl.NeedsParam() {
		t.Error("templated template should need a parameter")
	}

	cmds, err := tmpl.Commands("x")
	if err != nil || len(cmds) != 1 || cmds[0] != "run x" {
		t.Errorf("Commands: got %v, %v", cmds, err)
	}
	if _, err := tmpl.Commands("bad"); err == nil {
		t.Error("Commands: got nil error for rejected parameter")
	}
}

func TestFindScreensaverStyle(t *testing.T) {
	style, ok := domain.FindScreensaverStyle(" D ")
	if !ok || style.Name != "Custom Message" || !style.CustomMessage {
		t.Errorf("got %+v, %v", style, ok)
	}
	for _, key := range []string{"", "e", "ab", "1"} {
		if _, ok := domain.FindScreensaverStyle(key); ok {
			t.Errorf("FindScreensaverStyle(%q) should fail", key)
		}
	}
}

func TestActionMessage(t *testing.T) {
	if got := domain.ActionMessage(domain.ActionConnect); got != "connected to" {
		t.Errorf("connect: got %q", got)
	}
	if got := domain.ActionMessage(domain.ActionSetStyle); got != "set style" {
		t.Errorf("fallback: got %q", got)
	}
}
