package application_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"cmd-agent/internal/application"
	"cmd-agent/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockRunner records every command and fails the ones listed in failures.
type mockRunner struct {
	ran      []string
	failures map[string]domain.CommandResult
	errs     map[string]error
	stdout   map[string]string
}

func (m *mockRunner) Run(_ context.Context, command string) (domain.CommandResult, error) {
	m.ran = append(m.ran, command)
	if err, ok := m.errs[command]; ok {
		return domain.CommandResult{}, err
	}
	if res, ok := m.failures[command]; ok {
		return res, nil
	}
	return domain.CommandResult{Stdout: m.stdout[command]}, nil
}

type notice struct {
	level   application.NoticeLevel
	message string
}

type mockNotifier struct {
	notices []notice
}

func (m *mockNotifier) Notify(_ context.Context, level application.NoticeLevel, message string) error {
	m.notices = append(m.notices, notice{level: level, message: message})
	return nil
}

func (m *mockNotifier) has(substr string) bool {
	for _, n := range m.notices {
		if strings.Contains(n.message, substr) {
			return true
		}
	}
	return false
}

func (m *mockNotifier) dump() string {
	var sb strings.Builder
	for _, n := range m.notices {
		sb.WriteString(n.message)
		sb.WriteString("\n")
	}
	return sb.String()
}

type mockAgent struct {
	err     error
	minutes []int
}

func (m *mockAgent) Name() string { return "mock-agent" }

func (m *mockAgent) SetScreensaverTimeout(_ context.Context, minutes int) error {
	m.minutes = append(m.minutes, minutes)
	return m.err
}

// scriptedPrompter answers prompts in order and reports io.EOF when the
// script runs out.
type scriptedPrompter struct {
	answers []string
	labels  []string
}

func (s *scriptedPrompter) Prompt(_ context.Context, label string) (string, error) {
	s.labels = append(s.labels, label)
	if len(s.answers) == 0 {
		return "", io.EOF
	}
	answer := s.answers[0]
	s.answers = s.answers[1:]
	return answer, nil
}

type staticCatalog map[string]domain.Template

func (s staticCatalog) Lookup(c domain.Category, a domain.Action) (domain.Template, bool) {
	t, ok := s[fmt.Sprintf("%s/%s", c, a)]
	return t, ok
}
