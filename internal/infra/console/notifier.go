package console

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"cmd-agent/internal/application"
)

// Notifier prints status lines to a terminal. Colors are dropped
// automatically when out is not a TTY.
type Notifier struct {
	mu     sync.Mutex
	out    io.Writer
	styles map[application.NoticeLevel]lipgloss.Style
}

func NewNotifier(out io.Writer) *Notifier {
	r := lipgloss.NewRenderer(out)
	return &Notifier{
		out: out,
		styles: map[application.NoticeLevel]lipgloss.Style{
			application.NoticeSuccess: r.NewStyle().Foreground(lipgloss.Color("2")),
			application.NoticeWarning: r.NewStyle().Foreground(lipgloss.Color("3")),
			application.NoticeError:   r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		},
	}
}

func (n *Notifier) Notify(_ context.Context, level application.NoticeLevel, message string) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if style, ok := n.styles[level]; ok {
		message = style.Render(message)
	}

	if _, err := fmt.Fprintln(n.out, message); err != nil {
		return fmt.Errorf("writing notice: %w", err)
	}
	return nil
}
