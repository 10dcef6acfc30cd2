package application

import "context"

type NoticeLevel int

const (
	NoticeInfo NoticeLevel = iota
	NoticeSuccess
	NoticeWarning
	NoticeError
)

// Notifier delivers user-facing status lines.
type Notifier interface {
	Notify(ctx context.Context, level NoticeLevel, message string) error
}

// NoopNotifier drops every notice.
type NoopNotifier struct{}

func (n *NoopNotifier) Notify(_ context.Context, _ NoticeLevel, _ string) error {
	return nil
}
