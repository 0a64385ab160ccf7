package notify

import "context"

// Notifier delivers one textual message to a chat endpoint. Callers treat
// delivery as best-effort: a failure is logged, never propagated.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Multi fans a message out to several notifiers, returning the first error.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, text string) error {
	var firstErr error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Send(ctx, text); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
