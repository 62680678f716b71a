package notify

import (
	"context"

	"go.uber.org/multierr"

	"github.com/Soulverse-Ecosystem/status-check/internal/domain"
)

// Notifier delivers one transition event to a sink. Delivery is best-effort:
// callers log the returned error and carry on.
type Notifier interface {
	Send(ctx context.Context, ev domain.NotificationEvent) error
}

// Multi fans one event out to several sinks. All sinks are attempted;
// failures are combined into one error.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, ev domain.NotificationEvent) error {
	var errs error
	for _, n := range m {
		if n == nil {
			continue
		}
		errs = multierr.Append(errs, n.Send(ctx, ev))
	}
	return errs
}
