package service

import (
	"context"
	"errors"
)

// multiNotifier fans a notification out to every configured channel.
// A failing channel does not stop delivery to the others.
type multiNotifier struct {
	channels []Notifier
}

// NewMultiNotifier combines notifiers into one. Nil entries are skipped,
// and a nil Notifier is returned when no channel remains so callers can
// keep their usual nil check.
func NewMultiNotifier(channels ...Notifier) Notifier {
	var active []Notifier
	for _, ch := range channels {
		if ch != nil {
			active = append(active, ch)
		}
	}
	switch len(active) {
	case 0:
		return nil
	case 1:
		return active[0]
	}
	return &multiNotifier{channels: active}
}

func (n *multiNotifier) Send(ctx context.Context, text string) error {
	var errs []error
	for _, ch := range n.channels {
		if err := ch.Send(ctx, text); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
