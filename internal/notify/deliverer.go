package notify

import (
	"context"
	"errors"
	"fmt"

	"cashbook/internal/logger"
)

// Handler delivers one message. A returned error has already been logged
// and is informational only.
type Handler func(ctx context.Context, msg Message) error

// Deliverer fans a message out to push and, when a recipient is configured,
// to WhatsApp.
type Deliverer struct {
	push     Pusher
	text     TextSender
	notifyTo string
}

// NewDeliverer creates a Deliverer. An empty notifyTo disables the WhatsApp
// leg.
func NewDeliverer(push Pusher, text TextSender, notifyTo string) *Deliverer {
	return &Deliverer{push: push, text: text, notifyTo: notifyTo}
}

// Deliver attempts each channel once. Failures are logged and joined into
// the returned error; skipped channels are not failures.
func (d *Deliverer) Deliver(ctx context.Context, msg Message) error {
	var errs []error

	res := d.push.Push(ctx, msg.Title, msg.Body)
	if err := logResult("push", res); err != nil {
		errs = append(errs, err)
	}

	if d.notifyTo != "" && d.text != nil {
		res := d.text.SendText(ctx, d.notifyTo, msg.Title+": "+msg.Body)
		if err := logResult("whatsapp", res); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func logResult(channel string, res Result) error {
	log := logger.Get()
	switch {
	case res.Skipped:
		log.Debugw("Notification skipped", "channel", channel, "reason", res.Reason)
		return nil
	case res.OK:
		log.Infow("Notification delivered", "channel", channel)
		return nil
	default:
		log.Warnw("Notification failed", "channel", channel, "response", res.Data)
		return fmt.Errorf("%s delivery failed", channel)
	}
}
