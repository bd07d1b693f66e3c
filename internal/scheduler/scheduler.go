package scheduler

import (
	"context"
	"time"

	"sabha/internal/mailer"
	"sabha/internal/notify"
	"sabha/internal/store"

	"go.uber.org/zap"
)

// pacingDelay spaces consecutive sends within one sweep so a large
// registration list doesn't burst the outbound mail path.
const pacingDelay = 3 * time.Second

type Kind string

const (
	OneHourReminder    Kind = "one_hour"
	FiveMinuteReminder Kind = "five_minute"
)

func (k Kind) template() string {
	if k == FiveMinuteReminder {
		return mailer.FiveMinuteReminderTemplate
	}
	return mailer.OneHourReminderTemplate
}

// ReminderScheduler sweeps the payment ledger and sends one reminder email
// per registrant. Sweeps for the two reminder kinds are independent; a
// failed send for one registrant never stops the rest of the sweep.
type ReminderScheduler struct {
	store    store.Storage
	notifier *notify.Notifier
	event    mailer.EventData
	logger   *zap.SugaredLogger
	sleep    func(context.Context, time.Duration) error
}

func New(storage store.Storage, notifier *notify.Notifier, event mailer.EventData, logger *zap.SugaredLogger) *ReminderScheduler {
	return &ReminderScheduler{
		store:    storage,
		notifier: notifier,
		event:    event,
		logger:   logger,
		sleep:    sleepFor,
	}
}

// RunSweep reads every captured payment and sends the reminder for kind to
// each registrant in listing order. Delivery failures are logged and the
// sweep carries on; the only error returned is a failure to read the ledger.
func (s *ReminderScheduler) RunSweep(ctx context.Context, kind Kind) error {
	payments, err := s.store.Payments.List(ctx)
	if err != nil {
		s.logger.Errorw("reminder sweep could not read payments", "kind", kind, "error", err)
		return err
	}

	s.logger.Infow("reminder sweep started", "kind", kind, "recipients", len(payments))

	sent, failed := 0, 0
	for i, p := range payments {
		if i > 0 {
			if err := s.sleep(ctx, pacingDelay); err != nil {
				s.logger.Errorw("reminder sweep interrupted",
					"kind", kind, "sent", sent, "failed", failed, "error", err)
				return err
			}
		}

		data := s.event
		data.Name = p.FullName

		outcome := s.notifier.Send(ctx, notify.Request{
			To:       p.Email,
			Template: kind.template(),
			Data:     data,
		})
		if outcome.Delivered {
			sent++
			continue
		}
		failed++
		s.logger.Errorw("reminder not delivered",
			"kind", kind, "payment_id", p.PaymentID, "message_id", outcome.MessageID, "error", outcome.Err)
	}

	s.logger.Infow("reminder sweep finished", "kind", kind, "sent", sent, "failed", failed)
	return nil
}

func sleepFor(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
