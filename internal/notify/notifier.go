package notify

import (
	"context"
	"time"

	"sabha/internal/mailer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxAttempts = 3
	retryDelay  = 6 * time.Second
)

// Request is one outbound notification. It lives only for the duration of
// the send attempt sequence.
type Request struct {
	To          string
	Template    string
	Data        any
	Attachments []mailer.Attachment
}

// Outcome is the terminal result of a send. Send never returns before
// reaching one: either a delivery succeeded or every attempt failed.
type Outcome struct {
	MessageID string
	Attempts  int
	Delivered bool
	Err       error
}

// Notifier delivers one templated message per Send call, retrying failed
// attempts with a fixed delay. It holds no state across calls.
type Notifier struct {
	client mailer.Client
	logger *zap.SugaredLogger
	sleep  func(context.Context, time.Duration) error
}

type Option func(*Notifier)

// WithSleep replaces the inter-attempt wait. Tests use it to observe retry
// delays without waiting them out.
func WithSleep(fn func(context.Context, time.Duration) error) Option {
	return func(n *Notifier) { n.sleep = fn }
}

func New(client mailer.Client, logger *zap.SugaredLogger, opts ...Option) *Notifier {
	n := &Notifier{
		client: client,
		logger: logger,
		sleep:  sleepFor,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Send renders the request's template and attempts delivery up to
// maxAttempts times, waiting retryDelay between attempts. The wait
// suspends only this call; concurrent Sends are unaffected. Failures are
// absorbed into the Outcome, never raised.
func (n *Notifier) Send(ctx context.Context, req Request) Outcome {
	messageID := uuid.New().String()

	subject, body, err := mailer.Render(req.Template, req.Data)
	if err != nil {
		n.logger.Errorw("template render failed",
			"message_id", messageID, "template", req.Template, "error", err)
		return Outcome{MessageID: messageID, Err: err}
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err := n.client.Send(ctx, req.To, subject, body, req.Attachments)
		if err == nil {
			n.logger.Infow("email sent",
				"message_id", messageID, "to", req.To, "template", req.Template, "attempt", attempt)
			return Outcome{MessageID: messageID, Attempts: attempt, Delivered: true}
		}

		lastErr = err
		n.logger.Errorw("email send failed",
			"message_id", messageID, "to", req.To, "attempt", attempt,
			"max_attempts", maxAttempts, "error", err)

		if attempt == maxAttempts {
			break
		}
		if err := n.sleep(ctx, retryDelay); err != nil {
			n.logger.Errorw("retry wait interrupted",
				"message_id", messageID, "to", req.To, "error", err)
			return Outcome{MessageID: messageID, Attempts: attempt, Err: lastErr}
		}
	}

	n.logger.Errorw("email delivery exhausted",
		"message_id", messageID, "to", req.To, "attempts", maxAttempts, "error", lastErr)
	return Outcome{MessageID: messageID, Attempts: maxAttempts, Err: lastErr}
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
