package main

import (
	"context"
	"fmt"
	"time"

	"sabha/internal/scheduler"
)

// scheduleDailySweep fires the reminder sweep for kind once a day at the
// given wall-clock time ("15:04") in the event timezone.
func (app *application) scheduleDailySweep(kind scheduler.Kind, at string) error {
	trigger, err := time.Parse("15:04", at)
	if err != nil {
		return fmt.Errorf("invalid reminder trigger time %q: %w", at, err)
	}

	go func() {
		for {
			now := time.Now().In(app.tz)
			next := time.Date(now.Year(), now.Month(), now.Day(), trigger.Hour(), trigger.Minute(), 0, 0, app.tz)
			if !next.After(now) {
				next = next.Add(24 * time.Hour)
			}

			timer := time.NewTimer(next.Sub(now))
			<-timer.C

			app.logger.Infow("reminder trigger fired", "kind", kind, "at", at)
			if err := app.reminders.RunSweep(context.Background(), kind); err != nil {
				app.logger.Errorw("reminder sweep failed", "kind", kind, "error", err)
			}
		}
	}()

	app.logger.Infow("reminder sweep scheduled", "kind", kind, "at", at, "tz", app.tz.String())
	return nil
}
