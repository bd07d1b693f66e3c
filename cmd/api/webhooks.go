package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"sabha/internal/mailer"
	"sabha/internal/notify"
	"sabha/internal/store"
)

// PaymentNotes is the registrant PII the checkout page attaches to the
// payment. All three fields must be present before anything is persisted.
type PaymentNotes struct {
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"full_name" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
}

type PaymentEntity struct {
	ID     string       `json:"id" validate:"required"`
	Amount int64        `json:"amount" validate:"gte=0"` // paisa
	Notes  PaymentNotes `json:"notes"`
}

// PaymentCapturedEvent mirrors the gateway's payment.captured webhook shape.
type PaymentCapturedEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity PaymentEntity `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// paymentWebhookHandler godoc
//
//	@Summary		Ingest a payment-captured webhook
//	@Description	Records a captured payment exactly once and queues the confirmation and calendar-invite emails. Redelivery of an already-captured payment is acknowledged without side effects.
//	@Tags			webhooks
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		PaymentCapturedEvent	true	"payment.captured event"
//	@Success		200		{object}	map[string]string
//	@Failure		400		{object}	error	"Missing registrant details"
//	@Router			/webhooks/payments [post]
func (app *application) paymentWebhookHandler(w http.ResponseWriter, r *http.Request) {
	// The raw body is kept verbatim; it goes into the ledger for audit
	// and replay, so no DisallowUnknownFields decoding here.
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1_048_578))
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var event PaymentCapturedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	entity := event.Payload.Payment.Entity
	if err := Validate.Struct(entity); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	ctx := r.Context()

	// Cheap replay short-circuit. The unique constraint on payment_id is
	// what actually guarantees a single record; this just skips the work
	// for the common redelivery case.
	if _, err := app.store.Payments.GetByPaymentID(ctx, entity.ID); err == nil {
		app.logger.Infow("payment already captured", "payment_id", entity.ID)
		if err := app.jsonResponse(w, http.StatusOK, map[string]string{"status": "already captured"}); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		app.logger.Errorw("payment lookup failed, deferring to insert", "payment_id", entity.ID, "error", err)
	}

	payment := &store.Payment{
		PaymentID:   entity.ID,
		Email:       entity.Notes.Email,
		FullName:    entity.Notes.FullName,
		Phone:       entity.Notes.Phone,
		AmountPaisa: entity.Amount,
		CapturedAt:  time.Now().In(app.tz),
		Payload:     body,
	}

	if err := app.store.Payments.Create(ctx, payment); err != nil {
		if errors.Is(err, store.ErrConflict) {
			// Lost a race against a concurrent delivery of the same
			// event; the winner already sent the emails.
			app.logger.Infow("payment already captured (insert race)", "payment_id", entity.ID)
			if err := app.jsonResponse(w, http.StatusOK, map[string]string{"status": "already captured"}); err != nil {
				app.internalServerError(w, r, err)
			}
			return
		}
		// Acknowledge anyway: a 5xx here would bring redelivery storms
		// for an event we already failed to store once. Flagged for
		// manual reconciliation instead.
		app.logger.Errorw("payment not recorded, acknowledged for reconciliation",
			"payment_id", entity.ID, "email", entity.Notes.Email, "error", err)
		if err := app.jsonResponse(w, http.StatusOK, map[string]string{"status": "accepted"}); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	app.logger.Infow("payment captured",
		"payment_id", payment.PaymentID,
		"email", payment.Email,
		"amount_paisa", payment.AmountPaisa,
	)

	code, err := app.refcodes.FromID(payment.ID)
	if err != nil {
		app.logger.Errorw("reference code generation failed", "payment_id", payment.PaymentID, "error", err)
	}

	// Fire and forget: the gateway gets its ack as soon as the record is
	// durable, while the emails retry in the background.
	go app.sendRegistrationEmails(payment, code)

	if err := app.jsonResponse(w, http.StatusOK, map[string]string{"status": "captured"}); err != nil {
		app.internalServerError(w, r, err)
	}
}

// sendRegistrationEmails delivers the confirmation and calendar-invite
// emails for a freshly captured payment. Outcomes are logged by the
// notifier; nothing here can fail the webhook response or unwind the record.
func (app *application) sendRegistrationEmails(payment *store.Payment, refCode string) {
	defer func() {
		if rec := recover(); rec != nil {
			app.logger.Errorw("registration email dispatch panicked",
				"payment_id", payment.PaymentID, "panic", fmt.Sprintf("%v", rec))
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	data := app.eventData(payment.FullName)
	data.RefCode = refCode

	app.notifier.Send(ctx, notify.Request{
		To:       payment.Email,
		Template: mailer.ConfirmationTemplate,
		Data:     data,
	})

	app.notifier.Send(ctx, notify.Request{
		To:       payment.Email,
		Template: mailer.CalendarInviteTemplate,
		Data:     data,
	})
}

// eventData assembles the template fields for the configured webinar.
func (app *application) eventData(name string) mailer.EventData {
	return mailer.EventData{
		Name:        name,
		EventTitle:  app.config.event.title,
		EventDate:   app.config.event.date,
		EventTime:   app.config.event.timeRange,
		MeetingURL:  app.config.event.meetingURL,
		CalendarURL: app.config.event.calendarURL,
		HostName:    app.config.event.hostName,
	}
}
