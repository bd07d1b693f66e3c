package main

import (
	"errors"
	"net/http"

	"sabha/internal/mailer"
	"sabha/internal/notify"
)

var errUnknownOperator = errors.New("unknown operator")

// manualTemplates are the templates an operator may resend by hand.
var manualTemplates = map[string]string{
	"confirmation":    mailer.ConfirmationTemplate,
	"calendar_invite": mailer.CalendarInviteTemplate,
	"one_hour":        mailer.OneHourReminderTemplate,
	"five_minute":     mailer.FiveMinuteReminderTemplate,
}

type SendNotificationPayload struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Name     string `json:"name" validate:"required,max=100"`
	Template string `json:"template" validate:"required"`
}

// SendNotificationResponse reports the terminal outcome of a manual send.
type SendNotificationResponse struct {
	MessageID string `json:"message_id"`
	Attempts  int    `json:"attempts"`
	Delivered bool   `json:"delivered"`
}

// sendNotificationHandler godoc
//
//	@Summary		Send a notification manually
//	@Description	Sends one templated email to one recipient, bypassing the payment ledger. No idempotency applies; repeating the request repeats the email.
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		SendNotificationPayload	true	"Recipient and template"
//	@Success		200		{object}	SendNotificationResponse
//	@Failure		400		{object}	error
//	@Failure		502		{object}	error	"Delivery failed after retries"
//	@Security		ApiKeyAuth
//	@Router			/admin/notifications [post]
func (app *application) sendNotificationHandler(w http.ResponseWriter, r *http.Request) {
	var payload SendNotificationPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	template, ok := manualTemplates[payload.Template]
	if !ok {
		app.badRequestResponse(w, r, errors.New("unknown template: "+payload.Template))
		return
	}

	outcome := app.notifier.Send(r.Context(), notify.Request{
		To:       payload.Email,
		Template: template,
		Data:     app.eventData(payload.Name),
	})

	resp := SendNotificationResponse{
		MessageID: outcome.MessageID,
		Attempts:  outcome.Attempts,
		Delivered: outcome.Delivered,
	}

	status := http.StatusOK
	if !outcome.Delivered {
		status = http.StatusBadGateway
	}
	if err := app.jsonResponse(w, status, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// transactionCountHandler godoc
//
//	@Summary		Count captured payments
//	@Description	Returns how many registrations have been recorded so far.
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	map[string]int64
//	@Failure		500	{object}	error
//	@Security		ApiKeyAuth
//	@Router			/admin/transactions/count [get]
func (app *application) transactionCountHandler(w http.ResponseWriter, r *http.Request) {
	count, err := app.store.Payments.Count(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, map[string]int64{"transaction_count": count}); err != nil {
		app.internalServerError(w, r, err)
	}
}
