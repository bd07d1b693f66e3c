package mailer

import (
	"bytes"
	"context"
	"embed"
	"html/template"
)

const (
	FromName = "Sabha Events"

	ConfirmationTemplate       = "payment_confirmation.tmpl"
	CalendarInviteTemplate     = "calendar_invite.tmpl"
	OneHourReminderTemplate    = "one_hour_reminder.tmpl"
	FiveMinuteReminderTemplate = "five_minute_reminder.tmpl"
)

//go:embed "templates"
var FS embed.FS

// Client is the raw delivery capability. How it authenticates against the
// mail provider is its own business; callers only see success or failure.
type Client interface {
	Send(ctx context.Context, to, subject, body string, attachments []Attachment) error
}

type Attachment struct {
	Filename string
	Path     string
}

// EventData carries the fields the notification templates interpolate.
type EventData struct {
	Name        string
	EventTitle  string
	EventDate   string
	EventTime   string
	MeetingURL  string
	CalendarURL string
	HostName    string
	RefCode     string
}

// Render executes the named template's "subject" and "body" blocks.
func Render(templateFile string, data any) (subject, body string, err error) {
	tmpl, err := template.ParseFS(FS, "templates/"+templateFile)
	if err != nil {
		return "", "", err
	}

	subjectBuf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(subjectBuf, "subject", data); err != nil {
		return "", "", err
	}

	bodyBuf := new(bytes.Buffer)
	if err := tmpl.ExecuteTemplate(bodyBuf, "body", data); err != nil {
		return "", "", err
	}

	return subjectBuf.String(), bodyBuf.String(), nil
}
