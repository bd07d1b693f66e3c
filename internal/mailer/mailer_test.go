package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderKnownTemplates(t *testing.T) {
	data := EventData{
		Name:        "Ana",
		EventTitle:  "Coaching at the Elite Level",
		EventDate:   "Sunday, 14 September",
		EventTime:   "11:00 AM – 1:00 PM",
		MeetingURL:  "https://meet.example.com/abc",
		CalendarURL: "https://calendar.example.com/render",
		HostName:    "Soham",
		RefCode:     "XK4P9QZ2",
	}

	templates := []string{
		ConfirmationTemplate,
		CalendarInviteTemplate,
		OneHourReminderTemplate,
		FiveMinuteReminderTemplate,
	}

	for _, name := range templates {
		t.Run(name, func(t *testing.T) {
			subject, body, err := Render(name, data)
			require.NoError(t, err)
			assert.NotEmpty(t, subject)
			assert.Contains(t, body, "Ana")
			assert.Contains(t, body, "Coaching at the Elite Level")
		})
	}
}

func TestRenderEscapesRecipientName(t *testing.T) {
	_, body, err := Render(OneHourReminderTemplate, EventData{
		Name:       `<script>alert("x")</script>`,
		EventTitle: "T",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, err := Render("missing.tmpl", EventData{})
	assert.Error(t, err)
}
