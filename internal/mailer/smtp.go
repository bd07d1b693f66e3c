package mailer

import (
	"context"
	"errors"
	"time"

	mail "gopkg.in/mail.v2"
)

type SMTPClient struct {
	dialer    *mail.Dialer
	fromEmail string
}

func NewSMTPClient(host string, port int, username, password, fromEmail string) (*SMTPClient, error) {
	if host == "" || fromEmail == "" {
		return nil, errors.New("smtp host and from email are required")
	}

	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 15 * time.Second

	return &SMTPClient{
		dialer:    dialer,
		fromEmail: fromEmail,
	}, nil
}

func (c *SMTPClient) Send(ctx context.Context, to, subject, body string, attachments []Attachment) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := mail.NewMessage()
	m.SetAddressHeader("From", c.fromEmail, FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	for _, a := range attachments {
		if a.Filename != "" {
			m.Attach(a.Path, mail.Rename(a.Filename))
			continue
		}
		m.Attach(a.Path)
	}

	return c.dialer.DialAndSend(m)
}
