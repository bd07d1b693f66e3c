package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"sabha/internal/mailer"
	"sabha/internal/notify"
	"sabha/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePayments struct {
	payments []store.Payment
	listErr  error
}

func (f *fakePayments) GetByPaymentID(ctx context.Context, id string) (*store.Payment, error) {
	return nil, store.ErrNotFound
}

func (f *fakePayments) Create(ctx context.Context, p *store.Payment) error { return nil }

func (f *fakePayments) List(ctx context.Context) ([]store.Payment, error) {
	return f.payments, f.listErr
}

func (f *fakePayments) Count(ctx context.Context) (int64, error) {
	return int64(len(f.payments)), nil
}

// flakyTransport rejects every delivery to the addresses in failing.
type flakyTransport struct {
	failing map[string]bool
	sends   []string
}

func (f *flakyTransport) Send(ctx context.Context, to, subject, body string, attachments []mailer.Attachment) error {
	f.sends = append(f.sends, to)
	if f.failing[to] {
		return errors.New("mailbox unavailable")
	}
	return nil
}

func newTestScheduler(t *testing.T, payments *fakePayments, transport mailer.Client) (*ReminderScheduler, *[]time.Duration) {
	t.Helper()

	notifier := notify.New(transport, zap.NewNop().Sugar(),
		notify.WithSleep(func(ctx context.Context, d time.Duration) error { return nil }))

	slept := []time.Duration{}
	s := New(store.Storage{Payments: payments}, notifier, mailer.EventData{
		EventTitle: "Coaching at the Elite Level",
		EventDate:  "Sunday, 14 September",
		EventTime:  "11:00 AM – 1:00 PM",
		MeetingURL: "https://meet.example.com/abc",
		HostName:   "Soham",
	}, zap.NewNop().Sugar())
	s.sleep = func(ctx context.Context, d time.Duration) error {
		slept = append(slept, d)
		return nil
	}
	return s, &slept
}

func ledgerOf(names ...string) *fakePayments {
	f := &fakePayments{}
	for i, name := range names {
		f.payments = append(f.payments, store.Payment{
			ID:        int64(i + 1),
			PaymentID: "pay_" + name,
			Email:     name + "@example.com",
			FullName:  name,
		})
	}
	return f
}

func TestSweepSendsToEveryRegistrantInOrder(t *testing.T) {
	transport := &flakyTransport{}
	s, slept := newTestScheduler(t, ledgerOf("ana", "bo", "cy"), transport)

	err := s.RunSweep(context.Background(), FiveMinuteReminder)

	require.NoError(t, err)
	assert.Equal(t, []string{"ana@example.com", "bo@example.com", "cy@example.com"}, transport.sends)
	assert.Equal(t, []time.Duration{pacingDelay, pacingDelay}, *slept,
		"each send after the first waits out the pacing delay")
}

func TestSweepContinuesPastFailedRecipient(t *testing.T) {
	transport := &flakyTransport{failing: map[string]bool{"bo@example.com": true}}
	s, _ := newTestScheduler(t, ledgerOf("ana", "bo", "cy"), transport)

	err := s.RunSweep(context.Background(), OneHourReminder)

	require.NoError(t, err)
	// bo's send is retried to exhaustion by the notifier, then the sweep
	// moves on to cy.
	assert.Equal(t, []string{
		"ana@example.com",
		"bo@example.com", "bo@example.com", "bo@example.com",
		"cy@example.com",
	}, transport.sends)
}

func TestSweepReportsLedgerReadFailure(t *testing.T) {
	transport := &flakyTransport{}
	s, _ := newTestScheduler(t, &fakePayments{listErr: errors.New("connection reset")}, transport)

	err := s.RunSweep(context.Background(), OneHourReminder)

	require.Error(t, err)
	assert.Empty(t, transport.sends)
}

func TestSweepWithEmptyLedger(t *testing.T) {
	transport := &flakyTransport{}
	s, slept := newTestScheduler(t, &fakePayments{}, transport)

	require.NoError(t, s.RunSweep(context.Background(), FiveMinuteReminder))
	assert.Empty(t, transport.sends)
	assert.Empty(t, *slept)
}

func TestKindTemplates(t *testing.T) {
	assert.Equal(t, mailer.OneHourReminderTemplate, OneHourReminder.template())
	assert.Equal(t, mailer.FiveMinuteReminderTemplate, FiveMinuteReminder.template())
}
