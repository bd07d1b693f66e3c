package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"sabha/internal/auth"
	"sabha/internal/mailer"
	"sabha/internal/notify"
	"sabha/internal/ratelimiter"
	"sabha/internal/refcode"
	"sabha/internal/scheduler"
	"sabha/internal/store"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// testPaymentsStore is an in-memory stand-in for the payments ledger with
// the same uniqueness semantics as the real table.
type testPaymentsStore struct {
	mu        sync.Mutex
	payments  []store.Payment
	nextID    int64
	createErr error
}

func (s *testPaymentsStore) GetByPaymentID(ctx context.Context, paymentID string) (*store.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.payments {
		if s.payments[i].PaymentID == paymentID {
			p := s.payments[i]
			return &p, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *testPaymentsStore) Create(ctx context.Context, payment *store.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	for i := range s.payments {
		if s.payments[i].PaymentID == payment.PaymentID {
			return store.ErrConflict
		}
	}
	s.nextID++
	payment.ID = s.nextID
	payment.CreatedAt = time.Now()
	s.payments = append(s.payments, *payment)
	return nil
}

func (s *testPaymentsStore) List(ctx context.Context) ([]store.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]store.Payment, len(s.payments))
	copy(out, s.payments)
	return out, nil
}

func (s *testPaymentsStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.payments)), nil
}

// recordingTransport captures outbound mail instead of delivering it.
type recordingTransport struct {
	mu    sync.Mutex
	fail  bool
	to    []string
	bodys []string
}

func (f *recordingTransport) Send(ctx context.Context, to, subject, body string, attachments []mailer.Attachment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.to = append(f.to, to)
	f.bodys = append(f.bodys, body)
	if f.fail {
		return context.DeadlineExceeded
	}
	return nil
}

func (f *recordingTransport) sends() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.to))
	copy(out, f.to)
	return out
}

const testOperatorPassword = "sesame-open"

func newTestApplication(t *testing.T, payments *testPaymentsStore, transport mailer.Client) *application {
	t.Helper()

	logger := zap.NewNop().Sugar()

	hash, err := bcrypt.GenerateFromPassword([]byte(testOperatorPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}

	cfg := config{
		env: "test",
		auth: authConfig{
			basic:    basicConfig{user: "admin", pass: "admin"},
			operator: operatorConfig{user: "ops", passwordHash: string(hash)},
			token:    tokenConfig{secret: "test-secret", exp: time.Hour, iss: "Sabha"},
		},
		event: eventConfig{
			title:       "Coaching at the Elite Level",
			date:        "Sunday, 14 September",
			timeRange:   "11:00 AM – 1:00 PM",
			meetingURL:  "https://meet.example.com/abc",
			calendarURL: "https://calendar.example.com/render",
			hostName:    "Soham",
		},
		rateLimiter: ratelimiter.Config{RequestsPerTimeFrame: 100, TimeFrame: time.Second, Enabled: false},
	}

	tz, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}

	refcodes, err := refcode.New("test-salt")
	if err != nil {
		t.Fatal(err)
	}

	app := &application{
		config: cfg,
		logger: logger,
		store:  store.Storage{Payments: payments},
		notifier: notify.New(transport, logger,
			notify.WithSleep(func(ctx context.Context, d time.Duration) error { return nil })),
		refcodes:      refcodes,
		authenticator: auth.NewJWTAuthenticator(cfg.auth.token.secret, cfg.auth.token.iss, cfg.auth.token.iss),
		rateLimiter:   ratelimiter.NewFixedWindowLimiter(cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame),
		tz:            tz,
	}
	app.reminders = scheduler.New(app.store, app.notifier, app.eventData(""), logger)

	return app
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}
