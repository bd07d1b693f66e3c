package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Payment is one captured webinar registration payment. Rows are written
// exactly once by the webhook handler and never updated or deleted; the
// reminder sweeps only read them.
type Payment struct {
	ID          int64           `json:"id"`
	PaymentID   string          `json:"payment_id"`
	Email       string          `json:"email"`
	FullName    string          `json:"full_name"`
	Phone       string          `json:"phone"`
	AmountPaisa int64           `json:"amount_paisa"`
	CapturedAt  time.Time       `json:"captured_at"`
	Payload     json.RawMessage `json:"-"`
	CreatedAt   time.Time       `json:"created_at"`
}

type PaymentsStore struct {
	db *pgxpool.Pool
}

func (s *PaymentsStore) GetByPaymentID(ctx context.Context, paymentID string) (*Payment, error) {
	query := `
	  SELECT id, payment_id, email, full_name, phone, amount_paisa, captured_at, payload, created_at
	  FROM payments WHERE payment_id = $1
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var p Payment
	err := s.db.QueryRow(ctx, query, paymentID).Scan(
		&p.ID,
		&p.PaymentID,
		&p.Email,
		&p.FullName,
		&p.Phone,
		&p.AmountPaisa,
		&p.CapturedAt,
		&p.Payload,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

// Create inserts a captured payment. The payments table carries a unique
// constraint on payment_id, so a racing insert of the same payment loses
// here with ErrConflict rather than producing a second row.
func (s *PaymentsStore) Create(ctx context.Context, payment *Payment) error {
	query := `
	  INSERT INTO payments (payment_id, email, full_name, phone, amount_paisa, captured_at, payload)
	  VALUES ($1, $2, $3, $4, $5, $6, $7)
	  RETURNING id, created_at
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	err := s.db.QueryRow(
		ctx, query,
		payment.PaymentID,
		payment.Email,
		payment.FullName,
		payment.Phone,
		payment.AmountPaisa,
		payment.CapturedAt,
		payment.Payload,
	).Scan(&payment.ID, &payment.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrConflict
		}
		return err
	}
	return nil
}

// List returns every captured payment, oldest first. Used by the reminder
// sweeps, which want a stable order within one pass.
func (s *PaymentsStore) List(ctx context.Context) ([]Payment, error) {
	query := `
	  SELECT id, payment_id, email, full_name, phone, amount_paisa, captured_at, payload, created_at
	  FROM payments ORDER BY id
	`

	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(
			&p.ID,
			&p.PaymentID,
			&p.Email,
			&p.FullName,
			&p.Phone,
			&p.AmountPaisa,
			&p.CapturedAt,
			&p.Payload,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

func (s *PaymentsStore) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, QueryTimeoutDuration)
	defer cancel()

	var count int64
	err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM payments`).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
