package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound          = errors.New("resource not found")
	ErrConflict          = errors.New("resource already exists")
	QueryTimeoutDuration = time.Second * 5
)

type Storage struct {
	Payments interface {
		GetByPaymentID(context.Context, string) (*Payment, error)
		Create(context.Context, *Payment) error
		List(context.Context) ([]Payment, error)
		Count(context.Context) (int64, error)
	}
}

func NewStorage(db *pgxpool.Pool) Storage {
	return Storage{
		Payments: &PaymentsStore{db},
	}
}
