package repository

import (
	"context"

	"medicare/internal/model"
	"medicare/internal/store"
)

// PaymentRepository defines persistence operations on the Payments collection.
type PaymentRepository interface {
	Append(ctx context.Context, payment *model.Payment) error
	ListByUser(email string) []model.Payment
	List() []model.Payment
	LastID() int64
}

type paymentRepository struct {
	store    store.Store
	payments []model.Payment
}

// NewPaymentRepository hydrates the Payments collection from the durable
// store.
func NewPaymentRepository(ctx context.Context, st store.Store) (PaymentRepository, error) {
	payments, err := loadCollection[model.Payment](ctx, st, store.KeyPayments)
	if err != nil {
		return nil, err
	}
	return &paymentRepository{store: st, payments: payments}, nil
}

// Append adds the payment and re-serializes the full collection.
func (r *paymentRepository) Append(ctx context.Context, payment *model.Payment) error {
	r.payments = append(r.payments, *payment)
	return persistCollection(ctx, r.store, store.KeyPayments, r.payments)
}

// ListByUser returns the user's payments, insertion order preserved.
func (r *paymentRepository) ListByUser(email string) []model.Payment {
	var out []model.Payment
	for _, p := range r.payments {
		if p.UserEmail == email {
			out = append(out, p)
		}
	}
	return out
}

// List returns every payment in insertion order.
func (r *paymentRepository) List() []model.Payment {
	return append([]model.Payment(nil), r.payments...)
}

// LastID returns the highest id in the collection, or zero when empty.
func (r *paymentRepository) LastID() int64 {
	var last int64
	for _, p := range r.payments {
		if p.ID > last {
			last = p.ID
		}
	}
	return last
}
