package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"medicare/internal/errors"
	"medicare/internal/model"
	"medicare/internal/repository"
)

// PaymentService records payments against the ledger. No external processor
// is contacted.
type PaymentService interface {
	Record(ctx context.Context, userEmail, amount string, method model.PaymentMethod, cardNumber string) (*model.Payment, error)
	ListForUser(email string) []model.Payment
}

type paymentService struct {
	payments repository.PaymentRepository
	lastID   int64
}

// NewPaymentService creates a new payment service.
func NewPaymentService(payments repository.PaymentRepository) PaymentService {
	return &paymentService{
		payments: payments,
		lastID:   payments.LastID(),
	}
}

// Record validates and persists a payment. The amount must parse as a
// positive decimal; the method must be card or upi. The card number is
// retained, masked to its last four digits, only for card payments.
func (s *paymentService) Record(ctx context.Context, userEmail, amount string, method model.PaymentMethod, cardNumber string) (*model.Payment, error) {
	if amount == "" {
		return nil, errors.NewValidationError("amount")
	}
	value, err := decimal.NewFromString(amount)
	if err != nil || value.LessThanOrEqual(decimal.Zero) {
		return nil, errors.NewValidationError("amount")
	}
	if !method.Valid() {
		return nil, errors.NewValidationError("method")
	}

	payment := &model.Payment{
		ID:        s.nextID(),
		UserEmail: userEmail,
		Amount:    value,
		Method:    method,
		Timestamp: time.Now(),
	}
	if method == model.MethodCard {
		payment.CardNumber = maskCardNumber(cardNumber)
	}
	if err := s.payments.Append(ctx, payment); err != nil {
		return nil, fmt.Errorf("persist payment: %w", err)
	}
	return payment, nil
}

func (s *paymentService) nextID() int64 {
	id := time.Now().UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id
	return id
}

// ListForUser returns the user's payments in recording order.
func (s *paymentService) ListForUser(email string) []model.Payment {
	return s.payments.ListByUser(email)
}

// maskCardNumber masks a card number, showing only the last 4 digits.
func maskCardNumber(cardNumber string) string {
	cardNumber = strings.ReplaceAll(strings.ReplaceAll(cardNumber, " ", ""), "-", "")
	if len(cardNumber) < 4 {
		return "****"
	}
	return "****" + cardNumber[len(cardNumber)-4:]
}
