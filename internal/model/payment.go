package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a payment was made.
type PaymentMethod string

const (
	MethodCard PaymentMethod = "card"
	MethodUPI  PaymentMethod = "upi"
)

// Valid reports whether m is one of the accepted methods.
func (m PaymentMethod) Valid() bool {
	return m == MethodCard || m == MethodUPI
}

// Payment is a ledger entry recorded against a user. No external payment
// processor is contacted; the record itself is the whole transaction.
type Payment struct {
	ID         int64           `json:"id"`
	UserEmail  string          `json:"user"`
	Amount     decimal.Decimal `json:"amount"`
	Method     PaymentMethod   `json:"method"`
	CardNumber string          `json:"card,omitempty"` // masked, card payments only
	Timestamp  time.Time       `json:"date"`
}
