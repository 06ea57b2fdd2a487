package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"medicare/internal/errors"
	"medicare/internal/model"
	"medicare/internal/repository"
	"medicare/internal/store"
)

func newPaymentFixture(t *testing.T) PaymentService {
	t.Helper()
	payments, err := repository.NewPaymentRepository(context.Background(), store.NewMemoryStore())
	assert.NoError(t, err)
	return NewPaymentService(payments)
}

func TestPaymentService_Record_Validation(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		method    model.PaymentMethod
		wantField string
	}{
		{name: "empty amount", amount: "", method: model.MethodUPI, wantField: "amount"},
		{name: "non-numeric amount", amount: "abc", method: model.MethodUPI, wantField: "amount"},
		{name: "zero amount", amount: "0", method: model.MethodCard, wantField: "amount"},
		{name: "negative amount", amount: "-5", method: model.MethodCard, wantField: "amount"},
		{name: "unknown method", amount: "500", method: model.PaymentMethod("wallet"), wantField: "method"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newPaymentFixture(t)
			payment, err := service.Record(context.Background(), "a@x.com", tt.amount, tt.method, "")

			var ve *errors.ValidationError
			assert.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Nil(t, payment)
		})
	}
}

func TestPaymentService_Record_UPIOmitsCardNumber(t *testing.T) {
	service := newPaymentFixture(t)

	payment, err := service.Record(context.Background(), "a@x.com", "500", model.MethodUPI, "1234567812345678")
	assert.NoError(t, err)
	assert.Empty(t, payment.CardNumber)
	assert.True(t, decimal.NewFromInt(500).Equal(payment.Amount))
	assert.False(t, payment.Timestamp.IsZero())
}

func TestPaymentService_Record_CardKeepsMaskedNumber(t *testing.T) {
	service := newPaymentFixture(t)

	payment, err := service.Record(context.Background(), "a@x.com", "249.50", model.MethodCard, "1234 5678 1234 5678")
	assert.NoError(t, err)
	assert.Equal(t, "****5678", payment.CardNumber)
	assert.True(t, decimal.RequireFromString("249.50").Equal(payment.Amount))
}

func TestPaymentService_ListForUserFiltersByEmail(t *testing.T) {
	service := newPaymentFixture(t)
	ctx := context.Background()

	_, err := service.Record(ctx, "a@x.com", "100", model.MethodUPI, "")
	assert.NoError(t, err)
	_, err = service.Record(ctx, "b@x.com", "200", model.MethodUPI, "")
	assert.NoError(t, err)
	_, err = service.Record(ctx, "a@x.com", "300", model.MethodUPI, "")
	assert.NoError(t, err)

	mine := service.ListForUser("a@x.com")
	assert.Len(t, mine, 2)
	assert.True(t, decimal.NewFromInt(100).Equal(mine[0].Amount))
	assert.True(t, decimal.NewFromInt(300).Equal(mine[1].Amount))
}

func TestMaskCardNumber(t *testing.T) {
	assert.Equal(t, "****5678", maskCardNumber("1234567812345678"))
	assert.Equal(t, "****5678", maskCardNumber("1234-5678-1234-5678"))
	assert.Equal(t, "****", maskCardNumber("123"))
}
