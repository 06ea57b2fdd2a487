package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"medicare/internal/model"
	"medicare/internal/store"
)

func TestUserRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	repo, err := NewUserRepository(ctx, st)
	assert.NoError(t, err)
	assert.Empty(t, repo.List())

	var want []model.User
	for i := 0; i < 3; i++ {
		u := model.User{
			Name:     fmt.Sprintf("User %d", i),
			Email:    fmt.Sprintf("u-%s@test.com", uuid.New().String()[:8]),
			Password: "secret",
			Role:     model.RolePatient,
		}
		assert.NoError(t, repo.Append(ctx, &u))
		want = append(want, u)
	}

	// A fresh repository over the same store must see the same records in
	// the same order.
	reloaded, err := NewUserRepository(ctx, st)
	assert.NoError(t, err)
	assert.Equal(t, want, reloaded.List())
}

func TestUserRepository_FindByEmailIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo, err := NewUserRepository(ctx, store.NewMemoryStore())
	assert.NoError(t, err)

	assert.NoError(t, repo.Append(ctx, &model.User{Name: "Asha", Email: "a@x.com", Password: "p1", Role: model.RolePatient}))

	assert.NotNil(t, repo.FindByEmail("a@x.com"))
	assert.Nil(t, repo.FindByEmail("A@x.com"))
}

func TestUserRepository_ListByRole(t *testing.T) {
	ctx := context.Background()
	repo, err := NewUserRepository(ctx, store.NewMemoryStore())
	assert.NoError(t, err)

	assert.NoError(t, repo.Append(ctx, &model.User{Name: "P", Email: "p@x.com", Password: "p", Role: model.RolePatient}))
	assert.NoError(t, repo.Append(ctx, &model.User{Name: "D1", Email: "d1@x.com", Password: "p", Role: model.RoleDoctor}))
	assert.NoError(t, repo.Append(ctx, &model.User{Name: "D2", Email: "d2@x.com", Password: "p", Role: model.RoleDoctor}))

	doctors := repo.ListByRole(model.RoleDoctor)
	assert.Len(t, doctors, 2)
	assert.Equal(t, "d1@x.com", doctors[0].Email)
	assert.Equal(t, "d2@x.com", doctors[1].Email)
}

func TestAppointmentRepository_RoundTripAndLastID(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	repo, err := NewAppointmentRepository(ctx, st)
	assert.NoError(t, err)
	assert.Zero(t, repo.LastID())

	appts := []model.Appointment{
		{ID: 100, DoctorEmail: "dr.anita@example.com", PatientEmail: "a@x.com", Date: "2026-09-01", Time: "09:00", Status: model.AppointmentScheduled},
		{ID: 300, DoctorEmail: "dr.rahul@example.com", PatientEmail: "a@x.com", Date: "2026-09-02", Time: "10:00", Status: model.AppointmentScheduled},
		{ID: 200, DoctorEmail: "dr.anita@example.com", PatientEmail: "b@x.com", Date: "2026-09-03", Time: "11:00", Status: model.AppointmentScheduled},
	}
	for i := range appts {
		assert.NoError(t, repo.Append(ctx, &appts[i]))
	}

	reloaded, err := NewAppointmentRepository(ctx, st)
	assert.NoError(t, err)
	assert.Equal(t, appts, reloaded.List())
	assert.Equal(t, int64(300), reloaded.LastID())

	mine := reloaded.ListByPatient("a@x.com")
	assert.Len(t, mine, 2)
	assert.Equal(t, int64(100), mine[0].ID)
	assert.Equal(t, int64(300), mine[1].ID)
}

func TestPaymentRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	repo, err := NewPaymentRepository(ctx, st)
	assert.NoError(t, err)

	paid := model.Payment{
		ID:         42,
		UserEmail:  "a@x.com",
		Amount:     decimal.NewFromInt(500),
		Method:     model.MethodCard,
		CardNumber: "****5678",
		Timestamp:  time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC),
	}
	assert.NoError(t, repo.Append(ctx, &paid))

	reloaded, err := NewPaymentRepository(ctx, st)
	assert.NoError(t, err)
	got := reloaded.ListByUser("a@x.com")
	assert.Len(t, got, 1)
	assert.Equal(t, paid.ID, got[0].ID)
	assert.Equal(t, paid.UserEmail, got[0].UserEmail)
	assert.Equal(t, paid.Method, got[0].Method)
	assert.Equal(t, paid.CardNumber, got[0].CardNumber)
	assert.True(t, paid.Amount.Equal(got[0].Amount))
	assert.True(t, paid.Timestamp.Equal(got[0].Timestamp))
	assert.Equal(t, int64(42), reloaded.LastID())
}
