package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"medicare/internal/errors"
	"medicare/internal/model"
	"medicare/internal/repository"
	"medicare/internal/store"
)

func newAppointmentFixture(t *testing.T) (AppointmentService, repository.UserRepository) {
	t.Helper()
	ctx := context.Background()
	st := store.NewMemoryStore()
	users, err := repository.NewUserRepository(ctx, st)
	assert.NoError(t, err)
	appts, err := repository.NewAppointmentRepository(ctx, st)
	assert.NoError(t, err)
	return NewAppointmentService(users, appts), users
}

func TestAppointmentService_Book_DateBoundary(t *testing.T) {
	today := time.Now()

	tests := []struct {
		name     string
		date     string
		wantPast bool
	}{
		{name: "yesterday is rejected", date: today.AddDate(0, 0, -1).Format(dateLayout), wantPast: true},
		{name: "today is allowed", date: today.Format(dateLayout)},
		{name: "tomorrow is allowed", date: today.AddDate(0, 0, 1).Format(dateLayout)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newAppointmentFixture(t)
			appt, err := service.Book(context.Background(), "a@x.com", "dr.anita@example.com", tt.date, "09:00")

			if tt.wantPast {
				assert.ErrorIs(t, err, errors.ErrPastDate)
				assert.Nil(t, appt)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, appt)
				assert.Equal(t, model.AppointmentScheduled, appt.Status)
			}
		})
	}
}

func TestAppointmentService_Book_Validation(t *testing.T) {
	today := time.Now().Format(dateLayout)

	tests := []struct {
		name      string
		doctor    string
		date      string
		timeOfDay string
		wantField string
	}{
		{name: "empty doctor", date: today, timeOfDay: "09:00", wantField: "doctor"},
		{name: "empty date", doctor: "dr.anita@example.com", timeOfDay: "09:00", wantField: "date"},
		{name: "empty time", doctor: "dr.anita@example.com", date: today, wantField: "time"},
		{name: "malformed date", doctor: "dr.anita@example.com", date: "01-09-2026", timeOfDay: "09:00", wantField: "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newAppointmentFixture(t)
			_, err := service.Book(context.Background(), "a@x.com", tt.doctor, tt.date, tt.timeOfDay)

			var ve *errors.ValidationError
			assert.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
		})
	}
}

func TestAppointmentService_Book_IDsAreUniqueAndIncreasing(t *testing.T) {
	service, _ := newAppointmentFixture(t)
	ctx := context.Background()
	today := time.Now().Format(dateLayout)

	var last int64
	for i := 0; i < 5; i++ {
		appt, err := service.Book(ctx, "a@x.com", "dr.anita@example.com", today, "09:00")
		assert.NoError(t, err)
		assert.Greater(t, appt.ID, last)
		last = appt.ID
	}

	assert.Len(t, service.ListForPatient("a@x.com"), 5)
}

func TestAppointmentService_DoctorRoster(t *testing.T) {
	service, users := newAppointmentFixture(t)
	ctx := context.Background()

	// No registered doctors: the fixed fallback pair.
	roster := service.DoctorRoster()
	assert.Equal(t, []model.Doctor{
		{Name: "Dr. Anita Sharma", Email: "dr.anita@example.com"},
		{Name: "Dr. Rahul Mehta", Email: "dr.rahul@example.com"},
	}, roster)

	// One registered doctor: exactly that doctor, no fallback mixed in.
	assert.NoError(t, users.Append(ctx, &model.User{Name: "Dr. Priya", Email: "priya@x.com", Password: "p", Role: model.RoleDoctor}))
	roster = service.DoctorRoster()
	assert.Equal(t, []model.Doctor{{Name: "Dr. Priya", Email: "priya@x.com"}}, roster)
}

func TestAppointmentService_ListAllSeesEveryPatient(t *testing.T) {
	service, _ := newAppointmentFixture(t)
	ctx := context.Background()
	today := time.Now().Format(dateLayout)

	_, err := service.Book(ctx, "a@x.com", "dr.anita@example.com", today, "09:00")
	assert.NoError(t, err)
	_, err = service.Book(ctx, "b@x.com", "dr.rahul@example.com", today, "10:00")
	assert.NoError(t, err)

	assert.Len(t, service.ListAll(), 2)
	assert.Len(t, service.ListForPatient("a@x.com"), 1)
}
