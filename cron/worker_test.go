package cron

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"consultly/models"
	"consultly/services/tasks"
	"consultly/utils"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Create(b *models.Booking) error {
	args := m.Called(b)
	return args.Error(0)
}

func (m *MockBookingRepo) GetByID(id string) (*models.Booking, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepo) Update(id string, upd models.BookingUpdate) (*models.Booking, error) {
	args := m.Called(id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepo) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockBookingRepo) List(filter models.BookingFilter) ([]models.Booking, error) {
	args := m.Called(filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepo) SetMeetingLink(id, joinURL string) error {
	args := m.Called(id, joinURL)
	return args.Error(0)
}

func (m *MockBookingRepo) Count(filter bson.M) (int64, error) {
	args := m.Called(filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepo) CountByStatus() (map[string]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

func (m *MockBookingRepo) Recent(limit int) ([]models.Booking, error) {
	args := m.Called(limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepo) RevenueTotal() (float64, error) {
	args := m.Called()
	return args.Get(0).(float64), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendBookingCreated(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockNotifier) SendBookingReminder(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func reminderTask(t *testing.T, bookingID string) *asynq.Task {
	t.Helper()
	payload, err := json.Marshal(models.ReminderPayload{BookingID: bookingID})
	require.NoError(t, err)
	return asynq.NewTask(tasks.TypeBookingReminder, payload)
}

func TestHandleBookingReminderSendsForUpcomingBooking(t *testing.T) {
	booking := &models.Booking{
		ID:            "b1",
		BookingStatus: models.BookingScheduled,
		Timeslot:      models.TimeSlot{Start: time.Now().Add(24 * time.Hour)},
	}
	repo := new(MockBookingRepo)
	repo.On("GetByID", "b1").Return(booking, nil)
	notifier := new(MockNotifier)
	notifier.On("SendBookingReminder", mock.Anything, booking).Return(nil)

	handler := handleBookingReminder(repo, notifier)
	err := handler(context.Background(), reminderTask(t, "b1"))

	require.NoError(t, err)
	notifier.AssertExpectations(t)
}

func TestHandleBookingReminderDropsCancelledBooking(t *testing.T) {
	booking := &models.Booking{
		ID:            "b1",
		BookingStatus: models.BookingCancelled,
		Timeslot:      models.TimeSlot{Start: time.Now().Add(24 * time.Hour)},
	}
	repo := new(MockBookingRepo)
	repo.On("GetByID", "b1").Return(booking, nil)
	notifier := new(MockNotifier)

	handler := handleBookingReminder(repo, notifier)
	err := handler(context.Background(), reminderTask(t, "b1"))

	require.NoError(t, err, "dropping a stale reminder is not a task failure")
	notifier.AssertNotCalled(t, "SendBookingReminder", mock.Anything, mock.Anything)
}

func TestHandleBookingReminderDropsStartedBooking(t *testing.T) {
	booking := &models.Booking{
		ID:            "b1",
		BookingStatus: models.BookingScheduled,
		Timeslot:      models.TimeSlot{Start: time.Now().Add(-time.Hour)},
	}
	repo := new(MockBookingRepo)
	repo.On("GetByID", "b1").Return(booking, nil)
	notifier := new(MockNotifier)

	handler := handleBookingReminder(repo, notifier)
	err := handler(context.Background(), reminderTask(t, "b1"))

	require.NoError(t, err)
	notifier.AssertNotCalled(t, "SendBookingReminder", mock.Anything, mock.Anything)
}

func TestHandleBookingReminderDropsDeletedBooking(t *testing.T) {
	repo := new(MockBookingRepo)
	repo.On("GetByID", "gone").
		Return(nil, &utils.NotFoundError{Resource: "booking", ID: "gone"})
	notifier := new(MockNotifier)

	handler := handleBookingReminder(repo, notifier)
	err := handler(context.Background(), reminderTask(t, "gone"))

	require.NoError(t, err, "a deleted booking consumes the task instead of retrying")
	notifier.AssertNotCalled(t, "SendBookingReminder", mock.Anything, mock.Anything)
}

func TestHandleBookingReminderRetriesOnStoreError(t *testing.T) {
	repo := new(MockBookingRepo)
	repo.On("GetByID", "b1").Return(nil, context.DeadlineExceeded)
	notifier := new(MockNotifier)

	handler := handleBookingReminder(repo, notifier)
	err := handler(context.Background(), reminderTask(t, "b1"))

	assert.Error(t, err, "transient store failures surface so asynq retries")
}

func TestHandleBookingReminderInvalidPayload(t *testing.T) {
	handler := handleBookingReminder(new(MockBookingRepo), new(MockNotifier))
	err := handler(context.Background(), asynq.NewTask(tasks.TypeBookingReminder, []byte("{not json")))

	assert.Error(t, err)
}
