package notification

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	userRepo "consultly/database/repository/user"
	"consultly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to, subject, body string
}

type recordingMailer struct {
	sent []sentMail
	err  error
}

func (m *recordingMailer) Send(ctx context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

// stubUsers answers GetByID from a fixed map; every other repository method
// panics through the nil embedded interface.
type stubUsers struct {
	userRepo.UserRepository
	users map[string]*models.User
}

func (s *stubUsers) GetByID(id string) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, errors.New("user not found: " + id)
	}
	return u, nil
}

func newNotificationFixture(mailer *recordingMailer) *DefaultNotificationService {
	return &DefaultNotificationService{
		Users: &stubUsers{users: map[string]*models.User{
			"u1": {ID: "u1", Name: "Aizhan", Email: "aizhan@example.com"},
			"p1": {ID: "p1", Name: "Marat", Email: "marat@example.com"},
		}},
		Mailer: mailer,
	}
}

func paidBooking() *models.Booking {
	return &models.Booking{
		ID:            "b1",
		UserID:        "u1",
		ProviderID:    "p1",
		PaymentStatus: models.PaymentSuccess,
		ZoomJoinLink:  "https://zoom.us/j/987654321",
		Timeslot: models.TimeSlot{
			Start: time.Date(2026, 3, 15, 14, 0, 0, 0, time.UTC),
			End:   time.Date(2026, 3, 15, 15, 0, 0, 0, time.UTC),
		},
	}
}

func TestBuildMessage(t *testing.T) {
	msg := buildMessage("noreply@consultly.example", "aizhan@example.com", "Booking confirmed", "See you soon.")

	assert.True(t, strings.HasPrefix(msg, "From: noreply@consultly.example\r\n"))
	assert.Contains(t, msg, "To: aizhan@example.com\r\n")
	assert.Contains(t, msg, "Subject: Booking confirmed\r\n")
	assert.Contains(t, msg, "MIME-Version: 1.0\r\n")
	assert.Contains(t, msg, "Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	assert.Contains(t, msg, "\r\n\r\nSee you soon.\r\n", "headers and body are separated by a blank line")
}

func TestSendBookingCreatedNotifiesBothParties(t *testing.T) {
	mailer := &recordingMailer{}
	svc := newNotificationFixture(mailer)

	err := svc.SendBookingCreated(context.Background(), paidBooking())

	require.NoError(t, err)
	require.Len(t, mailer.sent, 2)

	assert.Equal(t, "aizhan@example.com", mailer.sent[0].to)
	assert.Equal(t, "Booking confirmed", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].body, "Marat")
	assert.Contains(t, mailer.sent[0].body, "https://zoom.us/j/987654321")

	assert.Equal(t, "marat@example.com", mailer.sent[1].to)
	assert.Equal(t, "New booking", mailer.sent[1].subject)
	assert.Contains(t, mailer.sent[1].body, "Aizhan")
}

func TestSendBookingCreatedUnpaidOmitsLink(t *testing.T) {
	mailer := &recordingMailer{}
	svc := newNotificationFixture(mailer)
	b := paidBooking()
	b.PaymentStatus = models.PaymentPending
	b.ZoomJoinLink = ""

	err := svc.SendBookingCreated(context.Background(), b)

	require.NoError(t, err)
	require.Len(t, mailer.sent, 2)
	assert.NotContains(t, mailer.sent[0].body, "zoom.us")
	assert.Contains(t, mailer.sent[0].body, "once payment is completed")
	assert.NotContains(t, mailer.sent[1].body, "zoom.us")
}

func TestSendBookingCreatedMailerFailure(t *testing.T) {
	mailer := &recordingMailer{err: errors.New("relay refused")}
	svc := newNotificationFixture(mailer)

	err := svc.SendBookingCreated(context.Background(), paidBooking())

	assert.Error(t, err, "email is the primary channel, its failure surfaces")
}

func TestSendBookingReminderIncludesLink(t *testing.T) {
	mailer := &recordingMailer{}
	svc := newNotificationFixture(mailer)
	b := paidBooking()
	b.Timeslot.Start = time.Now().Add(30 * time.Minute)

	err := svc.SendBookingReminder(context.Background(), b)

	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "aizhan@example.com", mailer.sent[0].to)
	assert.Equal(t, "Upcoming consultation", mailer.sent[0].subject)
	assert.Contains(t, mailer.sent[0].body, "minutes")
	assert.Contains(t, mailer.sent[0].body, "https://zoom.us/j/987654321")
}

func TestSMTPMailerWithoutHostDropsSilently(t *testing.T) {
	m := &SMTPMailer{}

	err := m.Send(context.Background(), "aizhan@example.com", "s", "b")

	assert.NoError(t, err, "development setups run without a relay")
}
