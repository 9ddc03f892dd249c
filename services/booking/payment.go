package booking

import (
	"context"
	"fmt"
	"math"

	"consultly/models"
	"consultly/utils"

	bookingRepo "consultly/database/repository/booking"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentHandler runs the card-payment leg of a booking: intent creation up
// front, confirmation once the client completed the flow.
type PaymentHandler interface {
	CreateIntent(ctx context.Context, bookingID string) (*models.PaymentIntentResponse, error)
	Confirm(ctx context.Context, req models.PaymentConfirmRequest) (*models.BookingResult, error)
}

// StripePaymentHandler backs PaymentHandler with Stripe PaymentIntents.
// Confirmation flips the booking's payment status through the booking
// service so the meeting link is exposed in the same motion.
type StripePaymentHandler struct {
	Repo     bookingRepo.BookingRepository
	Bookings BookingService
	Currency string
}

func NewStripePaymentHandler(repo bookingRepo.BookingRepository, bookings BookingService, currency string) PaymentHandler {
	return &StripePaymentHandler{Repo: repo, Bookings: bookings, Currency: currency}
}

// CreateIntent opens a PaymentIntent for the booking amount and records the
// intent id on the booking so confirmation can be cross-checked.
func (h *StripePaymentHandler) CreateIntent(ctx context.Context, bookingID string) (*models.PaymentIntentResponse, error) {
	b, err := h.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b.PaymentStatus == models.PaymentSuccess {
		return nil, &utils.ConflictError{Message: "booking is already paid"}
	}

	currency := h.Currency
	if currency == "" {
		currency = "usd"
	}
	amountCents := int64(math.Round(b.Amount * 100))

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("bookingId", b.ID)

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	intentID := pi.ID
	if _, err := h.Repo.Update(b.ID, models.BookingUpdate{PaymentIntentID: &intentID}); err != nil {
		utils.GetLogger().Warn("failed to record payment intent on booking",
			zap.String("bookingID", b.ID),
			zap.String("paymentIntentID", intentID),
			zap.Error(err))
	}

	return &models.PaymentIntentResponse{
		PaymentIntentID: pi.ID,
		ClientSecret:    pi.ClientSecret,
		Amount:          b.Amount,
		Currency:        currency,
	}, nil
}

// Confirm verifies the intent against Stripe and, when it succeeded, marks
// the booking paid. The status change goes through the booking service, which
// exposes or backfills the meeting link.
func (h *StripePaymentHandler) Confirm(ctx context.Context, req models.PaymentConfirmRequest) (*models.BookingResult, error) {
	b, err := h.Repo.GetByID(req.BookingID)
	if err != nil {
		return nil, err
	}
	if b.PaymentIntentID != "" && b.PaymentIntentID != req.PaymentIntentID {
		return nil, &utils.ValidationError{Message: "payment intent does not match the booking"}
	}

	pi, err := paymentintent.Get(req.PaymentIntentID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment intent: %w", err)
	}
	if pi.Status != stripe.PaymentIntentStatusSucceeded {
		return nil, &utils.ValidationError{Message: fmt.Sprintf("payment not completed (status %s)", pi.Status)}
	}

	status := models.PaymentSuccess
	return h.Bookings.Update(ctx, b.ID, models.BookingUpdate{PaymentStatus: &status})
}
