package models

// PaymentIntentRequest asks for a payment intent covering a booking's amount.
type PaymentIntentRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
}

// PaymentIntentResponse carries the processor handle the client completes
// the charge with.
type PaymentIntentResponse struct {
	PaymentIntentID string  `json:"paymentIntentId"`
	ClientSecret    string  `json:"clientSecret"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
}

// PaymentConfirmRequest reports a completed charge back to the platform so
// the booking's payment status can flip to success.
type PaymentConfirmRequest struct {
	BookingID       string `json:"bookingId" binding:"required"`
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
}
