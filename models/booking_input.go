package models

// BookingRequest is the payload accepted when creating a booking. Payment and
// booking statuses are optional; they default to pending/scheduled. Supplying
// a join link here is allowed only together with a successful payment status.
type BookingRequest struct {
	UserID        string   `json:"userId"`
	ProviderID    string   `json:"providerId"`
	ServiceID     string   `json:"serviceId"`
	Date          string   `json:"date"`
	Timeslot      TimeSlot `json:"timeslot"`
	Amount        float64  `json:"amount"`
	PaymentStatus string   `json:"paymentStatus,omitempty"`
	BookingStatus string   `json:"bookingStatus,omitempty"`
	ZoomJoinLink  string   `json:"zoomJoinLink,omitempty"`
}

// BookingUpdate carries the mutable subset of a booking for partial updates;
// nil fields are left untouched.
type BookingUpdate struct {
	Date            *string   `json:"date,omitempty"`
	Timeslot        *TimeSlot `json:"timeslot,omitempty"`
	Amount          *float64  `json:"amount,omitempty"`
	PaymentStatus   *string   `json:"paymentStatus,omitempty"`
	BookingStatus   *string   `json:"bookingStatus,omitempty"`
	ZoomJoinLink    *string   `json:"zoomJoinLink,omitempty"`
	PaymentIntentID *string   `json:"paymentIntentId,omitempty"`
}

// BookingFilter narrows booking listings.
type BookingFilter struct {
	UserID        string `form:"userId"`
	ProviderID    string `form:"providerId"`
	PaymentStatus string `form:"paymentStatus"`
	BookingStatus string `form:"bookingStatus"`
	Page          int    `form:"page"`
	Limit         int    `form:"limit"`
}

// BookingResult is a booking mutation outcome plus any non-fatal warnings
// raised while scheduling the meeting or dispatching side effects. A warning
// never turns the mutation itself into a failure.
type BookingResult struct {
	Booking  *Booking `json:"booking"`
	Warnings []string `json:"warnings,omitempty"`
}
