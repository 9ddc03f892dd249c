package bookingRepo

import (
	"time"

	"consultly/models"
	"consultly/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// checkLinkGate rejects any state where a meeting link would be stored on a
// booking whose payment has not succeeded.
func checkLinkGate(joinLink, paymentStatus string) error {
	if joinLink != "" && paymentStatus != models.PaymentSuccess {
		return &utils.InvariantViolationError{
			Message: "meeting link requires a successful payment",
		}
	}
	return nil
}

// validateNewBooking checks required fields on a fresh booking, fills status
// defaults in place, and runs the link gate.
func validateNewBooking(b *models.Booking) error {
	switch {
	case b.UserID == "":
		return &utils.ValidationError{Field: "userId", Message: "is required"}
	case b.ProviderID == "":
		return &utils.ValidationError{Field: "providerId", Message: "is required"}
	case b.ServiceID == "":
		return &utils.ValidationError{Field: "serviceId", Message: "is required"}
	}
	if b.Timeslot.Start.IsZero() || b.Timeslot.End.IsZero() {
		return &utils.ValidationError{Field: "timeslot", Message: "start and end are required"}
	}
	if b.Amount <= 0 {
		return &utils.ValidationError{Field: "amount", Message: "must be greater than zero"}
	}
	if b.PaymentStatus == "" {
		b.PaymentStatus = models.PaymentPending
	} else if !models.ValidPaymentStatus(b.PaymentStatus) {
		return &utils.ValidationError{Field: "paymentStatus", Message: "unrecognized value"}
	}
	if b.BookingStatus == "" {
		b.BookingStatus = models.BookingScheduled
	} else if !models.ValidBookingStatus(b.BookingStatus) {
		return &utils.ValidationError{Field: "bookingStatus", Message: "unrecognized value"}
	}
	return checkLinkGate(b.ZoomJoinLink, b.PaymentStatus)
}

// applyBookingUpdate merges upd into a copy of b and re-checks the link gate
// on the resulting record. It returns the merged record together with the
// $set document for the write; an empty document means nothing changed.
func applyBookingUpdate(b models.Booking, upd models.BookingUpdate) (models.Booking, bson.M, error) {
	set := bson.M{}
	if upd.Date != nil {
		b.Date = *upd.Date
		set["date"] = b.Date
	}
	if upd.Timeslot != nil {
		if upd.Timeslot.Start.IsZero() || upd.Timeslot.End.IsZero() {
			return b, nil, &utils.ValidationError{Field: "timeslot", Message: "start and end are required"}
		}
		b.Timeslot = *upd.Timeslot
		set["timeslot"] = b.Timeslot
	}
	if upd.Amount != nil {
		if *upd.Amount <= 0 {
			return b, nil, &utils.ValidationError{Field: "amount", Message: "must be greater than zero"}
		}
		b.Amount = *upd.Amount
		set["amount"] = b.Amount
	}
	if upd.PaymentStatus != nil {
		if !models.ValidPaymentStatus(*upd.PaymentStatus) {
			return b, nil, &utils.ValidationError{Field: "paymentStatus", Message: "unrecognized value"}
		}
		b.PaymentStatus = *upd.PaymentStatus
		set["paymentStatus"] = b.PaymentStatus
	}
	if upd.BookingStatus != nil {
		if !models.ValidBookingStatus(*upd.BookingStatus) {
			return b, nil, &utils.ValidationError{Field: "bookingStatus", Message: "unrecognized value"}
		}
		b.BookingStatus = *upd.BookingStatus
		set["bookingStatus"] = b.BookingStatus
	}
	if upd.ZoomJoinLink != nil {
		b.ZoomJoinLink = *upd.ZoomJoinLink
		set["zoomJoinLink"] = b.ZoomJoinLink
	}
	if upd.PaymentIntentID != nil {
		b.PaymentIntentID = *upd.PaymentIntentID
		set["paymentIntentId"] = b.PaymentIntentID
	}
	if err := checkLinkGate(b.ZoomJoinLink, b.PaymentStatus); err != nil {
		return b, nil, err
	}
	if len(set) > 0 {
		b.UpdatedAt = time.Now()
		set["updatedAt"] = b.UpdatedAt
	}
	return b, set, nil
}
