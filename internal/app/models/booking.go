package models

import (
	"radiox-service/internal/pkg/dto/responses"
	"time"
)

type BookingState string

const (
	BookingSelectingSlot     BookingState = "selecting_slot"
	BookingInFlight          BookingState = "booking"
	BookingBooked            BookingState = "booked"
	BookingPaymentInProgress BookingState = "payment_in_progress"
	BookingConfirmed         BookingState = "confirmed"
	BookingPaymentFailed     BookingState = "payment_failed"
	BookingCancelled         BookingState = "cancelled"
)

// bookingTransitions is the full transition table of the booking flow. Anything not
// listed is rejected; there is no free-form state overwrite.
var bookingTransitions = map[BookingState][]BookingState{
	BookingSelectingSlot:     {BookingInFlight},
	BookingInFlight:          {BookingBooked},
	BookingBooked:            {BookingPaymentInProgress, BookingCancelled},
	BookingPaymentInProgress: {BookingConfirmed, BookingPaymentFailed},
	BookingPaymentFailed:     {BookingPaymentInProgress, BookingCancelled},
	BookingConfirmed:         {BookingCancelled},
}

func (s BookingState) CanTransitionTo(next BookingState) bool {
	for _, allowed := range bookingTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type Booking struct {
	ID               string       `bson:"_id,omitempty"`
	AppointmentID    string       `bson:"appointmentID"`
	PatientEmail     string       `bson:"patientEmail"`
	State            BookingState `bson:"state"`
	Amount           float64      `bson:"amount"`
	Currency         string       `bson:"currency"`
	PaymentSessionID string       `bson:"paymentSessionID,omitempty"`
	PaymentURL       string       `bson:"paymentURL,omitempty"`
	SlotHoldValue    string       `bson:"slotHoldValue,omitempty"`
	CreatedAt        time.Time    `bson:"createdAt"`
	UpdatedAt        time.Time    `bson:"updatedAt"`
}

func (b *Booking) ConvertIntoResponse() responses.Booking {
	return responses.Booking{
		ID:            b.ID,
		AppointmentID: b.AppointmentID,
		State:         string(b.State),
		Amount:        b.Amount,
		Currency:      b.Currency,
		PaymentURL:    b.PaymentURL,
	}
}
