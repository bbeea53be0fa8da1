package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStateTransitions(t *testing.T) {
	t.Run("Happy Path", func(t *testing.T) {
		assert.True(t, BookingSelectingSlot.CanTransitionTo(BookingInFlight))
		assert.True(t, BookingInFlight.CanTransitionTo(BookingBooked))
		assert.True(t, BookingBooked.CanTransitionTo(BookingPaymentInProgress))
		assert.True(t, BookingPaymentInProgress.CanTransitionTo(BookingConfirmed))
	})

	t.Run("Payment Failure And Retry", func(t *testing.T) {
		assert.True(t, BookingPaymentInProgress.CanTransitionTo(BookingPaymentFailed))
		assert.True(t, BookingPaymentFailed.CanTransitionTo(BookingPaymentInProgress))
		assert.True(t, BookingPaymentFailed.CanTransitionTo(BookingCancelled))
	})

	t.Run("Cancellation", func(t *testing.T) {
		assert.True(t, BookingBooked.CanTransitionTo(BookingCancelled))
		assert.True(t, BookingConfirmed.CanTransitionTo(BookingCancelled))
	})

	t.Run("Disallowed Jumps", func(t *testing.T) {
		assert.False(t, BookingSelectingSlot.CanTransitionTo(BookingConfirmed))
		assert.False(t, BookingBooked.CanTransitionTo(BookingConfirmed))
		assert.False(t, BookingConfirmed.CanTransitionTo(BookingPaymentInProgress))
		assert.False(t, BookingCancelled.CanTransitionTo(BookingBooked))
		assert.False(t, BookingCancelled.CanTransitionTo(BookingConfirmed))
		assert.False(t, BookingPaymentInProgress.CanTransitionTo(BookingCancelled))
	})
}

func TestIsValidAppointmentStatus(t *testing.T) {
	assert.True(t, IsValidAppointmentStatus("Scheduled"))
	assert.True(t, IsValidAppointmentStatus("Completed"))
	assert.True(t, IsValidAppointmentStatus("Cancelled"))
	assert.False(t, IsValidAppointmentStatus("scheduled"))
	assert.False(t, IsValidAppointmentStatus("Pending"))
	assert.False(t, IsValidAppointmentStatus(""))
}
