package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingJWTRoundTrip(t *testing.T) {
	secret := "test-booking-secret"

	t.Run("Valid Token Carries Booking ID", func(t *testing.T) {
		token, err := GenerateBookingJWT("66a1b2c3d4e5f6a7b8c9d0e1", secret, 30)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		bookingID, err := ParseBookingJWT(token, secret)
		assert.NoError(t, err)
		assert.Equal(t, "66a1b2c3d4e5f6a7b8c9d0e1", bookingID)
	})

	t.Run("Wrong Secret Is Rejected", func(t *testing.T) {
		token, err := GenerateBookingJWT("66a1b2c3d4e5f6a7b8c9d0e1", secret, 30)
		assert.NoError(t, err)

		_, err = ParseBookingJWT(token, "another-secret")
		assert.Error(t, err)
	})

	t.Run("Expired Token Is Rejected", func(t *testing.T) {
		token, err := GenerateBookingJWT("66a1b2c3d4e5f6a7b8c9d0e1", secret, -1)
		assert.NoError(t, err)

		_, err = ParseBookingJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("Garbage Token Is Rejected", func(t *testing.T) {
		_, err := ParseBookingJWT("not.a.token", secret)
		assert.Error(t, err)
	})
}
