package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateBookingJWT signs a short-lived token scoping the checkout flow to one booking.
// The token replaces the browser-side session the old client kept in localStorage.
func GenerateBookingJWT(bookingID, secret string, expiryTimeInMinutes int) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"booking_id": bookingID,
		"exp":        time.Now().Add(time.Duration(expiryTimeInMinutes) * time.Minute).Unix(),
	})

	tokenString, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ParseBookingJWT returns the booking id carried by the token, or an error when the
// token is malformed, expired, or signed with a different secret.
func ParseBookingJWT(tokenString, secret string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", jwt.ErrTokenInvalidClaims
	}

	bookingID, _ := claims["booking_id"].(string)
	if bookingID == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return bookingID, nil
}
