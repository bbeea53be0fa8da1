package routers

import (
	"radiox-service/internal/app/services/core/bookings"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, bookingController *bookings.BookingController) {
	router.Post("/", bookingController.CreateBooking)
	router.Post("/payment/start", bookingController.StartPayment)
	router.Post("/payment/confirm", bookingController.ConfirmPayment)
	router.Get("/{id}", bookingController.GetBookingByID)
	router.Patch("/cancel/{id}", bookingController.CancelBooking)
}
