package routers

import (
	"radiox-service/internal/app/config"
	"radiox-service/internal/app/delivery/http/middlewares"
	"radiox-service/internal/app/services/core/appointments"
	"radiox-service/internal/app/services/core/bills"
	"radiox-service/internal/app/services/core/bookings"
	"radiox-service/internal/app/services/core/doctors"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appointmentController *appointments.AppointmentController,
	bookingController *bookings.BookingController,
	billController *bills.BillController,
	doctorController *doctors.DoctorController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestBodyLimit)
	router.Use(middlewares.ErrorHandler)

	// The /appointment paths predate the /api prefix; existing clients still call them.
	router.Route("/appointment", func(r chi.Router) {
		attachAppointmentRoutes(r, appointmentController)
	})

	router.Route("/api", func(r chi.Router) {
		r.Route("/bookings", func(r chi.Router) {
			attachBookingRoutes(r, bookingController)
		})

		r.Route("/bills", func(r chi.Router) {
			attachBillRoutes(r, billController)
		})

		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, doctorController)
		})
	})
}
