package routers

import (
	"radiox-service/internal/app/services/core/appointments"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *appointments.AppointmentController) {
	router.Get("/", appointmentController.GetAllAppointments)
	router.Get("/slots", appointmentController.GetAvailableSlots)
	router.Get("/patient/{id}", appointmentController.GetAppointmentsByPatientID)
	router.Get("/{id}", appointmentController.GetAppointmentByID)
	router.Post("/schedule", appointmentController.ScheduleAppointment)
	router.Put("/update/{id}", appointmentController.UpdateAppointment)
	router.Patch("/cancel/{id}", appointmentController.CancelAppointment)
	router.Patch("/complete/{id}", appointmentController.CompleteAppointment)
}
