package routers

import (
	"radiox-service/internal/app/services/core/doctors"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *doctors.DoctorController) {
	router.Get("/", doctorController.GetAllDoctors)
	router.Get("/{id}", doctorController.GetDoctorByID)
}
