package routers

import (
	"radiox-service/internal/app/services/core/bills"

	"github.com/go-chi/chi/v5"
)

func attachBillRoutes(router chi.Router, billController *bills.BillController) {
	router.Post("/create", billController.GenerateBill)
	router.Post("/create-payment", billController.CreatePayment)
	router.Get("/{id}", billController.ViewBill)
	router.Put("/{id}", billController.UpdateBill)
	router.Delete("/{id}", billController.DeleteBill)
}
