package requests

type GenerateBill struct {
	PatientName string  `json:"patientName" validate:"required"`
	Service     string  `json:"service" validate:"required"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

type UpdateBill struct {
	PatientName string  `json:"patientName"`
	Service     string  `json:"service"`
	Amount      float64 `json:"amount" validate:"omitempty,gt=0"`
}

type CreatePayment struct {
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Currency string  `json:"currency" validate:"omitempty,oneof=usd eur inr"`
}
