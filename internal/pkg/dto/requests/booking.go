package requests

type CreateBooking struct {
	Appointment  ScheduleAppointment `json:"appointment" validate:"required"`
	PatientEmail string              `json:"patientEmail" validate:"required,email"`
	Amount       float64             `json:"amount" validate:"required,gt=0"`
	Currency     string              `json:"currency" validate:"omitempty,oneof=usd eur inr"`
}

type StartPayment struct {
	BookingToken string `json:"bookingToken" validate:"required"`
	SuccessURL   string `json:"successUrl"`
	CancelURL    string `json:"cancelUrl"`
}

type ConfirmPayment struct {
	BookingToken string `json:"bookingToken" validate:"required"`
	Succeeded    bool   `json:"succeeded"`
}
