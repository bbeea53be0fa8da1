package responses

type Booking struct {
	ID            string  `json:"id"`
	AppointmentID string  `json:"appointmentId"`
	State         string  `json:"state"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentURL    string  `json:"paymentUrl,omitempty"`
}

type CreateBooking struct {
	Booking      Booking `json:"booking"`
	BookingToken string  `json:"bookingToken"`
}

type StartPayment struct {
	SessionID  string `json:"sessionId"`
	PaymentURL string `json:"paymentUrl"`
	State      string `json:"state"`
}
