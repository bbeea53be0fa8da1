package responses

type Bill struct {
	ID          string  `json:"id"`
	PatientName string  `json:"patientName"`
	Service     string  `json:"service"`
	Amount      float64 `json:"amount"`
}

type GenerateBill struct {
	Message string `json:"message"`
	Bill    Bill   `json:"bill"`
}

type CreatePayment struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}
