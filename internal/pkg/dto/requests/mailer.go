package requests

// EmailPayload carries everything the confirmation template renders; it is queued as-is
// on RabbitMQ and consumed by the delivery worker.
type EmailPayload struct {
	ToEmail             string `json:"to_email"`
	FromName            string `json:"from_name"`
	ToName              string `json:"to_name"`
	ServiceName         string `json:"service_name"`
	AppointmentDate     string `json:"appointment_date"`
	AppointmentTime     string `json:"appointment_time"`
	AppointmentLocation string `json:"appointment_location"`
	DoctorName          string `json:"doctor_name"`
	AppointmentID       string `json:"appointment_id"`
	TotalAmount         string `json:"total_amount"`
	ReplyTo             string `json:"reply_to"`
	Message             string `json:"message"`
}
