package responses

type Schedule struct {
	StartTime string `json:"startTime"`
	Duration  int    `json:"duration"`
}

type PersonName struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
}

type Appointment struct {
	ID                 string     `json:"id"`
	PatientID          string     `json:"patientID"`
	ServiceName        string     `json:"serviceName"`
	Date               string     `json:"date"`
	Schedule           Schedule   `json:"schedule"`
	Location           string     `json:"location"`
	PatientName        PersonName `json:"patientName"`
	DoctorName         PersonName `json:"doctorName"`
	Status             string     `json:"status"`
	CancellationReason string     `json:"cancellationReason,omitempty"`
}

type ScheduleAppointment struct {
	Message       string `json:"message"`
	AppointmentID string `json:"appointmentId"`
}

type AppointmentMessage struct {
	Message string `json:"message"`
}

type Availability struct {
	Doctor    string   `json:"doctor"`
	Date      string   `json:"date"`
	TimeSlots []string `json:"timeSlots"`
}
