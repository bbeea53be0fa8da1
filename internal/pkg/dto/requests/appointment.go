package requests

type ScheduleRequest struct {
	StartTime string `json:"startTime" validate:"required,start_time"`
	Duration  int    `json:"duration" validate:"required,gt=0"`
}

type PersonNameRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"`
}

type ScheduleAppointment struct {
	PatientID   string            `json:"patientID" validate:"required"`
	ServiceName string            `json:"serviceName" validate:"required"`
	Date        string            `json:"date" validate:"required,appointment_date"`
	Schedule    ScheduleRequest   `json:"schedule" validate:"required"`
	Location    string            `json:"location" validate:"required"`
	PatientName PersonNameRequest `json:"patientName" validate:"required"`
	DoctorName  PersonNameRequest `json:"doctorName" validate:"required"`
	// Status is optional; an absent status defaults to Scheduled server-side.
	Status string `json:"status" validate:"omitempty,appointment_status"`
}

// UpdateAppointment carries the only fields an update may touch. Unknown fields in the
// body are dropped instead of being merged into the document.
type UpdateAppointment struct {
	ServiceName string             `json:"serviceName"`
	Date        string             `json:"date" validate:"omitempty,appointment_date"`
	Schedule    *ScheduleRequest   `json:"schedule"`
	Location    string             `json:"location"`
	DoctorName  *PersonNameRequest `json:"doctorName"`
	Status      string             `json:"status" validate:"omitempty,appointment_status"`
}

type CancelAppointment struct {
	Reason string `json:"reason"`
}
