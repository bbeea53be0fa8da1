package models

import "radiox-service/internal/pkg/dto/responses"

type AppointmentStatus string

const (
	AppointmentScheduled AppointmentStatus = "Scheduled"
	AppointmentCompleted AppointmentStatus = "Completed"
	AppointmentCancelled AppointmentStatus = "Cancelled"
)

func IsValidAppointmentStatus(value string) bool {
	switch AppointmentStatus(value) {
	case AppointmentScheduled, AppointmentCompleted, AppointmentCancelled:
		return true
	}
	return false
}

type Schedule struct {
	StartTime string `bson:"startTime"`
	Duration  int    `bson:"duration"`
}

type PersonName struct {
	FirstName string `bson:"firstName"`
	LastName  string `bson:"lastName,omitempty"`
}

func (s Schedule) ConvertIntoResponse() responses.Schedule {
	return responses.Schedule{
		StartTime: s.StartTime,
		Duration:  s.Duration,
	}
}

func (n PersonName) ConvertIntoResponse() responses.PersonName {
	return responses.PersonName{
		FirstName: n.FirstName,
		LastName:  n.LastName,
	}
}

// FullName renders the name the way the booking front end shows doctors, e.g. "Sarah Chen".
func (n PersonName) FullName() string {
	if n.LastName == "" {
		return n.FirstName
	}
	return n.FirstName + " " + n.LastName
}

type Appointment struct {
	ID          string            `bson:"_id,omitempty"`
	PatientID   string            `bson:"patientID"`
	ServiceName string            `bson:"serviceName"`
	Date        string            `bson:"date"`
	Schedule    Schedule          `bson:"schedule"`
	Location    string            `bson:"location"`
	PatientName PersonName        `bson:"patientName"`
	DoctorName  PersonName        `bson:"doctorName"`
	Status      AppointmentStatus `bson:"status"`
	// SlotKey mirrors (doctorName, date, schedule.startTime); it backs the unique partial
	// index that rejects a second Scheduled appointment for the same slot.
	SlotKey            string `bson:"slotKey"`
	CancellationReason string `bson:"cancellationReason,omitempty"`
}

func (a *Appointment) ConvertIntoResponse() responses.Appointment {
	return responses.Appointment{
		ID:                 a.ID,
		PatientID:          a.PatientID,
		ServiceName:        a.ServiceName,
		Date:               a.Date,
		Schedule:           a.Schedule.ConvertIntoResponse(),
		Location:           a.Location,
		PatientName:        a.PatientName.ConvertIntoResponse(),
		DoctorName:         a.DoctorName.ConvertIntoResponse(),
		Status:             string(a.Status),
		CancellationReason: a.CancellationReason,
	}
}
