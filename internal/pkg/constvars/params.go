package constvars

const (
	URLParamAppointmentID = "id"
	URLParamPatientID     = "id"
	URLParamBookingID     = "id"
	URLParamBillID        = "id"
	URLParamDoctorID      = "id"
)

const (
	URLQueryParamPatientID = "patientId"
	URLQueryParamDoctor    = "doctor"
	URLQueryParamDate      = "date"
)
