package responses

type DoctorPatient struct {
	PatientName        string `json:"patientName"`
	PatientLocation    string `json:"patientLocation"`
	PatientPhoneNumber string `json:"patientPhoneNumber"`
	PatientScansDone   bool   `json:"patientScansDone"`
	Remarks            string `json:"remarks,omitempty"`
	ScannedImages      string `json:"scannedImages,omitempty"`
}

type Doctor struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Specialty     string          `json:"specialty"`
	ContactNumber string          `json:"contactNumber"`
	Address       string          `json:"address"`
	Location      string          `json:"location"`
	Email         string          `json:"email"`
	ScansDone     string          `json:"scans_done"`
	ScansPending  string          `json:"scans_pending"`
	Patients      []DoctorPatient `json:"patients,omitempty"`
}
