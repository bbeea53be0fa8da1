package models

import "radiox-service/internal/pkg/dto/responses"

type DoctorPatient struct {
	PatientName        string `bson:"patientName"`
	PatientLocation    string `bson:"patientLocation"`
	PatientPhoneNumber string `bson:"patientPhoneNumber"`
	PatientScansDone   bool   `bson:"patientScansDone"`
	Remarks            string `bson:"remarks,omitempty"`
	ScannedImages      string `bson:"scannedImages,omitempty"`
}

type Doctor struct {
	ID            string          `bson:"_id,omitempty"`
	Name          string          `bson:"name"`
	Specialty     string          `bson:"specialty"`
	ContactNumber string          `bson:"contactNumber"`
	Address       string          `bson:"address"`
	Location      string          `bson:"location"`
	Email         string          `bson:"email"`
	ScansDone     string          `bson:"scans_done"`
	ScansPending  string          `bson:"scans_pending"`
	Patients      []DoctorPatient `bson:"patients,omitempty"`
}

func (p DoctorPatient) ConvertIntoResponse() responses.DoctorPatient {
	return responses.DoctorPatient{
		PatientName:        p.PatientName,
		PatientLocation:    p.PatientLocation,
		PatientPhoneNumber: p.PatientPhoneNumber,
		PatientScansDone:   p.PatientScansDone,
		Remarks:            p.Remarks,
		ScannedImages:      p.ScannedImages,
	}
}

func (d *Doctor) ConvertIntoResponse() responses.Doctor {
	patients := make([]responses.DoctorPatient, len(d.Patients))
	for i, eachPatient := range d.Patients {
		patients[i] = eachPatient.ConvertIntoResponse()
	}
	return responses.Doctor{
		ID:            d.ID,
		Name:          d.Name,
		Specialty:     d.Specialty,
		ContactNumber: d.ContactNumber,
		Address:       d.Address,
		Location:      d.Location,
		Email:         d.Email,
		ScansDone:     d.ScansDone,
		ScansPending:  d.ScansPending,
		Patients:      patients,
	}
}
