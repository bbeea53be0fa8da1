package main

import (
	"context"
	"radiox-service/internal/app/config"
	"radiox-service/internal/app/drivers/database"
	"radiox-service/internal/app/drivers/logger"
	"radiox-service/internal/app/models"
	"radiox-service/internal/app/services/core/appointments"
	"radiox-service/internal/app/services/core/doctors"
	"radiox-service/internal/pkg/constvars"
	"radiox-service/internal/pkg/utils"
	"time"
)

// Seeds the database with the sample doctor directory and a few appointments.
// Existing documents in both collections are dropped first.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	defer func() {
		if err := mongoDB.Disconnect(context.Background()); err != nil {
			log.Errorf("Error disconnecting from MongoDB: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	doctorRepository := doctors.NewDoctorMongoRepository(mongoDB, driverConfig.MongoDB.DbName)
	appointmentRepository := appointments.NewAppointmentMongoRepository(mongoDB, driverConfig.MongoDB.DbName)

	if err := doctorRepository.DeleteAll(ctx); err != nil {
		log.Fatalf("Error clearing doctor data: %v", err)
	}
	log.Info("Cleared existing doctor data")

	if err := appointmentRepository.DeleteAll(ctx); err != nil {
		log.Fatalf("Error clearing appointment data: %v", err)
	}
	log.Info("Cleared existing appointment data")

	if err := appointmentRepository.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Error ensuring appointment indexes: %v", err)
	}

	if err := doctorRepository.InsertMany(ctx, sampleDoctors()); err != nil {
		log.Fatalf("Error seeding doctors: %v", err)
	}
	log.Infof("Database seeded with %d doctors", len(sampleDoctors()))

	inserted := 0
	for _, appointment := range sampleAppointments() {
		appointment := appointment
		if _, err := appointmentRepository.Insert(ctx, &appointment); err != nil {
			log.Errorf("Error seeding appointment: %v", err)
			continue
		}
		inserted++
	}
	log.Infof("Database seeded with %d appointments", inserted)

	log.Info("Database seeded successfully")
}

func sampleDoctors() []models.Doctor {
	return []models.Doctor{
		{
			Name:          "Dr. John Doe",
			Specialty:     "Cardiology",
			ContactNumber: "1234567890",
			Address:       "123 Main Street",
			Location:      "City A",
			Email:         "abc@example.com",
			ScansDone:     "50",
			ScansPending:  "10",
			Patients: []models.DoctorPatient{
				{
					PatientName:        "Alice Johnson",
					PatientLocation:    "Location 1",
					PatientPhoneNumber: "1234567891",
					PatientScansDone:   true,
					Remarks:            "Sample remark",
					ScannedImages:      "https://i.ibb.co/CVqgnq8/demo.jpg",
				},
				{
					PatientName:        "Eva Davis",
					PatientLocation:    "Location 5",
					PatientPhoneNumber: "8765432111",
					PatientScansDone:   false,
					Remarks:            "Yet another sample remark",
					ScannedImages:      "https://i.ibb.co/CVqgnq8/demo.jpg",
				},
				{
					PatientName:        "Frank Miller",
					PatientLocation:    "Location 6",
					PatientPhoneNumber: "8765432112",
					PatientScansDone:   true,
					Remarks:            "Sample remark for Frank",
					ScannedImages:      "https://i.ibb.co/CVqgnq8/demo.jpg",
				},
			},
		},
		{
			Name:          "Dr. Jane Smith",
			Specialty:     "Radiology",
			ContactNumber: "9876543210",
			Address:       "456 Oak Avenue",
			Location:      "New York",
			Email:         "jane.smith@example.com",
			ScansDone:     "75",
			ScansPending:  "5",
			Patients: []models.DoctorPatient{
				{
					PatientName:        "Bob Williams",
					PatientLocation:    "Location 2",
					PatientPhoneNumber: "2345678901",
					PatientScansDone:   true,
					Remarks:            "Another sample remark",
					ScannedImages:      "https://i.ibb.co/CVqgnq8/demo.jpg",
				},
			},
		},
	}
}

func sampleAppointments() []models.Appointment {
	today := time.Now().Format(constvars.AppointmentDateLayout)
	inThreeDays := time.Now().AddDate(0, 0, 3).Format(constvars.AppointmentDateLayout)
	aWeekAgo := time.Now().AddDate(0, 0, -7).Format(constvars.AppointmentDateLayout)

	appointments := []models.Appointment{
		{
			PatientID:   "123456",
			ServiceName: "X-Ray Scan",
			Date:        today,
			Schedule:    models.Schedule{StartTime: "10:00 AM", Duration: 30},
			Location:    "New York",
			PatientName: models.PersonName{FirstName: "John", LastName: "Doe"},
			DoctorName:  models.PersonName{FirstName: "Jane", LastName: "Smith"},
			Status:      models.AppointmentScheduled,
		},
		{
			PatientID:   "123456",
			ServiceName: "MRI Scan",
			Date:        inThreeDays,
			Schedule:    models.Schedule{StartTime: "11:30 AM", Duration: 45},
			Location:    "Boston",
			PatientName: models.PersonName{FirstName: "John", LastName: "Doe"},
			DoctorName:  models.PersonName{FirstName: "Michael", LastName: "Johnson"},
			Status:      models.AppointmentScheduled,
		},
		{
			PatientID:   "123456",
			ServiceName: "CT Scan",
			Date:        aWeekAgo,
			Schedule:    models.Schedule{StartTime: "9:15 AM", Duration: 60},
			Location:    "Chicago",
			PatientName: models.PersonName{FirstName: "John", LastName: "Doe"},
			DoctorName:  models.PersonName{FirstName: "Sarah", LastName: "Brown"},
			Status:      models.AppointmentCompleted,
		},
	}

	for i := range appointments {
		appointments[i].SlotKey = utils.BuildSlotKey(
			appointments[i].DoctorName.FirstName,
			appointments[i].DoctorName.LastName,
			appointments[i].Date,
			appointments[i].Schedule.StartTime,
		)
	}
	return appointments
}
