package appointments

import (
	"context"
	"radiox-service/internal/app/contracts"
	"radiox-service/internal/app/models"
	"radiox-service/internal/pkg/constvars"
	"radiox-service/internal/pkg/exceptions"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) contracts.AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

// EnsureIndexes creates the unique partial index that rejects a second Scheduled
// appointment with the same slotKey. Cancelled and Completed documents keep their
// slotKey but fall outside the partial filter, so the slot frees up on cancel.
func (repo *AppointmentMongoRepository) EnsureIndexes(ctx context.Context) error {
	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "slotKey", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"status": string(models.AppointmentScheduled)}),
	}
	_, err := repo.Collection.Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *AppointmentMongoRepository) FindAll(ctx context.Context) ([]models.Appointment, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Appointment, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{"patientID": patientID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	if _, err := primitive.ObjectIDFromHex(appointmentID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err := repo.Collection.FindOne(ctx, bson.M{"_id": appointmentID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (repo *AppointmentMongoRepository) FindScheduledByDoctorAndDate(ctx context.Context, doctorFirstName, doctorLastName, date string) ([]models.Appointment, error) {
	filter := bson.M{
		"doctorName.firstName": caseInsensitiveExact(doctorFirstName),
		"date":                 date,
		"status":               string(models.AppointmentScheduled),
	}
	if doctorLastName != "" {
		filter["doctorName.lastName"] = caseInsensitiveExact(doctorLastName)
	}

	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) Insert(ctx context.Context, appointment *models.Appointment) (string, error) {
	if appointment.ID == "" {
		appointment.ID = primitive.NewObjectID().Hex()
	}

	_, err := repo.Collection.InsertOne(ctx, appointment)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrSlotConflict(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return appointment.ID, nil
}

func (repo *AppointmentMongoRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	filter := bson.M{"_id": appointment.ID}
	_, err := repo.Collection.ReplaceOne(ctx, filter, appointment, options.Replace().SetUpsert(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrSlotConflict(err)
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *AppointmentMongoRepository) DeleteAll(ctx context.Context) error {
	_, err := repo.Collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func caseInsensitiveExact(value string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(value) + "$", Options: "i"}
}
