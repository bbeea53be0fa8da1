package doctors

import (
	"context"
	"radiox-service/internal/app/contracts"
	"radiox-service/internal/app/models"
	"radiox-service/internal/pkg/constvars"
	"radiox-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (repo *DoctorMongoRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return doctors, nil
}

func (repo *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	if _, err := primitive.ObjectIDFromHex(doctorID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var doctor models.Doctor
	err := repo.Collection.FindOne(ctx, bson.M{"_id": doctorID}).Decode(&doctor)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doctor, nil
}

func (repo *DoctorMongoRepository) InsertMany(ctx context.Context, doctors []models.Doctor) error {
	documents := make([]interface{}, len(doctors))
	for i := range doctors {
		if doctors[i].ID == "" {
			doctors[i].ID = primitive.NewObjectID().Hex()
		}
		documents[i] = doctors[i]
	}

	_, err := repo.Collection.InsertMany(ctx, documents)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *DoctorMongoRepository) DeleteAll(ctx context.Context) error {
	_, err := repo.Collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
