package bookings

import (
	"context"
	"radiox-service/internal/app/contracts"
	"radiox-service/internal/app/models"
	"radiox-service/internal/pkg/constvars"
	"radiox-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

func (repo *BookingMongoRepository) Insert(ctx context.Context, booking *models.Booking) (string, error) {
	if booking.ID == "" {
		booking.ID = primitive.NewObjectID().Hex()
	}

	_, err := repo.Collection.InsertOne(ctx, booking)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return booking.ID, nil
}

func (repo *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	if _, err := primitive.ObjectIDFromHex(bookingID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var booking models.Booking
	err := repo.Collection.FindOne(ctx, bson.M{"_id": bookingID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &booking, nil
}

func (repo *BookingMongoRepository) Update(ctx context.Context, booking *models.Booking) error {
	filter := bson.M{"_id": booking.ID}
	_, err := repo.Collection.ReplaceOne(ctx, filter, booking, options.Replace().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
