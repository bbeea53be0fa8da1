package bills

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

type BillMongoRepository struct {
	Collection *mongo.Collection
}

func NewBillMongoRepository(db *mongo.Client, dbName string) contracts.BillRepository {
	return &BillMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBills),
	}
}

func (repo *BillMongoRepository) Insert(ctx context.Context, bill *models.Bill) (string, error) {
	if bill.ID == "" {
		bill.ID = primitive.NewObjectID().Hex()
	}

	_, err := repo.Collection.InsertOne(ctx, bill)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return bill.ID, nil
}

func (repo *BillMongoRepository) FindByID(ctx context.Context, billID string) (*models.Bill, error) {
	if _, err := primitive.ObjectIDFromHex(billID); err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var bill models.Bill
	err := repo.Collection.FindOne(ctx, bson.M{"_id": billID}).Decode(&bill)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &bill, nil
}

func (repo *BillMongoRepository) Update(ctx context.Context, bill *models.Bill) error {
	filter := bson.M{"_id": bill.ID}
	_, err := repo.Collection.ReplaceOne(ctx, filter, bill, options.Replace().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *BillMongoRepository) DeleteByID(ctx context.Context, billID string) error {
	if _, err := primitive.ObjectIDFromHex(billID); err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": billID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrBillNotFound(nil)
	}
	return nil
}
