package orders

import (
	"context"

	"healiinn-service/internal/app/contracts"
	"healiinn-service/internal/app/models"
	"healiinn-service/internal/pkg/constvars"
	"healiinn-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type orderMongoRepository struct {
	Collection *mongo.Collection
}

func NewOrderMongoRepository(db *mongo.Client, dbName string) contracts.OrderRepository {
	return &orderMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionOrders),
	}
}

func (repo *orderMongoRepository) FindAllByPatientID(ctx context.Context, patientID string) ([]models.Order, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"patient_id": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return orders, nil
}

func (repo *orderMongoRepository) FindAllByRequestID(ctx context.Context, requestID string) ([]models.Order, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"request_id": requestID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return orders, nil
}
