package requests

import (
	"context"
	"time"

	"healiinn-service/internal/app/contracts"
	"healiinn-service/internal/app/models"
	"healiinn-service/internal/pkg/constvars"
	"healiinn-service/internal/pkg/exceptions"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type serviceRequestMongoRepository struct {
	Collection *mongo.Collection
}

func NewServiceRequestMongoRepository(db *mongo.Client, dbName string) contracts.ServiceRequestRepository {
	return &serviceRequestMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionServiceRequests),
	}
}

func (repo *serviceRequestMongoRepository) FindAllByPatientID(ctx context.Context, patientID string) ([]models.ServiceRequest, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"patient_id": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var serviceRequests []models.ServiceRequest
	if err := cursor.All(ctx, &serviceRequests); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return serviceRequests, nil
}

func (repo *serviceRequestMongoRepository) FindByID(ctx context.Context, requestID string) (*models.ServiceRequest, error) {
	var serviceRequest models.ServiceRequest
	err := repo.Collection.FindOne(ctx, bson.M{"_id": requestID}).Decode(&serviceRequest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &serviceRequest, nil
}

func (repo *serviceRequestMongoRepository) FindByPaymentOrderID(ctx context.Context, paymentOrderID string) (*models.ServiceRequest, error) {
	var serviceRequest models.ServiceRequest
	err := repo.Collection.FindOne(ctx, bson.M{"payment_order_id": paymentOrderID}).Decode(&serviceRequest)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &serviceRequest, nil
}

func (repo *serviceRequestMongoRepository) CreateServiceRequest(ctx context.Context, request *models.ServiceRequest) (*models.ServiceRequest, error) {
	now := time.Now().UTC()
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	request.CreatedAt = now
	request.UpdatedAt = now

	_, err := repo.Collection.InsertOne(ctx, request)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	return request, nil
}

func (repo *serviceRequestMongoRepository) UpdateServiceRequest(ctx context.Context, request *models.ServiceRequest) (*models.ServiceRequest, error) {
	request.UpdatedAt = time.Now().UTC()

	result, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": request.ID}, request)
	if err != nil {
		return nil, exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return nil, exceptions.ErrRequestNotFound(mongo.ErrNoDocuments)
	}
	return request, nil
}
