package purchase

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection("purchases"),
	}
}

func (r *MongoRepo) Create(purchase *Purchase) error {
	ctx := context.TODO()

	result, err := r.collection.InsertOne(ctx, purchase)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		purchase.MongoID = oid
		purchase.ID = oid.Hex()
	} else {
		return errors.New("failed to convert inserted ID to ObjectID")
	}

	return nil
}

func (r *MongoRepo) GetByID(id string) (*Purchase, error) {
	ctx := context.TODO()
	var purchase Purchase

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid ID format")
	}

	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&purchase)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New("purchase not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch purchase: %w", err)
	}

	purchase.ID = purchase.MongoID.Hex()
	return &purchase, nil
}

func (r *MongoRepo) GetByUser(userID string) ([]*Purchase, error) {
	ctx := context.TODO()

	cursor, err := r.collection.Find(ctx, bson.M{"userid": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch purchases: %w", err)
	}
	defer cursor.Close(ctx)

	var purchases []*Purchase
	for cursor.Next(ctx) {
		var purchase Purchase
		if cursor.Decode(&purchase) == nil {
			purchase.ID = purchase.MongoID.Hex()
			purchases = append(purchases, &purchase)
		}
	}

	return purchases, nil
}

func (r *MongoRepo) UpdateStatus(id, status string) (*Purchase, error) {
	ctx := context.TODO()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid ID format")
	}

	// Only pending purchases may transition.
	var updated Purchase
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID, "status": StatusPending},
		bson.M{"$set": bson.M{"status": status}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New("pending purchase not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update purchase: %w", err)
	}

	updated.ID = updated.MongoID.Hex()
	return &updated, nil
}
