package song

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
		collection: db.Collection("songs"),
	}
}

func (r *MongoRepo) Create(song *Song) error {
	ctx := context.TODO()

	result, err := r.collection.InsertOne(ctx, song)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("song already exists")
		}
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		song.MongoID = oid
		song.ID = oid.Hex()
	} else {
		return errors.New("failed to convert inserted ID to ObjectID")
	}

	return nil
}

func (r *MongoRepo) GetByID(id string) (*Song, error) {
	ctx := context.TODO()
	var song Song

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, errors.New("invalid ID format")
	}

	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&song)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errors.New("song not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch song: %w", err)
	}

	song.ID = song.MongoID.Hex()
	return &song, nil
}

// GetPage fetches one row past the page size; the extra row only decides
// hasMore and is not returned.
func (r *MongoRepo) GetPage(page int, category string) (*Page, error) {
	ctx := context.TODO()

	if page < 1 {
		page = 1
	}

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created", Value: -1}}).
		SetSkip(int64((page - 1) * PerPage)).
		SetLimit(int64(PerPage + 1))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer cursor.Close(ctx)

	songs := make([]*Song, 0, PerPage)
	for cursor.Next(ctx) {
		var song Song
		if err := cursor.Decode(&song); err != nil {
			continue
		}
		song.ID = song.MongoID.Hex()
		songs = append(songs, &song)
	}

	hasMore := len(songs) > PerPage
	if hasMore {
		songs = songs[:PerPage]
	}

	return &Page{
		Items:      songs,
		Pagination: Pagination{Page: page, HasMore: hasMore},
	}, nil
}

func (r *MongoRepo) Update(song *Song) error {
	ctx := context.TODO()

	objectID, err := primitive.ObjectIDFromHex(song.ID)
	if err != nil {
		return errors.New("invalid ID format")
	}

	update := bson.M{
		"$set": bson.M{
			"title":    song.Title,
			"artist":   song.Artist,
			"category": song.Category,
			"price":    song.Price,
			"premium":  song.Premium,
			"scoreurl": song.ScoreURL,
			"videourl": song.VideoURL,
		},
	}

	res, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return fmt.Errorf("failed to update song: %w", err)
	}
	if res.MatchedCount == 0 {
		return errors.New("song not found")
	}

	return nil
}

func (r *MongoRepo) Delete(songID string) error {
	ctx := context.TODO()

	objectID, err := primitive.ObjectIDFromHex(songID)
	if err != nil {
		return errors.New("invalid ID format")
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("song not found")
	}

	return nil
}

func (r *MongoRepo) IncrementViews(songID string) (int, error) {
	ctx := context.TODO()
	var song Song

	objectID, err := primitive.ObjectIDFromHex(songID)
	if err != nil {
		return 0, errors.New("invalid ID format")
	}

	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$inc": bson.M{"views": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&song)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, errors.New("song not found")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to increment views: %w", err)
	}

	return song.Views, nil
}
