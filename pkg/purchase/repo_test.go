package purchase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"noteshop/pkg/purchase"
)

func purchaseDoc(userID, status string) bson.D {
	return bson.D{
		{Key: "_id", Value: primitive.NewObjectID()},
		{Key: "songid", Value: "607f1f77bcf86cd799439011"},
		{Key: "userid", Value: userID},
		{Key: "status", Value: status},
		{Key: "type", Value: purchase.TypeSong},
		{Key: "amount", Value: 499},
		{Key: "created", Value: time.Now()},
	}
}

func TestGetByUserRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		docs := []bson.D{
			purchaseDoc("user123", purchase.StatusCompleted),
			purchaseDoc("user123", purchase.StatusPending),
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "noteshop.purchases", mtest.FirstBatch, docs...))

		repo := purchase.NewMongoRepo(mt.DB)
		purchases, err := repo.GetByUser("user123")

		assert.NoError(t, err)
		assert.Len(t, purchases, 2)
		assert.Equal(t, "user123", purchases[0].UserID)
		assert.NotEmpty(t, purchases[0].ID)
	})

	mt.Run("mongo Find error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    123,
			Message: "some error",
		}))

		repo := purchase.NewMongoRepo(mt.DB)
		purchases, err := repo.GetByUser("user123")

		assert.Error(t, err)
		assert.Nil(t, purchases)
	})
}

func TestUpdateStatusRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("completes a pending purchase", func(mt *mtest.T) {
		updated := purchaseDoc("user123", purchase.StatusCompleted)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: updated}))

		repo := purchase.NewMongoRepo(mt.DB)
		got, err := repo.UpdateStatus("607f1f77bcf86cd799439011", purchase.StatusCompleted)

		assert.NoError(t, err)
		assert.Equal(t, purchase.StatusCompleted, got.Status)
	})

	mt.Run("no pending purchase", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		repo := purchase.NewMongoRepo(mt.DB)
		got, err := repo.UpdateStatus("607f1f77bcf86cd799439011", purchase.StatusCompleted)

		assert.Nil(t, got)
		assert.EqualError(t, err, "pending purchase not found")
	})

	mt.Run("invalid id format", func(mt *mtest.T) {
		repo := purchase.NewMongoRepo(mt.DB)

		got, err := repo.UpdateStatus("oops", purchase.StatusCompleted)

		assert.Nil(t, got)
		assert.EqualError(t, err, "invalid ID format")
	})
}
