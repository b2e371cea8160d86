package purchase

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending   = "PENDING"
	StatusCompleted = "COMPLETED"
	StatusDeclined  = "DECLINED"
)

const (
	TypeSong         = "SONG"
	TypeSubscription = "SUBSCRIPTION"
)

type Purchase struct {
	MongoID primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID      string             `json:"id" bson:"-"`
	SongID  string             `json:"songId" bson:"songid"`
	UserID  string             `json:"userId" bson:"userid"`
	Status  string             `json:"status"`
	Type    string             `json:"purchaseType" bson:"type"`
	Amount  int                `json:"amount"`
	Created time.Time          `json:"created"`
}

type Repository interface {
	Create(purchase *Purchase) error
	GetByID(id string) (*Purchase, error)
	GetByUser(userID string) ([]*Purchase, error)
	UpdateStatus(id, status string) (*Purchase, error)
}
