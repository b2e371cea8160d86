package song

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PerPage is the fixed catalog page size.
const PerPage = 12

type Song struct {
	MongoID  primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID       string             `json:"id" bson:"-"`
	Title    string             `json:"title"`
	Artist   string             `json:"artist"`
	Category string             `json:"category"`
	Price    int                `json:"price"`
	Premium  bool               `json:"premium"`
	Views    int                `json:"views"`
	ScoreURL string             `json:"scoreUrl,omitempty" bson:"scoreurl,omitempty"`
	VideoURL string             `json:"videoUrl,omitempty" bson:"videourl,omitempty"`
	Created  time.Time          `json:"created"`
}

type Pagination struct {
	Page    int  `json:"page"`
	HasMore bool `json:"hasMore"`
}

type Page struct {
	Items      []*Song    `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type Repository interface {
	Create(song *Song) error
	GetByID(id string) (*Song, error)
	GetPage(page int, category string) (*Page, error)
	Update(song *Song) error
	Delete(songID string) error
	IncrementViews(songID string) (int, error)
}
