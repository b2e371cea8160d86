package purchase

import (
	"errors"
	"time"

	"noteshop/pkg/song"
)

type ServicePurchase interface {
	Buy(userID, songID, purchaseType string) (*Purchase, error)
	GetByUser(userID string) ([]*Purchase, error)
	Complete(purchaseID string) (*Purchase, error)
	Decline(purchaseID string) (*Purchase, error)
}

type PurchaseService struct {
	Repo  Repository
	Songs song.Repository
}

func NewService(repo Repository, songs song.Repository) *PurchaseService {
	return &PurchaseService{Repo: repo, Songs: songs}
}

func (s *PurchaseService) Buy(userID, songID, purchaseType string) (*Purchase, error) {
	if userID == "" {
		return nil, errors.New("missing user id")
	}
	if purchaseType != TypeSong && purchaseType != TypeSubscription {
		return nil, errors.New("invalid purchase type")
	}

	track, err := s.Songs.GetByID(songID)
	if err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByUser(userID)
	if err == nil && HasAccess(songID, existing) {
		return nil, errors.New("song already purchased")
	}

	purchase := &Purchase{
		SongID:  track.ID,
		UserID:  userID,
		Status:  StatusPending,
		Type:    purchaseType,
		Amount:  track.Price,
		Created: time.Now(),
	}

	if err := s.Repo.Create(purchase); err != nil {
		return nil, err
	}

	return purchase, nil
}

func (s *PurchaseService) GetByUser(userID string) ([]*Purchase, error) {
	return s.Repo.GetByUser(userID)
}

func (s *PurchaseService) Complete(purchaseID string) (*Purchase, error) {
	return s.Repo.UpdateStatus(purchaseID, StatusCompleted)
}

func (s *PurchaseService) Decline(purchaseID string) (*Purchase, error) {
	return s.Repo.UpdateStatus(purchaseID, StatusDeclined)
}
