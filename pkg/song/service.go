package song

import (
	"errors"
	"time"
)

type ServiceSong interface {
	Create(song *Song) error
	GetByID(id string) (*Song, error)
	GetPage(page int, category string) (*Page, error)
	Update(song *Song) error
	Delete(songID string) error
	AddView(songID string) (int, error)
}

type SongService struct {
	Repo Repository
}

func NewService(repo Repository) *SongService {
	return &SongService{Repo: repo}
}

func (s *SongService) Create(song *Song) error {
	if song.Title == "" || song.Artist == "" {
		return errors.New("missing title or artist")
	}

	song.Views = 0
	song.Created = time.Now()

	return s.Repo.Create(song)
}

func (s *SongService) GetByID(id string) (*Song, error) {
	return s.Repo.GetByID(id)
}

func (s *SongService) GetPage(page int, category string) (*Page, error) {
	return s.Repo.GetPage(page, category)
}

func (s *SongService) Update(song *Song) error {
	if song.ID == "" {
		return errors.New("missing song id")
	}
	return s.Repo.Update(song)
}

func (s *SongService) Delete(songID string) error {
	return s.Repo.Delete(songID)
}

func (s *SongService) AddView(songID string) (int, error) {
	return s.Repo.IncrementViews(songID)
}
