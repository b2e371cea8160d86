package mocks

import (
	"github.com/stretchr/testify/mock"

	"noteshop/pkg/song"
)

type ServiceSong struct {
	mock.Mock
}

func (m *ServiceSong) Create(s *song.Song) error {
	return m.Called(s).Error(0)
}

func (m *ServiceSong) GetByID(id string) (*song.Song, error) {
	args := m.Called(id)
	if s := args.Get(0); s != nil {
		return s.(*song.Song), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ServiceSong) GetPage(page int, category string) (*song.Page, error) {
	args := m.Called(page, category)
	if p := args.Get(0); p != nil {
		return p.(*song.Page), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ServiceSong) Update(s *song.Song) error {
	return m.Called(s).Error(0)
}

func (m *ServiceSong) Delete(songID string) error {
	return m.Called(songID).Error(0)
}

func (m *ServiceSong) AddView(songID string) (int, error) {
	args := m.Called(songID)
	return args.Int(0), args.Error(1)
}

type RepoSong struct {
	mock.Mock
}

func (m *RepoSong) Create(s *song.Song) error {
	return m.Called(s).Error(0)
}

func (m *RepoSong) GetByID(id string) (*song.Song, error) {
	args := m.Called(id)
	if s := args.Get(0); s != nil {
		return s.(*song.Song), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepoSong) GetPage(page int, category string) (*song.Page, error) {
	args := m.Called(page, category)
	if p := args.Get(0); p != nil {
		return p.(*song.Page), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepoSong) Update(s *song.Song) error {
	return m.Called(s).Error(0)
}

func (m *RepoSong) Delete(songID string) error {
	return m.Called(songID).Error(0)
}

func (m *RepoSong) IncrementViews(songID string) (int, error) {
	args := m.Called(songID)
	return args.Int(0), args.Error(1)
}
