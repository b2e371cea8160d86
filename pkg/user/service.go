package user

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"noteshop/pkg/claims"
	"noteshop/pkg/generator"
	"noteshop/pkg/session"
)

type RegisterForm struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ServiceInterface interface {
	Register(form RegisterForm) (*User, error)
	Login(username, password string) (*User, error)
	Logout(userID string) error
}

type Service struct {
	Repo    Repository
	Session session.Repository
}

func NewService(repo Repository, session session.Repository) *Service {
	return &Service{Repo: repo, Session: session}
}

func (s *Service) Register(form RegisterForm) (*User, error) {
	if form.Username == "" || form.Email == "" || form.Password == "" {
		return nil, errors.New("missing required fields")
	}

	exist, err := s.Repo.FindByUsername(form.Username)
	if exist != nil && err == nil {
		return nil, errors.New("user already exists")
	}
	exist, err = s.Repo.FindByEmail(form.Email)
	if exist != nil && err == nil {
		return nil, errors.New("email already taken")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %s", err)
	}

	userID, err := generator.GenerateRandomID(24)
	if err != nil {
		return nil, fmt.Errorf("UserID gen error: %s", err)
	}

	user := &User{
		ID:       userID,
		Username: form.Username,
		Name:     form.Name,
		Email:    form.Email,
		Password: string(hashedPassword),
		Role:     claims.RoleRegular,
	}

	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}

	if err := s.createSession(user.ID); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) Login(username, password string) (*User, error) {
	user, err := s.Repo.FindByUsername(username)
	if err != nil {
		return nil, errors.New("user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	if err := s.createSession(user.ID); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *Service) Logout(userID string) error {
	return s.Session.Invalidate(userID)
}

func (s *Service) createSession(userID string) error {
	sessionID, err := generator.GenerateRandomID(24)
	if err != nil {
		return fmt.Errorf("SessionID gen error: %s", err)
	}
	if _, err := s.Session.Create(userID, sessionID); err != nil {
		return errors.New("failed to create session")
	}
	return nil
}
