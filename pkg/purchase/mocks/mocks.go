package mocks

import (
	"github.com/stretchr/testify/mock"

	"noteshop/pkg/purchase"
)

type ServicePurchase struct {
	mock.Mock
}

func (m *ServicePurchase) Buy(userID, songID, purchaseType string) (*purchase.Purchase, error) {
	args := m.Called(userID, songID, purchaseType)
	if p := args.Get(0); p != nil {
		return p.(*purchase.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ServicePurchase) GetByUser(userID string) ([]*purchase.Purchase, error) {
	args := m.Called(userID)
	if p := args.Get(0); p != nil {
		return p.([]*purchase.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ServicePurchase) Complete(purchaseID string) (*purchase.Purchase, error) {
	args := m.Called(purchaseID)
	if p := args.Get(0); p != nil {
		return p.(*purchase.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ServicePurchase) Decline(purchaseID string) (*purchase.Purchase, error) {
	args := m.Called(purchaseID)
	if p := args.Get(0); p != nil {
		return p.(*purchase.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

type RepoPurchase struct {
	mock.Mock
}

func (m *RepoPurchase) Create(p *purchase.Purchase) error {
	return m.Called(p).Error(0)
}

func (m *RepoPurchase) GetByID(id string) (*purchase.Purchase, error) {
	args := m.Called(id)
	if p := args.Get(0); p != nil {
		return p.(*purchase.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepoPurchase) GetByUser(userID string) ([]*purchase.Purchase, error) {
	args := m.Called(userID)
	if p := args.Get(0); p != nil {
		return p.([]*purchase.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RepoPurchase) UpdateStatus(id, status string) (*purchase.Purchase, error) {
	args := m.Called(id, status)
	if p := args.Get(0); p != nil {
		return p.(*purchase.Purchase), args.Error(1)
	}
	return nil, args.Error(1)
}
