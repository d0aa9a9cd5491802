package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

func int64Ptr(v int64) *int64 { return &v }

type mockListingRepo struct {
	mock.Mock
}

func (m *mockListingRepo) List(ctx context.Context) ([]domain.ListingView, error) {
	args := m.Called(ctx)
	listings, _ := args.Get(0).([]domain.ListingView)
	return listings, args.Error(1)
}

func (m *mockListingRepo) GetByID(ctx context.Context, id int64) (*domain.ListingView, error) {
	args := m.Called(ctx, id)
	listing, _ := args.Get(0).(*domain.ListingView)
	return listing, args.Error(1)
}

func (m *mockListingRepo) Create(ctx context.Context, in domain.ListingInput) (int64, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockListingRepo) Update(ctx context.Context, id int64, in domain.ListingInput) (*int64, error) {
	args := m.Called(ctx, id, in)
	updated, _ := args.Get(0).(*int64)
	return updated, args.Error(1)
}

func (m *mockListingRepo) Delete(ctx context.Context, id int64) (*int64, error) {
	args := m.Called(ctx, id)
	deleted, _ := args.Get(0).(*int64)
	return deleted, args.Error(1)
}

func (m *mockListingRepo) UpdatePrice(ctx context.Context, id int64, price float64) (*int64, error) {
	args := m.Called(ctx, id, price)
	updated, _ := args.Get(0).(*int64)
	return updated, args.Error(1)
}

func (m *mockListingRepo) UpdateStatus(ctx context.Context, id int64, statusID int64) (*int64, error) {
	args := m.Called(ctx, id, statusID)
	updated, _ := args.Get(0).(*int64)
	return updated, args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishListingChanged(ctx context.Context, event domain.ListingChangedEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockPublisher) PublishMessageCreated(ctx context.Context, event domain.MessageCreatedEvent) error {
	return m.Called(ctx, event).Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) GetByMail(ctx context.Context, mail string) (*domain.User, error) {
	args := m.Called(ctx, mail)
	user, _ := args.Get(0).(*domain.User)
	return user, args.Error(1)
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, id int64, user domain.User) (*int64, error) {
	args := m.Called(ctx, id, user)
	updated, _ := args.Get(0).(*int64)
	return updated, args.Error(1)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) (*int64, error) {
	args := m.Called(ctx, id)
	deleted, _ := args.Get(0).(*int64)
	return deleted, args.Error(1)
}

func (m *mockUserRepo) GetAgent(ctx context.Context, userID int64) (*domain.RealtorAgent, error) {
	args := m.Called(ctx, userID)
	agent, _ := args.Get(0).(*domain.RealtorAgent)
	return agent, args.Error(1)
}

func (m *mockUserRepo) UpsertAgent(ctx context.Context, userID int64, licenseNumber string) (*domain.RealtorAgent, error) {
	args := m.Called(ctx, userID, licenseNumber)
	agent, _ := args.Get(0).(*domain.RealtorAgent)
	return agent, args.Error(1)
}
