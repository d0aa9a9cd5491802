package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

func TestGetListingByID_AbsentIsNotFound(t *testing.T) {
	repo := &mockListingRepo{}
	repo.On("GetByID", mock.Anything, int64(42)).Return(nil, nil)

	_, err := NewGetListingByIDUseCase(repo).Execute(context.Background(), 42)

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	repo.AssertExpectations(t)
}

func TestCreateListing_PublishesCreatedEvent(t *testing.T) {
	repo := &mockListingRepo{}
	publisher := &mockPublisher{}
	in := domain.ListingInput{Title: "Villa", Price: 5000000, StatusID: 1, RealtorID: 3}

	repo.On("Create", mock.Anything, in).Return(int64(7), nil)
	publisher.On("PublishListingChanged", mock.Anything, mock.MatchedBy(func(e domain.ListingChangedEvent) bool {
		return e.Type == domain.ListingCreated && e.ListingID == 7 &&
			e.Price != nil && *e.Price == 5000000 && !e.OccurredAt.IsZero()
	})).Return(nil)

	id, err := NewCreateListingUseCase(repo, publisher).Execute(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	publisher.AssertExpectations(t)
}

func TestCreateListing_PublishFailureDoesNotFailRequest(t *testing.T) {
	repo := &mockListingRepo{}
	publisher := &mockPublisher{}
	repo.On("Create", mock.Anything, mock.Anything).Return(int64(1), nil)
	publisher.On("PublishListingChanged", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	id, err := NewCreateListingUseCase(repo, publisher).Execute(context.Background(), domain.ListingInput{})

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestCreateListing_ConstraintErrorPassesThrough(t *testing.T) {
	repo := &mockListingRepo{}
	publisher := &mockPublisher{}
	constraintErr := &domain.ConstraintError{Kind: domain.ErrInvalidReference, Constraint: "listings_address_id_fkey"}
	repo.On("Create", mock.Anything, mock.Anything).Return(int64(0), constraintErr)

	_, err := NewCreateListingUseCase(repo, publisher).Execute(context.Background(), domain.ListingInput{AddressID: 999})

	assert.ErrorIs(t, err, domain.ErrInvalidReference)
	publisher.AssertNotCalled(t, "PublishListingChanged", mock.Anything, mock.Anything)
}

func TestUpdateListingPrice(t *testing.T) {
	t.Run("negative price is rejected before the repository", func(t *testing.T) {
		repo := &mockListingRepo{}
		err := NewUpdateListingPriceUseCase(repo, nil).Execute(context.Background(), 1, -5)

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		repo.AssertNotCalled(t, "UpdatePrice", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing listing", func(t *testing.T) {
		repo := &mockListingRepo{}
		repo.On("UpdatePrice", mock.Anything, int64(9), 999.0).Return(nil, nil)

		err := NewUpdateListingPriceUseCase(repo, nil).Execute(context.Background(), 9, 999)
		assert.ErrorIs(t, err, domain.ErrListingNotFound)
	})

	t.Run("publishes price change", func(t *testing.T) {
		repo := &mockListingRepo{}
		publisher := &mockPublisher{}
		repo.On("UpdatePrice", mock.Anything, int64(3), 999.0).Return(int64Ptr(3), nil)
		publisher.On("PublishListingChanged", mock.Anything, mock.MatchedBy(func(e domain.ListingChangedEvent) bool {
			return e.Type == domain.ListingPriceChanged && *e.Price == 999 && e.StatusID == nil
		})).Return(nil)

		require.NoError(t, NewUpdateListingPriceUseCase(repo, publisher).Execute(context.Background(), 3, 999))
		publisher.AssertExpectations(t)
	})
}

func TestUpdateListingStatus_MissingListing(t *testing.T) {
	repo := &mockListingRepo{}
	repo.On("UpdateStatus", mock.Anything, int64(5), int64(2)).Return(nil, nil)

	err := NewUpdateListingStatusUseCase(repo, nil).Execute(context.Background(), 5, 2)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestDeleteListing(t *testing.T) {
	repo := &mockListingRepo{}
	publisher := &mockPublisher{}
	repo.On("Delete", mock.Anything, int64(4)).Return(int64Ptr(4), nil).Once()
	repo.On("Delete", mock.Anything, int64(4)).Return(nil, nil).Once()
	publisher.On("PublishListingChanged", mock.Anything, mock.MatchedBy(func(e domain.ListingChangedEvent) bool {
		return e.Type == domain.ListingDeleted && e.ListingID == 4
	})).Return(nil).Once()

	uc := NewDeleteListingUseCase(repo, publisher)
	require.NoError(t, uc.Execute(context.Background(), 4))
	assert.ErrorIs(t, uc.Execute(context.Background(), 4), domain.ErrListingNotFound)
	publisher.AssertExpectations(t)
}
