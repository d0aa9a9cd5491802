package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
)

func seededStore(t *testing.T) (*memStore, int64, int64, int64) {
	t.Helper()
	store := newMemStore()
	_, err := NewLoadFixturesUseCase(store).Execute(context.Background(), originalFixtures())
	require.NoError(t, err)

	var realtorID, buyerID, listingID int64
	for id, u := range store.users {
		if u.Mail == "erik@besthem.se" {
			realtorID = id
		} else {
			buyerID = id
		}
	}
	for id := range store.listings {
		listingID = id
	}
	return store, realtorID, buyerID, listingID
}

func TestListingFeatures(t *testing.T) {
	store, _, _, listingID := seededStore(t)
	repos := store.repositories()

	_, err := NewGetListingFeaturesUseCase(repos.Listings, repos.Features).Execute(context.Background(), 12345)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)

	features, err := NewGetListingFeaturesUseCase(repos.Listings, repos.Features).Execute(context.Background(), listingID)
	require.NoError(t, err)
	require.Len(t, features, 1)
	assert.Equal(t, "Fireplace", features[0].Name)

	add := NewAddListingFeatureUseCase(repos.Features)
	require.NoError(t, add.Execute(context.Background(), listingID, features[0].ID))
	require.NoError(t, add.Execute(context.Background(), listingID, features[0].ID))
	features, _ = repos.Features.ListForListing(context.Background(), listingID)
	assert.Len(t, features, 1, "adding the same feature twice keeps one association")

	remove := NewRemoveListingFeatureUseCase(repos.Features)
	require.NoError(t, remove.Execute(context.Background(), listingID, features[0].ID))
	assert.ErrorIs(t, remove.Execute(context.Background(), listingID, features[0].ID), domain.ErrFeatureNotFound)
}

func TestFavorites(t *testing.T) {
	store, _, buyerID, listingID := seededStore(t)
	repos := store.repositories()

	_, err := NewGetUserFavoritesUseCase(repos.Favorites, repos.Users).Execute(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	add := NewAddToFavoritesUseCase(repos.Favorites)
	require.NoError(t, add.Execute(context.Background(), buyerID, listingID))
	require.NoError(t, add.Execute(context.Background(), buyerID, listingID))

	favorites, err := NewGetUserFavoritesUseCase(repos.Favorites, repos.Users).Execute(context.Background(), buyerID)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, listingID, favorites[0].ID)

	remove := NewRemoveFromFavoritesUseCase(repos.Favorites)
	require.NoError(t, remove.Execute(context.Background(), buyerID, listingID))
	assert.ErrorIs(t, remove.Execute(context.Background(), buyerID, listingID), domain.ErrFavoriteNotFound)
}

func TestImages(t *testing.T) {
	store, _, buyerID, listingID := seededStore(t)
	repos := store.repositories()
	list := NewGetImagesUseCase(repos.Images, repos.Listings, repos.Users)

	_, err := list.Execute(context.Background(), domain.ImageOwnerListing, 4242)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
	_, err = list.Execute(context.Background(), domain.ImageOwnerUser, 4242)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = list.Execute(context.Background(), domain.ImageOwner("company"), 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	images, err := list.Execute(context.Background(), domain.ImageOwnerListing, listingID)
	require.NoError(t, err)
	assert.Len(t, images, 1)

	add := NewAddImageUseCase(repos.Images)
	_, err = add.Execute(context.Background(), domain.ImageOwnerUser, buyerID, domain.ImageInput{URL: "not a url"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	img, err := add.Execute(context.Background(), domain.ImageOwnerUser, buyerID, domain.ImageInput{URL: "https://cdn.example.com/a.jpg"})
	require.NoError(t, err)

	del := NewDeleteImageUseCase(repos.Images)
	require.NoError(t, del.Execute(context.Background(), domain.ImageOwnerUser, img.ID))
	assert.ErrorIs(t, del.Execute(context.Background(), domain.ImageOwnerUser, img.ID), domain.ErrImageNotFound)
}

func TestSendMessage_PublishesAndListsNewestFirst(t *testing.T) {
	store, realtorID, buyerID, listingID := seededStore(t)
	repos := store.repositories()
	publisher := &mockPublisher{}
	publisher.On("PublishMessageCreated", mock.Anything, mock.MatchedBy(func(e domain.MessageCreatedEvent) bool {
		return e.ListingID == listingID && e.ReceiverID == realtorID
	})).Return(nil).Twice()

	send := NewSendMessageUseCase(repos.Messages, publisher)
	_, err := send.Execute(context.Background(), domain.MessageInput{
		SenderID: buyerID, ReceiverID: realtorID, ListingID: listingID, Content: "Is it still available?",
	})
	require.NoError(t, err)
	second, err := send.Execute(context.Background(), domain.MessageInput{
		SenderID: buyerID, ReceiverID: realtorID, ListingID: listingID, Content: "Can I visit on Sunday?",
	})
	require.NoError(t, err)

	_, err = send.Execute(context.Background(), domain.MessageInput{SenderID: buyerID, ReceiverID: realtorID, ListingID: listingID, Content: "   "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	byListing, err := NewGetListingMessagesUseCase(repos.Messages).Execute(context.Background(), listingID)
	require.NoError(t, err)
	require.Len(t, byListing, 2)
	assert.Equal(t, second.ID, byListing[0].ID)

	byUser, err := NewGetUserMessagesUseCase(repos.Messages).Execute(context.Background(), realtorID)
	require.NoError(t, err)
	assert.Len(t, byUser, 2)
	publisher.AssertExpectations(t)
}
