package postgres_adapter

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

// Интеграционные тесты запускаются только при заданном TEST_DATABASE_URL.
// База очищается перед каждым тестом.
func setupIntegration(t *testing.T) (context.Context, *DB, port.Repositories) {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	db, err := NewClient(ctx, Config{
		DatabaseURL:      url,
		MaxConns:         4,
		ConnectTimeout:   5 * time.Second,
		AcquireTimeout:   5 * time.Second,
		StatementTimeout: 10 * time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	migrator, err := NewMigrator(db)
	require.NoError(t, err)
	require.NoError(t, migrator.Migrate(ctx))
	// Повторный запуск не должен падать.
	require.NoError(t, migrator.Migrate(ctx))

	repos, err := NewRepositories(db)
	require.NoError(t, err)
	require.NoError(t, repos.Maintenance.TruncateAll(ctx))
	return ctx, db, repos
}

type listingFixture struct {
	addressID int64
	realtorID int64
	typeID    int64
	statusID  int64
}

func seedListingParents(t *testing.T, ctx context.Context, repos port.Repositories) listingFixture {
	t.Helper()
	roleID, err := repos.Dictionaries.CreateRole(ctx, domain.RoleRealtor, nil)
	require.NoError(t, err)
	typeID, err := repos.Dictionaries.CreatePropertyType(ctx, "Villa")
	require.NoError(t, err)
	statusID, err := repos.Dictionaries.CreateStatus(ctx, domain.StatusForSale)
	require.NoError(t, err)
	addressID, err := repos.Addresses.Create(ctx, domain.AddressInput{Street: "Storgatan 1", City: "Stockholm", Postcode: "11122", Country: "Sweden"})
	require.NoError(t, err)
	realtorID, err := repos.Users.Create(ctx, domain.User{
		FirstName: "Anna", Surname: "Berg", Mail: "anna.berg@moonhem.example", PasswordHash: "x", RoleID: roleID,
	})
	require.NoError(t, err)
	return listingFixture{addressID: addressID, realtorID: realtorID, typeID: typeID, statusID: statusID}
}

func (f listingFixture) input(price float64) domain.ListingInput {
	return domain.ListingInput{
		Title: "Bright villa", Description: "Close to the sea", Price: price,
		LivingArea: 120, LotSize: 800, RoomCount: 5, YearBuilt: 1975, FloorNumber: 1, EnergyClass: "C",
		AddressID: f.addressID, PropertyTypeID: f.typeID, RealtorID: f.realtorID, StatusID: f.statusID,
	}
}

func TestIntegration_ListingLifecycle(t *testing.T) {
	ctx, _, repos := setupIntegration(t)
	parents := seedListingParents(t, ctx, repos)

	id, err := repos.Listings.Create(ctx, parents.input(4500000))
	require.NoError(t, err)

	got, err := repos.Listings.GetByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Storgatan 1", *got.Street)
	assert.Equal(t, "Villa", *got.PropertyType)
	assert.Equal(t, domain.StatusForSale, *got.Status)
	assert.False(t, got.CreatedAt.IsZero())

	patched, err := repos.Listings.UpdatePrice(ctx, id, 999)
	require.NoError(t, err)
	require.NotNil(t, patched)

	got, err = repos.Listings.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 999.0, got.Price)

	deleted, err := repos.Listings.Delete(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, deleted)

	got, err = repos.Listings.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestIntegration_MissingIDsAreAbsent(t *testing.T) {
	ctx, _, repos := setupIntegration(t)
	parents := seedListingParents(t, ctx, repos)

	updated, err := repos.Listings.Update(ctx, 424242, parents.input(1))
	require.NoError(t, err)
	assert.Nil(t, updated)

	status, err := repos.Listings.UpdateStatus(ctx, 424242, parents.statusID)
	require.NoError(t, err)
	assert.Nil(t, status)

	deleted, err := repos.Features.Delete(ctx, 424242)
	require.NoError(t, err)
	assert.Nil(t, deleted)

	listings, err := repos.Listings.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)
}

func TestIntegration_DuplicateMail(t *testing.T) {
	ctx, _, repos := setupIntegration(t)
	parents := seedListingParents(t, ctx, repos)

	user, err := repos.Users.GetByID(ctx, parents.realtorID)
	require.NoError(t, err)

	_, err = repos.Users.Create(ctx, *user)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestIntegration_DeleteListingCascades(t *testing.T) {
	ctx, _, repos := setupIntegration(t)
	parents := seedListingParents(t, ctx, repos)

	listingID, err := repos.Listings.Create(ctx, parents.input(3000000))
	require.NoError(t, err)
	featureID, err := repos.Features.Create(ctx, "Sauna")
	require.NoError(t, err)

	// Повторная связь не является ошибкой и не дублирует строку.
	require.NoError(t, repos.Features.AddToListing(ctx, listingID, featureID))
	require.NoError(t, repos.Features.AddToListing(ctx, listingID, featureID))
	linked, err := repos.Features.ListForListing(ctx, listingID)
	require.NoError(t, err)
	assert.Len(t, linked, 1)

	_, err = repos.Images.Create(ctx, domain.ImageOwnerListing, listingID, domain.ImageInput{URL: "https://images.example/1.jpg"})
	require.NoError(t, err)
	require.NoError(t, repos.Favorites.Add(ctx, parents.realtorID, listingID))
	require.NoError(t, repos.Favorites.Add(ctx, parents.realtorID, listingID))

	_, err = repos.Listings.Delete(ctx, listingID)
	require.NoError(t, err)

	images, err := repos.Images.List(ctx, domain.ImageOwnerListing, listingID)
	require.NoError(t, err)
	assert.Empty(t, images)

	linked, err = repos.Features.ListForListing(ctx, listingID)
	require.NoError(t, err)
	assert.Empty(t, linked)

	favorites, err := repos.Favorites.ListForUser(ctx, parents.realtorID)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	addr, err := repos.Addresses.GetByID(ctx, parents.addressID)
	require.NoError(t, err)
	assert.NotNil(t, addr, "address must survive listing deletion")
}

func TestIntegration_MessagesNewestFirst(t *testing.T) {
	ctx, _, repos := setupIntegration(t)
	parents := seedListingParents(t, ctx, repos)

	listingID, err := repos.Listings.Create(ctx, parents.input(2000000))
	require.NoError(t, err)
	roles, err := repos.Dictionaries.ListRoles(ctx)
	require.NoError(t, err)
	buyerID, err := repos.Users.Create(ctx, domain.User{
		FirstName: "Erik", Surname: "Lind", Mail: "erik.lind@moonhem.example", PasswordHash: "x", RoleID: roles[0].ID,
	})
	require.NoError(t, err)

	for _, content := range []string{"Hello", "Is it available?", "Can I visit on Sunday?"} {
		msg, err := repos.Messages.Create(ctx, domain.MessageInput{
			SenderID: buyerID, ReceiverID: parents.realtorID, ListingID: listingID, Content: content,
		})
		require.NoError(t, err)
		assert.NotZero(t, msg.ID)
	}

	messages, err := repos.Messages.ListForListing(ctx, listingID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	for i := 1; i < len(messages); i++ {
		assert.False(t, messages[i].CreatedAt.After(messages[i-1].CreatedAt))
	}

	forRealtor, err := repos.Messages.ListForUser(ctx, parents.realtorID)
	require.NoError(t, err)
	assert.Len(t, forRealtor, 3)
}

func TestIntegration_UnitOfWorkRollsBack(t *testing.T) {
	ctx, db, repos := setupIntegration(t)
	uow, err := NewUnitOfWork(db)
	require.NoError(t, err)

	err = uow.WithinTransaction(ctx, func(ctx context.Context, tx port.Repositories) error {
		if _, err := tx.Features.Create(ctx, "Garage"); err != nil {
			return err
		}
		_, err := tx.Features.Create(ctx, "Garage")
		return err
	})
	require.ErrorIs(t, err, domain.ErrAlreadyExists)

	features, err := repos.Features.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, features)
}
