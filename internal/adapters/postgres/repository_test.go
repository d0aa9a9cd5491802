package postgres_adapter

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestNewRepositories_NilDB(t *testing.T) {
	_, err := NewRepositories(nil)
	assert.Error(t, err)

	_, err = NewAddressRepository(nil)
	assert.Error(t, err)
}

func TestAddressRepository_CreateReturnsID(t *testing.T) {
	mock := newMock(t)
	repo, err := NewAddressRepository(mock)
	require.NoError(t, err)

	in := domain.AddressInput{Street: "Storgatan 1", City: "Stockholm", Postcode: "11122", Country: "Sweden"}
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO addresses")).
		WithArgs(in.Street, in.City, in.Postcode, in.Country).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(42)))

	id, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestAddressRepository_GetByIDAbsent(t *testing.T) {
	mock := newMock(t)
	repo, _ := NewAddressRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM addresses WHERE id = $1")).
		WithArgs(int64(999)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "street", "city", "postcode", "country"}))

	addr, err := repo.GetByID(context.Background(), 999)
	assert.NoError(t, err)
	assert.Nil(t, addr)
}

func TestAddressRepository_ListOrdersByID(t *testing.T) {
	mock := newMock(t)
	repo, _ := NewAddressRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("FROM addresses ORDER BY id")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "street", "city", "postcode", "country"}).
			AddRow(int64(1), "Kungsgatan 5", "Uppsala", "75320", "Sweden").
			AddRow(int64(2), "Drottninggatan 9", "Lund", "22350", "Sweden"))

	addresses, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.Equal(t, "Uppsala", addresses[0].City)
	assert.Equal(t, int64(2), addresses[1].ID)
}

func TestAddressRepository_UpdateMissingIsAbsent(t *testing.T) {
	mock := newMock(t)
	repo, _ := NewAddressRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE addresses SET")).
		WithArgs("a", "b", "c", "d", int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	id, err := repo.Update(context.Background(), 7, domain.AddressInput{Street: "a", City: "b", Postcode: "c", Country: "d"})
	assert.NoError(t, err)
	assert.Nil(t, id)
}

func TestListingRepository_UpdatePrice(t *testing.T) {
	mock := newMock(t)
	repo, _ := NewListingRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE listings SET price = $1 WHERE id = $2 RETURNING id")).
		WithArgs(999.0, int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))

	id, err := repo.UpdatePrice(context.Background(), 3, 999)
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, int64(3), *id)
}

func TestListingRepository_DeleteMissingIsAbsent(t *testing.T) {
	mock := newMock(t)
	repo, _ := NewListingRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM listings WHERE id = $1 RETURNING id")).
		WithArgs(int64(404)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	id, err := repo.Delete(context.Background(), 404)
	assert.NoError(t, err)
	assert.Nil(t, id)
}

func TestListingRepository_CreateForeignKeyViolation(t *testing.T) {
	mock := newMock(t)
	repo, _ := NewListingRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO listings")).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "listings_status_id_fkey"})

	_, err := repo.Create(context.Background(), domain.ListingInput{Title: "Villa", StatusID: 99})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	var cerr *domain.ConstraintError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, "listings_status_id_fkey", cerr.Constraint)
}

func TestUserRepository_DuplicateMail(t *testing.T) {
	mock := newMock(t)
	repo, _ := NewUserRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_mail_key"})

	_, err := repo.Create(context.Background(), domain.User{Mail: "anna@moonhem.example", RoleID: 1})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestFeatureRepository_AddToListingIsIdempotent(t *testing.T) {
	mock := newMock(t)
	repo, _ := NewFeatureRepository(mock)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO listing_features")).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO listing_features")).
		WithArgs(int64(1), int64(2)).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	assert.NoError(t, repo.AddToListing(context.Background(), 1, 2))
	assert.NoError(t, repo.AddToListing(context.Background(), 1, 2))
}

func TestMessageRepository_ListForUser(t *testing.T) {
	mock := newMock(t)
	repo, _ := NewMessageRepository(mock)

	newer := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)
	mock.ExpectQuery(regexp.QuoteMeta("WHERE sender_id = $1 OR receiver_id = $1 ORDER BY created_at DESC")).
		WithArgs(int64(5)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "sender_id", "receiver_id", "listing_id", "content", "created_at"}).
			AddRow(int64(2), int64(6), int64(5), int64(1), "Is it still available?", newer).
			AddRow(int64(1), int64(5), int64(6), int64(1), "Hello", older))

	messages, err := repo.ListForUser(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.True(t, messages[0].CreatedAt.After(messages[1].CreatedAt))
	assert.Equal(t, "Hello", messages[1].Content)
}

func TestImageRepository_UnknownOwner(t *testing.T) {
	mock := newMock(t)
	repo, _ := NewImageRepository(mock)

	_, err := repo.List(context.Background(), domain.ImageOwner("company"), 1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMigrator_SwallowsDuplicateObjects(t *testing.T) {
	mock := newMock(t)
	migrator, err := NewMigrator(mock)
	require.NoError(t, err)

	for i := range schemaStatements {
		exp := mock.ExpectExec(".+")
		if i == 0 {
			exp.WillReturnError(&pgconn.PgError{Code: "42P07"})
			continue
		}
		exp.WillReturnResult(pgxmock.NewResult("CREATE", 0))
	}

	assert.NoError(t, migrator.Migrate(context.Background()))
}

func TestMigrator_PropagatesOtherErrors(t *testing.T) {
	mock := newMock(t)
	migrator, _ := NewMigrator(mock)

	mock.ExpectExec(".+").WillReturnError(&pgconn.PgError{Code: "42501"})

	assert.Error(t, migrator.Migrate(context.Background()))
}

func TestUnitOfWork_CommitAndRollback(t *testing.T) {
	mock := newMock(t)
	uow, err := NewUnitOfWork(mock)
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("TRUNCATE TABLE")).WillReturnResult(pgxmock.NewResult("TRUNCATE", 0))
	mock.ExpectCommit()

	err = uow.WithinTransaction(context.Background(), func(ctx context.Context, repos port.Repositories) error {
		return repos.Maintenance.TruncateAll(ctx)
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	mock.ExpectBegin()
	mock.ExpectRollback()

	err = uow.WithinTransaction(context.Background(), func(ctx context.Context, repos port.Repositories) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestDBError_Mapping(t *testing.T) {
	cases := map[string]error{
		"23505": domain.ErrAlreadyExists,
		"23503": domain.ErrInvalidReference,
		"23502": domain.ErrInvalidInput,
		"22P02": domain.ErrInvalidInput,
	}
	for code, want := range cases {
		err := dbError("op", &pgconn.PgError{Code: code})
		assert.ErrorIs(t, err, want, code)
	}

	plain := dbError("op", errors.New("connection refused"))
	assert.NotErrorIs(t, plain, domain.ErrInvalidInput)
	assert.Contains(t, plain.Error(), "connection refused")
}
