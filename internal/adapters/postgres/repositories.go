package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

// NewRepositories собирает все репозитории поверх одного DBTX (пула или транзакции).
func NewRepositories(db DBTX) (port.Repositories, error) {
	if db == nil {
		return port.Repositories{}, fmt.Errorf("db cannot be nil")
	}

	addresses, _ := NewAddressRepository(db)
	companies, _ := NewCompanyRepository(db)
	users, _ := NewUserRepository(db)
	listings, _ := NewListingRepository(db)
	features, _ := NewFeatureRepository(db)
	dictionaries, _ := NewDictionaryRepository(db)
	images, _ := NewImageRepository(db)
	favorites, _ := NewFavoriteRepository(db)
	messages, _ := NewMessageRepository(db)
	maintenance, _ := NewMaintenanceRepository(db)

	return port.Repositories{
		Addresses:    addresses,
		Companies:    companies,
		Users:        users,
		Listings:     listings,
		Features:     features,
		Dictionaries: dictionaries,
		Images:       images,
		Favorites:    favorites,
		Messages:     messages,
		Maintenance:  maintenance,
	}, nil
}

// UnitOfWork - реализация UnitOfWorkPort: репозитории внутри fn работают в одной транзакции.
type UnitOfWork struct {
	db TxBeginner
}

func NewUnitOfWork(db TxBeginner) (*UnitOfWork, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	return &UnitOfWork{db: db}, nil
}

func (u *UnitOfWork) WithinTransaction(ctx context.Context, fn func(ctx context.Context, repos port.Repositories) error) error {
	logger := contextkeys.LoggerFromContext(ctx)
	uowLogger := logger.WithFields(port.Fields{
		"component": "UnitOfWork",
		"method":    "WithinTransaction",
	})

	uowLogger.Debug("Beginning transaction.", nil)
	// BeginFunc откатывает транзакцию, если fn вернула ошибку, и фиксирует иначе.
	err := pgx.BeginFunc(ctx, u.db, func(tx pgx.Tx) error {
		repos, err := NewRepositories(tx)
		if err != nil {
			return err
		}
		return fn(ctx, repos)
	})
	if err != nil {
		uowLogger.Error("Transaction rolled back", err, nil)
		return err
	}

	uowLogger.Debug("Transaction committed.", nil)
	return nil
}
