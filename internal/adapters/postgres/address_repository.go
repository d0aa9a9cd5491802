package postgres_adapter

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

// AddressRepository - реализация AddressRepositoryPort для PostgreSQL.
type AddressRepository struct {
	db DBTX
}

func NewAddressRepository(db DBTX) (*AddressRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	return &AddressRepository{db: db}, nil
}

func (r *AddressRepository) List(ctx context.Context) ([]domain.Address, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "AddressRepository",
		"method":    "List",
	})

	query := `SELECT id, street, city, postcode, country FROM addresses ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		repoLogger.Error("Failed to query addresses", err, port.Fields{"query": query})
		return nil, dbError("failed to query addresses", err)
	}
	defer rows.Close()

	addresses := make([]domain.Address, 0)
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.Street, &a.City, &a.Postcode, &a.Country); err != nil {
			repoLogger.Error("Failed to scan address row", err, nil)
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addresses = append(addresses, a)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during addresses iteration", err, nil)
		return nil, fmt.Errorf("error during addresses iteration: %w", err)
	}

	repoLogger.Debug("Addresses listed.", port.Fields{"count": len(addresses)})
	return addresses, nil
}

// GetByID возвращает (nil, nil), если адрес не найден.
func (r *AddressRepository) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "AddressRepository",
		"method":     "GetByID",
		"address_id": id,
	})

	query := `SELECT id, street, city, postcode, country FROM addresses WHERE id = $1`
	var a domain.Address
	err := r.db.QueryRow(ctx, query, id).Scan(&a.ID, &a.Street, &a.City, &a.Postcode, &a.Country)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Debug("Address not found.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to get address", err, port.Fields{"query": query})
		return nil, dbError("failed to get address", err)
	}
	return &a, nil
}

func (r *AddressRepository) Create(ctx context.Context, in domain.AddressInput) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "AddressRepository",
		"method":    "Create",
	})

	query := `INSERT INTO addresses (street, city, postcode, country) VALUES ($1, $2, $3, $4) RETURNING id`
	var id int64
	if err := r.db.QueryRow(ctx, query, in.Street, in.City, in.Postcode, in.Country).Scan(&id); err != nil {
		repoLogger.Error("Failed to create address", err, port.Fields{"query": query})
		return 0, dbError("failed to create address", err)
	}

	repoLogger.Debug("Address created.", port.Fields{"address_id": id})
	return id, nil
}

func (r *AddressRepository) Update(ctx context.Context, id int64, in domain.AddressInput) (*int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "AddressRepository",
		"method":     "Update",
		"address_id": id,
	})

	query := `UPDATE addresses SET street = $1, city = $2, postcode = $3, country = $4 WHERE id = $5 RETURNING id`
	return returningID(ctx, r.db, repoLogger, "failed to update address", query,
		in.Street, in.City, in.Postcode, in.Country, id)
}

func (r *AddressRepository) Delete(ctx context.Context, id int64) (*int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "AddressRepository",
		"method":     "Delete",
		"address_id": id,
	})

	query := `DELETE FROM addresses WHERE id = $1 RETURNING id`
	return returningID(ctx, r.db, repoLogger, "failed to delete address", query, id)
}
