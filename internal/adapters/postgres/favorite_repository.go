package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

// FavoriteRepository - реализация FavoriteRepositoryPort для PostgreSQL.
type FavoriteRepository struct {
	db DBTX
}

func NewFavoriteRepository(db DBTX) (*FavoriteRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	return &FavoriteRepository{db: db}, nil
}

// ListForUser возвращает объявления из избранного, последние добавленные - первыми.
func (r *FavoriteRepository) ListForUser(ctx context.Context, userID int64) ([]domain.FavoriteListing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "FavoriteRepository",
		"method":    "ListForUser",
		"user_id":   userID,
	})

	query := `SELECT ` + listingViewColumns + `, f.created_at ` + listingViewFrom + `
		JOIN favorite f ON f.listing_id = l.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC, f.id DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		repoLogger.Error("Failed to query favorites", err, port.Fields{"query": query})
		return nil, dbError("failed to query favorites", err)
	}
	defer rows.Close()

	favorites := make([]domain.FavoriteListing, 0)
	for rows.Next() {
		var fl domain.FavoriteListing
		if err := scanListingView(rows, &fl.ListingView, &fl.FavoritedAt); err != nil {
			repoLogger.Error("Failed to scan favorite row", err, nil)
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		favorites = append(favorites, fl)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during favorites iteration", err, nil)
		return nil, fmt.Errorf("error during favorites iteration: %w", err)
	}
	return favorites, nil
}

// Add добавляет объявление в избранное. Повторное добавление не считается ошибкой.
func (r *FavoriteRepository) Add(ctx context.Context, userID, listingID int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "FavoriteRepository",
		"method":     "Add",
		"user_id":    userID,
		"listing_id": listingID,
	})

	repoLogger.Debug("Attempting to add to favorites.", nil)
	query := `INSERT INTO favorite (user_id, listing_id) VALUES ($1, $2) ON CONFLICT (user_id, listing_id) DO NOTHING`
	cmdTag, err := r.db.Exec(ctx, query, userID, listingID)
	if err != nil {
		repoLogger.Error("Failed to add favorite", err, port.Fields{"query": query})
		return dbError("failed to add favorite", err)
	}

	if cmdTag.RowsAffected() == 0 {
		repoLogger.Debug("Favorite already exists, operation considered successful.", nil)
	} else {
		repoLogger.Debug("Successfully added to favorites.", nil)
	}
	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID, listingID int64) (*int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "FavoriteRepository",
		"method":     "Remove",
		"user_id":    userID,
		"listing_id": listingID,
	})

	query := `DELETE FROM favorite WHERE user_id = $1 AND listing_id = $2 RETURNING id`
	return returningID(ctx, r.db, repoLogger, "failed to remove favorite", query, userID, listingID)
}
