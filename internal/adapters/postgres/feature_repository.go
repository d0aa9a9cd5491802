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

// FeatureRepository работает с таблицей features и связью listing_features.
type FeatureRepository struct {
	db DBTX
}

func NewFeatureRepository(db DBTX) (*FeatureRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	return &FeatureRepository{db: db}, nil
}

func (r *FeatureRepository) List(ctx context.Context) ([]domain.Feature, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "FeatureRepository",
		"method":    "List",
	})

	query := `SELECT id, name FROM features ORDER BY id`
	return r.queryFeatures(ctx, repoLogger, query)
}

func (r *FeatureRepository) GetByID(ctx context.Context, id int64) (*domain.Feature, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "FeatureRepository",
		"method":     "GetByID",
		"feature_id": id,
	})

	query := `SELECT id, name FROM features WHERE id = $1`
	var f domain.Feature
	if err := r.db.QueryRow(ctx, query, id).Scan(&f.ID, &f.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			repoLogger.Debug("Feature not found.", nil)
			return nil, nil
		}
		repoLogger.Error("Failed to get feature", err, port.Fields{"query": query})
		return nil, dbError("failed to get feature", err)
	}
	return &f, nil
}

func (r *FeatureRepository) Create(ctx context.Context, name string) (int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "FeatureRepository",
		"method":    "Create",
		"name":      name,
	})

	query := `INSERT INTO features (name) VALUES ($1) RETURNING id`
	var id int64
	if err := r.db.QueryRow(ctx, query, name).Scan(&id); err != nil {
		repoLogger.Error("Failed to create feature", err, port.Fields{"query": query})
		return 0, dbError("failed to create feature", err)
	}
	return id, nil
}

func (r *FeatureRepository) Update(ctx context.Context, id int64, name string) (*int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "FeatureRepository",
		"method":     "Update",
		"feature_id": id,
	})

	query := `UPDATE features SET name = $1 WHERE id = $2 RETURNING id`
	return returningID(ctx, r.db, repoLogger, "failed to update feature", query, name, id)
}

func (r *FeatureRepository) Delete(ctx context.Context, id int64) (*int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "FeatureRepository",
		"method":     "Delete",
		"feature_id": id,
	})

	query := `DELETE FROM features WHERE id = $1 RETURNING id`
	return returningID(ctx, r.db, repoLogger, "failed to delete feature", query, id)
}

func (r *FeatureRepository) ListForListing(ctx context.Context, listingID int64) ([]domain.Feature, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "FeatureRepository",
		"method":     "ListForListing",
		"listing_id": listingID,
	})

	query := `SELECT f.id, f.name FROM features f
		JOIN listing_features lf ON lf.feature_id = f.id
		WHERE lf.listing_id = $1
		ORDER BY f.id`
	return r.queryFeatures(ctx, repoLogger, query, listingID)
}

// AddToListing идемпотентен: повторная связь игнорируется через ON CONFLICT DO NOTHING.
func (r *FeatureRepository) AddToListing(ctx context.Context, listingID, featureID int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "FeatureRepository",
		"method":     "AddToListing",
		"listing_id": listingID,
		"feature_id": featureID,
	})

	query := `INSERT INTO listing_features (listing_id, feature_id) VALUES ($1, $2)
		ON CONFLICT (listing_id, feature_id) DO NOTHING`
	cmdTag, err := r.db.Exec(ctx, query, listingID, featureID)
	if err != nil {
		repoLogger.Error("Failed to link feature to listing", err, port.Fields{"query": query})
		return dbError("failed to link feature to listing", err)
	}

	if cmdTag.RowsAffected() == 0 {
		repoLogger.Debug("Feature already linked, nothing to do.", nil)
	}
	return nil
}

func (r *FeatureRepository) RemoveFromListing(ctx context.Context, listingID, featureID int64) (*int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "FeatureRepository",
		"method":     "RemoveFromListing",
		"listing_id": listingID,
		"feature_id": featureID,
	})

	query := `DELETE FROM listing_features WHERE listing_id = $1 AND feature_id = $2 RETURNING feature_id`
	return returningID(ctx, r.db, repoLogger, "failed to unlink feature from listing", query, listingID, featureID)
}

func (r *FeatureRepository) queryFeatures(ctx context.Context, repoLogger port.LoggerPort, query string, args ...any) ([]domain.Feature, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query features", err, port.Fields{"query": query})
		return nil, dbError("failed to query features", err)
	}
	defer rows.Close()

	features := make([]domain.Feature, 0)
	for rows.Next() {
		var f domain.Feature
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			repoLogger.Error("Failed to scan feature row", err, nil)
			return nil, fmt.Errorf("failed to scan feature: %w", err)
		}
		features = append(features, f)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during features iteration", err, nil)
		return nil, fmt.Errorf("error during features iteration: %w", err)
	}
	return features, nil
}
