package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

// ImageRepository обслуживает listing_images и user_images. Таблицы устроены одинаково,
// отличаются только именем и колонкой владельца.
type ImageRepository struct {
	db DBTX
}

func NewImageRepository(db DBTX) (*ImageRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	return &ImageRepository{db: db}, nil
}

type imageTable struct {
	name        string
	ownerColumn string
}

func imageTableFor(owner domain.ImageOwner) (imageTable, error) {
	switch owner {
	case domain.ImageOwnerListing:
		return imageTable{name: "listing_images", ownerColumn: "listing_id"}, nil
	case domain.ImageOwnerUser:
		return imageTable{name: "user_images", ownerColumn: "user_id"}, nil
	default:
		return imageTable{}, fmt.Errorf("unknown image owner %q: %w", owner, domain.ErrInvalidInput)
	}
}

// List возвращает изображения владельца в порядке загрузки.
func (r *ImageRepository) List(ctx context.Context, owner domain.ImageOwner, ownerID int64) ([]domain.Image, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ImageRepository",
		"method":    "List",
		"owner":     string(owner),
		"owner_id":  ownerID,
	})

	table, err := imageTableFor(owner)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT id, %[2]s, caption, url, created_at FROM %[1]s WHERE %[2]s = $1 ORDER BY created_at, id`,
		table.name, table.ownerColumn)
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		repoLogger.Error("Failed to query images", err, port.Fields{"query": query})
		return nil, dbError("failed to query images", err)
	}
	defer rows.Close()

	images := make([]domain.Image, 0)
	for rows.Next() {
		var img domain.Image
		if err := rows.Scan(&img.ID, &img.OwnerID, &img.Caption, &img.URL, &img.CreatedAt); err != nil {
			repoLogger.Error("Failed to scan image row", err, nil)
			return nil, fmt.Errorf("failed to scan image: %w", err)
		}
		images = append(images, img)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during images iteration: %w", err)
	}
	return images, nil
}

func (r *ImageRepository) Create(ctx context.Context, owner domain.ImageOwner, ownerID int64, in domain.ImageInput) (*domain.Image, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ImageRepository",
		"method":    "Create",
		"owner":     string(owner),
		"owner_id":  ownerID,
	})

	table, err := imageTableFor(owner)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`INSERT INTO %[1]s (%[2]s, caption, url) VALUES ($1, $2, $3)
		RETURNING id, %[2]s, caption, url, created_at`, table.name, table.ownerColumn)
	var img domain.Image
	err = r.db.QueryRow(ctx, query, ownerID, in.Caption, in.URL).Scan(&img.ID, &img.OwnerID, &img.Caption, &img.URL, &img.CreatedAt)
	if err != nil {
		repoLogger.Error("Failed to create image", err, port.Fields{"query": query})
		return nil, dbError("failed to create image", err)
	}

	repoLogger.Debug("Image stored.", port.Fields{"image_id": img.ID})
	return &img, nil
}

func (r *ImageRepository) Delete(ctx context.Context, owner domain.ImageOwner, id int64) (*int64, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "ImageRepository",
		"method":    "Delete",
		"owner":     string(owner),
		"image_id":  id,
	})

	table, err := imageTableFor(owner)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1 RETURNING id`, table.name)
	return returningID(ctx, r.db, repoLogger, "failed to delete image", query, id)
}
