package usecase

import (
	"context"
	"fmt"
	"net/url"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

// ensureImageOwnerExists проверяет владельца изображения (объявление или пользователя).
func ensureImageOwnerExists(ctx context.Context, listings port.ListingRepositoryPort, users port.UserRepositoryPort, owner domain.ImageOwner, ownerID int64) error {
	switch owner {
	case domain.ImageOwnerListing:
		return ensureListingExists(ctx, listings, ownerID)
	case domain.ImageOwnerUser:
		user, err := users.GetByID(ctx, ownerID)
		if err != nil {
			return fmt.Errorf("failed to check user: %w", err)
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		return nil
	default:
		return fmt.Errorf("unknown image owner %q: %w", owner, domain.ErrInvalidInput)
	}
}

type GetImagesUseCase struct {
	images   port.ImageRepositoryPort
	listings port.ListingRepositoryPort
	users    port.UserRepositoryPort
}

func NewGetImagesUseCase(images port.ImageRepositoryPort, listings port.ListingRepositoryPort, users port.UserRepositoryPort) *GetImagesUseCase {
	return &GetImagesUseCase{images: images, listings: listings, users: users}
}

func (uc *GetImagesUseCase) Execute(ctx context.Context, owner domain.ImageOwner, ownerID int64) ([]domain.Image, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "GetImages",
		"owner":    string(owner),
		"owner_id": ownerID,
	})

	if err := ensureImageOwnerExists(ctx, uc.listings, uc.users, owner, ownerID); err != nil {
		return nil, err
	}

	images, err := uc.images.List(ctx, owner, ownerID)
	if err != nil {
		ucLogger.Error("Failed to list images", err, nil)
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	return images, nil
}

type AddImageUseCase struct {
	images port.ImageRepositoryPort
}

func NewAddImageUseCase(images port.ImageRepositoryPort) *AddImageUseCase {
	return &AddImageUseCase{images: images}
}

// Execute сохраняет изображение. Несуществующий владелец отклоняется внешним ключом.
func (uc *AddImageUseCase) Execute(ctx context.Context, owner domain.ImageOwner, ownerID int64, in domain.ImageInput) (*domain.Image, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "AddImage",
		"owner":    string(owner),
		"owner_id": ownerID,
	})

	if u, err := url.ParseRequestURI(in.URL); err != nil || u.Host == "" {
		return nil, fmt.Errorf("image url must be absolute: %w", domain.ErrInvalidInput)
	}

	img, err := uc.images.Create(ctx, owner, ownerID, in)
	if err != nil {
		ucLogger.Error("Failed to add image", err, nil)
		return nil, err
	}
	ucLogger.Info("Image added", port.Fields{"image_id": img.ID})
	return img, nil
}

type DeleteImageUseCase struct {
	images port.ImageRepositoryPort
}

func NewDeleteImageUseCase(images port.ImageRepositoryPort) *DeleteImageUseCase {
	return &DeleteImageUseCase{images: images}
}

func (uc *DeleteImageUseCase) Execute(ctx context.Context, owner domain.ImageOwner, id int64) error {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(port.Fields{
		"use_case": "DeleteImage",
		"owner":    string(owner),
		"image_id": id,
	})

	deleted, err := uc.images.Delete(ctx, owner, id)
	if err != nil {
		ucLogger.Error("Failed to delete image", err, nil)
		return err
	}
	if deleted == nil {
		return domain.ErrImageNotFound
	}
	ucLogger.Info("Image deleted", nil)
	return nil
}
