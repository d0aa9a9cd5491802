package usecase

import (
	"context"
	"fmt"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

type GetUserFavoritesUseCase struct {
	favorites port.FavoriteRepositoryPort
	users     port.UserRepositoryPort
}

func NewGetUserFavoritesUseCase(favorites port.FavoriteRepositoryPort, users port.UserRepositoryPort) *GetUserFavoritesUseCase {
	return &GetUserFavoritesUseCase{favorites: favorites, users: users}
}

func (uc *GetUserFavoritesUseCase) Execute(ctx context.Context, userID int64) ([]domain.FavoriteListing, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case": "GetUserFavorites",
		"user_id":  userID,
	})

	ucLogger.Info("Use case started", nil)
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	favorites, err := uc.favorites.ListForUser(ctx, userID)
	if err != nil {
		ucLogger.Error("Failed to get favorites from repository", err, nil)
		return nil, fmt.Errorf("failed to get favorites: %w", err)
	}

	ucLogger.Info("Use case finished successfully", port.Fields{"count": len(favorites)})
	return favorites, nil
}

type AddToFavoritesUseCase struct {
	repo port.FavoriteRepositoryPort
}

func NewAddToFavoritesUseCase(repo port.FavoriteRepositoryPort) *AddToFavoritesUseCase {
	return &AddToFavoritesUseCase{repo: repo}
}

func (uc *AddToFavoritesUseCase) Execute(ctx context.Context, userID, listingID int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "AddToFavorites",
		"user_id":    userID,
		"listing_id": listingID,
	})

	ucLogger.Info("Use case started", nil)
	if err := uc.repo.Add(ctx, userID, listingID); err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}

type RemoveFromFavoritesUseCase struct {
	repo port.FavoriteRepositoryPort
}

func NewRemoveFromFavoritesUseCase(repo port.FavoriteRepositoryPort) *RemoveFromFavoritesUseCase {
	return &RemoveFromFavoritesUseCase{repo: repo}
}

func (uc *RemoveFromFavoritesUseCase) Execute(ctx context.Context, userID, listingID int64) error {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":   "RemoveFromFavorites",
		"user_id":    userID,
		"listing_id": listingID,
	})

	ucLogger.Info("Use case started", nil)
	removed, err := uc.repo.Remove(ctx, userID, listingID)
	if err != nil {
		ucLogger.Error("Repository returned an error", err, nil)
		return err
	}
	if removed == nil {
		ucLogger.Warn("Favorite did not exist", nil)
		return domain.ErrFavoriteNotFound
	}

	ucLogger.Info("Use case finished successfully", nil)
	return nil
}
