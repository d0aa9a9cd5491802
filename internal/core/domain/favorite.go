package domain

import "time"

// Favorite - пара (пользователь, объявление), уникальная на пару.
type Favorite struct {
	ID        int64
	UserID    int64
	ListingID int64
	CreatedAt time.Time
}

// FavoriteListing - объявление из избранного вместе с моментом добавления.
type FavoriteListing struct {
	ListingView
	FavoritedAt time.Time
}
