package domain

import "time"

// ImageOwner определяет, к какой таблице относится изображение.
type ImageOwner string

const (
	ImageOwnerListing ImageOwner = "listing"
	ImageOwnerUser    ImageOwner = "user"
)

// Image - вложение (подпись + URL), принадлежащее ровно одному объявлению или пользователю.
type Image struct {
	ID        int64
	OwnerID   int64
	Caption   *string
	URL       string
	CreatedAt time.Time
}

type ImageInput struct {
	Caption *string
	URL     string
}
