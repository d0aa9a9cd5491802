package domain

import "time"

// Message - сообщение между двумя пользователями по поводу объявления.
type Message struct {
	ID         int64
	SenderID   int64
	ReceiverID int64
	ListingID  int64
	Content    string
	CreatedAt  time.Time
}

type MessageInput struct {
	SenderID   int64
	ReceiverID int64
	ListingID  int64
	Content    string
}
