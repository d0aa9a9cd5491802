package postgres_adapter

import (
	"context"
	"fmt"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

type MessageRepository struct {
	db DBTX
}

func NewMessageRepository(db DBTX) (*MessageRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db cannot be nil")
	}
	return &MessageRepository{db: db}, nil
}

const messageColumns = `id, sender_id, receiver_id, listing_id, content, created_at`

// Create возвращает сохраненное сообщение целиком: id и created_at назначает база.
func (r *MessageRepository) Create(ctx context.Context, in domain.MessageInput) (*domain.Message, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":   "MessageRepository",
		"method":      "Create",
		"sender_id":   in.SenderID,
		"receiver_id": in.ReceiverID,
		"listing_id":  in.ListingID,
	})

	query := `INSERT INTO messages (sender_id, receiver_id, listing_id, content)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + messageColumns
	var m domain.Message
	err := r.db.QueryRow(ctx, query, in.SenderID, in.ReceiverID, in.ListingID, in.Content).
		Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.ListingID, &m.Content, &m.CreatedAt)
	if err != nil {
		repoLogger.Error("Failed to create message", err, port.Fields{"query": query})
		return nil, dbError("failed to create message", err)
	}

	repoLogger.Debug("Message created.", port.Fields{"message_id": m.ID})
	return &m, nil
}

// ListForListing - переписка по объявлению, новые сообщения первыми.
func (r *MessageRepository) ListForListing(ctx context.Context, listingID int64) ([]domain.Message, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component":  "MessageRepository",
		"method":     "ListForListing",
		"listing_id": listingID,
	})

	query := `SELECT ` + messageColumns + ` FROM messages WHERE listing_id = $1 ORDER BY created_at DESC, id DESC`
	return r.queryMessages(ctx, repoLogger, query, listingID)
}

// ListForUser - сообщения, где пользователь отправитель или получатель, новые первыми.
func (r *MessageRepository) ListForUser(ctx context.Context, userID int64) ([]domain.Message, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	repoLogger := logger.WithFields(port.Fields{
		"component": "MessageRepository",
		"method":    "ListForUser",
		"user_id":   userID,
	})

	query := `SELECT ` + messageColumns + ` FROM messages WHERE sender_id = $1 OR receiver_id = $1 ORDER BY created_at DESC, id DESC`
	return r.queryMessages(ctx, repoLogger, query, userID)
}

func (r *MessageRepository) queryMessages(ctx context.Context, repoLogger port.LoggerPort, query string, args ...any) ([]domain.Message, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		repoLogger.Error("Failed to query messages", err, port.Fields{"query": query})
		return nil, dbError("failed to query messages", err)
	}
	defer rows.Close()

	messages := make([]domain.Message, 0)
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.ListingID, &m.Content, &m.CreatedAt); err != nil {
			repoLogger.Error("Failed to scan message row", err, nil)
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		repoLogger.Error("Error during messages iteration", err, nil)
		return nil, fmt.Errorf("error during messages iteration: %w", err)
	}

	repoLogger.Debug("Messages fetched.", port.Fields{"count": len(messages)})
	return messages, nil
}
