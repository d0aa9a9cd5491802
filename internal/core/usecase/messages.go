package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

type SendMessageUseCase struct {
	repo      port.MessageRepositoryPort
	publisher port.EventPublisherPort
}

func NewSendMessageUseCase(repo port.MessageRepositoryPort, publisher port.EventPublisherPort) *SendMessageUseCase {
	return &SendMessageUseCase{repo: repo, publisher: publisher}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, in domain.MessageInput) (*domain.Message, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	ucLogger := logger.WithFields(port.Fields{
		"use_case":    "SendMessage",
		"sender_id":   in.SenderID,
		"receiver_id": in.ReceiverID,
		"listing_id":  in.ListingID,
	})

	ucLogger.Info("Use case started", nil)
	if strings.TrimSpace(in.Content) == "" {
		return nil, fmt.Errorf("message content is required: %w", domain.ErrInvalidInput)
	}

	msg, err := uc.repo.Create(ctx, in)
	if err != nil {
		ucLogger.Error("Failed to store message", err, nil)
		return nil, err
	}

	publishMessageCreated(ctx, uc.publisher, ucLogger, msg)

	ucLogger.Info("Use case finished successfully", port.Fields{"message_id": msg.ID})
	return msg, nil
}

type GetListingMessagesUseCase struct {
	repo port.MessageRepositoryPort
}

func NewGetListingMessagesUseCase(repo port.MessageRepositoryPort) *GetListingMessagesUseCase {
	return &GetListingMessagesUseCase{repo: repo}
}

func (uc *GetListingMessagesUseCase) Execute(ctx context.Context, listingID int64) ([]domain.Message, error) {
	messages, err := uc.repo.ListForListing(ctx, listingID)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to list messages", err, port.Fields{"use_case": "GetListingMessages", "listing_id": listingID})
		return nil, fmt.Errorf("failed to list messages for listing: %w", err)
	}
	return messages, nil
}

type GetUserMessagesUseCase struct {
	repo port.MessageRepositoryPort
}

func NewGetUserMessagesUseCase(repo port.MessageRepositoryPort) *GetUserMessagesUseCase {
	return &GetUserMessagesUseCase{repo: repo}
}

func (uc *GetUserMessagesUseCase) Execute(ctx context.Context, userID int64) ([]domain.Message, error) {
	messages, err := uc.repo.ListForUser(ctx, userID)
	if err != nil {
		contextkeys.LoggerFromContext(ctx).Error("Failed to list messages", err, port.Fields{"use_case": "GetUserMessages", "user_id": userID})
		return nil, fmt.Errorf("failed to list messages for user: %w", err)
	}
	return messages, nil
}
