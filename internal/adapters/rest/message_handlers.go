package rest

import (
	"net/http"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port/usecases_port"
)

type MessagesHandler struct {
	sendUC      usecases_port.SendMessageUseCasePort
	byListingUC usecases_port.GetListingMessagesUseCasePort
	byUserUC    usecases_port.GetUserMessagesUseCasePort
	validator   *Validator
}

func NewMessagesHandler(
	sendUC usecases_port.SendMessageUseCasePort,
	byListingUC usecases_port.GetListingMessagesUseCasePort,
	byUserUC usecases_port.GetUserMessagesUseCasePort,
	validator *Validator,
) *MessagesHandler {
	return &MessagesHandler{sendUC: sendUC, byListingUC: byListingUC, byUserUC: byUserUC, validator: validator}
}

// SendMessage обрабатывает POST /messages и возвращает сохраненное сообщение целиком.
func (h *MessagesHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SendMessage"})

	var req ChatMessageRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		writeDecodeError(w, logger, err)
		return
	}

	msg, err := h.sendUC.Execute(r.Context(), domain.MessageInput{
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		ListingID:  req.ListingID,
		Content:    req.Content,
	})
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, toChatMessageResponse(*msg))
}

// GetListingMessages обрабатывает GET /messages/listing/{id}
func (h *MessagesHandler) GetListingMessages(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetListingMessages"})
	listingID, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	messages, err := h.byListingUC.Execute(r.Context(), listingID)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toChatMessagesResponse(messages))
}

// GetUserMessages обрабатывает GET /messages/user/{id}
func (h *MessagesHandler) GetUserMessages(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUserMessages"})
	userID, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	messages, err := h.byUserUC.Execute(r.Context(), userID)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toChatMessagesResponse(messages))
}
