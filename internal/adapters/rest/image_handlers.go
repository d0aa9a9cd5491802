package rest

import (
	"net/http"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port/usecases_port"
)

// ImagesHandler обслуживает изображения объявлений и пользователей. Владелец задается при регистрации маршрута.
type ImagesHandler struct {
	getUC     usecases_port.GetImagesUseCasePort
	addUC     usecases_port.AddImageUseCasePort
	deleteUC  usecases_port.DeleteImageUseCasePort
	validator *Validator
}

func NewImagesHandler(
	getUC usecases_port.GetImagesUseCasePort,
	addUC usecases_port.AddImageUseCasePort,
	deleteUC usecases_port.DeleteImageUseCasePort,
	validator *Validator,
) *ImagesHandler {
	return &ImagesHandler{getUC: getUC, addUC: addUC, deleteUC: deleteUC, validator: validator}
}

// GetImages обрабатывает GET /listings/{id}/images и GET /users/{id}/images
func (h *ImagesHandler) GetImages(owner domain.ImageOwner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetImages", "owner": string(owner)})
		ownerID, ok := idParam(w, r, logger, "id")
		if !ok {
			return
		}

		images, err := h.getUC.Execute(r.Context(), owner, ownerID)
		if err != nil {
			writeDomainError(w, logger, err)
			return
		}

		resp := ImagesResponse{Images: make([]ImageResponse, len(images))}
		for i, img := range images {
			resp.Images[i] = toImageResponse(img)
		}
		RespondWithJSON(w, http.StatusOK, resp)
	}
}

// AddImage обрабатывает POST /listings/{id}/images и POST /users/{id}/images
func (h *ImagesHandler) AddImage(owner domain.ImageOwner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AddImage", "owner": string(owner)})
		ownerID, ok := idParam(w, r, logger, "id")
		if !ok {
			return
		}

		var req ImageRequest
		if err := decodeJSON(w, r, h.validator, &req); err != nil {
			writeDecodeError(w, logger, err)
			return
		}

		img, err := h.addUC.Execute(r.Context(), owner, ownerID, domain.ImageInput{Caption: req.Caption, URL: req.URL})
		if err != nil {
			writeDomainError(w, logger, err)
			return
		}
		RespondWithJSON(w, http.StatusCreated, toImageResponse(*img))
	}
}

// DeleteImage обрабатывает DELETE /images/listing/{id} и DELETE /images/user/{id}
func (h *ImagesHandler) DeleteImage(owner domain.ImageOwner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteImage", "owner": string(owner)})
		id, ok := idParam(w, r, logger, "id")
		if !ok {
			return
		}

		if err := h.deleteUC.Execute(r.Context(), owner, id); err != nil {
			writeDomainError(w, logger, err)
			return
		}
		RespondWithJSON(w, http.StatusOK, InfoResponse{Message: "Image deleted successfully"})
	}
}
