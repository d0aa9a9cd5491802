package rest

import (
	"net/http"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port/usecases_port"
)

// FeaturesHandler обслуживает справочник особенностей и их привязку к объявлениям.
type FeaturesHandler struct {
	getAllUC          usecases_port.GetFeaturesUseCasePort
	getByIDUC         usecases_port.GetFeatureByIDUseCasePort
	createUC          usecases_port.CreateFeatureUseCasePort
	updateUC          usecases_port.UpdateFeatureUseCasePort
	deleteUC          usecases_port.DeleteFeatureUseCasePort
	listingFeaturesUC usecases_port.GetListingFeaturesUseCasePort
	addToListingUC    usecases_port.AddListingFeatureUseCasePort
	removeFromUC      usecases_port.RemoveListingFeatureUseCasePort
	validator         *Validator
}

func NewFeaturesHandler(
	getAllUC usecases_port.GetFeaturesUseCasePort,
	getByIDUC usecases_port.GetFeatureByIDUseCasePort,
	createUC usecases_port.CreateFeatureUseCasePort,
	updateUC usecases_port.UpdateFeatureUseCasePort,
	deleteUC usecases_port.DeleteFeatureUseCasePort,
	listingFeaturesUC usecases_port.GetListingFeaturesUseCasePort,
	addToListingUC usecases_port.AddListingFeatureUseCasePort,
	removeFromUC usecases_port.RemoveListingFeatureUseCasePort,
	validator *Validator,
) *FeaturesHandler {
	return &FeaturesHandler{
		getAllUC:          getAllUC,
		getByIDUC:         getByIDUC,
		createUC:          createUC,
		updateUC:          updateUC,
		deleteUC:          deleteUC,
		listingFeaturesUC: listingFeaturesUC,
		addToListingUC:    addToListingUC,
		removeFromUC:      removeFromUC,
		validator:         validator,
	}
}

func toFeaturesResponse(features []domain.Feature) FeaturesResponse {
	resp := FeaturesResponse{Features: make([]NamedResponse, len(features))}
	for i, f := range features {
		resp.Features[i] = NamedResponse{ID: f.ID, Name: f.Name}
	}
	return resp
}

// GetFeatures обрабатывает GET /features
func (h *FeaturesHandler) GetFeatures(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFeatures"})

	features, err := h.getAllUC.Execute(r.Context())
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toFeaturesResponse(features))
}

// GetFeature обрабатывает GET /features/{id}
func (h *FeaturesHandler) GetFeature(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetFeature"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	feature, err := h.getByIDUC.Execute(r.Context(), id)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, NamedResponse{ID: feature.ID, Name: feature.Name})
}

// CreateFeature обрабатывает POST /features
func (h *FeaturesHandler) CreateFeature(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateFeature"})

	var req NameRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		writeDecodeError(w, logger, err)
		return
	}

	id, err := h.createUC.Execute(r.Context(), req.Name)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, CreatedResponse{Message: "Feature created successfully", ID: id})
}

// UpdateFeature обрабатывает PUT /features/{id}
func (h *FeaturesHandler) UpdateFeature(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateFeature"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	var req NameRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		writeDecodeError(w, logger, err)
		return
	}

	if err := h.updateUC.Execute(r.Context(), id, req.Name); err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, InfoResponse{Message: "Feature updated successfully"})
}

// DeleteFeature обрабатывает DELETE /features/{id}
func (h *FeaturesHandler) DeleteFeature(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteFeature"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, InfoResponse{Message: "Feature deleted successfully"})
}

// GetListingFeatures обрабатывает GET /listings/{id}/features
func (h *FeaturesHandler) GetListingFeatures(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetListingFeatures"})
	listingID, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	features, err := h.listingFeaturesUC.Execute(r.Context(), listingID)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toFeaturesResponse(features))
}

// AddListingFeature обрабатывает POST /listings/{id}/features. Повторная привязка не ошибка.
func (h *FeaturesHandler) AddListingFeature(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AddListingFeature"})
	listingID, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	var req ListingFeatureRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		writeDecodeError(w, logger, err)
		return
	}

	if err := h.addToListingUC.Execute(r.Context(), listingID, req.FeatureID); err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, InfoResponse{Message: "Feature added to listing"})
}

// RemoveListingFeature обрабатывает DELETE /listings/{id}/features/{featureID}
func (h *FeaturesHandler) RemoveListingFeature(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RemoveListingFeature"})
	listingID, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}
	featureID, ok := idParam(w, r, logger, "featureID")
	if !ok {
		return
	}

	if err := h.removeFromUC.Execute(r.Context(), listingID, featureID); err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, InfoResponse{Message: "Feature removed from listing"})
}
