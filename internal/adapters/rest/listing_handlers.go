package rest

import (
	"net/http"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port/usecases_port"
)

type ListingsHandler struct {
	getAllUC       usecases_port.GetListingsUseCasePort
	getByIDUC      usecases_port.GetListingByIDUseCasePort
	createUC       usecases_port.CreateListingUseCasePort
	updateUC       usecases_port.UpdateListingUseCasePort
	updatePriceUC  usecases_port.UpdateListingPriceUseCasePort
	updateStatusUC usecases_port.UpdateListingStatusUseCasePort
	deleteUC       usecases_port.DeleteListingUseCasePort
	validator      *Validator
}

func NewListingsHandler(
	getAllUC usecases_port.GetListingsUseCasePort,
	getByIDUC usecases_port.GetListingByIDUseCasePort,
	createUC usecases_port.CreateListingUseCasePort,
	updateUC usecases_port.UpdateListingUseCasePort,
	updatePriceUC usecases_port.UpdateListingPriceUseCasePort,
	updateStatusUC usecases_port.UpdateListingStatusUseCasePort,
	deleteUC usecases_port.DeleteListingUseCasePort,
	validator *Validator,
) *ListingsHandler {
	return &ListingsHandler{
		getAllUC:       getAllUC,
		getByIDUC:      getByIDUC,
		createUC:       createUC,
		updateUC:       updateUC,
		updatePriceUC:  updatePriceUC,
		updateStatusUC: updateStatusUC,
		deleteUC:       deleteUC,
		validator:      validator,
	}
}

// GetListings обрабатывает GET /listings
func (h *ListingsHandler) GetListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetListings"})

	listings, err := h.getAllUC.Execute(r.Context())
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	resp := ListingsResponse{Listings: make([]ListingResponse, len(listings))}
	for i, l := range listings {
		resp.Listings[i] = toListingResponse(l)
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

// GetListing обрабатывает GET /listings/{id}
func (h *ListingsHandler) GetListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetListing"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	listing, err := h.getByIDUC.Execute(r.Context(), id)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toListingResponse(*listing))
}

// CreateListing обрабатывает POST /listings
func (h *ListingsHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateListing"})

	var req ListingRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		writeDecodeError(w, logger, err)
		return
	}

	id, err := h.createUC.Execute(r.Context(), req.toDomain())
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, CreatedResponse{Message: "Listing created successfully", ID: id})
}

// UpdateListing обрабатывает PUT /listings/{id}
func (h *ListingsHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateListing"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	var req ListingRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		writeDecodeError(w, logger, err)
		return
	}

	if err := h.updateUC.Execute(r.Context(), id, req.toDomain()); err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, InfoResponse{Message: "Listing updated successfully"})
}

// UpdateListingPrice обрабатывает PATCH /listings/{id}/price
func (h *ListingsHandler) UpdateListingPrice(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateListingPrice"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	var req PriceUpdateRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		writeDecodeError(w, logger, err)
		return
	}

	if err := h.updatePriceUC.Execute(r.Context(), id, *req.Price); err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, InfoResponse{Message: "Price updated successfully"})
}

// UpdateListingStatus обрабатывает PATCH /listings/{id}/status
func (h *ListingsHandler) UpdateListingStatus(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateListingStatus"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	var req StatusUpdateRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		writeDecodeError(w, logger, err)
		return
	}

	if err := h.updateStatusUC.Execute(r.Context(), id, req.StatusID); err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, InfoResponse{Message: "Status updated successfully"})
}

// DeleteListing обрабатывает DELETE /listings/{id}
func (h *ListingsHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteListing"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, InfoResponse{Message: "Listing deleted successfully"})
}
