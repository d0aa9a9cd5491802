package rest

import (
	"net/http"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port/usecases_port"
)

type AddressesHandler struct {
	getAllUC  usecases_port.GetAddressesUseCasePort
	getByIDUC usecases_port.GetAddressByIDUseCasePort
	createUC  usecases_port.CreateAddressUseCasePort
	updateUC  usecases_port.UpdateAddressUseCasePort
	deleteUC  usecases_port.DeleteAddressUseCasePort
	validator *Validator
}

func NewAddressesHandler(
	getAllUC usecases_port.GetAddressesUseCasePort,
	getByIDUC usecases_port.GetAddressByIDUseCasePort,
	createUC usecases_port.CreateAddressUseCasePort,
	updateUC usecases_port.UpdateAddressUseCasePort,
	deleteUC usecases_port.DeleteAddressUseCasePort,
	validator *Validator,
) *AddressesHandler {
	return &AddressesHandler{
		getAllUC:  getAllUC,
		getByIDUC: getByIDUC,
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		validator: validator,
	}
}

func toAddressResponse(a domain.Address) AddressResponse {
	return AddressResponse{ID: a.ID, Street: a.Street, City: a.City, Postcode: a.Postcode, Country: a.Country}
}

func (req AddressRequest) toDomain() domain.AddressInput {
	return domain.AddressInput{Street: req.Street, City: req.City, Postcode: req.Postcode, Country: req.Country}
}

// GetAddresses обрабатывает GET /addresses
func (h *AddressesHandler) GetAddresses(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetAddresses"})

	addresses, err := h.getAllUC.Execute(r.Context())
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	resp := AddressesResponse{Addresses: make([]AddressResponse, len(addresses))}
	for i, a := range addresses {
		resp.Addresses[i] = toAddressResponse(a)
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

// GetAddress обрабатывает GET /addresses/{id}
func (h *AddressesHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetAddress"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	address, err := h.getByIDUC.Execute(r.Context(), id)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toAddressResponse(*address))
}

// CreateAddress обрабатывает POST /addresses
func (h *AddressesHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateAddress"})

	var req AddressRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		writeDecodeError(w, logger, err)
		return
	}

	id, err := h.createUC.Execute(r.Context(), req.toDomain())
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, CreatedResponse{Message: "Address created successfully", ID: id})
}

// UpdateAddress обрабатывает PUT /addresses/{id}
func (h *AddressesHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateAddress"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	var req AddressRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		writeDecodeError(w, logger, err)
		return
	}

	if err := h.updateUC.Execute(r.Context(), id, req.toDomain()); err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, InfoResponse{Message: "Address updated successfully"})
}

// DeleteAddress обрабатывает DELETE /addresses/{id}. Адрес, на который ссылаются, удалить нельзя (409).
func (h *AddressesHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteAddress"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, InfoResponse{Message: "Address deleted successfully"})
}
