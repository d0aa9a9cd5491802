package rest

import (
	"net/http"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port/usecases_port"
)

type DictionariesHandler struct {
	getRolesUC           usecases_port.GetRolesUseCasePort
	getStatusesUC        usecases_port.GetStatusesUseCasePort
	createStatusUC       usecases_port.CreateStatusUseCasePort
	getPropertyTypesUC   usecases_port.GetPropertyTypesUseCasePort
	createPropertyTypeUC usecases_port.CreatePropertyTypeUseCasePort
	validator            *Validator
}

func NewDictionariesHandler(
	getRolesUC usecases_port.GetRolesUseCasePort,
	getStatusesUC usecases_port.GetStatusesUseCasePort,
	createStatusUC usecases_port.CreateStatusUseCasePort,
	getPropertyTypesUC usecases_port.GetPropertyTypesUseCasePort,
	createPropertyTypeUC usecases_port.CreatePropertyTypeUseCasePort,
	validator *Validator,
) *DictionariesHandler {
	return &DictionariesHandler{
		getRolesUC:           getRolesUC,
		getStatusesUC:        getStatusesUC,
		createStatusUC:       createStatusUC,
		getPropertyTypesUC:   getPropertyTypesUC,
		createPropertyTypeUC: createPropertyTypeUC,
		validator:            validator,
	}
}

// GetRoles обрабатывает GET /roles
func (h *DictionariesHandler) GetRoles(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetRoles"})

	roles, err := h.getRolesUC.Execute(r.Context())
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	resp := RolesResponse{Roles: make([]RoleResponse, len(roles))}
	for i, role := range roles {
		resp.Roles[i] = RoleResponse{ID: role.ID, Name: role.Name, Description: role.Description}
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

// GetStatuses обрабатывает GET /statuses
func (h *DictionariesHandler) GetStatuses(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetStatuses"})

	statuses, err := h.getStatusesUC.Execute(r.Context())
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	resp := StatusesResponse{Statuses: make([]NamedResponse, len(statuses))}
	for i, s := range statuses {
		resp.Statuses[i] = NamedResponse{ID: s.ID, Name: s.Name}
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

// CreateStatus обрабатывает POST /statuses
func (h *DictionariesHandler) CreateStatus(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateStatus"})

	var req NameRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		writeDecodeError(w, logger, err)
		return
	}

	id, err := h.createStatusUC.Execute(r.Context(), req.Name)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, CreatedResponse{Message: "Status created successfully", ID: id})
}

// GetPropertyTypes обрабатывает GET /property_types
func (h *DictionariesHandler) GetPropertyTypes(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetPropertyTypes"})

	types, err := h.getPropertyTypesUC.Execute(r.Context())
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	resp := PropertyTypesResponse{PropertyTypes: make([]NamedResponse, len(types))}
	for i, t := range types {
		resp.PropertyTypes[i] = NamedResponse{ID: t.ID, Name: t.Name}
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

// CreatePropertyType обрабатывает POST /property_types
func (h *DictionariesHandler) CreatePropertyType(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreatePropertyType"})

	var req NameRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		writeDecodeError(w, logger, err)
		return
	}

	id, err := h.createPropertyTypeUC.Execute(r.Context(), req.Name)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, CreatedResponse{Message: "Property type created successfully", ID: id})
}
