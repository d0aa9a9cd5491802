package rest

import (
	"net/http"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/domain"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port/usecases_port"
)

type CompaniesHandler struct {
	getAllUC  usecases_port.GetCompaniesUseCasePort
	getByIDUC usecases_port.GetCompanyByIDUseCasePort
	createUC  usecases_port.CreateCompanyUseCasePort
	updateUC  usecases_port.UpdateCompanyUseCasePort
	deleteUC  usecases_port.DeleteCompanyUseCasePort
	validator *Validator
}

func NewCompaniesHandler(
	getAllUC usecases_port.GetCompaniesUseCasePort,
	getByIDUC usecases_port.GetCompanyByIDUseCasePort,
	createUC usecases_port.CreateCompanyUseCasePort,
	updateUC usecases_port.UpdateCompanyUseCasePort,
	deleteUC usecases_port.DeleteCompanyUseCasePort,
	validator *Validator,
) *CompaniesHandler {
	return &CompaniesHandler{
		getAllUC:  getAllUC,
		getByIDUC: getByIDUC,
		createUC:  createUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		validator: validator,
	}
}

func toCompanyResponse(c domain.RealtorCompany) CompanyResponse {
	return CompanyResponse{ID: c.ID, Name: c.Name, AddressID: c.AddressID, Phone: c.Phone, CreatedAt: c.CreatedAt}
}

func (req CompanyRequest) toDomain() domain.CompanyInput {
	return domain.CompanyInput{Name: req.Name, AddressID: req.AddressID, Phone: req.Phone}
}

// GetCompanies обрабатывает GET /companies
func (h *CompaniesHandler) GetCompanies(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetCompanies"})

	companies, err := h.getAllUC.Execute(r.Context())
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	resp := CompaniesResponse{Companies: make([]CompanyResponse, len(companies))}
	for i, c := range companies {
		resp.Companies[i] = toCompanyResponse(c)
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

// GetCompany обрабатывает GET /companies/{id}
func (h *CompaniesHandler) GetCompany(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetCompany"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	company, err := h.getByIDUC.Execute(r.Context(), id)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toCompanyResponse(*company))
}

// CreateCompany обрабатывает POST /companies
func (h *CompaniesHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateCompany"})

	var req CompanyRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		writeDecodeError(w, logger, err)
		return
	}

	id, err := h.createUC.Execute(r.Context(), req.toDomain())
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, CreatedResponse{Message: "Company created successfully", ID: id})
}

// UpdateCompany обрабатывает PUT /companies/{id}
func (h *CompaniesHandler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateCompany"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	var req CompanyRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		writeDecodeError(w, logger, err)
		return
	}

	if err := h.updateUC.Execute(r.Context(), id, req.toDomain()); err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, InfoResponse{Message: "Company updated successfully"})
}

// DeleteCompany обрабатывает DELETE /companies/{id}
func (h *CompaniesHandler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteCompany"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, InfoResponse{Message: "Company deleted successfully"})
}
