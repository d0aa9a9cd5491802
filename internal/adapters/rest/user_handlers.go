package rest

import (
	"net/http"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port/usecases_port"
)

type UsersHandler struct {
	getAllUC    usecases_port.GetUsersUseCasePort
	getByIDUC   usecases_port.GetUserByIDUseCasePort
	createUC    usecases_port.CreateUserUseCasePort
	updateUC    usecases_port.UpdateUserUseCasePort
	deleteUC    usecases_port.DeleteUserUseCasePort
	getAgentUC  usecases_port.GetRealtorAgentUseCasePort
	saveAgentUC usecases_port.SaveRealtorAgentUseCasePort
	loginUC     usecases_port.LoginUserUseCasePort
	validator   *Validator
}

func NewUsersHandler(
	getAllUC usecases_port.GetUsersUseCasePort,
	getByIDUC usecases_port.GetUserByIDUseCasePort,
	createUC usecases_port.CreateUserUseCasePort,
	updateUC usecases_port.UpdateUserUseCasePort,
	deleteUC usecases_port.DeleteUserUseCasePort,
	getAgentUC usecases_port.GetRealtorAgentUseCasePort,
	saveAgentUC usecases_port.SaveRealtorAgentUseCasePort,
	loginUC usecases_port.LoginUserUseCasePort,
	validator *Validator,
) *UsersHandler {
	return &UsersHandler{
		getAllUC:    getAllUC,
		getByIDUC:   getByIDUC,
		createUC:    createUC,
		updateUC:    updateUC,
		deleteUC:    deleteUC,
		getAgentUC:  getAgentUC,
		saveAgentUC: saveAgentUC,
		loginUC:     loginUC,
		validator:   validator,
	}
}

// GetUsers обрабатывает GET /users
func (h *UsersHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUsers"})

	users, err := h.getAllUC.Execute(r.Context())
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	resp := UsersResponse{Users: make([]UserResponse, len(users))}
	for i, u := range users {
		resp.Users[i] = toUserResponse(u)
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

// GetUser обрабатывает GET /users/{id}
func (h *UsersHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUser"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	user, err := h.getByIDUC.Execute(r.Context(), id)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, toUserResponse(*user))
}

// CreateUser обрабатывает POST /users
func (h *UsersHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CreateUser"})

	var req UserRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		writeDecodeError(w, logger, err)
		return
	}

	id, err := h.createUC.Execute(r.Context(), req.toDomain())
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, CreatedResponse{Message: "User created successfully", ID: id})
}

// UpdateUser обрабатывает PUT /users/{id}
func (h *UsersHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "UpdateUser"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	var req UserRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		writeDecodeError(w, logger, err)
		return
	}

	if err := h.updateUC.Execute(r.Context(), id, req.toDomain()); err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, InfoResponse{Message: "User updated successfully"})
}

// DeleteUser обрабатывает DELETE /users/{id}
func (h *UsersHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "DeleteUser"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(r.Context(), id); err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, InfoResponse{Message: "User deleted successfully"})
}

// GetAgent обрабатывает GET /users/{id}/agent
func (h *UsersHandler) GetAgent(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetAgent"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	agent, err := h.getAgentUC.Execute(r.Context(), id)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, AgentResponse{ID: agent.ID, UserID: agent.UserID, LicenseNumber: agent.LicenseNumber})
}

// SaveAgent обрабатывает PUT /users/{id}/agent
func (h *UsersHandler) SaveAgent(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SaveAgent"})
	id, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	var req AgentRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		writeDecodeError(w, logger, err)
		return
	}

	agent, err := h.saveAgentUC.Execute(r.Context(), id, req.LicenseNumber)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, AgentResponse{ID: agent.ID, UserID: agent.UserID, LicenseNumber: agent.LicenseNumber})
}

// Login обрабатывает POST /login. Учетные данные приходят в HTTP Basic Auth.
func (h *UsersHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Login"})

	mail, password, ok := r.BasicAuth()
	if !ok {
		logger.Warn("Missing basic auth credentials", nil)
		w.Header().Set("WWW-Authenticate", `Basic realm="moonhem"`)
		WriteJSONError(w, http.StatusUnauthorized, "Missing credentials")
		return
	}

	user, err := h.loginUC.Execute(r.Context(), mail, password)
	if err != nil {
		w.Header().Set("WWW-Authenticate", `Basic realm="moonhem"`)
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, LoginResponse{User: toUserResponse(*user)})
}
