package rest

import (
	"net/http"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/contextkeys"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port/usecases_port"
)

type FavoritesHandler struct {
	getUC     usecases_port.GetUserFavoritesUseCasePort
	addUC     usecases_port.AddToFavoritesUseCasePort
	removeUC  usecases_port.RemoveFromFavoritesUseCasePort
	validator *Validator
}

func NewFavoritesHandler(
	getUC usecases_port.GetUserFavoritesUseCasePort,
	addUC usecases_port.AddToFavoritesUseCasePort,
	removeUC usecases_port.RemoveFromFavoritesUseCasePort,
	validator *Validator,
) *FavoritesHandler {
	return &FavoritesHandler{getUC: getUC, addUC: addUC, removeUC: removeUC, validator: validator}
}

// GetUserFavorites обрабатывает GET /users/{id}/favorites
func (h *FavoritesHandler) GetUserFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "GetUserFavorites"})
	userID, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	favorites, err := h.getUC.Execute(r.Context(), userID)
	if err != nil {
		writeDomainError(w, logger, err)
		return
	}

	resp := FavoritesResponse{Favorites: make([]FavoriteResponse, len(favorites))}
	for i, f := range favorites {
		resp.Favorites[i] = FavoriteResponse{ListingResponse: toListingResponse(f.ListingView), FavoritedAt: f.FavoritedAt}
	}
	RespondWithJSON(w, http.StatusOK, resp)
}

// AddToFavorites обрабатывает POST /users/{id}/favorites
func (h *FavoritesHandler) AddToFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "AddToFavorites"})
	userID, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}

	var req FavoriteRequest
	if err := decodeJSON(w, r, h.validator, &req); err != nil {
		writeDecodeError(w, logger, err)
		return
	}

	if err := h.addUC.Execute(r.Context(), userID, req.ListingID); err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusCreated, InfoResponse{Message: "Listing added to favorites"})
}

// RemoveFromFavorites обрабатывает DELETE /users/{id}/favorites/{listingID}
func (h *FavoritesHandler) RemoveFromFavorites(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "RemoveFromFavorites"})
	userID, ok := idParam(w, r, logger, "id")
	if !ok {
		return
	}
	listingID, ok := idParam(w, r, logger, "listingID")
	if !ok {
		return
	}

	if err := h.removeUC.Execute(r.Context(), userID, listingID); err != nil {
		writeDomainError(w, logger, err)
		return
	}
	RespondWithJSON(w, http.StatusOK, InfoResponse{Message: "Listing removed from favorites"})
}
