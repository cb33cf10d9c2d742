package auth

import (
	"log"
	"net/http"

	"github.com/swipeschedule/ss_backendl/config"
	"github.com/swipeschedule/ss_backendl/internal/pkg/response"
	"github.com/swipeschedule/ss_backendl/internal/repositories"
)

type ProfileHandler struct {
	users *repositories.UserRepository
}

func NewProfileHandler(users *repositories.UserRepository) *ProfileHandler {
	return &ProfileHandler{users: users}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(config.UserIDKey).(int)
	if !ok || userID == 0 {
		response.RespondWithError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.users.ByID(userID)
	if err != nil {
		log.Printf("DB error (profile lookup %d): %v", userID, err)
		response.RespondWithError(w, http.StatusInternalServerError, "User not found")
		return
	}

	response.RespondWithJSON(w, http.StatusOK, user)
}
