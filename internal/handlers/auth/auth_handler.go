package auth

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/swipeschedule/ss_backendl/internal/pkg/response"
	"github.com/swipeschedule/ss_backendl/internal/repositories"
	services "github.com/swipeschedule/ss_backendl/internal/services/auth"
	"github.com/swipeschedule/ss_backendl/models"
)

type AuthHandler struct {
	users      *repositories.UserRepository
	jwtService *services.JWTService
}

func NewAuthHandler(users *repositories.UserRepository, jwtService *services.JWTService) *AuthHandler {
	return &AuthHandler{
		users:      users,
		jwtService: jwtService,
	}
}

func (h *AuthHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var regData struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}

	if err := json.NewDecoder(r.Body).Decode(&regData); err != nil {
		response.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	if regData.Username == "" || regData.Password == "" {
		response.RespondWithError(w, http.StatusBadRequest, "Username and password required")
		return
	}
	if !models.Role(regData.Role).Valid() {
		response.RespondWithError(w, http.StatusBadRequest, "Role must be worker or business")
		return
	}

	exists, err := h.users.Exists(regData.Username)
	if err != nil {
		log.Printf("DB error (register exists check): %v", err)
		response.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}
	if exists {
		response.RespondWithError(w, http.StatusConflict, "Username already taken")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(regData.Password), bcrypt.DefaultCost)
	if err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "Could not hash password")
		return
	}

	id, err := h.users.Create(regData.Username, string(hash), regData.Role)
	if err != nil {
		log.Printf("DB error (register insert): %v", err)
		response.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	token, err := h.jwtService.GenerateToken(id, regData.Username, regData.Role)
	if err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "Could not generate token")
		return
	}

	response.RespondWithJSON(w, http.StatusCreated, map[string]string{
		"token": token,
		"role":  regData.Role,
	})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var loginData struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&loginData); err != nil {
		response.RespondWithError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	user, err := h.users.ByUsername(loginData.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			response.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		log.Printf("DB error (login lookup): %v", err)
		response.RespondWithError(w, http.StatusInternalServerError, "Database error")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(loginData.Password)) != nil {
		response.RespondWithError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		response.RespondWithError(w, http.StatusInternalServerError, "Could not generate token")
		return
	}

	response.RespondWithJSON(w, http.StatusOK, map[string]string{
		"token": token,
		"role":  user.Role,
	})
}

// LogoutHandler exists for the client's logout flow. Tokens are stateless,
// so the server only acknowledges; the client clears its session slot.
func (h *AuthHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	response.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}
