package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mbelda/fridgechef-be/internal/apperror"
	"github.com/mbelda/fridgechef-be/internal/auth"
	"github.com/mbelda/fridgechef-be/internal/services"
	"github.com/rs/zerolog/log"
)

var validate = validator.New()

// AuthHandler handles signup and login requests.
type AuthHandler struct {
	users  services.UserServiceProvider
	tokens *auth.TokenManager
	events services.EventServiceProvider
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, tokens *auth.TokenManager, events services.EventServiceProvider) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, events: events}
}

// CredentialsPayload defines the structure for signup and login requests.
type CredentialsPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup handles new user registration.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperror.NewValidation("invalid request body"))
		return
	}
	if err := validate.Struct(payload); err != nil {
		writeError(w, apperror.NewValidation("a valid email and password are required"))
		return
	}

	user, err := h.users.Register(payload.Email, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("email", payload.Email).Msg("Failed to register user")
		writeError(w, err)
		return
	}

	h.recordEvent("user.signup", "info", "user signed up", &user.ID)

	writeJSON(w, http.StatusCreated, user)
}

// Login handles user authentication and token issuance.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apperror.NewValidation("invalid request body"))
		return
	}
	if payload.Email == "" || payload.Password == "" {
		writeError(w, apperror.NewValidation("email and password are required"))
		return
	}

	user, err := h.users.Authenticate(payload.Email, payload.Password)
	if err != nil {
		log.Warn().Str("email", payload.Email).Msg("Failed authentication attempt")
		writeError(w, err)
		return
	}

	token, err := h.tokens.Generate(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate token")
		writeError(w, apperror.NewInternal(err))
		return
	}

	h.recordEvent("user.login", "info", "user logged in", &user.ID)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

func (h *AuthHandler) recordEvent(eventType, level, message string, userID *string) {
	if err := h.events.Record(eventType, level, message, userID); err != nil {
		log.Warn().Err(err).Str("type", eventType).Msg("Failed to record event")
	}
}
