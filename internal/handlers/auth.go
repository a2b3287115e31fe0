package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"NOTES_BACK-END/internal/common"
	"NOTES_BACK-END/internal/dto"
	"NOTES_BACK-END/internal/models"
	"NOTES_BACK-END/internal/utils"
)

// AuthService is what AuthHandler needs from the auth business layer.
type AuthService interface {
	Register(ctx context.Context, username, password string) (models.UserID, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	auth AuthService
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(auth AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new user account with username and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 201 {object} dto.MessageResponse "User registered successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 409 {object} dto.ErrorResponse "User already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	_, err := h.auth.Register(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		utils.WriteJSONResponse(w, http.StatusCreated, dto.MessageResponse{Message: "User registered successfully"})
	case errors.Is(err, common.ErrInvalidInput):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", err.Error())
	case errors.Is(err, common.ErrDuplicateUsername):
		utils.WriteErrorResponse(w, http.StatusConflict, "User already exists", "Username already registered")
	default:
		writeInternalError(w, r, err, "Failed to register user")
	}
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user with username and password, returns a bearer token valid for one hour
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "User login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	token, err := h.auth.Login(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		utils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{Token: token})
	case errors.Is(err, common.ErrInvalidCredentials):
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Invalid username or password")
	default:
		writeInternalError(w, r, err, "Failed to log in")
	}
}

// writeInternalError logs err with the request id and answers with a
// generic 500. The detail never reaches the client.
func writeInternalError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	hlog.FromRequest(r).Error().Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg(msg)
	utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", msg)
}
