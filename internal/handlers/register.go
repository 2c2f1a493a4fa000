package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/comics-keeper/internal/logger"
	"github.com/sbilibin2017/comics-keeper/internal/models"
	"github.com/sbilibin2017/comics-keeper/internal/services"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

const msgPasswordTooLong = "Password must be at most 72 bytes"

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, email, password string) (*models.UserDB, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// RegisteredUser is the public view of a new account
// swagger:model RegisteredUser
type RegisteredUser struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string         `json:"message"`
	User    RegisteredUser `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new account. The email must be unique. The password is stored as a bcrypt hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request / email already exists / password too long"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, "Invalid request body")
			return
		}

		req.Email = strings.TrimSpace(req.Email)
		if req.Email == "" || req.Password == "" {
			writeError(w, r, http.StatusBadRequest, "Email and password are required")
			return
		}

		user, err := svc.Register(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidInput):
				writeError(w, r, http.StatusBadRequest, "Email and password are required")
			case errors.Is(err, services.ErrUserAlreadyExists):
				writeError(w, r, http.StatusBadRequest, "Email already exists")
			case errors.Is(err, services.ErrPasswordTooLong):
				writeError(w, r, http.StatusBadRequest, msgPasswordTooLong)
			default:
				logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
				writeError(w, r, http.StatusInternalServerError, msgInternalError)
			}
			return
		}

		writeJSON(w, r, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully",
			User:    RegisteredUser{ID: user.UserID, Email: user.Email},
		})
	}
}
