package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/comics-keeper/internal/logger"
	"github.com/sbilibin2017/comics-keeper/internal/middlewares"
)

//go:generate mockgen -source=logout.go -destination=logout_mock.go -package=handlers

// Logouter revokes a token until it expires.
type Logouter interface {
	Logout(ctx context.Context, tokenID string, expiresAt time.Time) error
}

// NewLogoutHandler returns an HTTP handler that revokes the caller's token.
// @Summary User logout
// @Description Revokes the bearer token used for this request until it expires
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.MessageResponse "Token revoked"
// @Failure 401 {object} handlers.ErrorResponse "Access token is missing"
// @Failure 403 {object} handlers.ErrorResponse "Invalid access token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims := middlewares.GetClaimsFromContext(ctx)
		if claims == nil {
			writeError(w, r, http.StatusUnauthorized, "Access token is missing")
			return
		}

		var expiresAt time.Time
		if claims.ExpiresAt != nil {
			expiresAt = claims.ExpiresAt.Time
		}

		if err := svc.Logout(ctx, claims.ID, expiresAt); err != nil {
			logger.FromContext(ctx).Errorw("failed to revoke token", "user_id", claims.UserID, "err", err)
			writeError(w, r, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, r, http.StatusOK, MessageResponse{Message: "Logged out successfully"})
	}
}
