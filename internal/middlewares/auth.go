package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/comics-keeper/internal/jwt"
	"github.com/sbilibin2017/comics-keeper/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// Denylist reports revoked token ids.
type Denylist interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}

// AuthMiddleware rejects requests without a valid bearer token and stores the
// token claims in the request context for the handlers behind it.
// A missing token yields 401; an invalid, expired or revoked token yields 403.
func AuthMiddleware(tokener Tokener, denylist Denylist) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := logger.FromContext(ctx)

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				log.Warnw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "Access token is missing")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				log.Warnw("authorization failed", "err", err)
				writeError(w, http.StatusForbidden, "Invalid access token")
				return
			}

			if denylist != nil {
				revoked, err := denylist.IsRevoked(ctx, claims.ID)
				if err != nil {
					log.Errorw("failed to check token denylist", "err", err)
					writeError(w, http.StatusInternalServerError, "Internal server error")
					return
				}
				if revoked {
					log.Warnw("authorization failed", "err", "token revoked", "user_id", claims.UserID)
					writeError(w, http.StatusForbidden, "Invalid access token")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(SetClaimsToContext(ctx, claims)))
		})
	}
}
