package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/comics-keeper/internal/logger"
	"github.com/sbilibin2017/comics-keeper/internal/models"
)

//go:generate mockgen -source=comic_list.go -destination=comic_list_mock.go -package=handlers

// ComicLister lists the comics of one owner.
type ComicLister interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]models.ComicDB, error)
}

// PublicComicLister lists the comics of every owner.
type PublicComicLister interface {
	ListPublic(ctx context.Context) ([]models.ComicDB, error)
}

// NewListComicsHandler returns an HTTP handler listing the caller's comics.
// @Summary List my comics
// @Description Returns every comic owned by the authenticated user
// @Tags comics
// @Produce json
// @Success 200 {array} models.ComicDB "Comics of the caller"
// @Failure 401 {object} handlers.ErrorResponse "Access token is missing"
// @Failure 403 {object} handlers.ErrorResponse "Invalid access token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /comics [get]
// @Security BearerAuth
func NewListComicsHandler(svc ComicLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := requireOwner(w, r)
		if !ok {
			return
		}

		comics, err := svc.List(r.Context(), ownerID)
		if err != nil {
			logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, msgInternalError)
			return
		}
		if comics == nil {
			comics = []models.ComicDB{}
		}

		writeJSON(w, r, http.StatusOK, comics)
	}
}

// NewListPublicComicsHandler returns an HTTP handler listing the comics of every user.
// @Summary List all comics
// @Description Returns every comic of every user. No authentication required.
// @Tags comics
// @Produce json
// @Success 200 {array} models.ComicDB "All comics"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /comics/public [get]
func NewListPublicComicsHandler(svc PublicComicLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		comics, err := svc.ListPublic(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, msgInternalError)
			return
		}
		if comics == nil {
			comics = []models.ComicDB{}
		}

		writeJSON(w, r, http.StatusOK, comics)
	}
}
