package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/comics-keeper/internal/logger"
	"github.com/sbilibin2017/comics-keeper/internal/models"
	"github.com/sbilibin2017/comics-keeper/internal/services"
)

//go:generate mockgen -source=comic_update.go -destination=comic_update_mock.go -package=handlers

// ComicUpdater applies a partial update to a comic of an owner.
type ComicUpdater interface {
	Update(ctx context.Context, ownerID, comicID uuid.UUID, upd models.ComicUpdate) (*models.ComicDB, error)
}

// NewUpdateComicHandler returns an HTTP handler that partially updates one of the caller's comics.
// @Summary Update a comic
// @Description Updates the given fields of a comic owned by the caller. At least one field is required. A null or empty publisher clears it.
// @Tags comics
// @Accept json
// @Produce json
// @Param id path string true "Comic ID"
// @Param comicRequest body handlers.ComicRequest true "Fields to update"
// @Success 200 {object} models.ComicDB "Updated comic"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Access token is missing"
// @Failure 403 {object} handlers.ErrorResponse "Invalid access token"
// @Failure 404 {object} handlers.ErrorResponse "Comic not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /comics/{id} [put]
// @Security BearerAuth
func NewUpdateComicHandler(svc ComicUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := requireOwner(w, r)
		if !ok {
			return
		}

		comicID, ok := parseComicID(w, r, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		var req ComicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, decodeError(err))
			return
		}

		var upd models.ComicUpdate
		if req.Title != nil {
			if !nonEmpty(req.Title) {
				writeError(w, r, http.StatusBadRequest, "title must not be empty")
				return
			}
			title := strings.TrimSpace(*req.Title)
			upd.Title = &title
		}
		if req.Author != nil {
			if !nonEmpty(req.Author) {
				writeError(w, r, http.StatusBadRequest, "author must not be empty")
				return
			}
			author := strings.TrimSpace(*req.Author)
			upd.Author = &author
		}
		if req.Year != nil {
			year := int(*req.Year)
			upd.Year = &year
		}
		if req.Publisher.Set {
			if nonEmpty(req.Publisher.Value) {
				publisher := strings.TrimSpace(*req.Publisher.Value)
				upd.Publisher = &publisher
			} else {
				upd.ClearPublisher = true
			}
		}
		if req.Status != nil {
			if !req.Status.Valid() {
				writeError(w, r, http.StatusBadRequest, msgInvalidStatus)
				return
			}
			upd.Status = req.Status
		}
		if upd.Empty() {
			writeError(w, r, http.StatusBadRequest, "No fields to update")
			return
		}

		updated, err := svc.Update(r.Context(), ownerID, comicID, upd)
		if err != nil {
			if errors.Is(err, services.ErrComicNotFound) {
				writeError(w, r, http.StatusNotFound, msgComicNotFound)
				return
			}
			logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, r, http.StatusOK, updated)
	}
}
