package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/comics-keeper/internal/logger"
	"github.com/sbilibin2017/comics-keeper/internal/models"
)

//go:generate mockgen -source=comic_create.go -destination=comic_create_mock.go -package=handlers

// ComicCreator stores a new comic for an owner.
type ComicCreator interface {
	Create(ctx context.Context, ownerID uuid.UUID, comic models.ComicDB) (*models.ComicDB, error)
}

// NewCreateComicHandler returns an HTTP handler that adds a comic to the caller's collection.
// @Summary Create a comic
// @Description Title, author and year are required. Status defaults to pending.
// @Tags comics
// @Accept json
// @Produce json
// @Param comicRequest body handlers.ComicRequest true "Comic"
// @Success 201 {object} handlers.ComicResponse "Comic created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 {object} handlers.ErrorResponse "Access token is missing"
// @Failure 403 {object} handlers.ErrorResponse "Invalid access token"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /comics [post]
// @Security BearerAuth
func NewCreateComicHandler(svc ComicCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := requireOwner(w, r)
		if !ok {
			return
		}

		var req ComicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, http.StatusBadRequest, decodeError(err))
			return
		}

		if !nonEmpty(req.Title) || !nonEmpty(req.Author) || req.Year == nil {
			writeError(w, r, http.StatusBadRequest, "Fields title, author and year are required")
			return
		}
		if req.Status != nil && *req.Status != "" && !req.Status.Valid() {
			writeError(w, r, http.StatusBadRequest, msgInvalidStatus)
			return
		}

		comic := models.ComicDB{
			Title:  strings.TrimSpace(*req.Title),
			Author: strings.TrimSpace(*req.Author),
			Year:   int(*req.Year),
		}
		if nonEmpty(req.Publisher.Value) {
			publisher := strings.TrimSpace(*req.Publisher.Value)
			comic.Publisher = &publisher
		}
		if req.Status != nil {
			// the service turns "" into pending
			comic.Status = *req.Status
		}

		created, err := svc.Create(r.Context(), ownerID, comic)
		if err != nil {
			logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, r, http.StatusCreated, ComicResponse{
			Message: "Comic created successfully",
			Comic:   *created,
		})
	}
}
