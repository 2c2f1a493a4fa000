package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/comics-keeper/internal/logger"
	"github.com/sbilibin2017/comics-keeper/internal/services"
)

//go:generate mockgen -source=comic_delete.go -destination=comic_delete_mock.go -package=handlers

// ComicDeleter removes a comic of an owner.
type ComicDeleter interface {
	Delete(ctx context.Context, ownerID, comicID uuid.UUID) error
}

// NewDeleteComicHandler returns an HTTP handler that removes one of the caller's comics.
// @Summary Delete a comic
// @Tags comics
// @Produce json
// @Param id path string true "Comic ID"
// @Success 200 {object} handlers.MessageResponse "Comic deleted"
// @Failure 400 {object} handlers.ErrorResponse "Invalid comic id"
// @Failure 401 {object} handlers.ErrorResponse "Access token is missing"
// @Failure 403 {object} handlers.ErrorResponse "Invalid access token"
// @Failure 404 {object} handlers.ErrorResponse "Comic not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /comics/{id} [delete]
// @Security BearerAuth
func NewDeleteComicHandler(svc ComicDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := requireOwner(w, r)
		if !ok {
			return
		}

		comicID, ok := parseComicID(w, r, chi.URLParam(r, "id"))
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), ownerID, comicID); err != nil {
			if errors.Is(err, services.ErrComicNotFound) {
				writeError(w, r, http.StatusNotFound, msgComicNotFound)
				return
			}
			logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
			writeError(w, r, http.StatusInternalServerError, msgInternalError)
			return
		}

		writeJSON(w, r, http.StatusOK, MessageResponse{Message: "Comic deleted successfully"})
	}
}
