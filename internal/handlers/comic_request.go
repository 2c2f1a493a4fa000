package handlers

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sbilibin2017/comics-keeper/internal/middlewares"
	"github.com/sbilibin2017/comics-keeper/internal/models"
)

var errInvalidYear = errors.New("year must be a number")

const (
	msgComicNotFound = "Comic not found"
	msgInvalidYear   = "year must be a number"
	msgInvalidStatus = "status must be 'pending' or 'read'"
)

// Year is an integral year that decodes from a JSON number or a numeric string.
type Year int

// UnmarshalJSON implements json.Unmarshaler.
func (y *Year) UnmarshalJSON(data []byte) error {
	s := string(data)
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return errInvalidYear
	}

	*y = Year(f)
	return nil
}

// OptionalString tells an absent field apart from an explicit null.
type OptionalString struct {
	Set   bool    // the field was present in the body
	Value *string // nil for null
}

// UnmarshalJSON implements json.Unmarshaler. It is called for null too.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	o.Value = &s
	return nil
}

// ComicRequest represents the JSON body for creating or updating a comic
// swagger:model ComicRequest
type ComicRequest struct {
	// Title
	// default: Watchmen
	Title *string `json:"title"`

	// Author
	// default: Alan Moore
	Author *string `json:"author"`

	// Publication year, as a number or a numeric string
	// default: 1986
	Year *Year `json:"year" swaggertype:"integer"`

	// Publisher. On update null or an empty string clears it.
	// default: DC Comics
	Publisher OptionalString `json:"publisher" swaggertype:"string"`

	// Reading status: pending or read. Empty means pending on create.
	// default: pending
	Status *models.ComicStatus `json:"status" swaggertype:"string" enums:"pending,read"`
}

// ComicResponse represents a created comic
// swagger:model ComicResponse
type ComicResponse struct {
	// Success message
	// default: Comic created successfully
	Message string         `json:"message"`
	Comic   models.ComicDB `json:"comic"`
}

// decodeError maps a body decoding failure to the message returned to the client.
func decodeError(err error) string {
	if errors.Is(err, errInvalidYear) {
		return msgInvalidYear
	}
	return "Invalid request body"
}

// requireOwner returns the authenticated account id, writing 401 when there is none.
func requireOwner(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims := middlewares.GetClaimsFromContext(r.Context())
	if claims == nil || claims.UserID == uuid.Nil {
		writeError(w, r, http.StatusUnauthorized, "Access token is missing")
		return uuid.Nil, false
	}
	return claims.UserID, true
}

func parseComicID(w http.ResponseWriter, r *http.Request, raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid comic id")
		return uuid.Nil, false
	}
	return id, true
}

func nonEmpty(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
