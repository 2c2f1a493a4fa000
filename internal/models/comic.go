package models

import (
	"time"

	"github.com/google/uuid"
)

// ComicStatus is the reading state of a comic.
type ComicStatus string

const (
	ComicStatusPending ComicStatus = "pending"
	ComicStatusRead    ComicStatus = "read"
)

// Valid reports whether s is one of the known statuses.
func (s ComicStatus) Valid() bool {
	return s == ComicStatusPending || s == ComicStatusRead
}

// ComicDB represents a comic record in the database.
// swagger:model Comic
type ComicDB struct {
	ComicID   uuid.UUID   `json:"id" db:"comic_id"`
	Title     string      `json:"title" db:"title"`
	Author    string      `json:"author" db:"author"`
	Year      int         `json:"year" db:"year"`
	Publisher *string     `json:"publisher,omitempty" db:"publisher"`
	Status    ComicStatus `json:"status" db:"status"`
	OwnerID   uuid.UUID   `json:"owner_id" db:"owner_id"` // set once on insert
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" db:"updated_at"`
}

// ComicUpdate holds the fields of a partial update. Nil fields are left unchanged.
// ClearPublisher sets the publisher to NULL and wins over Publisher.
type ComicUpdate struct {
	Title          *string
	Author         *string
	Year           *int
	Publisher      *string
	ClearPublisher bool
	Status         *ComicStatus
}

// Empty reports whether no field is set.
func (u ComicUpdate) Empty() bool {
	return u.Title == nil && u.Author == nil && u.Year == nil &&
		u.Publisher == nil && !u.ClearPublisher && u.Status == nil
}
