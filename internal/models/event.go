package models

// Comic event operations.
const (
	ComicCreated = "created"
	ComicUpdated = "updated"
	ComicDeleted = "deleted"
)

// ComicEvent describes a change to a comic, published to Kafka.
type ComicEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (seconds) of the change.
	ComicID   string `json:"comic_id"`  // ComicID is the changed comic.
	OwnerID   string `json:"owner_id"`  // OwnerID is the account that made the change.
	Operation string `json:"operation"` // Operation is one of created, updated, deleted.
}
