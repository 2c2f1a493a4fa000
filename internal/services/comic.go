package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/comics-keeper/internal/logger"
	"github.com/sbilibin2017/comics-keeper/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=comic.go -destination=comic_mock.go -package=services

// ErrComicNotFound is returned when no comic matches the id for the requesting owner.
var ErrComicNotFound = errors.New("comic not found")

// ComicReader defines comic read operations.
type ComicReader interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.ComicDB, error)
	ListAll(ctx context.Context) ([]models.ComicDB, error)
}

// ComicWriter defines owner-scoped comic write operations.
type ComicWriter interface {
	Save(ctx context.Context, comic models.ComicDB) (*models.ComicDB, error)
	Update(ctx context.Context, comicID, ownerID uuid.UUID, upd models.ComicUpdate) (*models.ComicDB, error)
	Delete(ctx context.Context, comicID, ownerID uuid.UUID) error
}

// ComicCache caches the public listing. SetPublic is a no-op when the listing
// was invalidated after version was read.
type ComicCache interface {
	GetPublic(ctx context.Context) ([]models.ComicDB, error)
	PublicVersion(ctx context.Context) (int64, error)
	SetPublic(ctx context.Context, comics []models.ComicDB, version int64) error
	InvalidatePublic(ctx context.Context) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ComicService implements the comic operations. Everything except ListPublic is
// scoped to the owner passed in by the caller.
type ComicService struct {
	reader      ComicReader
	writer      ComicWriter
	cache       ComicCache
	kafkaWriter KafkaWriter
}

// NewComicService creates a new ComicService. cache and kafkaWriter may be nil.
func NewComicService(reader ComicReader, writer ComicWriter, cache ComicCache, kafkaWriter KafkaWriter) *ComicService {
	return &ComicService{
		reader:      reader,
		writer:      writer,
		cache:       cache,
		kafkaWriter: kafkaWriter,
	}
}

// List returns the comics owned by ownerID.
func (s *ComicService) List(ctx context.Context, ownerID uuid.UUID) ([]models.ComicDB, error) {
	comics, err := s.reader.ListByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to list comics", "owner_id", ownerID, "error", err)
		return nil, err
	}
	return comics, nil
}

// Create stores a new comic owned by ownerID. An empty status defaults to pending.
func (s *ComicService) Create(ctx context.Context, ownerID uuid.UUID, comic models.ComicDB) (*models.ComicDB, error) {
	comic.OwnerID = ownerID
	if comic.Status == "" {
		comic.Status = models.ComicStatusPending
	}

	saved, err := s.writer.Save(ctx, comic)
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to create comic", "owner_id", ownerID, "error", err)
		return nil, err
	}

	s.afterWrite(ctx, saved.ComicID, ownerID, models.ComicCreated)
	return saved, nil
}

// Update applies a partial update to a comic owned by ownerID.
func (s *ComicService) Update(ctx context.Context, ownerID, comicID uuid.UUID, upd models.ComicUpdate) (*models.ComicDB, error) {
	updated, err := s.writer.Update(ctx, comicID, ownerID, upd)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrComicNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to update comic", "comic_id", comicID, "owner_id", ownerID, "error", err)
		return nil, err
	}

	s.afterWrite(ctx, comicID, ownerID, models.ComicUpdated)
	return updated, nil
}

// Delete removes a comic owned by ownerID.
func (s *ComicService) Delete(ctx context.Context, ownerID, comicID uuid.UUID) error {
	err := s.writer.Delete(ctx, comicID, ownerID)
	if errors.Is(err, models.ErrNotFound) {
		return ErrComicNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Errorw("failed to delete comic", "comic_id", comicID, "owner_id", ownerID, "error", err)
		return err
	}

	s.afterWrite(ctx, comicID, ownerID, models.ComicDeleted)
	return nil
}

// ListPublic returns the comics of every owner, from cache when possible.
func (s *ComicService) ListPublic(ctx context.Context) ([]models.ComicDB, error) {
	log := logger.FromContext(ctx)

	fill := false
	var version int64
	if s.cache != nil {
		comics, err := s.cache.GetPublic(ctx)
		if err == nil {
			return comics, nil
		}
		if !errors.Is(err, models.ErrNotFound) {
			log.Warnw("failed to read public comics from cache", "error", err)
		}

		// read before the store so a write landing in between wins
		version, err = s.cache.PublicVersion(ctx)
		if err != nil {
			log.Warnw("failed to read public comics cache version", "error", err)
		}
		fill = err == nil
	}

	comics, err := s.reader.ListAll(ctx)
	if err != nil {
		log.Errorw("failed to list public comics", "error", err)
		return nil, err
	}

	if fill {
		if err := s.cache.SetPublic(ctx, comics, version); err != nil {
			log.Warnw("failed to cache public comics", "error", err)
		}
	}

	return comics, nil
}

// afterWrite invalidates the public cache and publishes the change event.
// Failures are logged only; the write itself already succeeded.
func (s *ComicService) afterWrite(ctx context.Context, comicID, ownerID uuid.UUID, operation string) {
	if s.cache != nil {
		if err := s.cache.InvalidatePublic(ctx); err != nil {
			logger.FromContext(ctx).Warnw("failed to invalidate public comics cache", "error", err)
		}
	}

	s.publishEvent(ctx, models.ComicEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		ComicID:   comicID.String(),
		OwnerID:   ownerID.String(),
		Operation: operation,
	})
}

// publishEvent publishes a comic event to Kafka.
func (s *ComicService) publishEvent(ctx context.Context, event models.ComicEvent) {
	log := logger.FromContext(ctx)

	if s.kafkaWriter == nil {
		log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("Failed to marshal comic event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ComicID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish comic event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		log.Infow("Comic event published to Kafka", "event_id", event.EventID, "operation", event.Operation)
	}
}
