package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/comics-keeper/internal/models"
)

const comicColumns = "comic_id, title, author, year, publisher, status, owner_id, created_at, updated_at"

// ComicReadRepository handles comic read operations.
type ComicReadRepository struct {
	db *sqlx.DB
}

func NewComicReadRepository(db *sqlx.DB) *ComicReadRepository {
	return &ComicReadRepository{db: db}
}

// ListByOwner returns every comic owned by ownerID.
func (r *ComicReadRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.ComicDB, error) {
	query := `
		SELECT ` + comicColumns + `
		FROM comics
		WHERE owner_id = $1
		ORDER BY created_at
	`

	comics := []models.ComicDB{}
	err := r.db.SelectContext(ctx, &comics, query, ownerID)

	logQuery(ctx, query, []any{ownerID}, len(comics), err)

	if err != nil {
		return nil, fmt.Errorf("list comics by owner: %w", err)
	}
	return comics, nil
}

// ListAll returns the comics of every owner.
func (r *ComicReadRepository) ListAll(ctx context.Context) ([]models.ComicDB, error) {
	query := `
		SELECT ` + comicColumns + `
		FROM comics
		ORDER BY created_at
	`

	comics := []models.ComicDB{}
	err := r.db.SelectContext(ctx, &comics, query)

	logQuery(ctx, query, nil, len(comics), err)

	if err != nil {
		return nil, fmt.Errorf("list all comics: %w", err)
	}
	return comics, nil
}

// ComicWriteRepository handles comic write operations. Update and Delete match on
// comic id and owner together, so a comic of another owner behaves as missing.
type ComicWriteRepository struct {
	db *sqlx.DB
}

func NewComicWriteRepository(db *sqlx.DB) *ComicWriteRepository {
	return &ComicWriteRepository{db: db}
}

// Save inserts a comic and returns the stored row.
func (r *ComicWriteRepository) Save(ctx context.Context, comic models.ComicDB) (*models.ComicDB, error) {
	query := `
		INSERT INTO comics (title, author, year, publisher, status, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + comicColumns

	args := []any{comic.Title, comic.Author, comic.Year, comic.Publisher, string(comic.Status), comic.OwnerID}

	var saved models.ComicDB
	err := r.db.GetContext(ctx, &saved, query, args...)

	logQuery(ctx, query, args, saved.ComicID, err)

	if err != nil {
		return nil, fmt.Errorf("save comic: %w", err)
	}
	return &saved, nil
}

// Update applies the non-nil fields of upd and returns the updated row,
// or models.ErrNotFound when no comic matches comicID and ownerID.
func (r *ComicWriteRepository) Update(ctx context.Context, comicID, ownerID uuid.UUID, upd models.ComicUpdate) (*models.ComicDB, error) {
	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if upd.Title != nil {
		set("title", *upd.Title)
	}
	if upd.Author != nil {
		set("author", *upd.Author)
	}
	if upd.Year != nil {
		set("year", *upd.Year)
	}
	switch {
	case upd.ClearPublisher:
		sets = append(sets, "publisher = NULL")
	case upd.Publisher != nil:
		set("publisher", *upd.Publisher)
	}
	if upd.Status != nil {
		set("status", string(*upd.Status))
	}
	if len(sets) == 0 {
		return nil, errors.New("update comic: no fields to update")
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, comicID, ownerID)
	query := fmt.Sprintf(`
		UPDATE comics
		SET %s
		WHERE comic_id = $%d AND owner_id = $%d
		RETURNING `+comicColumns,
		strings.Join(sets, ", "), len(args)-1, len(args))

	var updated models.ComicDB
	err := r.db.GetContext(ctx, &updated, query, args...)

	logQuery(ctx, query, args, updated.ComicID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update comic: %w", err)
	}
	return &updated, nil
}

// Delete removes the comic, or returns models.ErrNotFound when no comic matches comicID and ownerID.
func (r *ComicWriteRepository) Delete(ctx context.Context, comicID, ownerID uuid.UUID) error {
	query := `
		DELETE FROM comics
		WHERE comic_id = $1 AND owner_id = $2
	`
	args := []any{comicID, ownerID}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(ctx, query, args, rowsAffected, err)

	if err != nil {
		return fmt.Errorf("delete comic: %w", err)
	}
	if rowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}
