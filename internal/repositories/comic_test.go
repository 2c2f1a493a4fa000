package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/comics-keeper/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var comicRowColumns = []string{
	"comic_id", "title", "author", "year", "publisher", "status", "owner_id", "created_at", "updated_at",
}

func newComicMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestComicReadRepository_ListByOwner(t *testing.T) {
	db, mock := newComicMockDB(t)
	repo := NewComicReadRepository(db)

	ownerID := uuid.New()
	comicID := uuid.New()
	now := time.Now().UTC()

	t.Run("rows", func(t *testing.T) {
		rows := sqlmock.NewRows(comicRowColumns).
			AddRow(comicID.String(), "Watchmen", "Alan Moore", int64(1986), "DC", "pending", ownerID.String(), now, now)
		mock.ExpectQuery(`(?s)SELECT .+\s+FROM comics\s+WHERE owner_id = \$1`).
			WithArgs(ownerID).
			WillReturnRows(rows)

		comics, err := repo.ListByOwner(context.Background(), ownerID)
		require.NoError(t, err)
		require.Len(t, comics, 1)
		assert.Equal(t, comicID, comics[0].ComicID)
		assert.Equal(t, "Watchmen", comics[0].Title)
		assert.Equal(t, 1986, comics[0].Year)
		require.NotNil(t, comics[0].Publisher)
		assert.Equal(t, "DC", *comics[0].Publisher)
		assert.Equal(t, models.ComicStatusPending, comics[0].Status)
		assert.Equal(t, ownerID, comics[0].OwnerID)
	})

	t.Run("empty is not nil", func(t *testing.T) {
		mock.ExpectQuery(`(?s)SELECT .+\s+FROM comics\s+WHERE owner_id = \$1`).
			WithArgs(ownerID).
			WillReturnRows(sqlmock.NewRows(comicRowColumns))

		comics, err := repo.ListByOwner(context.Background(), ownerID)
		require.NoError(t, err)
		assert.NotNil(t, comics)
		assert.Empty(t, comics)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(`(?s)SELECT .+\s+FROM comics`).
			WithArgs(ownerID).
			WillReturnError(errors.New("connection lost"))

		comics, err := repo.ListByOwner(context.Background(), ownerID)
		assert.Error(t, err)
		assert.Nil(t, comics)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComicReadRepository_ListAll(t *testing.T) {
	db, mock := newComicMockDB(t)
	repo := NewComicReadRepository(db)

	ownerA, ownerB := uuid.New(), uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows(comicRowColumns).
		AddRow(uuid.NewString(), "Maus", "Art Spiegelman", int64(1991), nil, "read", ownerA.String(), now, now).
		AddRow(uuid.NewString(), "Saga", "Brian K. Vaughan", int64(2012), nil, "pending", ownerB.String(), now, now)
	mock.ExpectQuery(`(?s)SELECT .+\s+FROM comics\s+ORDER BY created_at`).
		WithArgs().
		WillReturnRows(rows)

	comics, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, comics, 2)
	assert.Equal(t, ownerA, comics[0].OwnerID)
	assert.Equal(t, ownerB, comics[1].OwnerID)
	assert.Nil(t, comics[0].Publisher)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComicWriteRepository_Save(t *testing.T) {
	db, mock := newComicMockDB(t)
	repo := NewComicWriteRepository(db)

	ownerID := uuid.New()
	comicID := uuid.New()
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows(comicRowColumns).
			AddRow(comicID.String(), "Akira", "Katsuhiro Otomo", int64(1982), nil, "pending", ownerID.String(), now, now)
		mock.ExpectQuery(`(?s)INSERT INTO comics .+\s+RETURNING comic_id`).
			WithArgs("Akira", "Katsuhiro Otomo", 1982, nil, "pending", ownerID).
			WillReturnRows(rows)

		saved, err := repo.Save(context.Background(), models.ComicDB{
			Title:   "Akira",
			Author:  "Katsuhiro Otomo",
			Year:    1982,
			Status:  models.ComicStatusPending,
			OwnerID: ownerID,
		})
		require.NoError(t, err)
		assert.Equal(t, comicID, saved.ComicID)
		assert.Equal(t, ownerID, saved.OwnerID)
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(`(?s)INSERT INTO comics`).
			WillReturnError(errors.New("insert failed"))

		saved, err := repo.Save(context.Background(), models.ComicDB{Title: "x", Author: "y", Year: 1, Status: models.ComicStatusRead, OwnerID: ownerID})
		assert.Error(t, err)
		assert.Nil(t, saved)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComicWriteRepository_Update(t *testing.T) {
	db, mock := newComicMockDB(t)
	repo := NewComicWriteRepository(db)

	ownerID := uuid.New()
	comicID := uuid.New()
	now := time.Now().UTC()

	t.Run("status only", func(t *testing.T) {
		status := models.ComicStatusRead
		rows := sqlmock.NewRows(comicRowColumns).
			AddRow(comicID.String(), "Bone", "Jeff Smith", int64(1991), "Cartoon Books", "read", ownerID.String(), now, now)
		mock.ExpectQuery(`(?s)UPDATE comics\s+SET status = \$1, updated_at = NOW\(\)\s+WHERE comic_id = \$2 AND owner_id = \$3\s+RETURNING`).
			WithArgs("read", comicID, ownerID).
			WillReturnRows(rows)

		updated, err := repo.Update(context.Background(), comicID, ownerID, models.ComicUpdate{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, models.ComicStatusRead, updated.Status)
		assert.Equal(t, "Bone", updated.Title)
	})

	t.Run("all fields", func(t *testing.T) {
		title, author, publisher := "Hellboy", "Mike Mignola", "Dark Horse"
		year := 1994
		status := models.ComicStatusPending
		rows := sqlmock.NewRows(comicRowColumns).
			AddRow(comicID.String(), title, author, int64(year), publisher, "pending", ownerID.String(), now, now)
		mock.ExpectQuery(`(?s)UPDATE comics\s+SET title = \$1, author = \$2, year = \$3, publisher = \$4, status = \$5, updated_at = NOW\(\)\s+WHERE comic_id = \$6 AND owner_id = \$7`).
			WithArgs(title, author, year, publisher, "pending", comicID, ownerID).
			WillReturnRows(rows)

		updated, err := repo.Update(context.Background(), comicID, ownerID, models.ComicUpdate{
			Title: &title, Author: &author, Year: &year, Publisher: &publisher, Status: &status,
		})
		require.NoError(t, err)
		assert.Equal(t, year, updated.Year)
	})

	t.Run("clear publisher", func(t *testing.T) {
		rows := sqlmock.NewRows(comicRowColumns).
			AddRow(comicID.String(), "Bone", "Jeff Smith", int64(1991), nil, "read", ownerID.String(), now, now)
		mock.ExpectQuery(`(?s)UPDATE comics\s+SET publisher = NULL, updated_at = NOW\(\)\s+WHERE comic_id = \$1 AND owner_id = \$2\s+RETURNING`).
			WithArgs(comicID, ownerID).
			WillReturnRows(rows)

		publisher := "ignored"
		updated, err := repo.Update(context.Background(), comicID, ownerID, models.ComicUpdate{
			Publisher: &publisher, ClearPublisher: true,
		})
		require.NoError(t, err)
		assert.Nil(t, updated.Publisher)
	})

	t.Run("no match", func(t *testing.T) {
		status := models.ComicStatusRead
		mock.ExpectQuery(`(?s)UPDATE comics`).
			WithArgs("read", comicID, ownerID).
			WillReturnRows(sqlmock.NewRows(comicRowColumns))

		updated, err := repo.Update(context.Background(), comicID, ownerID, models.ComicUpdate{Status: &status})
		assert.ErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, updated)
	})

	t.Run("db error", func(t *testing.T) {
		status := models.ComicStatusRead
		mock.ExpectQuery(`(?s)UPDATE comics`).
			WillReturnError(sql.ErrConnDone)

		updated, err := repo.Update(context.Background(), comicID, ownerID, models.ComicUpdate{Status: &status})
		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NotErrorIs(t, err, models.ErrNotFound)
		assert.Nil(t, updated)
	})

	t.Run("empty update", func(t *testing.T) {
		updated, err := repo.Update(context.Background(), comicID, ownerID, models.ComicUpdate{})
		assert.Error(t, err)
		assert.Nil(t, updated)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestComicWriteRepository_Delete(t *testing.T) {
	db, mock := newComicMockDB(t)
	repo := NewComicWriteRepository(db)

	ownerID := uuid.New()
	comicID := uuid.New()

	tests := []struct {
		name    string
		setup   func()
		wantErr error
	}{
		{
			name: "deleted",
			setup: func() {
				mock.ExpectExec(`(?s)DELETE FROM comics\s+WHERE comic_id = \$1 AND owner_id = \$2`).
					WithArgs(comicID, ownerID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "nothing matched",
			setup: func() {
				mock.ExpectExec(`(?s)DELETE FROM comics`).
					WithArgs(comicID, ownerID).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: models.ErrNotFound,
		},
		{
			name: "db error",
			setup: func() {
				mock.ExpectExec(`(?s)DELETE FROM comics`).
					WithArgs(comicID, ownerID).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			err := repo.Delete(context.Background(), comicID, ownerID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}
