package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/marlonxteban/fyyur/internal/model"
)

const artistColumns = `id, name, genres, city, state, phone, image_link,
	facebook_link, website, seeking_venue, seeking_description`

// ArtistRepo encapsulates all database queries related to artists.
type ArtistRepo struct {
	db *sql.DB
}

// NewArtistRepo constructs an ArtistRepo with the provided DB handle.
func NewArtistRepo(db *sql.DB) *ArtistRepo {
	return &ArtistRepo{db: db}
}

func scanArtist(s rowScanner) (*model.Artist, error) {
	a := new(model.Artist)
	err := s.Scan(&a.ID, &a.Name, &a.Genres, &a.City, &a.State, &a.Phone,
		&a.ImageLink, &a.FacebookLink, &a.Website, &a.SeekingVenue, &a.SeekingDescription)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new artist and assigns the generated ID.
func (r *ArtistRepo) Create(ctx context.Context, a *model.Artist) error {
	const q = `INSERT INTO artists (name, genres, city, state, phone, image_link,
	           facebook_link, website, seeking_venue, seeking_description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, q, a.Name, a.Genres, a.City, a.State, a.Phone,
			a.ImageLink, a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		a.ID = uint64(id)
		return nil
	})
}

// GetByID retrieves an artist by its ID.  It returns ErrArtistNotFound if
// there is no matching row.
func (r *ArtistRepo) GetByID(ctx context.Context, id uint64) (*model.Artist, error) {
	q := "SELECT " + artistColumns + " FROM artists WHERE id = ?"
	a, err := scanArtist(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return a, nil
}

// ListAll returns every artist ordered by id.
func (r *ArtistRepo) ListAll(ctx context.Context) ([]*model.Artist, error) {
	return r.list(ctx, "SELECT "+artistColumns+" FROM artists ORDER BY id")
}

// SearchByName returns artists whose name contains term, ignoring case.
func (r *ArtistRepo) SearchByName(ctx context.Context, term string) ([]*model.Artist, error) {
	q := "SELECT " + artistColumns + " FROM artists WHERE LOWER(name) LIKE ? ORDER BY id"
	return r.list(ctx, q, containsPattern(term))
}

func (r *ArtistRepo) list(ctx context.Context, q string, args ...any) ([]*model.Artist, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites every editable column of the artist with a's values.
// It returns ErrArtistNotFound when the id does not exist.
func (r *ArtistRepo) Update(ctx context.Context, a *model.Artist) error {
	const q = `UPDATE artists
	           SET name = ?, genres = ?, city = ?, state = ?, phone = ?, image_link = ?,
	               facebook_link = ?, website = ?, seeking_venue = ?, seeking_description = ?
	           WHERE id = ?`
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var one int
		if err := tx.QueryRowContext(ctx, "SELECT 1 FROM artists WHERE id = ? FOR UPDATE", a.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrArtistNotFound
			}
			return err
		}
		_, err := tx.ExecContext(ctx, q, a.Name, a.Genres, a.City, a.State, a.Phone,
			a.ImageLink, a.FacebookLink, a.Website, a.SeekingVenue, a.SeekingDescription, a.ID)
		return err
	})
}
