// Package repository contains data access logic separated from HTTP handlers.
// This file defines repository methods for venues.  Writes run inside
// WithTx so every exit path resolves and releases the transaction.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/marlonxteban/fyyur/internal/model"
)

const venueColumns = `id, name, genres, city, state, address, phone, image_link,
	facebook_link, website, seeking_talent, seeking_description`

// VenueRepo encapsulates all database queries related to venues.
type VenueRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewVenueRepo constructs a VenueRepo with the provided DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVenue(s rowScanner) (*model.Venue, error) {
	v := new(model.Venue)
	err := s.Scan(&v.ID, &v.Name, &v.Genres, &v.City, &v.State, &v.Address, &v.Phone,
		&v.ImageLink, &v.FacebookLink, &v.Website, &v.SeekingTalent, &v.SeekingDescription)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Create inserts a new venue.  On success the venue's ID field is
// populated with the auto-generated value.
func (r *VenueRepo) Create(ctx context.Context, v *model.Venue) error {
	const q = `INSERT INTO venues (name, genres, city, state, address, phone, image_link,
	           facebook_link, website, seeking_talent, seeking_description)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, q, v.Name, v.Genres, v.City, v.State, v.Address, v.Phone,
			v.ImageLink, v.FacebookLink, v.Website, v.SeekingTalent, v.SeekingDescription)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		v.ID = uint64(id)
		return nil
	})
}

// GetByID fetches a venue by its ID.  It returns ErrVenueNotFound if no
// row is found.
func (r *VenueRepo) GetByID(ctx context.Context, id uint64) (*model.Venue, error) {
	q := "SELECT " + venueColumns + " FROM venues WHERE id = ?"
	v, err := scanVenue(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}
	return v, nil
}

// ListAll returns every venue ordered by id.
func (r *VenueRepo) ListAll(ctx context.Context) ([]*model.Venue, error) {
	return r.list(ctx, "SELECT "+venueColumns+" FROM venues ORDER BY id")
}

// SearchByName returns venues whose name contains term, ignoring case.
func (r *VenueRepo) SearchByName(ctx context.Context, term string) ([]*model.Venue, error) {
	q := "SELECT " + venueColumns + " FROM venues WHERE LOWER(name) LIKE ? ORDER BY id"
	return r.list(ctx, q, containsPattern(term))
}

func (r *VenueRepo) list(ctx context.Context, q string, args ...any) ([]*model.Venue, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update overwrites every editable column of the venue with v's values.
// It returns ErrVenueNotFound when the id does not exist.  MySQL reports
// zero affected rows for an update that changes nothing, so existence is
// checked with a locking read first.
func (r *VenueRepo) Update(ctx context.Context, v *model.Venue) error {
	const q = `UPDATE venues
	           SET name = ?, genres = ?, city = ?, state = ?, address = ?, phone = ?, image_link = ?,
	               facebook_link = ?, website = ?, seeking_talent = ?, seeking_description = ?
	           WHERE id = ?`
	return WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var one int
		if err := tx.QueryRowContext(ctx, "SELECT 1 FROM venues WHERE id = ? FOR UPDATE", v.ID).Scan(&one); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrVenueNotFound
			}
			return err
		}
		_, err := tx.ExecContext(ctx, q, v.Name, v.Genres, v.City, v.State, v.Address, v.Phone,
			v.ImageLink, v.FacebookLink, v.Website, v.SeekingTalent, v.SeekingDescription, v.ID)
		return err
	})
}

// Delete removes a venue; its shows go with it through the ON DELETE
// CASCADE foreign key.  Deleting an id that does not exist is not an
// error.  The returned bool reports whether a row was removed.
func (r *VenueRepo) Delete(ctx context.Context, id uint64) (bool, error) {
	var deleted bool
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM venues WHERE id = ?", id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		deleted = n > 0
		return nil
	})
	return deleted, err
}
