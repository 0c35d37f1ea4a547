// Package repository contains data access logic for shows.  A show is
// identified by (venue_id, artist_id, start_time); listings join the
// venue and artist rows so pages can render names and images without
// further lookups.
package repository

import (
	"context"
	"database/sql"

	"github.com/marlonxteban/fyyur/internal/model"
)

const showListingSelect = `SELECT s.venue_id, s.artist_id, s.start_time,
	       v.name, v.image_link, a.name, a.image_link
	FROM shows s
	JOIN venues v  ON v.id = s.venue_id
	JOIN artists a ON a.id = s.artist_id`

// ShowRepo manages persistence for shows.
type ShowRepo struct {
	db *sql.DB
}

// NewShowRepo constructs a ShowRepo with the given DB handle.
func NewShowRepo(db *sql.DB) *ShowRepo {
	return &ShowRepo{db: db}
}

// Create books a show.  A second booking of the same artist at the same
// venue and instant yields ErrDuplicateShow; an unknown venue or artist id
// yields ErrUnknownParty.
func (r *ShowRepo) Create(ctx context.Context, s model.Show) error {
	const q = `INSERT INTO shows (venue_id, artist_id, start_time) VALUES (?, ?, ?)`
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, q, s.VenueID, s.ArtistID, s.StartTime.UTC())
		return err
	})
	switch mysqlErrNumber(err) {
	case mysqlDuplicateEntry:
		return ErrDuplicateShow
	case mysqlNoReferencedRow:
		return ErrUnknownParty
	}
	return err
}

// ListAll returns every show joined with its venue and artist, ordered by
// start time.
func (r *ShowRepo) ListAll(ctx context.Context) ([]model.ShowListing, error) {
	return r.list(ctx, showListingSelect+" ORDER BY s.start_time, s.venue_id, s.artist_id")
}

// ListByVenue returns the shows booked at one venue ordered by start time.
func (r *ShowRepo) ListByVenue(ctx context.Context, venueID uint64) ([]model.ShowListing, error) {
	return r.list(ctx, showListingSelect+" WHERE s.venue_id = ? ORDER BY s.start_time, s.artist_id", venueID)
}

// ListByArtist returns the shows one artist plays ordered by start time.
func (r *ShowRepo) ListByArtist(ctx context.Context, artistID uint64) ([]model.ShowListing, error) {
	return r.list(ctx, showListingSelect+" WHERE s.artist_id = ? ORDER BY s.start_time, s.venue_id", artistID)
}

func (r *ShowRepo) list(ctx context.Context, q string, args ...any) ([]model.ShowListing, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ShowListing
	for rows.Next() {
		var s model.ShowListing
		if err := rows.Scan(
			&s.VenueID, &s.ArtistID, &s.StartTime,
			&s.VenueName, &s.VenueImageLink, &s.ArtistName, &s.ArtistImageLink,
		); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
