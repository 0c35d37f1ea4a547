// Package service implements the directory operations behind the HTTP
// handlers: grouped and searched listings, detail pages with past and
// upcoming shows, and the create/update/delete writes.
//
// Every write returns nil, a *ValidationError, an error wrapping
// ErrNotFound, or a *PersistenceError.  Classification of shows is done
// on each read against the injected clock and is never stored.
package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/marlonxteban/fyyur/internal/logging"
	"github.com/marlonxteban/fyyur/internal/model"
	"github.com/marlonxteban/fyyur/internal/queue"
	"github.com/marlonxteban/fyyur/internal/utils"
)

// VenueStore is the persistence surface the directory needs for venues.
// *repository.VenueRepo implements it.
type VenueStore interface {
	Create(ctx context.Context, v *model.Venue) error
	GetByID(ctx context.Context, id uint64) (*model.Venue, error)
	ListAll(ctx context.Context) ([]*model.Venue, error)
	SearchByName(ctx context.Context, term string) ([]*model.Venue, error)
	Update(ctx context.Context, v *model.Venue) error
	Delete(ctx context.Context, id uint64) (bool, error)
}

// ArtistStore is implemented by *repository.ArtistRepo.
type ArtistStore interface {
	Create(ctx context.Context, a *model.Artist) error
	GetByID(ctx context.Context, id uint64) (*model.Artist, error)
	ListAll(ctx context.Context) ([]*model.Artist, error)
	SearchByName(ctx context.Context, term string) ([]*model.Artist, error)
	Update(ctx context.Context, a *model.Artist) error
}

// ShowStore is implemented by *repository.ShowRepo.
type ShowStore interface {
	Create(ctx context.Context, s model.Show) error
	ListAll(ctx context.Context) ([]model.ShowListing, error)
	ListByVenue(ctx context.Context, venueID uint64) ([]model.ShowListing, error)
	ListByArtist(ctx context.Context, artistID uint64) ([]model.ShowListing, error)
}

// EventPublisher receives an event after each committed write.
// *queue.Publisher implements it.
type EventPublisher interface {
	Publish(ctx context.Context, ev queue.DirectoryEvent) error
}

// Directory bundles the stores and exposes the directory operations.
type Directory struct {
	venues   VenueStore
	artists  ArtistStore
	shows    ShowStore
	events   EventPublisher
	now      func() time.Time
	validate *validator.Validate
}

// Option customises a Directory.
type Option func(*Directory)

// WithClock replaces time.Now as the source of "now" for past/upcoming
// classification.
func WithClock(now func() time.Time) Option {
	return func(d *Directory) { d.now = now }
}

// WithPublisher sets where write events are sent.  Without it events are
// dropped.
func WithPublisher(p EventPublisher) Option {
	return func(d *Directory) { d.events = p }
}

// NewDirectory constructs a Directory and panics if any store is nil.
func NewDirectory(venues VenueStore, artists ArtistStore, shows ShowStore, opts ...Option) *Directory {
	if venues == nil || artists == nil || shows == nil {
		panic("nil store passed to NewDirectory")
	}
	d := &Directory{
		venues:   venues,
		artists:  artists,
		shows:    shows,
		now:      time.Now,
		validate: newValidator(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// publish sends ev after a commit.  Failures are logged only: the write
// already succeeded and the user sees the success notice.
func (d *Directory) publish(ctx context.Context, ev queue.DirectoryEvent) {
	if d.events == nil {
		return
	}
	ev.OccurredAt = d.now().UTC()
	if err := d.events.Publish(ctx, ev); err != nil {
		logging.Warn().Err(err).Str("kind", ev.Kind).Msg("activity event not published")
	}
}

// upcomingCounts returns, per venue id and per artist id, how many shows
// are upcoming at now.
func (d *Directory) upcomingCounts(ctx context.Context, now time.Time) (byVenue, byArtist map[uint64]int, err error) {
	shows, err := d.shows.ListAll(ctx)
	if err != nil {
		return nil, nil, err
	}
	venueStarts := make(map[uint64][]time.Time)
	artistStarts := make(map[uint64][]time.Time)
	for _, s := range shows {
		venueStarts[s.VenueID] = append(venueStarts[s.VenueID], s.StartTime)
		artistStarts[s.ArtistID] = append(artistStarts[s.ArtistID], s.StartTime)
	}
	return countEach(venueStarts, now), countEach(artistStarts, now), nil
}

func countEach(starts map[uint64][]time.Time, now time.Time) map[uint64]int {
	out := make(map[uint64]int, len(starts))
	for id, st := range starts {
		out[id] = utils.CountUpcoming(st, now)
	}
	return out
}
