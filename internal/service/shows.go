package service

import (
	"context"

	"github.com/marlonxteban/fyyur/internal/model"
	"github.com/marlonxteban/fyyur/internal/queue"
)

// ListShows returns every show with venue and artist names, without any
// past/upcoming split.
func (d *Directory) ListShows(ctx context.Context) ([]ShowRow, error) {
	shows, err := d.shows.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ShowRow, 0, len(shows))
	for _, s := range shows {
		out = append(out, ShowRow{
			VenueID:         s.VenueID,
			VenueName:       s.VenueName,
			ArtistID:        s.ArtistID,
			ArtistName:      s.ArtistName,
			ArtistImageLink: s.ArtistImageLink,
			StartTime:       s.StartTime,
		})
	}
	return out, nil
}

// CreateShow books the artist at the venue at the submitted start time.
// Duplicate bookings and unknown ids are reported as *PersistenceError
// wrapping repository.ErrDuplicateShow or repository.ErrUnknownParty.
func (d *Directory) CreateShow(ctx context.Context, in ShowInput) (model.Show, error) {
	if err := validateStruct(d.validate, in); err != nil {
		return model.Show{}, err
	}
	s, err := in.show()
	if err != nil {
		return model.Show{}, err
	}
	if err := d.shows.Create(ctx, s); err != nil {
		return model.Show{}, &PersistenceError{Op: "create show", Err: err}
	}
	d.publish(ctx, queue.DirectoryEvent{Kind: queue.ShowCreated, VenueID: s.VenueID, ArtistID: s.ArtistID, StartTime: s.StartTime})
	return s, nil
}
