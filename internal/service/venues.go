package service

import (
	"context"
	"errors"

	"github.com/marlonxteban/fyyur/internal/model"
	"github.com/marlonxteban/fyyur/internal/queue"
	"github.com/marlonxteban/fyyur/internal/repository"
	"github.com/marlonxteban/fyyur/internal/utils"
)

// ListVenuesGroupedByArea groups every venue by its exact (city, state)
// pair.  Groups appear in the order their first venue was created.
func (d *Directory) ListVenuesGroupedByArea(ctx context.Context) ([]AreaGroup, error) {
	venues, err := d.venues.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	upcoming, _, err := d.upcomingCounts(ctx, d.now())
	if err != nil {
		return nil, err
	}

	var groups []AreaGroup
	index := make(map[model.Area]int)
	for _, v := range venues {
		key := model.Area{City: v.City, State: v.State}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, AreaGroup{City: v.City, State: v.State})
		}
		groups[i].Venues = append(groups[i].Venues, Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: upcoming[v.ID]})
	}
	return groups, nil
}

// SearchVenues matches term as a case-insensitive substring of venue
// names.  An empty term matches every venue.
func (d *Directory) SearchVenues(ctx context.Context, term string) (SearchResult, error) {
	venues, err := d.venues.SearchByName(ctx, term)
	if err != nil {
		return SearchResult{}, err
	}
	upcoming, _, err := d.upcomingCounts(ctx, d.now())
	if err != nil {
		return SearchResult{}, err
	}
	res := SearchResult{Count: len(venues), Data: make([]Summary, 0, len(venues))}
	for _, v := range venues {
		res.Data = append(res.Data, Summary{ID: v.ID, Name: v.Name, NumUpcomingShows: upcoming[v.ID]})
	}
	return res, nil
}

// GetVenue returns the stored venue, e.g. to pre-fill the edit form.
func (d *Directory) GetVenue(ctx context.Context, id uint64) (*model.Venue, error) {
	v, err := d.venues.GetByID(ctx, id)
	if errors.Is(err, repository.ErrVenueNotFound) {
		return nil, notFound("venue", id, err)
	}
	return v, err
}

// GetVenueDetail returns the venue with its shows classified at now.
func (d *Directory) GetVenueDetail(ctx context.Context, id uint64) (*VenueDetail, error) {
	v, err := d.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := d.shows.ListByVenue(ctx, id)
	if err != nil {
		return nil, err
	}
	upcoming, past := utils.PartitionByTime(shows, d.now())
	return &VenueDetail{
		Venue:              *v,
		GenreList:          genreList(v.Genres),
		PastShows:          utils.ToDisplayRecords(past, utils.VenuePerspective),
		UpcomingShows:      utils.ToDisplayRecords(upcoming, utils.VenuePerspective),
		PastShowsCount:     utils.Count(past),
		UpcomingShowsCount: utils.Count(upcoming),
	}, nil
}

// CreateVenue validates in and stores a new venue.
func (d *Directory) CreateVenue(ctx context.Context, in VenueInput) (*model.Venue, error) {
	if err := validateStruct(d.validate, in); err != nil {
		return nil, err
	}
	v := in.venue(0)
	if err := d.venues.Create(ctx, v); err != nil {
		return nil, &PersistenceError{Op: "create venue", Err: err}
	}
	d.publish(ctx, queue.DirectoryEvent{Kind: queue.VenueCreated, VenueID: v.ID, Name: v.Name})
	return v, nil
}

// UpdateVenue overwrites every editable field of venue id with in.  Fields
// missing from in are stored as their zero value.
func (d *Directory) UpdateVenue(ctx context.Context, id uint64, in VenueInput) (*model.Venue, error) {
	if err := validateStruct(d.validate, in); err != nil {
		return nil, err
	}
	v := in.venue(id)
	if err := d.venues.Update(ctx, v); err != nil {
		if errors.Is(err, repository.ErrVenueNotFound) {
			return nil, notFound("venue", id, err)
		}
		return nil, &PersistenceError{Op: "update venue", Err: err}
	}
	d.publish(ctx, queue.DirectoryEvent{Kind: queue.VenueUpdated, VenueID: v.ID, Name: v.Name})
	return v, nil
}

// DeleteVenue removes venue id and, through the foreign key cascade, its
// shows.  Deleting a venue that does not exist succeeds without effect.
func (d *Directory) DeleteVenue(ctx context.Context, id uint64) error {
	deleted, err := d.venues.Delete(ctx, id)
	if err != nil {
		return &PersistenceError{Op: "delete venue", Err: err}
	}
	if deleted {
		d.publish(ctx, queue.DirectoryEvent{Kind: queue.VenueDeleted, VenueID: id})
	}
	return nil
}
