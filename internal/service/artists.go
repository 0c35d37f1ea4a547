package service

import (
	"context"
	"errors"

	"github.com/marlonxteban/fyyur/internal/model"
	"github.com/marlonxteban/fyyur/internal/queue"
	"github.com/marlonxteban/fyyur/internal/repository"
	"github.com/marlonxteban/fyyur/internal/utils"
)

// ListArtists returns id and name of every artist.  Artists have no area
// grouping.
func (d *Directory) ListArtists(ctx context.Context) ([]ArtistSummary, error) {
	artists, err := d.artists.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ArtistSummary, 0, len(artists))
	for _, a := range artists {
		out = append(out, ArtistSummary{ID: a.ID, Name: a.Name})
	}
	return out, nil
}

// SearchArtists matches term as a case-insensitive substring of artist
// names.
func (d *Directory) SearchArtists(ctx context.Context, term string) (SearchResult, error) {
	artists, err := d.artists.SearchByName(ctx, term)
	if err != nil {
		return SearchResult{}, err
	}
	_, upcoming, err := d.upcomingCounts(ctx, d.now())
	if err != nil {
		return SearchResult{}, err
	}
	res := SearchResult{Count: len(artists), Data: make([]Summary, 0, len(artists))}
	for _, a := range artists {
		res.Data = append(res.Data, Summary{ID: a.ID, Name: a.Name, NumUpcomingShows: upcoming[a.ID]})
	}
	return res, nil
}

// GetArtist returns the stored artist.
func (d *Directory) GetArtist(ctx context.Context, id uint64) (*model.Artist, error) {
	a, err := d.artists.GetByID(ctx, id)
	if errors.Is(err, repository.ErrArtistNotFound) {
		return nil, notFound("artist", id, err)
	}
	return a, err
}

// GetArtistDetail returns the artist with its shows classified at now.
func (d *Directory) GetArtistDetail(ctx context.Context, id uint64) (*ArtistDetail, error) {
	a, err := d.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}
	shows, err := d.shows.ListByArtist(ctx, id)
	if err != nil {
		return nil, err
	}
	upcoming, past := utils.PartitionByTime(shows, d.now())
	return &ArtistDetail{
		Artist:             *a,
		GenreList:          genreList(a.Genres),
		PastShows:          utils.ToDisplayRecords(past, utils.ArtistPerspective),
		UpcomingShows:      utils.ToDisplayRecords(upcoming, utils.ArtistPerspective),
		PastShowsCount:     utils.Count(past),
		UpcomingShowsCount: utils.Count(upcoming),
	}, nil
}

// CreateArtist validates in and stores a new artist.
func (d *Directory) CreateArtist(ctx context.Context, in ArtistInput) (*model.Artist, error) {
	if err := validateStruct(d.validate, in); err != nil {
		return nil, err
	}
	a := in.artist(0)
	if err := d.artists.Create(ctx, a); err != nil {
		return nil, &PersistenceError{Op: "create artist", Err: err}
	}
	d.publish(ctx, queue.DirectoryEvent{Kind: queue.ArtistCreated, ArtistID: a.ID, Name: a.Name})
	return a, nil
}

// UpdateArtist overwrites every editable field of artist id with in.
func (d *Directory) UpdateArtist(ctx context.Context, id uint64, in ArtistInput) (*model.Artist, error) {
	if err := validateStruct(d.validate, in); err != nil {
		return nil, err
	}
	a := in.artist(id)
	if err := d.artists.Update(ctx, a); err != nil {
		if errors.Is(err, repository.ErrArtistNotFound) {
			return nil, notFound("artist", id, err)
		}
		return nil, &PersistenceError{Op: "update artist", Err: err}
	}
	d.publish(ctx, queue.DirectoryEvent{Kind: queue.ArtistUpdated, ArtistID: a.ID, Name: a.Name})
	return a, nil
}
