package service

import (
	"time"

	"github.com/marlonxteban/fyyur/internal/model"
	"github.com/marlonxteban/fyyur/internal/utils"
)

// Summary is one row of a directory or search listing.
type Summary struct {
	ID               uint64 `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// AreaGroup lists the venues of one (city, state) pair.
type AreaGroup struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

// SearchResult is the outcome of a name search.
type SearchResult struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

// VenueDetail is a venue with its shows split into past and upcoming.
type VenueDetail struct {
	model.Venue
	GenreList          []string            `json:"genres"`
	PastShows          []utils.DisplayShow `json:"past_shows"`
	UpcomingShows      []utils.DisplayShow `json:"upcoming_shows"`
	PastShowsCount     int                 `json:"past_shows_count"`
	UpcomingShowsCount int                 `json:"upcoming_shows_count"`
}

// ArtistDetail is an artist with its shows split into past and upcoming.
type ArtistDetail struct {
	model.Artist
	GenreList          []string            `json:"genres"`
	PastShows          []utils.DisplayShow `json:"past_shows"`
	UpcomingShows      []utils.DisplayShow `json:"upcoming_shows"`
	PastShowsCount     int                 `json:"past_shows_count"`
	UpcomingShowsCount int                 `json:"upcoming_shows_count"`
}

// ArtistSummary is one row of the artist listing.
type ArtistSummary struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

// ShowRow is one row of the flat show listing.
type ShowRow struct {
	VenueID         uint64    `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        uint64    `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink string    `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// genreList guards SplitGenres against the empty column value.
func genreList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	return utils.SplitGenres(raw)
}
