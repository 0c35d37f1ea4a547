package model

import "time"

// Show books one artist at one venue at one point in time.  The
// triple (VenueID, ArtistID, StartTime) is the primary key of the
// `shows` table; there is no surrogate id.  Whether a show is past or
// upcoming is never stored and must be derived from StartTime at read
// time.
type Show struct {
	VenueID   uint64    // shows.venue_id
	ArtistID  uint64    // shows.artist_id
	StartTime time.Time // shows.start_time (UTC)
}

// ShowListing is a Show joined with the fields of its venue and artist
// that the listing and detail pages display.
type ShowListing struct {
	Show
	VenueName       string // venues.name
	VenueImageLink  string // venues.image_link
	ArtistName      string // artists.name
	ArtistImageLink string // artists.image_link
}

// Area is the (city, state) pair venues are grouped under.  Equality is
// an exact string match; no case or whitespace folding is applied.
type Area struct {
	City  string
	State string
}
