package model

// Artist represents a performer.  It carries the same attributes as a
// Venue except that there is no street address and the seeking flag
// refers to venues instead of talent.
type Artist struct {
	ID                 uint64 // artists.id
	Name               string // artists.name
	Genres             string // artists.genres
	City               string // artists.city
	State              string // artists.state
	Phone              string // artists.phone
	ImageLink          string // artists.image_link
	FacebookLink       string // artists.facebook_link
	Website            string // artists.website
	SeekingVenue       bool   // artists.seeking_venue
	SeekingDescription string // artists.seeking_description
}
