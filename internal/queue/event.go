// Package queue defines message payloads exchanged over the message broker.
package queue

import "time"

// ActivityQueue is the durable queue directory events are published to.
const ActivityQueue = "directory.activity"

// Event kinds published after a committed write.
const (
	VenueCreated  = "venue.created"
	VenueUpdated  = "venue.updated"
	VenueDeleted  = "venue.deleted"
	ArtistCreated = "artist.created"
	ArtistUpdated = "artist.updated"
	ShowCreated   = "show.created"
)

// DirectoryEvent describes one committed change to the directory.  It
// carries enough for the activity log to render a line without reading
// the database.
type DirectoryEvent struct {
	Kind       string    `json:"kind"`
	VenueID    uint64    `json:"venue_id,omitempty"`
	ArtistID   uint64    `json:"artist_id,omitempty"`
	Name       string    `json:"name,omitempty"`
	StartTime  time.Time `json:"start_time,omitzero"`
	OccurredAt time.Time `json:"occurred_at"`
}
