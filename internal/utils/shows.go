// Package utils holds small pure helpers shared by the service and
// handler layers: show classification and projection, genre string
// handling, flash notice tokens and admin password checks.
package utils

import (
	"time"

	"github.com/marlonxteban/fyyur/internal/model"
)

// Perspective selects which party of a show a display record surfaces.
type Perspective int

const (
	// VenuePerspective is used on a venue page; records expose the artist.
	VenuePerspective Perspective = iota
	// ArtistPerspective is used on an artist page; records expose the venue.
	ArtistPerspective
)

// DisplayShow is the flat projection of a show as seen from one side of
// the booking.  PartyID, PartyName and PartyImageLink describe the other
// party (the artist on a venue page and vice versa).
type DisplayShow struct {
	PartyID        uint64    `json:"party_id"`
	PartyName      string    `json:"party_name"`
	PartyImageLink string    `json:"party_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// PartitionByTime splits shows into upcoming (start strictly after now)
// and past (start at or before now).  Input order is preserved in both
// slices and every show lands in exactly one of them.
func PartitionByTime(shows []model.ShowListing, now time.Time) (upcoming, past []model.ShowListing) {
	upcoming = make([]model.ShowListing, 0, len(shows))
	past = make([]model.ShowListing, 0, len(shows))
	for _, s := range shows {
		if IsUpcoming(s.StartTime, now) {
			upcoming = append(upcoming, s)
		} else {
			past = append(past, s)
		}
	}
	return upcoming, past
}

// IsUpcoming reports whether a show starting at start is still upcoming at
// now.  A show starting exactly at now already counts as past.
func IsUpcoming(start, now time.Time) bool {
	return start.After(now)
}

// CountUpcoming returns how many of the given start times are upcoming at
// now without building any display records.
func CountUpcoming(starts []time.Time, now time.Time) int {
	n := 0
	for _, st := range starts {
		if IsUpcoming(st, now) {
			n++
		}
	}
	return n
}

// Count returns the number of shows in a partition.
func Count(shows []model.ShowListing) int {
	return len(shows)
}

// ToDisplayRecord projects a show onto the other party's id, name and
// image link for the given perspective.
func ToDisplayRecord(s model.ShowListing, p Perspective) DisplayShow {
	if p == ArtistPerspective {
		return DisplayShow{
			PartyID:        s.VenueID,
			PartyName:      s.VenueName,
			PartyImageLink: s.VenueImageLink,
			StartTime:      s.StartTime,
		}
	}
	return DisplayShow{
		PartyID:        s.ArtistID,
		PartyName:      s.ArtistName,
		PartyImageLink: s.ArtistImageLink,
		StartTime:      s.StartTime,
	}
}

// ToDisplayRecords maps ToDisplayRecord over shows.
func ToDisplayRecords(shows []model.ShowListing, p Perspective) []DisplayShow {
	out := make([]DisplayShow, 0, len(shows))
	for _, s := range shows {
		out = append(out, ToDisplayRecord(s, p))
	}
	return out
}
