package model

// Venue represents a performance location listed in the directory.
// Genres are persisted as a single comma separated string; use
// utils.SplitGenres to obtain the individual names.
//
// Fields:
//  ID                 – primary key identifier.
//  Name               – display name (required).
//  Genres             – comma separated genre names.
//  City, State        – the area the venue is grouped under.
//  Address            – street address.
//  Phone              – contact phone number.
//  ImageLink          – URL of the venue picture.
//  FacebookLink       – social media page.
//  Website            – website URL.
//  SeekingTalent      – whether the venue is looking for artists.
//  SeekingDescription – free text shown when SeekingTalent is set.
type Venue struct {
	ID                 uint64 // venues.id
	Name               string // venues.name
	Genres             string // venues.genres
	City               string // venues.city
	State              string // venues.state
	Address            string // venues.address
	Phone              string // venues.phone
	ImageLink          string // venues.image_link
	FacebookLink       string // venues.facebook_link
	Website            string // venues.website
	SeekingTalent      bool   // venues.seeking_talent
	SeekingDescription string // venues.seeking_description
}
