package handler

import (
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/marlonxteban/fyyur/internal/model"
	"github.com/marlonxteban/fyyur/internal/service"
	"github.com/marlonxteban/fyyur/internal/utils"
)

// VenueForm is the data behind the venue create and edit forms.
type VenueForm struct {
	ID                 uint64
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	Genres             []string
	FacebookLink       string
	Website            string
	ImageLink          string
	SeekingTalent      bool
	SeekingDescription string
	Error              string
}

// ArtistForm is the data behind the artist create and edit forms.
type ArtistForm struct {
	ID                 uint64
	Name               string
	City               string
	State              string
	Phone              string
	Genres             []string
	FacebookLink       string
	Website            string
	ImageLink          string
	SeekingVenue       bool
	SeekingDescription string
	Error              string
}

// ShowForm is the data behind the show create form.
type ShowForm struct {
	ArtistID  string
	VenueID   string
	StartTime string
	Error     string
}

func formParams(c echo.Context) url.Values {
	params, err := c.FormParams()
	if err != nil {
		return url.Values{}
	}
	return params
}

// checked follows checkbox semantics: any non-empty value is true.
func checked(v string) bool {
	return v != ""
}

// genreValues keeps every non-empty submitted genre in order.
func genreValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func venueInputFromRequest(c echo.Context) service.VenueInput {
	f := formParams(c)
	return service.VenueInput{
		Name:               f.Get("name"),
		City:               f.Get("city"),
		State:              f.Get("state"),
		Address:            f.Get("address"),
		Phone:              f.Get("phone"),
		Genres:             genreValues(f["genres"]),
		FacebookLink:       f.Get("facebook_link"),
		Website:            f.Get("website"),
		ImageLink:          f.Get("image_link"),
		SeekingTalent:      checked(f.Get("seeking_talent")),
		SeekingDescription: f.Get("seeking_description"),
	}
}

func artistInputFromRequest(c echo.Context) service.ArtistInput {
	f := formParams(c)
	return service.ArtistInput{
		Name:               f.Get("name"),
		City:               f.Get("city"),
		State:              f.Get("state"),
		Phone:              f.Get("phone"),
		Genres:             genreValues(f["genres"]),
		FacebookLink:       f.Get("facebook_link"),
		Website:            f.Get("website"),
		ImageLink:          f.Get("image_link"),
		SeekingVenue:       checked(f.Get("seeking_venue")),
		SeekingDescription: f.Get("seeking_description"),
	}
}

func showInputFromRequest(c echo.Context) service.ShowInput {
	f := formParams(c)
	return service.ShowInput{
		ArtistID:  f.Get("artist_id"),
		VenueID:   f.Get("venue_id"),
		StartTime: f.Get("start_time"),
	}
}

func venueFormFromModel(v *model.Venue) VenueForm {
	return VenueForm{
		ID:                 v.ID,
		Name:               v.Name,
		City:               v.City,
		State:              v.State,
		Address:            v.Address,
		Phone:              v.Phone,
		Genres:             storedGenres(v.Genres),
		FacebookLink:       v.FacebookLink,
		Website:            v.Website,
		ImageLink:          v.ImageLink,
		SeekingTalent:      v.SeekingTalent,
		SeekingDescription: v.SeekingDescription,
	}
}

func venueFormFromInput(id uint64, in service.VenueInput, problem string) VenueForm {
	return VenueForm{
		ID:                 id,
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Address:            in.Address,
		Phone:              in.Phone,
		Genres:             in.Genres,
		FacebookLink:       in.FacebookLink,
		Website:            in.Website,
		ImageLink:          in.ImageLink,
		SeekingTalent:      in.SeekingTalent,
		SeekingDescription: in.SeekingDescription,
		Error:              problem,
	}
}

func artistFormFromModel(a *model.Artist) ArtistForm {
	return ArtistForm{
		ID:                 a.ID,
		Name:               a.Name,
		City:               a.City,
		State:              a.State,
		Phone:              a.Phone,
		Genres:             storedGenres(a.Genres),
		FacebookLink:       a.FacebookLink,
		Website:            a.Website,
		ImageLink:          a.ImageLink,
		SeekingVenue:       a.SeekingVenue,
		SeekingDescription: a.SeekingDescription,
	}
}

func artistFormFromInput(id uint64, in service.ArtistInput, problem string) ArtistForm {
	return ArtistForm{
		ID:                 id,
		Name:               in.Name,
		City:               in.City,
		State:              in.State,
		Phone:              in.Phone,
		Genres:             in.Genres,
		FacebookLink:       in.FacebookLink,
		Website:            in.Website,
		ImageLink:          in.ImageLink,
		SeekingVenue:       in.SeekingVenue,
		SeekingDescription: in.SeekingDescription,
		Error:              problem,
	}
}

func storedGenres(raw string) []string {
	if raw == "" {
		return nil
	}
	return utils.SplitGenres(raw)
}
