package service

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/marlonxteban/fyyur/internal/model"
	"github.com/marlonxteban/fyyur/internal/utils"
)

// VenueInput is the full set of editable venue fields as submitted by the
// create and edit forms.  Absent form fields arrive as zero values, and
// an update writes them as such.
type VenueInput struct {
	Name               string   `form:"name" validate:"required,max=255"`
	City               string   `form:"city" validate:"max=120"`
	State              string   `form:"state" validate:"max=120"`
	Address            string   `form:"address" validate:"max=120"`
	Phone              string   `form:"phone" validate:"max=120"`
	Genres             []string `form:"genres"`
	FacebookLink       string   `form:"facebook_link" validate:"max=500"`
	Website            string   `form:"website" validate:"max=500"`
	ImageLink          string   `form:"image_link" validate:"max=500"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

func (in VenueInput) venue(id uint64) *model.Venue {
	return &model.Venue{
		ID:                 id,
		Name:               in.Name,
		Genres:             utils.JoinGenres(in.Genres),
		City:               in.City,
		State:              in.State,
		Address:            in.Address,
		Phone:              in.Phone,
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		Website:            in.Website,
		SeekingTalent:      in.SeekingTalent,
		SeekingDescription: in.SeekingDescription,
	}
}

// ArtistInput is the artist counterpart of VenueInput.
type ArtistInput struct {
	Name               string   `form:"name" validate:"required,max=255"`
	City               string   `form:"city" validate:"max=120"`
	State              string   `form:"state" validate:"max=120"`
	Phone              string   `form:"phone" validate:"max=120"`
	Genres             []string `form:"genres"`
	FacebookLink       string   `form:"facebook_link" validate:"max=500"`
	Website            string   `form:"website" validate:"max=500"`
	ImageLink          string   `form:"image_link" validate:"max=500"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
}

func (in ArtistInput) artist(id uint64) *model.Artist {
	return &model.Artist{
		ID:                 id,
		Name:               in.Name,
		Genres:             utils.JoinGenres(in.Genres),
		City:               in.City,
		State:              in.State,
		Phone:              in.Phone,
		ImageLink:          in.ImageLink,
		FacebookLink:       in.FacebookLink,
		Website:            in.Website,
		SeekingVenue:       in.SeekingVenue,
		SeekingDescription: in.SeekingDescription,
	}
}

// ShowInput holds the raw show form values.  All three are required.
type ShowInput struct {
	ArtistID  string `form:"artist_id" validate:"required,number"`
	VenueID   string `form:"venue_id" validate:"required,number"`
	StartTime string `form:"start_time" validate:"required"`
}

// startTimeLayouts are tried in order; values without a zone are read as
// UTC.
var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseStartTime parses a submitted show start time.
func ParseStartTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised start time %q", raw)
}

func (in ShowInput) show() (model.Show, error) {
	artistID, err := strconv.ParseUint(strings.TrimSpace(in.ArtistID), 10, 64)
	if err != nil {
		return model.Show{}, &ValidationError{Field: "artist_id", Message: "must be a positive number"}
	}
	venueID, err := strconv.ParseUint(strings.TrimSpace(in.VenueID), 10, 64)
	if err != nil {
		return model.Show{}, &ValidationError{Field: "venue_id", Message: "must be a positive number"}
	}
	start, err := ParseStartTime(in.StartTime)
	if err != nil {
		return model.Show{}, &ValidationError{Field: "start_time", Message: "must look like 2006-01-02 15:04:05"}
	}
	return model.Show{VenueID: venueID, ArtistID: artistID, StartTime: start}, nil
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report form field names rather than Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateStruct runs the validate tags and converts the first failure to
// a *ValidationError.
func validateStruct(v *validator.Validate, in any) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	msg := "is invalid"
	switch fe.Tag() {
	case "required":
		msg = "is required"
	case "max":
		msg = "must be at most " + fe.Param() + " characters"
	case "number":
		msg = "must be a positive number"
	}
	return &ValidationError{Field: fe.Field(), Message: msg}
}
