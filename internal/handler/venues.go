package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/marlonxteban/fyyur/internal/logging"
	"github.com/marlonxteban/fyyur/internal/middleware"
	"github.com/marlonxteban/fyyur/internal/service"
)

// ListVenues renders every venue grouped by city and state.
func (h *Handler) ListVenues(c echo.Context) error {
	groups, err := h.dir.ListVenuesGroupedByArea(c.Request().Context())
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "pages/venues.html", "Venues", groups)
}

// SearchVenues handles the venue search box.
func (h *Handler) SearchVenues(c echo.Context) error {
	term := c.FormValue("search_term")
	res, err := h.dir.SearchVenues(c.Request().Context(), term)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "pages/search_venues.html", "Venue search", searchPage{SearchTerm: term, Results: res})
}

// ShowVenue renders one venue with its past and upcoming shows.
func (h *Handler) ShowVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	det, err := h.dir.GetVenueDetail(c.Request().Context(), id)
	if service.IsNotFound(err) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "pages/show_venue.html", det.Name, det)
}

// NewVenueForm renders the empty venue form.
func (h *Handler) NewVenueForm(c echo.Context) error {
	return render(c, http.StatusOK, "forms/new_venue.html", "New venue", VenueForm{})
}

// CreateVenue stores a submitted venue and lands on the home page with
// the outcome.  Invalid input re-renders the form.
func (h *Handler) CreateVenue(c echo.Context) error {
	in := venueInputFromRequest(c)
	_, err := h.dir.CreateVenue(c.Request().Context(), in)
	switch {
	case err == nil:
		middleware.AddFlash(c, "Venue "+in.Name+" was successfully listed!")
	case service.IsValidation(err):
		middleware.AddFlash(c, "Venue "+in.Name+" could not be listed!")
		return render(c, http.StatusOK, "forms/new_venue.html", "New venue", venueFormFromInput(0, in, err.Error()))
	default:
		logging.Error().Err(err).Str("venue", in.Name).Msg("create venue failed")
		middleware.AddFlash(c, "Venue "+in.Name+" could not be listed!")
	}
	return h.home(c)
}

// DeleteVenue removes a venue and its shows, then renders the home page.
func (h *Handler) DeleteVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.dir.DeleteVenue(c.Request().Context(), id); err != nil {
		logging.Error().Err(err).Uint64("venue_id", id).Msg("delete venue failed")
		middleware.AddFlash(c, "Venue could not be deleted.")
	} else {
		middleware.AddFlash(c, "Venue was successfully deleted!")
	}
	return h.home(c)
}

// EditVenueForm renders the edit form pre-filled from the stored venue.
func (h *Handler) EditVenueForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	v, err := h.dir.GetVenue(c.Request().Context(), id)
	if service.IsNotFound(err) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "forms/edit_venue.html", "Edit venue", venueFormFromModel(v))
}

// UpdateVenue overwrites a venue with the submitted form and redirects to
// its page.
func (h *Handler) UpdateVenue(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	in := venueInputFromRequest(c)
	_, err = h.dir.UpdateVenue(c.Request().Context(), id, in)
	var notice string
	switch {
	case err == nil:
		notice = "Venue " + in.Name + " was successfully updated!"
	case service.IsValidation(err):
		middleware.AddFlash(c, "Venue could not be updated!")
		return render(c, http.StatusOK, "forms/edit_venue.html", "Edit venue", venueFormFromInput(id, in, err.Error()))
	case service.IsNotFound(err):
		return echo.ErrNotFound
	default:
		logging.Error().Err(err).Uint64("venue_id", id).Msg("update venue failed")
		notice = "Venue " + in.Name + " could not be updated!"
	}
	return h.redirectWithFlash(c, "/venues/"+strconv.FormatUint(id, 10), notice)
}

// redirectWithFlash answers a form POST with 303 See Other and leaves
// notice for the target page.
func (h *Handler) redirectWithFlash(c echo.Context, to, notice string) error {
	if err := middleware.SetFlash(c, h.flashSecret, notice); err != nil {
		logging.Warn().Err(err).Msg("flash cookie not set")
	}
	return c.Redirect(http.StatusSeeOther, to)
}
