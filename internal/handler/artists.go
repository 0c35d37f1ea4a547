package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/marlonxteban/fyyur/internal/logging"
	"github.com/marlonxteban/fyyur/internal/middleware"
	"github.com/marlonxteban/fyyur/internal/service"
)

// ListArtists renders every artist.
func (h *Handler) ListArtists(c echo.Context) error {
	artists, err := h.dir.ListArtists(c.Request().Context())
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "pages/artists.html", "Artists", artists)
}

// SearchArtists handles the artist search box.
func (h *Handler) SearchArtists(c echo.Context) error {
	term := c.FormValue("search_term")
	res, err := h.dir.SearchArtists(c.Request().Context(), term)
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "pages/search_artists.html", "Artist search", searchPage{SearchTerm: term, Results: res})
}

// ShowArtist renders one artist with past and upcoming shows.
func (h *Handler) ShowArtist(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	det, err := h.dir.GetArtistDetail(c.Request().Context(), id)
	if service.IsNotFound(err) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "pages/show_artist.html", det.Name, det)
}

func (h *Handler) NewArtistForm(c echo.Context) error {
	return render(c, http.StatusOK, "forms/new_artist.html", "New artist", ArtistForm{})
}

// CreateArtist stores a submitted artist and lands on the home page.
func (h *Handler) CreateArtist(c echo.Context) error {
	in := artistInputFromRequest(c)
	_, err := h.dir.CreateArtist(c.Request().Context(), in)
	switch {
	case err == nil:
		middleware.AddFlash(c, "Artist "+in.Name+" was successfully listed!")
	case service.IsValidation(err):
		middleware.AddFlash(c, "Artist "+in.Name+" could not be listed!")
		return render(c, http.StatusOK, "forms/new_artist.html", "New artist", artistFormFromInput(0, in, err.Error()))
	default:
		logging.Error().Err(err).Str("artist", in.Name).Msg("create artist failed")
		middleware.AddFlash(c, "Artist "+in.Name+" could not be listed!")
	}
	return h.home(c)
}

func (h *Handler) EditArtistForm(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	a, err := h.dir.GetArtist(c.Request().Context(), id)
	if service.IsNotFound(err) {
		return echo.ErrNotFound
	}
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "forms/edit_artist.html", "Edit artist", artistFormFromModel(a))
}

// UpdateArtist overwrites an artist and redirects to its page.  Fields
// missing from the form are cleared.
func (h *Handler) UpdateArtist(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	in := artistInputFromRequest(c)
	_, err = h.dir.UpdateArtist(c.Request().Context(), id, in)
	var notice string
	switch {
	case err == nil:
		notice = "Artist " + in.Name + " was successfully updated!"
	case service.IsValidation(err):
		middleware.AddFlash(c, "Artist could not be updated!")
		return render(c, http.StatusOK, "forms/edit_artist.html", "Edit artist", artistFormFromInput(id, in, err.Error()))
	case service.IsNotFound(err):
		return echo.ErrNotFound
	default:
		logging.Error().Err(err).Uint64("artist_id", id).Msg("update artist failed")
		notice = "Artist " + in.Name + " could not be updated!"
	}
	return h.redirectWithFlash(c, "/artists/"+strconv.FormatUint(id, 10), notice)
}
