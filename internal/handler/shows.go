package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marlonxteban/fyyur/internal/logging"
	"github.com/marlonxteban/fyyur/internal/middleware"
	"github.com/marlonxteban/fyyur/internal/repository"
	"github.com/marlonxteban/fyyur/internal/service"
)

const showFailed = "An error occurred. Show could not be listed."

// ListShows renders every booked show.
func (h *Handler) ListShows(c echo.Context) error {
	shows, err := h.dir.ListShows(c.Request().Context())
	if err != nil {
		return err
	}
	return render(c, http.StatusOK, "pages/shows.html", "Shows", shows)
}

func (h *Handler) NewShowForm(c echo.Context) error {
	return render(c, http.StatusOK, "forms/new_show.html", "New show", ShowForm{})
}

// CreateShow books a show and lands on the home page.
func (h *Handler) CreateShow(c echo.Context) error {
	in := showInputFromRequest(c)
	_, err := h.dir.CreateShow(c.Request().Context(), in)
	switch {
	case err == nil:
		middleware.AddFlash(c, "Show was successfully listed!")
	case service.IsValidation(err):
		middleware.AddFlash(c, showFailed)
		return render(c, http.StatusOK, "forms/new_show.html", "New show", ShowForm{
			ArtistID:  in.ArtistID,
			VenueID:   in.VenueID,
			StartTime: in.StartTime,
			Error:     err.Error(),
		})
	default:
		ev := logging.Error().Err(err)
		if errors.Is(err, repository.ErrDuplicateShow) || errors.Is(err, repository.ErrUnknownParty) {
			ev = logging.Warn().Err(err)
		}
		ev.Str("artist_id", in.ArtistID).Str("venue_id", in.VenueID).Msg("create show failed")
		middleware.AddFlash(c, showFailed)
	}
	return h.home(c)
}
