// Package handler exposes the HTML endpoints of the directory.  Handlers
// read form values explicitly, call the service and render a page from
// internal/view.
package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/marlonxteban/fyyur/internal/middleware"
	"github.com/marlonxteban/fyyur/internal/model"
	"github.com/marlonxteban/fyyur/internal/service"
	"github.com/marlonxteban/fyyur/internal/view"
)

// Directory is the service surface the handlers use.  *service.Directory
// implements it.
type Directory interface {
	ListVenuesGroupedByArea(ctx context.Context) ([]service.AreaGroup, error)
	SearchVenues(ctx context.Context, term string) (service.SearchResult, error)
	GetVenue(ctx context.Context, id uint64) (*model.Venue, error)
	GetVenueDetail(ctx context.Context, id uint64) (*service.VenueDetail, error)
	CreateVenue(ctx context.Context, in service.VenueInput) (*model.Venue, error)
	UpdateVenue(ctx context.Context, id uint64, in service.VenueInput) (*model.Venue, error)
	DeleteVenue(ctx context.Context, id uint64) error

	ListArtists(ctx context.Context) ([]service.ArtistSummary, error)
	SearchArtists(ctx context.Context, term string) (service.SearchResult, error)
	GetArtist(ctx context.Context, id uint64) (*model.Artist, error)
	GetArtistDetail(ctx context.Context, id uint64) (*service.ArtistDetail, error)
	CreateArtist(ctx context.Context, in service.ArtistInput) (*model.Artist, error)
	UpdateArtist(ctx context.Context, id uint64, in service.ArtistInput) (*model.Artist, error)

	ListShows(ctx context.Context) ([]service.ShowRow, error)
	CreateShow(ctx context.Context, in service.ShowInput) (model.Show, error)
}

// Handler serves every directory page.
type Handler struct {
	dir         Directory
	flashSecret []byte
}

// New constructs a Handler and panics if dir is nil.  flashSecret signs
// the notices carried across edit redirects.
func New(dir Directory, flashSecret []byte) *Handler {
	if dir == nil {
		panic("nil directory passed to handler.New")
	}
	return &Handler{dir: dir, flashSecret: flashSecret}
}

// Home renders the landing page.
func (h *Handler) Home(c echo.Context) error {
	return h.home(c)
}

func (h *Handler) home(c echo.Context) error {
	return render(c, http.StatusOK, "pages/home.html", "", nil)
}

// render executes a page with the notices pending for this request.
func render(c echo.Context, code int, name, title string, data any) error {
	return c.Render(code, name, view.Page{
		Title:    title,
		Messages: middleware.Messages(c),
		Data:     data,
	})
}

// pathID parses the :id route parameter.  Anything but a positive
// integer is a missing page.
func pathID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.ErrNotFound
	}
	return id, nil
}

// searchPage feeds the search result templates.
type searchPage struct {
	SearchTerm string
	Results    service.SearchResult
}
