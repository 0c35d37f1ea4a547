// Package router registers the HTTP routes of the directory.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/marlonxteban/fyyur/internal/handler"
)

// Guards are applied to the routes that change data.  Auth also covers
// the forms leading to those routes; RateLimit only the submissions.
// Nil guards are skipped.
type Guards struct {
	Auth      echo.MiddlewareFunc
	RateLimit echo.MiddlewareFunc
}

func (g Guards) forms() []echo.MiddlewareFunc {
	return compact(g.Auth)
}

func (g Guards) writes() []echo.MiddlewareFunc {
	return compact(g.Auth, g.RateLimit)
}

func compact(mws ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := make([]echo.MiddlewareFunc, 0, len(mws))
	for _, m := range mws {
		if m != nil {
			out = append(out, m)
		}
	}
	return out
}

// RegisterRoutes maps every page onto h.
func RegisterRoutes(e *echo.Echo, h *handler.Handler, g Guards) {
	forms, writes := g.forms(), g.writes()

	e.GET("/healthz", handler.Health)
	e.GET("/", h.Home)

	e.GET("/venues", h.ListVenues)
	e.POST("/venues/search", h.SearchVenues)
	e.GET("/venues/create", h.NewVenueForm, forms...)
	e.POST("/venues/create", h.CreateVenue, writes...)
	e.GET("/venues/:id", h.ShowVenue)
	e.DELETE("/venues/:id", h.DeleteVenue, writes...)
	e.GET("/venues/:id/edit", h.EditVenueForm, forms...)
	e.POST("/venues/:id/edit", h.UpdateVenue, writes...)

	e.GET("/artists", h.ListArtists)
	e.POST("/artists/search", h.SearchArtists)
	e.GET("/artists/create", h.NewArtistForm, forms...)
	e.POST("/artists/create", h.CreateArtist, writes...)
	e.GET("/artists/:id", h.ShowArtist)
	e.GET("/artists/:id/edit", h.EditArtistForm, forms...)
	e.POST("/artists/:id/edit", h.UpdateArtist, writes...)

	e.GET("/shows", h.ListShows)
	e.GET("/shows/create", h.NewShowForm, forms...)
	e.POST("/shows/create", h.CreateShow, writes...)
}
