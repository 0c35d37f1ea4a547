package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ParsesEveryPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	for _, name := range []string{
		"pages/home.html",
		"pages/venues.html",
		"pages/search_venues.html",
		"pages/show_venue.html",
		"pages/artists.html",
		"pages/search_artists.html",
		"pages/show_artist.html",
		"pages/shows.html",
		"forms/new_venue.html",
		"forms/edit_venue.html",
		"forms/new_artist.html",
		"forms/edit_artist.html",
		"forms/new_show.html",
		"errors/404.html",
		"errors/500.html",
		"errors/error.html",
	} {
		assert.True(t, r.Has(name), name)
	}
	assert.False(t, r.Has("layouts/main.html"))
	assert.False(t, r.Has("partials/fields.html"))
}

func TestRender_HomeWithMessages(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "pages/home.html", Page{Messages: []string{"Venue <b>X</b> was successfully listed!"}}, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Venue &lt;b&gt;X&lt;/b&gt; was successfully listed!")
	assert.Contains(t, buf.String(), "Post a venue")
}

func TestRender_UnknownTemplate(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.Error(t, r.Render(&bytes.Buffer{}, "pages/missing.html", Page{}, nil))
}

func TestFormatDatetime(t *testing.T) {
	ts := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)
	assert.Equal(t, "Tuesday May, 21, 2019 at 9:30PM", FormatDatetime(ts, "full"))
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", FormatDatetime(ts, "medium"))
	assert.Equal(t, "Tue 05, 21, 2019 9:30PM", FormatDatetime(ts, ""))
}
