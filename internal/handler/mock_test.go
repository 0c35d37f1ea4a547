package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/marlonxteban/fyyur/internal/model"
	"github.com/marlonxteban/fyyur/internal/service"
)

type mockDirectory struct {
	mock.Mock
}

func (m *mockDirectory) ListVenuesGroupedByArea(ctx context.Context) ([]service.AreaGroup, error) {
	args := m.Called(ctx)
	groups, _ := args.Get(0).([]service.AreaGroup)
	return groups, args.Error(1)
}

func (m *mockDirectory) SearchVenues(ctx context.Context, term string) (service.SearchResult, error) {
	args := m.Called(ctx, term)
	return args.Get(0).(service.SearchResult), args.Error(1)
}

func (m *mockDirectory) GetVenue(ctx context.Context, id uint64) (*model.Venue, error) {
	args := m.Called(ctx, id)
	v, _ := args.Get(0).(*model.Venue)
	return v, args.Error(1)
}

func (m *mockDirectory) GetVenueDetail(ctx context.Context, id uint64) (*service.VenueDetail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*service.VenueDetail)
	return d, args.Error(1)
}

func (m *mockDirectory) CreateVenue(ctx context.Context, in service.VenueInput) (*model.Venue, error) {
	args := m.Called(ctx, in)
	v, _ := args.Get(0).(*model.Venue)
	return v, args.Error(1)
}

func (m *mockDirectory) UpdateVenue(ctx context.Context, id uint64, in service.VenueInput) (*model.Venue, error) {
	args := m.Called(ctx, id, in)
	v, _ := args.Get(0).(*model.Venue)
	return v, args.Error(1)
}

func (m *mockDirectory) DeleteVenue(ctx context.Context, id uint64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockDirectory) ListArtists(ctx context.Context) ([]service.ArtistSummary, error) {
	args := m.Called(ctx)
	a, _ := args.Get(0).([]service.ArtistSummary)
	return a, args.Error(1)
}

func (m *mockDirectory) SearchArtists(ctx context.Context, term string) (service.SearchResult, error) {
	args := m.Called(ctx, term)
	return args.Get(0).(service.SearchResult), args.Error(1)
}

func (m *mockDirectory) GetArtist(ctx context.Context, id uint64) (*model.Artist, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*model.Artist)
	return a, args.Error(1)
}

func (m *mockDirectory) GetArtistDetail(ctx context.Context, id uint64) (*service.ArtistDetail, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*service.ArtistDetail)
	return d, args.Error(1)
}

func (m *mockDirectory) CreateArtist(ctx context.Context, in service.ArtistInput) (*model.Artist, error) {
	args := m.Called(ctx, in)
	a, _ := args.Get(0).(*model.Artist)
	return a, args.Error(1)
}

func (m *mockDirectory) UpdateArtist(ctx context.Context, id uint64, in service.ArtistInput) (*model.Artist, error) {
	args := m.Called(ctx, id, in)
	a, _ := args.Get(0).(*model.Artist)
	return a, args.Error(1)
}

func (m *mockDirectory) ListShows(ctx context.Context) ([]service.ShowRow, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).([]service.ShowRow)
	return s, args.Error(1)
}

func (m *mockDirectory) CreateShow(ctx context.Context, in service.ShowInput) (model.Show, error) {
	args := m.Called(ctx, in)
	s, _ := args.Get(0).(model.Show)
	return s, args.Error(1)
}
