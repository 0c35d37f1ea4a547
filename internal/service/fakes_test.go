package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/marlonxteban/fyyur/internal/model"
	"github.com/marlonxteban/fyyur/internal/queue"
	"github.com/marlonxteban/fyyur/internal/repository"
)

// memStore is an in-memory stand-in for the three MySQL repositories.
// Shows follow the schema's cascade and foreign key rules.
type memStore struct {
	mu      sync.Mutex
	nextID  uint64
	venues  map[uint64]model.Venue
	artists map[uint64]model.Artist
	shows   []model.Show
	failErr error
}

func newMemStore() *memStore {
	return &memStore{venues: map[uint64]model.Venue{}, artists: map[uint64]model.Artist{}}
}

type memVenues struct{ *memStore }
type memArtists struct{ *memStore }
type memShows struct{ *memStore }

func (m memVenues) Create(_ context.Context, v *model.Venue) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.nextID++
	v.ID = m.nextID
	m.venues[v.ID] = *v
	return nil
}

func (m memVenues) GetByID(_ context.Context, id uint64) (*model.Venue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.venues[id]
	if !ok {
		return nil, repository.ErrVenueNotFound
	}
	return &v, nil
}

func (m memVenues) ListAll(ctx context.Context) ([]*model.Venue, error) {
	return m.SearchByName(ctx, "")
}

func (m memVenues) SearchByName(_ context.Context, term string) ([]*model.Venue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Venue
	for _, id := range sortedKeys(m.venues) {
		v := m.venues[id]
		if strings.Contains(strings.ToLower(v.Name), strings.ToLower(term)) {
			out = append(out, &v)
		}
	}
	return out, nil
}

func (m memVenues) Update(_ context.Context, v *model.Venue) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	if _, ok := m.venues[v.ID]; !ok {
		return repository.ErrVenueNotFound
	}
	m.venues[v.ID] = *v
	return nil
}

func (m memVenues) Delete(_ context.Context, id uint64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.venues[id]; !ok {
		return false, nil
	}
	delete(m.venues, id)
	kept := m.shows[:0]
	for _, s := range m.shows {
		if s.VenueID != id {
			kept = append(kept, s)
		}
	}
	m.shows = kept
	return true, nil
}

func (m memArtists) Create(_ context.Context, a *model.Artist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	m.nextID++
	a.ID = m.nextID
	m.artists[a.ID] = *a
	return nil
}

func (m memArtists) GetByID(_ context.Context, id uint64) (*model.Artist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.artists[id]
	if !ok {
		return nil, repository.ErrArtistNotFound
	}
	return &a, nil
}

func (m memArtists) ListAll(ctx context.Context) ([]*model.Artist, error) {
	return m.SearchByName(ctx, "")
}

func (m memArtists) SearchByName(_ context.Context, term string) ([]*model.Artist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*model.Artist
	for _, id := range sortedKeys(m.artists) {
		a := m.artists[id]
		if strings.Contains(strings.ToLower(a.Name), strings.ToLower(term)) {
			out = append(out, &a)
		}
	}
	return out, nil
}

func (m memArtists) Update(_ context.Context, a *model.Artist) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.artists[a.ID]; !ok {
		return repository.ErrArtistNotFound
	}
	m.artists[a.ID] = *a
	return nil
}

func (m memShows) Create(_ context.Context, s model.Show) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, vok := m.venues[s.VenueID]
	_, aok := m.artists[s.ArtistID]
	if !vok || !aok {
		return repository.ErrUnknownParty
	}
	for _, x := range m.shows {
		if x.VenueID == s.VenueID && x.ArtistID == s.ArtistID && x.StartTime.Equal(s.StartTime) {
			return repository.ErrDuplicateShow
		}
	}
	m.shows = append(m.shows, s)
	return nil
}

func (m memShows) ListAll(_ context.Context) ([]model.ShowListing, error) {
	return m.filter(func(model.Show) bool { return true }), nil
}

func (m memShows) ListByVenue(_ context.Context, id uint64) ([]model.ShowListing, error) {
	return m.filter(func(s model.Show) bool { return s.VenueID == id }), nil
}

func (m memShows) ListByArtist(_ context.Context, id uint64) ([]model.ShowListing, error) {
	return m.filter(func(s model.Show) bool { return s.ArtistID == id }), nil
}

func (m memShows) filter(keep func(model.Show) bool) []model.ShowListing {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.ShowListing
	for _, s := range m.shows {
		if !keep(s) {
			continue
		}
		v, a := m.venues[s.VenueID], m.artists[s.ArtistID]
		out = append(out, model.ShowListing{
			Show:            s,
			VenueName:       v.Name,
			VenueImageLink:  v.ImageLink,
			ArtistName:      a.Name,
			ArtistImageLink: a.ImageLink,
		})
	}
	return out
}

func sortedKeys[T any](m map[uint64]T) []uint64 {
	keys := make([]uint64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []queue.DirectoryEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev queue.DirectoryEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func (p *recordingPublisher) kinds() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, ev := range p.events {
		out = append(out, ev.Kind)
	}
	return out
}

var errDiskFull = errors.New("disk full")
