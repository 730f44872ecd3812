// Package liststore holds the last-fetched catalog and favorites sequences
// and notifies subscribers whenever a refresh delivers a new one. It is the
// piece that sits between the gateway and whatever renders the lists.
//
// Refreshes run off the caller's goroutine: RefreshCatalog and
// RefreshFavorites return immediately, and observers are invoked when the
// fetch completes. Every successful refresh replaces the held sequence in
// full; there is no merging with the previous value and no deduplication.
// A failed refresh leaves the current sequence untouched and is logged.
package liststore

import (
	"context"
	"log"
	"sync"

	"github.com/jotarsh7/Assignment-3/internal/model"
)

// Lister is the slice of the gateway the store depends on.
type Lister interface {
	ListCatalog(ctx context.Context) ([]model.Movie, error)
	ListFavorites(ctx context.Context) ([]model.Movie, error)
}

// Observer receives the freshly delivered sequence. The slice is shared
// with the store; observers must treat it as read-only.
type Observer func(movies []model.Movie)

const (
	catalogList = iota
	favoritesList
)

// Store owns the two observable sequences for the lifetime of a screen
// session. All state is guarded by one mutex; observers are called outside
// of it so a subscriber may call back into the store.
type Store struct {
	gw Lister

	mu           sync.Mutex
	catalog      []model.Movie
	favorites    []model.Movie
	catalogObs   []Observer
	favoritesObs []Observer
	closed       bool

	wg sync.WaitGroup
}

// New constructs a Store over the given gateway.
func New(gw Lister) *Store {
	return &Store{gw: gw}
}

// SubscribeCatalog registers an observer for catalog deliveries.
func (s *Store) SubscribeCatalog(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalogObs = append(s.catalogObs, fn)
}

// SubscribeFavorites registers an observer for favorites deliveries.
func (s *Store) SubscribeFavorites(fn Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favoritesObs = append(s.favoritesObs, fn)
}

// Catalog returns a copy of the last delivered catalog sequence.
func (s *Store) Catalog() []model.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Movie, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// Favorites returns a copy of the last delivered favorites sequence.
func (s *Store) Favorites() []model.Movie {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Movie, len(s.favorites))
	copy(out, s.favorites)
	return out
}

// RefreshCatalog fetches the catalog asynchronously and, on success,
// replaces the held sequence and notifies catalog observers.
func (s *Store) RefreshCatalog(ctx context.Context) {
	s.refresh(ctx, s.gw.ListCatalog, catalogList)
}

// RefreshFavorites fetches the favorites asynchronously and, on success,
// replaces the held sequence and notifies favorites observers.
func (s *Store) RefreshFavorites(ctx context.Context) {
	s.refresh(ctx, s.gw.ListFavorites, favoritesList)
}

// Close marks the store torn down and waits for in-flight refreshes to
// drain. A refresh completing after Close delivers nothing: late callbacks
// must not mutate state for a screen that no longer exists.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *Store) refresh(ctx context.Context, fetch func(context.Context) ([]model.Movie, error), which int) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		movies, err := fetch(ctx)
		if err != nil {
			log.Printf("liststore: refresh failed: %v", err)
			return
		}
		s.deliver(which, movies)
	}()
}

func (s *Store) deliver(which int, movies []model.Movie) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	var obs []Observer
	switch which {
	case catalogList:
		s.catalog = movies
		obs = append(obs, s.catalogObs...)
	case favoritesList:
		s.favorites = movies
		obs = append(obs, s.favoritesObs...)
	}
	s.mu.Unlock()

	for _, fn := range obs {
		fn(movies)
	}
}
