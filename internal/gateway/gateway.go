// Package gateway is the facade between the application and its backend
// collaborators: the two movie collections of the document store and the
// identity of the authenticated owner. Every operation resolves the current
// owner first and scopes the underlying call to it; a call without a
// resolvable owner fails with ErrUnauthenticated instead of silently doing
// nothing, so callers can always tell "no session" apart from "empty list".
//
// The backend handles are injected at construction, which lets tests swap
// in fakes and keeps the package free of global state.
package gateway

import (
	"context"
	"errors"

	"github.com/jotarsh7/Assignment-3/internal/model"
)

// ErrUnauthenticated is returned by every operation when no owner identity
// can be resolved from the context.
var ErrUnauthenticated = errors.New("unauthenticated")

// ErrMissingID is returned by replace and delete operations when the given
// movie has no id, i.e. it was never persisted.
var ErrMissingID = errors.New("movie id required")

// Collection is the contract the document store offers for one named
// collection of movie records: equality-filtered listing by owner,
// insert-returning-id, full-record replace and delete-by-id.
type Collection interface {
	ListByOwner(ctx context.Context, ownerID string) ([]model.Movie, error)
	Insert(ctx context.Context, m model.Movie) (model.Movie, error)
	Replace(ctx context.Context, m model.Movie) error
	Delete(ctx context.Context, ownerID, id string) error
}

// Identity resolves the owner the current call acts for. The HTTP layer
// implements it from JWT claims stored in the request context; tests use a
// fixed id.
type Identity interface {
	CurrentOwnerID(ctx context.Context) (string, bool)
}

// Gateway exposes the catalog and favorites operations. Both collections
// share the same semantics; a favorite is a copied record in the second
// collection, so editing a catalog entry never touches an existing favorite
// copy.
type Gateway struct {
	catalog   Collection
	favorites Collection
	ident     Identity
}

// New constructs a Gateway from injected backend handles.
func New(catalog, favorites Collection, ident Identity) *Gateway {
	return &Gateway{catalog: catalog, favorites: favorites, ident: ident}
}

// ListCatalog returns every catalog record belonging to the current owner.
func (g *Gateway) ListCatalog(ctx context.Context) ([]model.Movie, error) {
	return g.list(ctx, g.catalog)
}

// CreateCatalogEntry persists a new catalog record. The owner id is stamped
// from the resolved identity, overwriting whatever the caller supplied, and
// the returned movie carries the id the store assigned.
func (g *Gateway) CreateCatalogEntry(ctx context.Context, m model.Movie) (model.Movie, error) {
	return g.create(ctx, g.catalog, m)
}

// ReplaceCatalogEntry overwrites the full record at m.ID.
func (g *Gateway) ReplaceCatalogEntry(ctx context.Context, m model.Movie) error {
	return g.replace(ctx, g.catalog, m)
}

// DeleteCatalogEntry removes the record at m.ID. Unknown ids are a no-op.
func (g *Gateway) DeleteCatalogEntry(ctx context.Context, m model.Movie) error {
	return g.delete(ctx, g.catalog, m)
}

// ListFavorites returns every favorite record belonging to the current owner.
func (g *Gateway) ListFavorites(ctx context.Context) ([]model.Movie, error) {
	return g.list(ctx, g.favorites)
}

// AddFavorite copies a movie into the favorites collection. The copy gets
// its own id; it is not linked to the catalog record it came from.
func (g *Gateway) AddFavorite(ctx context.Context, m model.Movie) (model.Movie, error) {
	m.ID = "" // the favorites collection assigns its own id
	return g.create(ctx, g.favorites, m)
}

// ReplaceFavorite overwrites the full favorite record at m.ID.
func (g *Gateway) ReplaceFavorite(ctx context.Context, m model.Movie) error {
	return g.replace(ctx, g.favorites, m)
}

// DeleteFavorite removes the favorite record at m.ID. Unknown ids are a
// no-op.
func (g *Gateway) DeleteFavorite(ctx context.Context, m model.Movie) error {
	return g.delete(ctx, g.favorites, m)
}

func (g *Gateway) list(ctx context.Context, col Collection) ([]model.Movie, error) {
	owner, ok := g.ident.CurrentOwnerID(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	return col.ListByOwner(ctx, owner)
}

func (g *Gateway) create(ctx context.Context, col Collection, m model.Movie) (model.Movie, error) {
	owner, ok := g.ident.CurrentOwnerID(ctx)
	if !ok {
		return model.Movie{}, ErrUnauthenticated
	}
	m.OwnerID = owner
	return col.Insert(ctx, m)
}

func (g *Gateway) replace(ctx context.Context, col Collection, m model.Movie) error {
	owner, ok := g.ident.CurrentOwnerID(ctx)
	if !ok {
		return ErrUnauthenticated
	}
	if m.ID == "" {
		return ErrMissingID
	}
	m.OwnerID = owner
	return col.Replace(ctx, m)
}

func (g *Gateway) delete(ctx context.Context, col Collection, m model.Movie) error {
	owner, ok := g.ident.CurrentOwnerID(ctx)
	if !ok {
		return ErrUnauthenticated
	}
	if m.ID == "" {
		return ErrMissingID
	}
	return col.Delete(ctx, owner, m.ID)
}
