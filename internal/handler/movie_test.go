package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jotarsh7/Assignment-3/internal/gateway"
	"github.com/jotarsh7/Assignment-3/internal/model"
	"github.com/jotarsh7/Assignment-3/internal/queue"
)

// fakeCatalog implements Catalog in memory against a fixed owner; an empty
// owner simulates an unauthenticated session.
type fakeCatalog struct {
	owner     string
	movies    []model.Movie
	favorites []model.Movie
	seq       int
}

func (f *fakeCatalog) nextID() string { f.seq++; return fmt.Sprintf("id-%d", f.seq) }

func (f *fakeCatalog) ListCatalog(context.Context) ([]model.Movie, error) {
	if f.owner == "" {
		return nil, gateway.ErrUnauthenticated
	}
	return f.movies, nil
}

func (f *fakeCatalog) CreateCatalogEntry(_ context.Context, m model.Movie) (model.Movie, error) {
	if f.owner == "" {
		return model.Movie{}, gateway.ErrUnauthenticated
	}
	m.ID, m.OwnerID = f.nextID(), f.owner
	f.movies = append(f.movies, m)
	return m, nil
}

func (f *fakeCatalog) ReplaceCatalogEntry(_ context.Context, m model.Movie) error {
	if m.ID == "" {
		return gateway.ErrMissingID
	}
	for i := range f.movies {
		if f.movies[i].ID == m.ID {
			f.movies[i] = m
			return nil
		}
	}
	return gateway.ErrMissingID
}

func (f *fakeCatalog) DeleteCatalogEntry(_ context.Context, m model.Movie) error {
	for i := range f.movies {
		if f.movies[i].ID == m.ID {
			f.movies = append(f.movies[:i], f.movies[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeCatalog) ListFavorites(context.Context) ([]model.Movie, error) {
	return f.favorites, nil
}

func (f *fakeCatalog) AddFavorite(_ context.Context, m model.Movie) (model.Movie, error) {
	m.ID, m.OwnerID = f.nextID(), f.owner
	f.favorites = append(f.favorites, m)
	return m, nil
}

func (f *fakeCatalog) ReplaceFavorite(context.Context, model.Movie) error { return nil }
func (f *fakeCatalog) DeleteFavorite(context.Context, model.Movie) error  { return nil }

func jsonReq(method, target, body string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

func TestCreateMovieReturnsAssignedID(t *testing.T) {
	svc := &fakeCatalog{owner: "alice"}
	var events []queue.CatalogChangedEvent
	h := NewMovieHandler(svc)
	h.Publish = func(_ context.Context, ev queue.CatalogChangedEvent) error {
		events = append(events, ev)
		return nil
	}

	_, c, rec := jsonReq(http.MethodPost, "/v1/movies",
		`{"title":"Heat","studio":"Warner Bros","description":"heist","image_url":"https://posters.example/heat.jpg","critics_rating":8.3}`)
	require.NoError(t, h.Create(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"id-1"`)
	assert.Contains(t, rec.Body.String(), `"owner_id":"alice"`)

	require.Len(t, events, 1)
	assert.Equal(t, "created", events[0].Action)
	assert.Equal(t, "movies", events[0].Collection)
	assert.Equal(t, "id-1", events[0].MovieID)
}

func TestCreateMovieValidatesRequiredFields(t *testing.T) {
	h := NewMovieHandler(&fakeCatalog{owner: "alice"})

	for _, tc := range []struct {
		name string
		body string
		want string
	}{
		{"missing title", `{"studio":"s","image_url":"u"}`, "title is required"},
		{"missing studio", `{"title":"t","image_url":"u"}`, "studio is required"},
		{"missing image", `{"title":"t","studio":"s"}`, "image_url is required"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, c, rec := jsonReq(http.MethodPost, "/v1/movies", tc.body)
			require.NoError(t, h.Create(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.want)
		})
	}
}

func TestUpdateMovieRequiresDescription(t *testing.T) {
	svc := &fakeCatalog{owner: "alice"}
	svc.movies = []model.Movie{{ID: "id-1", OwnerID: "alice", Title: "Heat"}}
	h := NewMovieHandler(svc)

	e, _, _ := jsonReq(http.MethodPut, "/", "")
	req := httptest.NewRequest(http.MethodPut, "/v1/movies/id-1",
		strings.NewReader(`{"title":"Heat","studio":"Warner Bros","image_url":"u","description":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("id-1")

	require.NoError(t, h.Update(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "description is required")
}

func TestListMoviesUnauthenticated(t *testing.T) {
	h := NewMovieHandler(&fakeCatalog{}) // no owner resolvable

	_, c, rec := jsonReq(http.MethodGet, "/v1/movies", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListMoviesEmptyIsAnEmptyArray(t *testing.T) {
	h := NewMovieHandler(&fakeCatalog{owner: "alice"})

	_, c, rec := jsonReq(http.MethodGet, "/v1/movies", "")
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items":[]`)
}

func TestDeleteMovieNoContentAndPublishes(t *testing.T) {
	svc := &fakeCatalog{owner: "alice",
		movies: []model.Movie{{ID: "id-1", OwnerID: "alice", Title: "Heat"}}}
	var events []queue.CatalogChangedEvent
	h := NewMovieHandler(svc)
	h.Publish = func(_ context.Context, ev queue.CatalogChangedEvent) error {
		events = append(events, ev)
		return nil
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/v1/movies/id-1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "alice")
	c.SetParamNames("id")
	c.SetParamValues("id-1")

	require.NoError(t, h.Delete(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, svc.movies)
	require.Len(t, events, 1)
	assert.Equal(t, "deleted", events[0].Action)
}

func TestAddFavoriteStoresCopy(t *testing.T) {
	svc := &fakeCatalog{owner: "alice"}
	h := NewFavoriteHandler(svc)

	_, c, rec := jsonReq(http.MethodPost, "/v1/favorites",
		`{"title":"Heat","studio":"Warner Bros","description":"heist","image_url":"u","critics_rating":8.3}`)
	require.NoError(t, h.Add(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, svc.favorites, 1)
	assert.Equal(t, "alice", svc.favorites[0].OwnerID)
	assert.NotEmpty(t, svc.favorites[0].ID)
}
