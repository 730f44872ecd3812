package handler // catalog endpoints for the authenticated owner

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jotarsh7/Assignment-3/internal/gateway"
	"github.com/jotarsh7/Assignment-3/internal/model"
	"github.com/jotarsh7/Assignment-3/internal/queue"
	"github.com/jotarsh7/Assignment-3/internal/repository"
)

// Catalog is the slice of the gateway the movie and favorite endpoints use.
type Catalog interface {
	ListCatalog(ctx context.Context) ([]model.Movie, error)
	CreateCatalogEntry(ctx context.Context, m model.Movie) (model.Movie, error)
	ReplaceCatalogEntry(ctx context.Context, m model.Movie) error
	DeleteCatalogEntry(ctx context.Context, m model.Movie) error
	ListFavorites(ctx context.Context) ([]model.Movie, error)
	AddFavorite(ctx context.Context, m model.Movie) (model.Movie, error)
	ReplaceFavorite(ctx context.Context, m model.Movie) error
	DeleteFavorite(ctx context.Context, m model.Movie) error
}

// PublishFunc emits a catalog change event to the message broker. Handlers
// treat it as optional: a nil func disables publishing and publish failures
// are ignored so the broker being down never fails a write.
type PublishFunc func(ctx context.Context, ev queue.CatalogChangedEvent) error

// MovieHandler serves the /v1/movies endpoints.
type MovieHandler struct {
	Svc     Catalog
	Publish PublishFunc
}

func NewMovieHandler(svc Catalog) *MovieHandler { return &MovieHandler{Svc: svc} }

// movieReq binds the writable movie fields. The id and owner come from the
// route and the session, never from the body.
type movieReq struct {
	Title         string  `json:"title"`
	Studio        string  `json:"studio"`
	Description   string  `json:"description"`
	ImageURL      string  `json:"image_url"`
	CriticsRating float64 `json:"critics_rating"`
}

// List handles GET /v1/movies.
func (h *MovieHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Svc.ListCatalog(ctx)
	if err != nil {
		return writeCatalogErr(c, err)
	}
	if items == nil {
		items = []model.Movie{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Create handles POST /v1/movies.
func (h *MovieHandler) Create(c echo.Context) error {
	req, ok := bindMovie(c, false)
	if !ok {
		return nil // response already written
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	created, err := h.Svc.CreateCatalogEntry(ctx, req)
	if err != nil {
		return writeCatalogErr(c, err)
	}
	publish(h.Publish, ctx, "created", "movies", created)
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/movies/:id with a full-record replace.
func (h *MovieHandler) Update(c echo.Context) error {
	req, ok := bindMovie(c, true)
	if !ok {
		return nil
	}
	req.ID = c.Param("id")
	req.OwnerID, _ = c.Get("user_id").(string)
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Svc.ReplaceCatalogEntry(ctx, req); err != nil {
		return writeCatalogErr(c, err)
	}
	publish(h.Publish, ctx, "replaced", "movies", req)
	return c.JSON(http.StatusOK, req)
}

// Delete handles DELETE /v1/movies/:id. Deleting an unknown id succeeds.
func (h *MovieHandler) Delete(c echo.Context) error {
	m := model.Movie{ID: c.Param("id")}
	m.OwnerID, _ = c.Get("user_id").(string)
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Svc.DeleteCatalogEntry(ctx, m); err != nil {
		return writeCatalogErr(c, err)
	}
	publish(h.Publish, ctx, "deleted", "movies", m)
	return c.NoContent(http.StatusNoContent)
}

func publish(fn PublishFunc, ctx context.Context, action, collection string, m model.Movie) {
	if fn == nil {
		return
	}
	_ = fn(ctx, queue.CatalogChangedEvent{
		Action:     action,
		Collection: collection,
		MovieID:    m.ID,
		OwnerID:    m.OwnerID,
		Title:      m.Title,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})
}

// bindMovie binds and validates the writable fields. Title, studio and
// image URL are always required; the description only on edit, matching the
// edit screen's rule. When ok is false a 400 response has already been
// written and the handler should return nil.
func bindMovie(c echo.Context, requireDescription bool) (m model.Movie, ok bool) {
	var req movieReq
	if err := c.Bind(&req); err != nil {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
		return model.Movie{}, false
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Studio = strings.TrimSpace(req.Studio)
	req.ImageURL = strings.TrimSpace(req.ImageURL)
	if req.Title == "" {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
		return model.Movie{}, false
	}
	if req.Studio == "" {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "studio is required"})
		return model.Movie{}, false
	}
	if req.ImageURL == "" {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "image_url is required"})
		return model.Movie{}, false
	}
	if requireDescription && strings.TrimSpace(req.Description) == "" {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "description is required"})
		return model.Movie{}, false
	}
	return model.Movie{
		Title:         req.Title,
		Studio:        req.Studio,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
		CriticsRating: req.CriticsRating,
	}, true
}

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// writeCatalogErr translates gateway and repository errors into HTTP
// responses.
func writeCatalogErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, gateway.ErrUnauthenticated):
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	case errors.Is(err, gateway.ErrMissingID):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id is required"})
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "movie not found"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
}
