package handler // favorites endpoints for the authenticated owner

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jotarsh7/Assignment-3/internal/model"
)

// FavoriteHandler serves the /v1/favorites endpoints. A favorite is a
// copied movie record in its own collection: adding one stores a full copy
// with a fresh id, and later edits to the catalog entry do not reach it.
type FavoriteHandler struct {
	Svc     Catalog
	Publish PublishFunc
}

func NewFavoriteHandler(svc Catalog) *FavoriteHandler { return &FavoriteHandler{Svc: svc} }

// List handles GET /v1/favorites.
func (h *FavoriteHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	items, err := h.Svc.ListFavorites(ctx)
	if err != nil {
		return writeCatalogErr(c, err)
	}
	if items == nil {
		items = []model.Movie{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// Add handles POST /v1/favorites. The body carries the movie being
// favorited; any id in it is discarded in favor of a new one.
func (h *FavoriteHandler) Add(c echo.Context) error {
	req, ok := bindMovie(c, false)
	if !ok {
		return nil
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	created, err := h.Svc.AddFavorite(ctx, req)
	if err != nil {
		return writeCatalogErr(c, err)
	}
	publish(h.Publish, ctx, "created", "favorites", created)
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/favorites/:id with a full-record replace.
func (h *FavoriteHandler) Update(c echo.Context) error {
	req, ok := bindMovie(c, true)
	if !ok {
		return nil
	}
	req.ID = c.Param("id")
	req.OwnerID, _ = c.Get("user_id").(string)
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Svc.ReplaceFavorite(ctx, req); err != nil {
		return writeCatalogErr(c, err)
	}
	publish(h.Publish, ctx, "replaced", "favorites", req)
	return c.JSON(http.StatusOK, req)
}

// Delete handles DELETE /v1/favorites/:id. Deleting an unknown id succeeds.
func (h *FavoriteHandler) Delete(c echo.Context) error {
	m := model.Movie{ID: c.Param("id")}
	m.OwnerID, _ = c.Get("user_id").(string)
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Svc.DeleteFavorite(ctx, m); err != nil {
		return writeCatalogErr(c, err)
	}
	publish(h.Publish, ctx, "deleted", "favorites", m)
	return c.NoContent(http.StatusNoContent)
}
