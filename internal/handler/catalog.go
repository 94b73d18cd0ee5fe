// Package handler exposes the HTTP handlers of the Monastery360 API.  Every
// JSON handler writes a response.Envelope; the catalog handlers never fail
// because their data is seeded in memory at startup.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/monastery360/internal/repository"
	"github.com/iliyamo/monastery360/internal/response"
)

// CatalogHandler serves the read-only monastery and event collections.
type CatalogHandler struct {
	MonasteryRepo *repository.MonasteryRepo // provides the monastery list
	EventRepo     *repository.EventRepo     // provides the event list
}

// NewCatalogHandler constructs a CatalogHandler and panics if any dependency is nil.
func NewCatalogHandler(monasteryRepo *repository.MonasteryRepo, eventRepo *repository.EventRepo) *CatalogHandler {
	if monasteryRepo == nil || eventRepo == nil {
		panic("nil repository passed to NewCatalogHandler")
	}
	return &CatalogHandler{MonasteryRepo: monasteryRepo, EventRepo: eventRepo}
}

// ListMonasteries returns every monastery in seed order.  Query parameters
// are ignored.
func (h *CatalogHandler) ListMonasteries(c echo.Context) error {
	return c.JSON(http.StatusOK, response.OK(h.MonasteryRepo.List()))
}

// ListEvents returns every event in seed order.  Query parameters are ignored.
func (h *CatalogHandler) ListEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, response.OK(h.EventRepo.List()))
}

// Preflight answers CORS preflight requests that the CORS middleware let
// through.  The middleware normally responds itself; this only runs if it
// is not installed on the route.
func Preflight(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
