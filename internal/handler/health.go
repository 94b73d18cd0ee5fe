package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/monastery360/internal/response"
)

// RunningMessage is the plain-text liveness body served on / and /health.
const RunningMessage = "Monastery360 Backend is running"

// Root is the liveness endpoint used by load balancers and humans alike.
// It writes RunningMessage as plain text, outside the JSON envelope.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, RunningMessage)
}

// APIHealth is the liveness endpoint for API clients; it returns the
// envelope {"success":true,"data":"ok"}.
func APIHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, response.OK("ok"))
}
