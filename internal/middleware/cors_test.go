package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

var localOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

func newCORSServer() *echo.Echo {
	e := echo.New()
	cors := CORS(localOrigins)
	ok := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	e.GET("/api/monasteries", ok, cors)
	e.OPTIONS("/api/monasteries", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, cors)
	return e
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		origin     string
		wantStatus int
		wantOrigin string
	}{
		{name: "localhost request", method: http.MethodGet, origin: "http://localhost:3000", wantStatus: http.StatusOK, wantOrigin: "http://localhost:3000"},
		{name: "loopback ip request", method: http.MethodGet, origin: "http://127.0.0.1:3000", wantStatus: http.StatusOK, wantOrigin: "http://127.0.0.1:3000"},
		{name: "foreign origin request", method: http.MethodGet, origin: "http://evil.example", wantStatus: http.StatusOK},
		{name: "other port request", method: http.MethodGet, origin: "http://localhost:3001", wantStatus: http.StatusOK},
		{name: "no origin", method: http.MethodGet, wantStatus: http.StatusOK},
		{name: "localhost preflight", method: http.MethodOptions, origin: "http://localhost:3000", wantStatus: http.StatusNoContent, wantOrigin: "http://localhost:3000"},
		{name: "foreign origin preflight", method: http.MethodOptions, origin: "http://evil.example", wantStatus: http.StatusNoContent},
	}
	e := newCORSServer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/monasteries", nil)
			if tt.origin != "" {
				req.Header.Set(echo.HeaderOrigin, tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		})
	}
}

func TestCORSPreflightAdvertisesMethods(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/monasteries", nil)
	req.Header.Set(echo.HeaderOrigin, "http://127.0.0.1:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
	rec := httptest.NewRecorder()

	newCORSServer().ServeHTTP(rec, req)

	assert.Contains(t, rec.Header().Get(echo.HeaderAccessControlAllowMethods), http.MethodGet)
	assert.Equal(t, "86400", rec.Header().Get(echo.HeaderAccessControlMaxAge))
}
