package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stpnv0/StayBooker/internal/handler"
	"github.com/stpnv0/StayBooker/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/ginext"
)

func noAuth(c *ginext.Context) { c.Next() }

func TestInitRouter_Health(t *testing.T) {
	r := InitRouter("test", handler.NewHandler(handler.Services{}), noAuth, middleware.Metrics())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestInitRouter_Metrics(t *testing.T) {
	r := InitRouter("test", handler.NewHandler(handler.Services{}), noAuth, middleware.Metrics())

	// Сначала запрос, чтобы счётчик появился
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "staybooker_http_requests_total")
}

func TestInitRouter_MalformedID(t *testing.T) {
	r := InitRouter("test", handler.NewHandler(handler.Services{}), noAuth)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/not-a-uuid", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
