package utility

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) echo.Context {
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetRealIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", GetRealIP(newContext(req)))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Real-IP", "198.51.100.2")
	assert.Equal(t, "198.51.100.2", GetRealIP(newContext(req)))
}

func TestGetUserIDFromContext(t *testing.T) {
	c := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

	_, err := GetUserIDFromContext(c)
	assert.Error(t, err)

	c.Set(UserIDKey, "uid-1")
	id, err := GetUserIDFromContext(c)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", id)
}

func TestGetLogger(t *testing.T) {
	c := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Same(t, &log.Logger, GetLogger(c))

	l := zerolog.Nop()
	c.Set(LoggerKey, &l)
	assert.Same(t, &l, GetLogger(c))
}
