package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"risecheckout/config"
	"risecheckout/infras/otel/mocks"
	cacheMocks "risecheckout/shared/cache/mocks"
	"risecheckout/transport/http/middleware"
	"risecheckout/transport/http/router"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error {
	return f.err
}

func newTestServer(t *testing.T, checks map[string]Pinger) *HTTP {
	t.Helper()

	cfg := &config.Config{}
	appMiddleware := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, cacheMocks.NewMockRedisCache(gomock.NewController(t)))

	return &HTTP{
		Config: cfg,
		Router: router.New(router.DomainHandlers{}, appMiddleware),
		checks: checks,
	}
}

func get(h *HTTP, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestHealth(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		h := newTestServer(t, map[string]Pinger{"postgres": fakePinger{}, "redis": fakePinger{}})

		rec := get(h, "/health")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":{"postgres":"ok","redis":"ok"}}`, rec.Body.String())
	})

	t.Run("dependency down", func(t *testing.T) {
		h := newTestServer(t, map[string]Pinger{"postgres": fakePinger{}, "redis": fakePinger{err: errors.New("refused")}})

		rec := get(h, "/health")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "SERVER UNHEALTHY")
	})

	t.Run("grace period", func(t *testing.T) {
		h := newTestServer(t, map[string]Pinger{"postgres": fakePinger{}})
		h.setup()
		h.setState(ServerStateInGracePeriod)

		rec := get(h, "/health")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "SERVER PREPARING TO SHUT DOWN")
	})
}

func TestUnknownRoute(t *testing.T) {
	h := newTestServer(t, nil)

	rec := get(h, "/v1/nope")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, ServerStateReady, h.state())
}
