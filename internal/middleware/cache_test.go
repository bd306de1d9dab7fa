package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiktorkow/cinemaapi/internal/config"
)

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": {"application/json"}, "X-Foo": {"a", "b"}}
	body := []byte(`{"ok":true}`)

	bs, err := encodePayload(http.StatusOK, hdr, body)
	require.NoError(t, err)

	status, gotHdr, gotBody, ok := decodePayload(bs)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, hdr, gotHdr)
	assert.Equal(t, body, gotBody)
}

func TestDecodePayloadRejectsGarbage(t *testing.T) {
	for _, bs := range [][]byte{nil, {1, 2, 3}, []byte("short")} {
		_, _, _, ok := decodePayload(bs)
		assert.False(t, ok)
	}
}

func TestCacheKeyVariesWithStrategy(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/movie/all?x=1", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	c.SetPath("/movie/all")

	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "path"}
	pathKey := cacheKeyFrom(cfg, c)

	cfg.KeyStrategy = "path_query"
	queryKey := cacheKeyFrom(cfg, c)

	assert.NotEqual(t, pathKey, queryKey)
	assert.Contains(t, pathKey, "cache:")
}

// Two ids behind the same parameterized route must never share a cache
// entry, under every strategy.
func TestCacheKeyDistinctPerPathParam(t *testing.T) {
	e := echo.New()
	keyFor := func(target, strategy string) string {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.SetPath("/movie/:movie_id")
		c.SetParamNames("movie_id")
		c.SetParamValues(target[len("/movie/"):])
		return cacheKeyFrom(config.CacheConfig{Prefix: "cache", KeyStrategy: strategy}, c)
	}

	for _, strategy := range []string{"path", "method_path", "method_path_query", "path_query"} {
		assert.NotEqual(t, keyFor("/movie/1", strategy), keyFor("/movie/2", strategy), strategy)
	}
}

// Without a Redis client the middleware must be invisible.
func TestCachePassThroughWithoutRedis(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/movie/all", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewRedisCache(config.CacheConfig{Enabled: true}, nil)
	next := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	require.NoError(t, mw(next)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

// Credentialed requests must reach the auth gate on every call, so the
// cache neither stores nor replays them. The Redis client here points at a
// closed port: any cache lookup would surface as an X-Cache header.
func TestCacheSkipsAuthorizedRequests(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/genre/abc", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	cfg := config.CacheConfig{Enabled: true, Methods: map[string]bool{"GET": true}, Prefix: "cache"}
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	mw := NewRedisCache(cfg, rdb)

	next := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	require.NoError(t, mw(next)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestRateSubjectPerCredential(t *testing.T) {
	e := echo.New()
	ctxWithAuth := func(auth string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/movie/all", nil)
		if auth != "" {
			req.Header.Set(echo.HeaderAuthorization, auth)
		}
		return e.NewContext(req, httptest.NewRecorder())
	}
	cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: "user_route"}

	alice := buildRateKey(cfg, ctxWithAuth("Bearer token-a"))
	bob := buildRateKey(cfg, ctxWithAuth("Bearer token-b"))
	assert.NotEqual(t, alice, bob)
	assert.Equal(t, alice, buildRateKey(cfg, ctxWithAuth("Bearer token-a")))

	// An authenticated identity on the context outranks the raw credential.
	c := ctxWithAuth("Bearer token-a")
	c.Set(CtxUserID, "7b0d2f8e-0000-0000-0000-000000000001")
	assert.Contains(t, buildRateKey(cfg, c), "user:7b0d2f8e")
}

func TestRateLimitPassThroughWhenDisabled(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/movie/all", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewTokenBucket(config.RateLimitConfig{Enabled: false}, nil)
	next := func(c echo.Context) error { return c.String(http.StatusOK, "ok") }
	require.NoError(t, mw(next)(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}
