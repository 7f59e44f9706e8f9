package prerender

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const googlebotUA = "Mozilla/5.0 (compatible; Googlebot/2.1)"

func passThrough(t *testing.T) (http.Handler, *int) {
	t.Helper()
	calls := 0
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("origin"))
	}), &calls
}

func TestProxyRendersForCrawler(t *testing.T) {
	var gotToken, gotUA string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Prerender-Token")
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Cache-Control", "max-age=60")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>snapshot</html>"))
	}))
	defer upstream.Close()

	next, calls := passThrough(t)
	p := &Proxy{
		ServiceURL: upstream.URL,
		Token:      "test-token",
		Next:       next,
		Logger:     log.New(io.Discard, "", 0),
	}

	r := httptest.NewRequest(http.MethodGet, "http://shop.example/product/42", nil)
	r.Header.Set("User-Agent", googlebotUA)
	w := httptest.NewRecorder()

	p.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<html>snapshot</html>", w.Body.String())
	assert.Equal(t, "true", w.Header().Get(HeaderPrerendered))
	assert.Equal(t, "max-age=60", w.Header().Get("Cache-Control"))
	assert.Equal(t, "test-token", gotToken)
	assert.Equal(t, googlebotUA, gotUA)
	assert.Equal(t, 0, *calls, "pass-through must not be hit")
}

func TestProxyPassesThroughStaticAssets(t *testing.T) {
	next, calls := passThrough(t)
	p := &Proxy{ServiceURL: "http://127.0.0.1:1", Token: "t", Next: next}

	r := httptest.NewRequest(http.MethodGet, "http://shop.example/logo.png", nil)
	r.Header.Set("User-Agent", googlebotUA)
	w := httptest.NewRecorder()

	p.ServeHTTP(w, r)

	assert.Equal(t, 1, *calls)
	assert.Empty(t, w.Header().Get(HeaderPrerendered))
}

func TestProxyPassesThroughNormalTraffic(t *testing.T) {
	next, calls := passThrough(t)
	p := &Proxy{ServiceURL: "http://127.0.0.1:1", Token: "t", Next: next}

	r := httptest.NewRequest(http.MethodGet, "http://shop.example/product/42", nil)
	r.Header.Set("User-Agent", "Chrome/120.0")
	w := httptest.NewRecorder()

	p.ServeHTTP(w, r)

	assert.Equal(t, 1, *calls)
	assert.Equal(t, "origin", w.Body.String())
}

func TestProxyFallsBackOnUpstreamError(t *testing.T) {
	next, calls := passThrough(t)
	p := &Proxy{
		// nothing listens here, the fetch fails immediately
		ServiceURL: "http://127.0.0.1:1",
		Token:      "t",
		Next:       next,
		Logger:     log.New(io.Discard, "", 0),
	}

	r := httptest.NewRequest(http.MethodGet, "http://shop.example/product/42", nil)
	r.Header.Set("User-Agent", googlebotUA)
	w := httptest.NewRecorder()

	p.ServeHTTP(w, r)

	assert.Equal(t, 1, *calls, "failure must degrade to pass-through")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "origin", w.Body.String())
}

func TestProxyForwardsUpstreamStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	}))
	defer upstream.Close()

	next, calls := passThrough(t)
	p := &Proxy{ServiceURL: upstream.URL, Token: "t", Next: next}

	r := httptest.NewRequest(http.MethodGet, "http://shop.example/gone", nil)
	r.Header.Set("User-Agent", googlebotUA)
	w := httptest.NewRecorder()

	p.ServeHTTP(w, r)

	// upstream answered, so its status is forwarded as-is
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "true", w.Header().Get(HeaderPrerendered))
	assert.Equal(t, 0, *calls)
}
