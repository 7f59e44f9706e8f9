package prerender

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const (
	// HeaderPrerendered marks responses that came from the rendering service.
	HeaderPrerendered = "X-Prerendered"
	// headerToken carries the rendering-service access token.
	headerToken = "X-Prerender-Token"
)

// Proxy routes crawler requests to the rendering service and everything else
// to Next. Per-request and stateless: a failed upstream fetch degrades to the
// normal rendering path, never to an error surfaced to the crawler.
type Proxy struct {
	// ServiceURL is the rendering service base, e.g. "https://service.prerender.io".
	ServiceURL string
	// Token authenticates against the rendering service. Supplied via
	// environment; there is deliberately no baked-in fallback.
	Token string
	// Next handles pass-through traffic.
	Next http.Handler

	Client *http.Client
	Logger *log.Logger
}

func (p *Proxy) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !ShouldProxy(r.URL.Path, r.UserAgent()) {
		p.Next.ServeHTTP(w, r)
		return
	}
	if !p.render(w, r) {
		p.Next.ServeHTTP(w, r)
	}
}

// render fetches the pre-rendered snapshot and copies it to the client.
// It reports false when the caller should fall back to pass-through.
func (p *Proxy) render(w http.ResponseWriter, r *http.Request) bool {
	target := fmt.Sprintf("%s/%s", strings.TrimSuffix(p.ServiceURL, "/"), originalURL(r))

	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, target, nil)
	if err != nil {
		p.logf("prerender: build request: %v", err)
		return false
	}
	req.Header.Set(headerToken, p.Token)
	req.Header.Set("User-Agent", r.UserAgent())

	resp, err := p.client().Do(req)
	if err != nil {
		p.logf("prerender: fetch %s: %v", target, err)
		return false
	}
	defer resp.Body.Close()

	copyHeaders(w.Header(), resp.Header)
	w.Header().Set(HeaderPrerendered, "true")
	w.WriteHeader(resp.StatusCode)
	_, _ = io.Copy(w, resp.Body)
	return true
}

func (p *Proxy) client() *http.Client {
	if p.Client != nil {
		return p.Client
	}
	return http.DefaultClient
}

func (p *Proxy) logf(format string, args ...any) {
	if p.Logger != nil {
		p.Logger.Printf(format, args...)
	}
}

// originalURL reconstructs the absolute URL the crawler asked for, which the
// rendering service receives as its path.
func originalURL(r *http.Request) string {
	scheme := "https"
	if r.TLS == nil && r.Header.Get("X-Forwarded-Proto") == "" {
		scheme = "http"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

// copyHeaders forwards upstream headers, skipping hop-by-hop ones (RFC 7230).
func copyHeaders(dst, src http.Header) {
	for k, vv := range src {
		if isHopByHopHeader(k) {
			continue
		}
		for _, v := range vv {
			dst.Add(k, v)
		}
	}
}

func isHopByHopHeader(k string) bool {
	switch http.CanonicalHeaderKey(k) {
	case "Connection", "Proxy-Connection", "Keep-Alive",
		"Proxy-Authenticate", "Proxy-Authorization",
		"Te", "Trailer", "Transfer-Encoding", "Upgrade":
		return true
	default:
		return false
	}
}

// DefaultClient bounds the single awaited upstream call; there are no retries.
func DefaultClient() *http.Client {
	return &http.Client{Timeout: 15 * time.Second}
}
