package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
)

// RewriteTransport sends every request to Target regardless of the host in
// the URL, so tests can serve allow-listed publisher hosts from httptest.
type RewriteTransport struct {
	Target *url.URL

	mu       sync.Mutex
	requests []string
}

func (t *RewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.mu.Lock()
	t.requests = append(t.requests, req.URL.String())
	t.mu.Unlock()

	out := req.Clone(req.Context())
	out.URL.Scheme = t.Target.Scheme
	out.URL.Host = t.Target.Host
	out.Host = ""
	return http.DefaultTransport.RoundTrip(out)
}

// Requests returns the URLs as the client asked for them, in order.
func (t *RewriteTransport) Requests() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.requests...)
}

// NewPublisherClient returns an http.Client whose requests all land on srv.
func NewPublisherClient(srv *httptest.Server) (*http.Client, *RewriteTransport) {
	target, _ := url.Parse(srv.URL)
	transport := &RewriteTransport{Target: target}
	return &http.Client{Transport: transport}, transport
}
