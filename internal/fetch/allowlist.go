package fetch

import (
	"net/url"
	"sort"
	"strings"
)

// AllowList is the fixed set of hostnames pages may be fetched from. It is
// built once at startup and never modified.
type AllowList struct {
	hosts map[string]struct{}
}

// NewPublisherAllowList allows exactly the bare publisher domain and its
// www. variant.
func NewPublisherAllowList(domain string) *AllowList {
	domain = strings.ToLower(strings.TrimSpace(domain))
	domain = strings.TrimPrefix(domain, "www.")
	return &AllowList{hosts: map[string]struct{}{
		domain:          {},
		"www." + domain: {},
	}}
}

// Allows reports whether the URL's hostname is on the list. Ports are ignored.
func (a *AllowList) Allows(u *url.URL) bool {
	if a == nil || u == nil {
		return false
	}
	_, ok := a.hosts[strings.ToLower(u.Hostname())]
	return ok
}

// Hosts returns the allowed hostnames, sorted.
func (a *AllowList) Hosts() []string {
	out := make([]string, 0, len(a.hosts))
	for h := range a.hosts {
		out = append(out, h)
	}
	sort.Strings(out)
	return out
}
