package fetch

import (
	"errors"
	"net/url"
	"strings"
)

var (
	ErrMissingURL      = errors.New("missing url parameter")
	ErrInvalidURL      = errors.New("invalid url")
	ErrHostNotAllowed  = errors.New("host not allowed")
	ErrUnsupportedPath = errors.New("relative url without origin")
)

// ParseTarget parses the url the caller asked for. It must be an absolute
// http(s) URL with a host.
func ParseTarget(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrMissingURL
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, ErrInvalidURL
	}
	if !isHTTPScheme(u) || u.Hostname() == "" {
		return nil, ErrInvalidURL
	}
	return u, nil
}

// NormalizeInput turns what a user typed into an absolute URL string. A
// leading "/" is resolved against origin and input without a scheme gets
// "https://" prepended.
func NormalizeInput(raw, origin string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrMissingURL
	}

	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") {
		if origin == "" {
			return "", ErrUnsupportedPath
		}
		base, err := url.Parse(origin)
		if err != nil {
			return "", ErrInvalidURL
		}
		ref, err := url.Parse(raw)
		if err != nil {
			return "", ErrInvalidURL
		}
		return base.ResolveReference(ref).String(), nil
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + strings.TrimPrefix(raw, "//")
	}
	return raw, nil
}

func isHTTPScheme(u *url.URL) bool {
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}
