package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// ObjectLocator builds and parses fully-qualified blob URLs below a base URL
type ObjectLocator struct {
	base *url.URL
}

// NewObjectLocator creates an ObjectLocator rooted at baseURL (ex: http://minio:9000/bucket)
func NewObjectLocator(baseURL string) (ObjectLocator, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return ObjectLocator{}, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return ObjectLocator{}, fmt.Errorf("invalid base url %q: scheme and host are required", baseURL)
	}
	return ObjectLocator{base: u}, nil
}

// URL returns the locator of key
func (l ObjectLocator) URL(key string) string {
	u := *l.base
	u.Path = l.base.Path + "/" + key
	u.RawPath = ""
	return u.String()
}

// Key recovers the blob key from a URL built by URL
func (l ObjectLocator) Key(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid url: %w", ErrValidation, err)
	}
	if u.Scheme != l.base.Scheme || u.Host != l.base.Host {
		return "", fmt.Errorf("%w: url %q is outside %q", ErrValidation, rawURL, l.base.String())
	}

	prefix := l.base.Path + "/"
	if !strings.HasPrefix(u.Path, prefix) || len(u.Path) == len(prefix) {
		return "", fmt.Errorf("%w: url %q is outside %q", ErrValidation, rawURL, l.base.String())
	}
	return strings.TrimPrefix(u.Path, prefix), nil
}
