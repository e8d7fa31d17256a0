package providers

import (
	"net/http"
	"time"
)

const defaultHTTPTimeout = 10 * time.Second

// HTTPDoer is the subset of *http.Client the upstream clients need.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// DoerFunc adapts a function to HTTPDoer.
type DoerFunc func(req *http.Request) (*http.Response, error)

func (f DoerFunc) Do(req *http.Request) (*http.Response, error) { return f(req) }

// NewHTTPClient returns a client with the given timeout, defaulting to 10s.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

// ResolveDoer returns doer or a default client when it is nil.
func ResolveDoer(doer HTTPDoer) HTTPDoer {
	if doer != nil {
		return doer
	}
	return NewHTTPClient(0)
}
