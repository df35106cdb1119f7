// Package httpclient provides composable http.RoundTripper middleware for
// outgoing requests: request IDs, structured logging, and arbitrary
// instrumentation layers stack over a base transport.
package httpclient

import "net/http"

// Middleware wraps an http.RoundTripper with additional behaviour.
type Middleware func(http.RoundTripper) http.RoundTripper

// roundTripperFunc adapts a function to the http.RoundTripper interface.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

// Wrap applies middlewares to a base transport. The first middleware in the
// list becomes the outermost layer, so
//
//	Wrap(base, RequestID(), LogRequests())
//
// stamps the request ID before the logger runs and the logger sees it.
// A nil base falls back to http.DefaultTransport.
func Wrap(base http.RoundTripper, middlewares ...Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	for i := len(middlewares) - 1; i >= 0; i-- {
		base = middlewares[i](base)
	}
	return base
}
