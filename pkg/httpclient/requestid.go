package httpclient

import (
	"net/http"

	"github.com/google/uuid"
)

// requestIDHeader is the header carrying the client-generated request ID.
const requestIDHeader = "X-Request-ID"

// RequestID returns a middleware that stamps every outgoing request with a
// unique X-Request-ID header, unless the caller already set one. The remote
// catalog echoes the header, which makes client and server logs correlatable.
func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			if r.Header.Get(requestIDHeader) == "" {
				// RoundTrippers must not mutate the caller's request.
				r = r.Clone(r.Context())
				r.Header.Set(requestIDHeader, uuid.New().String())
			}
			return next.RoundTrip(r)
		})
	}
}
