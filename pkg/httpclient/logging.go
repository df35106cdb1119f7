package httpclient

import (
	"net/http"
	"time"

	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"
)

// LogRequests returns a middleware that logs every outgoing request with its
// method, URL, status, and duration. The logger is taken from the request
// context via zctx, so callers control the logging destination.
func LogRequests() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			lg := zctx.From(r.Context())
			start := time.Now()

			resp, err := next.RoundTrip(r)

			fields := []zap.Field{
				zap.String("method", r.Method),
				zap.String("url", r.URL.String()),
				zap.Duration("duration", time.Since(start)),
			}
			if id := r.Header.Get(requestIDHeader); id != "" {
				fields = append(fields, zap.String("request_id", id))
			}

			if err != nil {
				lg.Error("Request failed", append(fields, zap.Error(err))...)
				return resp, err
			}

			lg.Info("Request completed", append(fields, zap.Int("status", resp.StatusCode))...)
			return resp, nil
		})
	}
}
