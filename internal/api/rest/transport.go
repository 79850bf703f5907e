package rest

import (
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// Transport is an http.RoundTripper that tags every request with an
// X-Request-Id and logs request metadata. Payloads are never logged.
type Transport struct {
	next http.RoundTripper
	log  *zap.Logger
}

// NewTransport wraps next (http.DefaultTransport when nil) with logging.
func NewTransport(next http.RoundTripper, log *zap.Logger) *Transport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &Transport{next: next, log: log}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	id, _ := uuid.NewV4()
	req.Header.Set("X-Request-Id", id.String())

	start := time.Now()
	resp, err := t.next.RoundTrip(req)

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.String("request_id", id.String()),
		zap.Duration("dur", time.Since(start)),
	}
	if err != nil {
		t.log.Warn("http", append(fields, zap.Error(err))...)
		return nil, err
	}
	t.log.Info("http", append(fields, zap.Int("status", resp.StatusCode))...)
	return resp, nil
}
