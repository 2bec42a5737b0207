package kerberos

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// loggingTransport logs every outbound API request with a generated
// request id, status and duration.
type loggingTransport struct {
	base http.RoundTripper
	log  zerolog.Logger
}

func newLoggingTransport(base http.RoundTripper, log zerolog.Logger) *loggingTransport {
	return &loggingTransport{base: base, log: log}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	requestID := uuid.NewString()
	start := time.Now()

	resp, err := t.base.RoundTrip(req)

	evt := t.log.Debug()
	if err != nil {
		evt = t.log.Error().Err(err)
	}
	evt = evt.
		Str("request_id", requestID).
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Dur("duration", time.Since(start))
	if resp != nil {
		evt = evt.Int("status", resp.StatusCode)
	}
	evt.Msg("kerberos api request")

	return resp, err
}
