package fetcher

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"google.golang.org/api/googleapi"
)

// ErrMalformedResponse marks a page that does not match the commentThreads schema.
var ErrMalformedResponse = errors.New("malformed commentThreads response")

// UpstreamError is any failure returned while listing comment threads. It aborts
// the fetch in progress; nothing is retried.
type UpstreamError struct {
	VideoID    string
	Page       int
	StatusCode int
	Reason     string
	Err        error
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("youtube api: video %s page %d", e.VideoID, e.Page)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(": HTTP %d", e.StatusCode)
	}
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg + ": " + e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// HTTPStatus is the status a caller should surface for this error.
func (e *UpstreamError) HTTPStatus() int {
	switch e.StatusCode {
	case http.StatusBadRequest, http.StatusForbidden, http.StatusNotFound, http.StatusTooManyRequests:
		return e.StatusCode
	}
	return http.StatusBadGateway
}

func newUpstreamError(videoID string, page int, err error) *UpstreamError {
	ue := &UpstreamError{VideoID: videoID, Page: page, Err: err}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		ue.StatusCode = gerr.Code
		if len(gerr.Errors) > 0 {
			ue.Reason = gerr.Errors[0].Reason
		}
	}

	// Transport errors print the request URL, which carries the API key.
	var uerr *url.Error
	if errors.As(err, &uerr) {
		ue.Err = fmt.Errorf("%s %s: %w", uerr.Op, redactKey(uerr.URL), uerr.Err)
	}
	return ue
}

func redactKey(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return "<request url>"
	}
	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
