package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"comment-service/fetcher"
	"comment-service/resolver"
	"comment-service/store"
	"comment-service/utils"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		want    int
		wantMsg string
	}{
		{"unrecognized url", resolver.ErrURLNotRecognized, http.StatusBadRequest, utils.InvalidURLMessage},
		{"wrapped unrecognized", fmt.Errorf("submit: %w", resolver.ErrURLNotRecognized), http.StatusBadRequest, utils.InvalidURLMessage},
		{"missing session", store.ErrNotFound, http.StatusNotFound, store.ErrNotFound.Error()},
		{"quota", &fetcher.UpstreamError{VideoID: "v", StatusCode: 403, Err: errors.New("quota")}, http.StatusForbidden, ""},
		{"network", &fetcher.UpstreamError{VideoID: "v", Err: errors.New("dial tcp")}, http.StatusBadGateway, ""},
		{"other", errors.New("disk full"), http.StatusInternalServerError, "disk full"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, msg := statusFor(tt.err)
			if got != tt.want {
				t.Errorf("statusFor() status = %d, want %d", got, tt.want)
			}
			if tt.wantMsg != "" && msg != tt.wantMsg {
				t.Errorf("statusFor() message = %q, want %q", msg, tt.wantMsg)
			}
		})
	}
}

func TestTemplatesParse(t *testing.T) {
	if Templates().Lookup("index.html") == nil {
		t.Fatal("index.html template not embedded")
	}
}
