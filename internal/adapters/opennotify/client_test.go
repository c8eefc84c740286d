package opennotify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"iss-display-gadget/internal/platform/httpclient"
)

func newTestClient(t *testing.T, body string, status int) *Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	c, err := NewClient(httpclient.New(httpclient.Options{}), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestPositionParsesStringDegrees(t *testing.T) {
	c := newTestClient(t, `{"message":"success","timestamp":1700000000,"iss_position":{"latitude":"-12.3456","longitude":"145.25"}}`, http.StatusOK)

	got, err := c.Position(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Lat != -12.3456 || got.Lon != 145.25 {
		t.Fatalf("position = %+v, want -12.3456,145.25", got)
	}
}

func TestPositionErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "missing position", body: `{"message":"success"}`, status: http.StatusOK},
		{name: "bad latitude", body: `{"iss_position":{"latitude":"north","longitude":"1"}}`, status: http.StatusOK},
		{name: "bad json", body: `<html>`, status: http.StatusOK},
		{name: "server error", body: `oops`, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.body, tt.status)
			if _, err := c.Position(context.Background()); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
