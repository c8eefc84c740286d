package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"iss-display-gadget/internal/domain"
	"iss-display-gadget/internal/platform/httpclient"
)

func TestMapsCoReverse(t *testing.T) {
	tests := []struct {
		name string
		body string
		want domain.Address
	}{
		{
			name: "city",
			body: `{"display_name":"x","address":{"city":"Nottingham","state":"England","country":"United Kingdom"}}`,
			want: domain.Address{Country: "United Kingdom", City: "Nottingham", State: "England"},
		},
		{
			name: "suburb only",
			body: `{"address":{"suburb":" Shibuya ","country":"Japan"}}`,
			want: domain.Address{Country: "Japan", Suburb: "Shibuya"},
		},
		{
			name: "ocean",
			body: `{"error":"Unable to geocode"}`,
			want: domain.Address{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				q := r.URL.Query()
				if q.Get("lat") != "10.5" || q.Get("lon") != "-20.25" {
					t.Errorf("query = %s", r.URL.RawQuery)
				}
				if q.Get("api_key") != "k" {
					t.Errorf("api_key = %q, want k", q.Get("api_key"))
				}
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			g, err := NewMapsCoGeocoder(httpclient.New(httpclient.Options{}), srv.URL, "k")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			got, err := g.Reverse(context.Background(), domain.Coordinates{Lat: 10.5, Lon: -20.25})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("address = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMapsCoReverseHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g, err := NewMapsCoGeocoder(httpclient.New(httpclient.Options{}), srv.URL, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := g.Reverse(context.Background(), domain.Coordinates{}); err == nil {
		t.Fatal("expected error")
	}
}
