package geocode

import (
	"context"
	"errors"
	"fmt"
	"iss-display-gadget/internal/domain"
	"iss-display-gadget/internal/platform/httpclient"
	"iss-display-gadget/internal/platform/obs"
	"net/url"
	"strconv"
	"strings"
)

const DefaultURL = "https://geocode.maps.co/reverse"

type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
	Address     *struct {
		Country string `json:"country"`
		City    string `json:"city"`
		Suburb  string `json:"suburb"`
		State   string `json:"state"`
	} `json:"address"`
}

// MapsCoGeocoder implements ReverseGeocoder using geocode.maps.co (/reverse).
//
// Over open water the service answers without an address; that yields an
// empty Address rather than an error.
type MapsCoGeocoder struct {
	http   *httpclient.Client
	url    string
	apiKey string
}

func NewMapsCoGeocoder(http *httpclient.Client, endpoint, apiKey string) (*MapsCoGeocoder, error) {
	if http == nil {
		return nil, errors.New("maps.co geocoder: http client is nil")
	}
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultURL
	}
	return &MapsCoGeocoder{http: http, url: endpoint, apiKey: apiKey}, nil
}

func (g *MapsCoGeocoder) Reverse(ctx context.Context, at domain.Coordinates) (_ domain.Address, err error) {
	defer obs.Time(ctx, "mapsco.Reverse")(&err)

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(at.Lon, 'f', -1, 64))
	if g.apiKey != "" {
		q.Set("api_key", g.apiKey)
	}

	var decoded reverseResponse
	if err := g.http.GetJSON(ctx, g.url, q, &decoded); err != nil {
		return domain.Address{}, fmt.Errorf("reverse geocode %s: %w", at, err)
	}

	if decoded.Address == nil {
		return domain.Address{}, nil
	}

	return domain.Address{
		Country: strings.TrimSpace(decoded.Address.Country),
		City:    strings.TrimSpace(decoded.Address.City),
		Suburb:  strings.TrimSpace(decoded.Address.Suburb),
		State:   strings.TrimSpace(decoded.Address.State),
	}, nil
}
