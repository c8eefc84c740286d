package opennotify

import (
	"context"
	"errors"
	"fmt"
	"iss-display-gadget/internal/domain"
	"iss-display-gadget/internal/platform/httpclient"
	"iss-display-gadget/internal/platform/obs"
	"strconv"
	"strings"
)

const DefaultURL = "http://api.open-notify.org/iss-now.json"

type issNowResponse struct {
	Message     string `json:"message"`
	Timestamp   int64  `json:"timestamp"`
	ISSPosition struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"iss_position"`
}

// Client implements PositionProvider against the Open Notify iss-now API.
type Client struct {
	http *httpclient.Client
	url  string
}

func NewClient(http *httpclient.Client, url string) (*Client, error) {
	if http == nil {
		return nil, errors.New("open notify client: http client is nil")
	}
	if strings.TrimSpace(url) == "" {
		url = DefaultURL
	}
	return &Client{http: http, url: url}, nil
}

// Position fetches the current sub-satellite point.
func (c *Client) Position(ctx context.Context) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "opennotify.Position")(&err)

	var decoded issNowResponse
	if err := c.http.GetJSON(ctx, c.url, nil, &decoded); err != nil {
		return domain.Coordinates{}, fmt.Errorf("iss position: %w", err)
	}

	lat, err := parseDegrees(decoded.ISSPosition.Latitude)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("iss position: latitude: %w", err)
	}

	lon, err := parseDegrees(decoded.ISSPosition.Longitude)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("iss position: longitude: %w", err)
	}

	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}

// The API sends degrees as JSON strings.
func parseDegrees(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("missing value")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return v, nil
}
