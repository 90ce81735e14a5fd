// Package geo estimates driving distances through the Mapbox geocoding and
// directions APIs.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"freight-marketplace/internal/config"
)

type MapboxClient struct {
	token   string
	baseURL string
	client  *http.Client
}

func NewMapboxClient(cfg *config.MapboxConfig) *MapboxClient {
	return &MapboxClient{
		token:   cfg.Token,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type geocodeResponse struct {
	Features []struct {
		Center [2]float64 `json:"center"`
	} `json:"features"`
}

type directionsResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

// DrivingDistance returns the driving distance between two free-form
// addresses formatted as "<km> km".
func (c *MapboxClient) DrivingDistance(ctx context.Context, pickupAddress, dropAddress string) (string, error) {
	pickupLng, pickupLat, err := c.geocode(ctx, pickupAddress)
	if err != nil {
		return "", fmt.Errorf("failed to geocode pickup address: %w", err)
	}

	dropLng, dropLat, err := c.geocode(ctx, dropAddress)
	if err != nil {
		return "", fmt.Errorf("failed to geocode drop address: %w", err)
	}

	endpoint := fmt.Sprintf("%s/directions/v5/mapbox/driving/%f,%f;%f,%f?access_token=%s&overview=false",
		c.baseURL, pickupLng, pickupLat, dropLng, dropLat, url.QueryEscape(c.token))

	var body directionsResponse
	if err := c.getJSON(ctx, endpoint, &body); err != nil {
		return "", fmt.Errorf("failed to fetch route: %w", err)
	}
	if len(body.Routes) == 0 {
		return "", fmt.Errorf("no driving route between %q and %q", pickupAddress, dropAddress)
	}

	return fmt.Sprintf("%.2f km", body.Routes[0].Distance/1000), nil
}

func (c *MapboxClient) geocode(ctx context.Context, address string) (lng, lat float64, err error) {
	endpoint := fmt.Sprintf("%s/geocoding/v5/mapbox.places/%s.json?access_token=%s",
		c.baseURL, url.PathEscape(address), url.QueryEscape(c.token))

	var body geocodeResponse
	if err := c.getJSON(ctx, endpoint, &body); err != nil {
		return 0, 0, err
	}
	if len(body.Features) == 0 {
		return 0, 0, fmt.Errorf("no geocoding result for %q", address)
	}

	return body.Features[0].Center[0], body.Features[0].Center[1], nil
}

func (c *MapboxClient) getJSON(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("mapbox returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
