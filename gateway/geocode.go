package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Place is one forward-geocoding candidate.
type Place struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Address holds the fields of a reverse-geocoded point.
type Address struct {
	Name     string `json:"name"`
	Road     string `json:"road"`
	City     string `json:"city"`
	State    string `json:"state"`
	Postcode string `json:"postcode"`
	Country  string `json:"country"`
}

// ReverseResult is a reverse lookup response.
type ReverseResult struct {
	DisplayName string  `json:"display_name"`
	Address     Address `json:"address"`
}

// Geocoder resolves delivery locations. Lookups are fallible (network,
// quota); callers degrade to "no location resolved" instead of crashing.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]Place, error)
	Reverse(ctx context.Context, lat, lon float64) (*ReverseResult, error)
}

// GeocodeClient speaks the Nominatim-style JSON API.
type GeocodeClient struct {
	baseURL string
	client  *http.Client
}

func NewGeocodeClient(baseURL string) *GeocodeClient {
	return &GeocodeClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (g *GeocodeClient) get(ctx context.Context, path string, query url.Values, out any) error {
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	// Nominatim requires an identifying agent.
	req.Header.Set("User-Agent", "sweetzone-api/1.0")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("geocoder unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoder: unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Search resolves an address string into candidate places.
func (g *GeocodeClient) Search(ctx context.Context, query string) ([]Place, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("limit", "5")

	var places []Place
	if err := g.get(ctx, "/search", q, &places); err != nil {
		return nil, err
	}
	return places, nil
}

// Reverse resolves a coordinate into address fields.
func (g *GeocodeClient) Reverse(ctx context.Context, lat, lon float64) (*ReverseResult, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))

	var result ReverseResult
	if err := g.get(ctx, "/reverse", q, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
