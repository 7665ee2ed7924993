// Package places wraps the Google Places Web Service behind the narrow
// interface the handlers consume.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/set-night/placefinder/internal/config"
	"github.com/set-night/placefinder/internal/domain"
)

// SearchResult is one page of results. Total is the backend-reported count
// for this page; truncation for interactive addressing happens in the session.
type SearchResult struct {
	Places        []domain.Place
	Total         int
	NextPageToken string
}

// Searcher is the search-backend contract the handlers depend on.
type Searcher interface {
	TextSearch(ctx context.Context, query, location string, lang domain.Language) (*SearchResult, error)
	NearbySearch(ctx context.Context, query string, lat, lng float64, lang domain.Language, radiusMeters int) (*SearchResult, error)
	NextPage(ctx context.Context, token string, mode domain.SearchMode) (*SearchResult, error)
	Details(ctx context.Context, placeID string, lang domain.Language) (*domain.PlaceDetails, error)
}

type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    "https://maps.googleapis.com/maps/api/place",
		httpClient: &http.Client{Timeout: config.SearchTimeout},
	}
}

// NewClientWithBaseURL is used by tests to point the client at a fake backend.
func NewClientWithBaseURL(apiKey, baseURL string) *Client {
	c := NewClient(apiKey)
	c.baseURL = baseURL
	return c
}

type geometry struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

type searchResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID          string    `json:"place_id"`
		Name             string    `json:"name"`
		Rating           float64   `json:"rating"`
		FormattedAddress string    `json:"formatted_address"`
		Vicinity         string    `json:"vicinity"`
		FormattedPhone   string    `json:"formatted_phone_number"`
		Geometry         *geometry `json:"geometry"`
	} `json:"results"`
	NextPageToken string `json:"next_page_token"`
	ErrorMessage  string `json:"error_message"`
}

type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		PlaceID          string    `json:"place_id"`
		Name             string    `json:"name"`
		Rating           float64   `json:"rating"`
		FormattedPhone   string    `json:"formatted_phone_number"`
		FormattedAddress string    `json:"formatted_address"`
		Website          string    `json:"website"`
		URL              string    `json:"url"`
		Geometry         *geometry `json:"geometry"`
	} `json:"result"`
	ErrorMessage string `json:"error_message"`
}

// TextSearch searches by category and free-text location, e.g. "pharmacy in Almaty".
func (c *Client) TextSearch(ctx context.Context, query, location string, lang domain.Language) (*SearchResult, error) {
	params := url.Values{}
	params.Set("query", fmt.Sprintf("%s in %s", query, location))
	params.Set("language", string(lang))
	return c.search(ctx, "/textsearch/json", params)
}

// NearbySearch searches around shared coordinates with a fixed radius.
func (c *Client) NearbySearch(ctx context.Context, query string, lat, lng float64, lang domain.Language, radiusMeters int) (*SearchResult, error) {
	params := url.Values{}
	params.Set("keyword", query)
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("language", string(lang))
	return c.search(ctx, "/nearbysearch/json", params)
}

// NextPage fetches the page behind a previously issued token. A token is
// bound to the endpoint that issued it, so the originating search mode picks
// the route. The token is also only valid a short while after issuance;
// callers enforce that wait.
func (c *Client) NextPage(ctx context.Context, token string, mode domain.SearchMode) (*SearchResult, error) {
	params := url.Values{}
	params.Set("pagetoken", token)
	path := "/textsearch/json"
	if mode == domain.SearchModeNearby {
		path = "/nearbysearch/json"
	}
	return c.search(ctx, path, params)
}

func (c *Client) search(ctx context.Context, path string, params url.Values) (*SearchResult, error) {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places search: %w", err)
	}
	defer resp.Body.Close()

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	switch body.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, domain.ErrNoResults
	default:
		return nil, fmt.Errorf("places api status %s: %s", body.Status, body.ErrorMessage)
	}
	if len(body.Results) == 0 {
		return nil, domain.ErrNoResults
	}

	result := &SearchResult{
		Places:        make([]domain.Place, 0, len(body.Results)),
		Total:         len(body.Results),
		NextPageToken: body.NextPageToken,
	}
	for _, r := range body.Results {
		p := domain.Place{
			ID:      r.PlaceID,
			Name:    r.Name,
			Rating:  r.Rating,
			Phone:   r.FormattedPhone,
			Address: r.FormattedAddress,
		}
		if p.Address == "" {
			p.Address = r.Vicinity
		}
		if r.Geometry != nil {
			p.Location = &domain.Coordinates{Lat: r.Geometry.Location.Lat, Lng: r.Geometry.Location.Lng}
		}
		result.Places = append(result.Places, p)
	}
	return result, nil
}

// Details fetches the enrichment fields for one place.
func (c *Client) Details(ctx context.Context, placeID string, lang domain.Language) (*domain.PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "place_id,name,rating,formatted_phone_number,formatted_address,website,url,geometry")
	params.Set("language", string(lang))
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/details/json?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("place details: %w", err)
	}
	defer resp.Body.Close()

	var body detailsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode details response: %w", err)
	}
	if body.Status != "OK" {
		return nil, fmt.Errorf("places api status %s: %s", body.Status, body.ErrorMessage)
	}

	d := &domain.PlaceDetails{
		ID:         body.Result.PlaceID,
		Name:       body.Result.Name,
		Rating:     body.Result.Rating,
		Phone:      body.Result.FormattedPhone,
		Address:    body.Result.FormattedAddress,
		WebsiteURL: body.Result.Website,
		MapURL:     body.Result.URL,
	}
	if body.Result.Geometry != nil {
		d.Location = &domain.Coordinates{Lat: body.Result.Geometry.Location.Lat, Lng: body.Result.Geometry.Location.Lng}
	}
	return d, nil
}

var _ Searcher = (*Client)(nil)
