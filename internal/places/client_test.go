package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/set-night/placefinder/internal/domain"
)

// requestCapture records the last request the fake backend saw.
type requestCapture struct {
	Path  string
	Query url.Values
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *requestCapture) {
	t.Helper()
	captured := &requestCapture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Path = r.URL.Path
		captured.Query = r.URL.Query()
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClientWithBaseURL("test-key", srv.URL), captured
}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func TestTextSearchOK(t *testing.T) {
	client, req := newTestClient(t, respond(`{
		"status": "OK",
		"results": [
			{
				"place_id": "p1",
				"name": "City Pharmacy",
				"rating": 4.4,
				"formatted_address": "Abay Ave 10",
				"geometry": {"location": {"lat": 43.24, "lng": 76.91}}
			},
			{"place_id": "p2", "name": "Green Pharmacy", "vicinity": "Dostyk 5"}
		],
		"next_page_token": "tok123"
	}`))

	result, err := client.TextSearch(context.Background(), "аптека", "Алматы", domain.LanguageRU)
	require.NoError(t, err)

	require.Equal(t, "аптека in Алматы", req.Query.Get("query"))
	require.Equal(t, "ru", req.Query.Get("language"))
	require.Equal(t, "test-key", req.Query.Get("key"))

	require.Equal(t, 2, result.Total)
	require.Equal(t, "tok123", result.NextPageToken)
	require.Len(t, result.Places, 2)

	first := result.Places[0]
	require.Equal(t, "p1", first.ID)
	require.Equal(t, "City Pharmacy", first.Name)
	require.InDelta(t, 4.4, first.Rating, 1e-9)
	require.Equal(t, "Abay Ave 10", first.Address)
	require.NotNil(t, first.Location)
	require.InDelta(t, 43.24, first.Location.Lat, 1e-9)

	second := result.Places[1]
	require.Equal(t, "Dostyk 5", second.Address, "vicinity backfills the address")
	require.Nil(t, second.Location)
}

func TestTextSearchZeroResults(t *testing.T) {
	client, _ := newTestClient(t, respond(`{"status": "ZERO_RESULTS", "results": []}`))

	_, err := client.TextSearch(context.Background(), "pharmacy", "Nowhere", domain.LanguageEN)
	require.ErrorIs(t, err, domain.ErrNoResults)
}

func TestTextSearchOKButEmpty(t *testing.T) {
	client, _ := newTestClient(t, respond(`{"status": "OK", "results": []}`))

	_, err := client.TextSearch(context.Background(), "pharmacy", "Nowhere", domain.LanguageEN)
	require.ErrorIs(t, err, domain.ErrNoResults)
}

func TestTextSearchErrorStatus(t *testing.T) {
	client, _ := newTestClient(t, respond(`{"status": "REQUEST_DENIED", "error_message": "bad key"}`))

	_, err := client.TextSearch(context.Background(), "pharmacy", "Almaty", domain.LanguageEN)
	require.Error(t, err)
	require.NotErrorIs(t, err, domain.ErrNoResults)
	require.Contains(t, err.Error(), "REQUEST_DENIED")
	require.Contains(t, err.Error(), "bad key")
}

func TestNearbySearchParams(t *testing.T) {
	client, req := newTestClient(t, respond(`{
		"status": "OK",
		"results": [{"place_id": "p1", "name": "Cafe"}]
	}`))

	_, err := client.NearbySearch(context.Background(), "cafe", 43.24, 76.91, domain.LanguageEN, 3000)
	require.NoError(t, err)

	require.Equal(t, "cafe", req.Query.Get("keyword"))
	require.Equal(t, "43.240000,76.910000", req.Query.Get("location"))
	require.Equal(t, "3000", req.Query.Get("radius"))
	require.Equal(t, "en", req.Query.Get("language"))
}

func TestNextPageParams(t *testing.T) {
	client, req := newTestClient(t, respond(`{
		"status": "OK",
		"results": [{"place_id": "p21", "name": "Page two"}]
	}`))

	result, err := client.NextPage(context.Background(), "tok123", domain.SearchModeText)
	require.NoError(t, err)

	require.Equal(t, "tok123", req.Query.Get("pagetoken"))
	require.Empty(t, result.NextPageToken, "last page carries no token")
	require.Equal(t, "p21", result.Places[0].ID)
}

func TestNextPageRoutesByLineage(t *testing.T) {
	client, req := newTestClient(t, respond(`{
		"status": "OK",
		"results": [{"place_id": "p21", "name": "Page two"}]
	}`))

	_, err := client.NextPage(context.Background(), "tok123", domain.SearchModeText)
	require.NoError(t, err)
	require.Equal(t, "/textsearch/json", req.Path, "text-issued tokens go back to text search")

	_, err = client.NextPage(context.Background(), "tok123", domain.SearchModeNearby)
	require.NoError(t, err)
	require.Equal(t, "/nearbysearch/json", req.Path, "nearby-issued tokens go back to nearby search")
}

func TestDetailsOK(t *testing.T) {
	client, req := newTestClient(t, respond(`{
		"status": "OK",
		"result": {
			"place_id": "p1",
			"name": "City Pharmacy",
			"rating": 4.4,
			"formatted_phone_number": "+7 727 000 00 00",
			"formatted_address": "Abay Ave 10",
			"website": "https://pharmacy.example",
			"url": "https://maps.google.com/?cid=42",
			"geometry": {"location": {"lat": 43.24, "lng": 76.91}}
		}
	}`))

	d, err := client.Details(context.Background(), "p1", domain.LanguageRU)
	require.NoError(t, err)

	require.Equal(t, "p1", req.Query.Get("place_id"))
	require.Equal(t, "ru", req.Query.Get("language"))
	require.NotEmpty(t, req.Query.Get("fields"))

	require.Equal(t, "City Pharmacy", d.Name)
	require.Equal(t, "+7 727 000 00 00", d.Phone)
	require.Equal(t, "https://pharmacy.example", d.WebsiteURL)
	require.Equal(t, "https://maps.google.com/?cid=42", d.MapURL)
	require.NotNil(t, d.Location)
	require.InDelta(t, 76.91, d.Location.Lng, 1e-9)
}

func TestDetailsNotFound(t *testing.T) {
	client, _ := newTestClient(t, respond(`{"status": "NOT_FOUND"}`))

	_, err := client.Details(context.Background(), "gone", domain.LanguageEN)
	require.Error(t, err)
	require.Contains(t, err.Error(), "NOT_FOUND")
}

func TestSearchTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	client := NewClientWithBaseURL("test-key", srv.URL)

	_, err := client.TextSearch(context.Background(), "pharmacy", "Almaty", domain.LanguageEN)
	require.Error(t, err)
}
