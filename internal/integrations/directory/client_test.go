package directory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, "test-key", 20, 5*time.Second, nil, nopLogger{})
}

func TestSearchNearby(t *testing.T) {
	rating := 4.6
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/places:searchNearby", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Goog-Api-Key"))
		assert.Equal(t, nearbyFieldMask, r.Header.Get("X-Goog-FieldMask"))

		var body nearbyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"restaurant"}, body.IncludedTypes)
		assert.Equal(t, 55.7963, body.LocationRestriction.Circle.Center.Latitude)
		assert.Equal(t, 2000.0, body.LocationRestriction.Circle.Radius)

		_ = json.NewEncoder(w).Encode(placesResponse{Places: []placeObject{
			{
				ID:               "p-1",
				DisplayName:      &localizedText{Text: "Кафе Весна"},
				FormattedAddress: "ул. Ленина, 1",
				NationalPhone:    "+7 999 000-11-22",
				PrimaryType:      "restaurant",
				Rating:           &rating,
			},
			// Запись без названия отбрасывается
			{ID: "p-2"},
		}})
	}))
	defer server.Close()

	places, err := newTestClient(server.URL).SearchNearby(context.Background(), 55.7963, 49.1088, 2000, "restaurant")
	require.NoError(t, err)
	require.Len(t, places, 1)

	assert.Equal(t, "p-1", places[0].ID)
	assert.Equal(t, "Кафе Весна", places[0].Name)
	require.NotNil(t, places[0].Phone)
	assert.Equal(t, "+7 999 000-11-22", *places[0].Phone)
	assert.Nil(t, places[0].Website)
	require.NotNil(t, places[0].Rating)
	assert.Equal(t, 4.6, *places[0].Rating)
}

func TestSearchCities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/places:searchText", r.URL.Path)
		assert.Equal(t, cityFieldMask, r.Header.Get("X-Goog-FieldMask"))

		var body textRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Казань", body.TextQuery)
		assert.Equal(t, "locality", body.IncludedType)

		_ = json.NewEncoder(w).Encode(placesResponse{Places: []placeObject{
			{
				ID:          "c-1",
				DisplayName: &localizedText{Text: "Казань"},
				Location:    &latLng{Latitude: 55.7963, Longitude: 49.1088},
			},
			// Запись без координат отбрасывается
			{ID: "c-2", DisplayName: &localizedText{Text: "Казаньково"}},
		}})
	}))
	defer server.Close()

	cities, err := newTestClient(server.URL).SearchCities(context.Background(), "Казань")
	require.NoError(t, err)
	require.Len(t, cities, 1)

	assert.Equal(t, "Казань", cities[0].Name)
	assert.Equal(t, 55.7963, cities[0].Latitude)
	assert.Equal(t, 49.1088, cities[0].Longitude)
}

func TestSearchNearby_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"quota exceeded", http.StatusTooManyRequests, ErrQuotaExceeded},
		{"unauthorized", http.StatusUnauthorized, ErrUnauthorized},
		{"forbidden", http.StatusForbidden, ErrUnauthorized},
		{"server error", http.StatusInternalServerError, ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			_, err := newTestClient(server.URL).SearchNearby(context.Background(), 55.7963, 49.1088, 2000, "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
