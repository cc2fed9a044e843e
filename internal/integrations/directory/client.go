package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	nearbyFieldMask = "places.id,places.displayName,places.formattedAddress,places.nationalPhoneNumber,places.websiteUri,places.primaryType,places.rating"
	cityFieldMask   = "places.id,places.displayName,places.location"
)

// placeholderHosts домены, которые не считаются настоящим сайтом бизнеса
var placeholderHosts = []string{
	"facebook.com",
	"instagram.com",
	"vk.com",
	"t.me",
	"wa.me",
	"business.site",
	"linktr.ee",
}

// Client клиент справочника бизнесов
type Client struct {
	baseURL    string
	apiKey     string
	pageSize   int
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочника
// transport == nil означает http.DefaultTransport
func NewClient(baseURL, apiKey string, pageSize int, timeout time.Duration, transport http.RoundTripper, log Logger) *Client {
	if pageSize <= 0 {
		pageSize = 20
	}
	return &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		pageSize: pageSize,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		log: log,
	}
}

// SearchNearby ищет бизнесы в круге с центром (lat, lng) и радиусом radiusMeters
// category - опциональный тип бизнеса справочника (например "restaurant")
// Записи без ID или названия отбрасываются на границе клиента
func (c *Client) SearchNearby(ctx context.Context, lat, lng, radiusMeters float64, category string) ([]Place, error) {
	reqBody := nearbyRequest{
		MaxResultCount: c.pageSize,
		LocationRestriction: locationRestriction{
			Circle: circle{
				Center: latLng{Latitude: lat, Longitude: lng},
				Radius: radiusMeters,
			},
		},
	}
	if category != "" {
		reqBody.IncludedTypes = []string{category}
	}

	resp, err := c.post(ctx, "/places:searchNearby", nearbyFieldMask, reqBody)
	if err != nil {
		return nil, err
	}

	places := make([]Place, 0, len(resp.Places))
	for _, obj := range resp.Places {
		place, ok := toPlace(obj)
		if !ok {
			continue
		}
		places = append(places, place)
	}

	return places, nil
}

// SearchCities выполняет текстовый поиск городов по запросу
func (c *Client) SearchCities(ctx context.Context, query string) ([]City, error) {
	reqBody := textRequest{
		TextQuery:      query,
		IncludedType:   "locality",
		MaxResultCount: c.pageSize,
	}

	resp, err := c.post(ctx, "/places:searchText", cityFieldMask, reqBody)
	if err != nil {
		return nil, err
	}

	cities := make([]City, 0, len(resp.Places))
	for _, obj := range resp.Places {
		if obj.DisplayName == nil || obj.DisplayName.Text == "" || obj.Location == nil {
			continue
		}
		cities = append(cities, City{
			Name:      obj.DisplayName.Text,
			Latitude:  obj.Location.Latitude,
			Longitude: obj.Location.Longitude,
		})
	}

	return cities, nil
}

// post выполняет POST запрос к справочнику с нужной маской полей
func (c *Client) post(ctx context.Context, path, fieldMask string, body interface{}) (*placesResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusTooManyRequests:
		return nil, ErrQuotaExceeded
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var result placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &result, nil
}

// toPlace конвертирует запись справочника в модель Place
// Возвращает false для записей без обязательных полей
func toPlace(obj placeObject) (Place, bool) {
	if obj.ID == "" || obj.DisplayName == nil || obj.DisplayName.Text == "" {
		return Place{}, false
	}

	place := Place{
		ID:       obj.ID,
		Name:     obj.DisplayName.Text,
		Address:  obj.FormattedAddress,
		Category: obj.PrimaryType,
		Rating:   obj.Rating,
	}
	if obj.NationalPhone != "" {
		phone := obj.NationalPhone
		place.Phone = &phone
	}
	if obj.WebsiteURI != "" {
		website := obj.WebsiteURI
		place.Website = &website
	}

	return place, true
}

// isPlaceholderSite проверяет, что ссылка ведёт на соцсеть или конструктор-заглушку
func isPlaceholderSite(url string) bool {
	lower := strings.ToLower(url)
	for _, host := range placeholderHosts {
		if strings.Contains(lower, host) {
			return true
		}
	}
	return false
}
