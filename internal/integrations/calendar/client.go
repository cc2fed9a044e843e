package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const apiVersion = "2022-06-28"

// maxPageSize максимальный размер страницы, который принимает календарное API
const maxPageSize = 100

// Client read-only клиент внешнего календаря (база событий workspace API)
type Client struct {
	baseURL    string
	token      string
	databaseID string
	pageSize   int
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента календаря
// Таймаут httpClient ограничивает каждый постраничный запрос;
// таймаут трактуется так же, как недоступность сервиса
// transport == nil означает http.DefaultTransport
func NewClient(baseURL, token, databaseID string, pageSize int, timeout time.Duration, transport http.RoundTripper, log Logger) *Client {
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return &Client{
		baseURL:    baseURL,
		token:      token,
		databaseID: databaseID,
		pageSize:   pageSize,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		log: log,
	}
}

// FetchEvents получает события календаря, листая страницы до исчерпания или до maxEvents
// Записи без даты начала пропускаются на месте - они бесполезны для расчёта занятости
func (c *Client) FetchEvents(ctx context.Context, maxEvents int) ([]Event, error) {
	events := make([]Event, 0, c.pageSize)
	var cursor *string

	for {
		page, err := c.queryPage(ctx, cursor)
		if err != nil {
			return nil, err
		}

		for _, obj := range page.Results {
			if obj.Properties.Date.Date == nil || obj.Properties.Date.Date.Start == "" {
				continue
			}

			title := ""
			if len(obj.Properties.Name.Title) > 0 {
				title = obj.Properties.Name.Title[0].PlainText
			}

			events = append(events, Event{
				Title: title,
				Start: obj.Properties.Date.Date.Start,
				End:   obj.Properties.Date.Date.End,
			})

			if maxEvents > 0 && len(events) >= maxEvents {
				return events, nil
			}
		}

		if !page.HasMore || page.NextCursor == nil {
			return events, nil
		}
		cursor = page.NextCursor
	}
}

// FetchEventsWithGracefulDegradation получает события календаря с graceful degradation
// Любая ошибка (сеть, авторизация, мисконфигурация, таймаут) оборачивается в ErrServiceDegraded,
// чтобы движок доступности мог продолжить работу без календарных интервалов
func (c *Client) FetchEventsWithGracefulDegradation(ctx context.Context, maxEvents int) ([]Event, error) {
	events, err := c.FetchEvents(ctx, maxEvents)
	if err != nil {
		c.log.Error("Calendar unavailable, applying graceful degradation: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	c.log.Info("Successfully fetched %d calendar events", len(events))
	return events, nil
}

// queryPage выполняет один постраничный запрос к базе событий
func (c *Client) queryPage(ctx context.Context, cursor *string) (*queryResponse, error) {
	url := fmt.Sprintf("%s/databases/%s/query", c.baseURL, c.databaseID)

	body, err := json.Marshal(queryRequest{
		PageSize:    c.pageSize,
		StartCursor: cursor,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", apiVersion)

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
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var page queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &page, nil
}
