package voicecall

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

// quotaMarkers подстроки в тексте ошибки провайдера, означающие исчерпание лимита
var quotaMarkers = []string{
	"quota",
	"limit",
	"insufficient credits",
	"concurrency",
}

// Client клиент провайдера голосовых звонков
type Client struct {
	baseURL       string
	apiKey        string
	agentID       string
	phoneNumberID string
	httpClient    *http.Client
	log           Logger
}

// NewClient создает новый экземпляр клиента провайдера звонков
// transport == nil означает http.DefaultTransport
func NewClient(baseURL, apiKey, agentID, phoneNumberID string, timeout time.Duration, transport http.RoundTripper, log Logger) *Client {
	return &Client{
		baseURL:       baseURL,
		apiKey:        apiKey,
		agentID:       agentID,
		phoneNumberID: phoneNumberID,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		log: log,
	}
}

// StartCall инициирует исходящий звонок клиенту
// Сигналы квоты/лимита (402, 429 или маркеры в тексте ошибки) маппятся в ErrQuotaExceeded,
// чтобы вызывающая сторона могла отправить алерт и остановить обзвон
func (c *Client) StartCall(ctx context.Context, req *StartCallRequest) (*Call, error) {
	c.log.Info("Starting outbound call to %s (business=%s)", req.PhoneNumber, req.BusinessName)

	body := apiCallRequest{
		AssistantID:   c.agentID,
		PhoneNumberID: c.phoneNumberID,
		Customer: apiCustomer{
			Number: req.PhoneNumber,
			Name:   req.BusinessName,
		},
		AssistantOverrides: &apiAssistantOverrides{
			VariableValues: map[string]string{
				"businessName": req.BusinessName,
				"city":         req.City,
			},
		},
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/call", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest:
		respBody, _ := io.ReadAll(resp.Body)
		if containsQuotaMarker(string(respBody)) {
			return nil, fmt.Errorf("%w: %s", ErrQuotaExceeded, string(respBody))
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidPhone, string(respBody))
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrUnauthorized
	case http.StatusPaymentRequired, http.StatusTooManyRequests:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", ErrQuotaExceeded, resp.StatusCode, string(respBody))
	default:
		respBody, _ := io.ReadAll(resp.Body)
		if containsQuotaMarker(string(respBody)) {
			return nil, fmt.Errorf("%w: %s", ErrQuotaExceeded, string(respBody))
		}
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var call apiCallResponse
	if err := json.NewDecoder(resp.Body).Decode(&call); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if call.ID == "" {
		return nil, fmt.Errorf("%w: response without call id", ErrInvalidResponse)
	}

	c.log.Info("Outbound call started: call_id=%s, status=%s", call.ID, call.Status)
	return &Call{ID: call.ID, Status: call.Status}, nil
}

// containsQuotaMarker проверяет текст ошибки провайдера на маркеры лимита
func containsQuotaMarker(body string) bool {
	lower := strings.ToLower(body)
	for _, marker := range quotaMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
