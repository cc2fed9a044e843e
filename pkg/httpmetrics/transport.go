package httpmetrics

import (
	"net/http"
	"time"
)

// Recorder принимает наблюдения об обращениях к внешним сервисам
type Recorder interface {
	ObserveExternalCall(target, outcome string, duration time.Duration)
}

// Transport обёртка http.RoundTripper, собирающая метрики внешних вызовов
// Статусы 5xx и сетевые ошибки считаются outcome="error", остальное - "ok"
type Transport struct {
	target   string
	base     http.RoundTripper
	recorder Recorder
}

// NewTransport создает новый экземпляр Transport
// base == nil означает http.DefaultTransport
func NewTransport(recorder Recorder, target string, base http.RoundTripper) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{
		target:   target,
		base:     base,
		recorder: recorder,
	}
}

// RoundTrip выполняет запрос и фиксирует длительность и исход
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	resp, err := t.base.RoundTrip(req)

	outcome := "ok"
	if err != nil || resp.StatusCode >= http.StatusInternalServerError {
		outcome = "error"
	}
	t.recorder.ObserveExternalCall(t.target, outcome, time.Since(start))

	return resp, err
}
