package get_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	getAvailability "github.com/m04kA/SMC-OutreachService/internal/usecase/get_availability"
)

type mockUseCase struct {
	resp    *getAvailability.Response
	err     error
	lastReq *getAvailability.Request
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailability.Request) (*getAvailability.Response, error) {
	m.lastReq = req
	return m.resp, m.err
}

type recordingObserver struct {
	counts []int
}

func (o *recordingObserver) ObserveSlotsGenerated(count int) {
	o.counts = append(o.counts, count)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestHandler_Success(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	uc := &mockUseCase{resp: &getAvailability.Response{
		GeneratedAt:     start.Add(-time.Hour),
		DurationMinutes: 30,
		SlotMinutes:     30,
		HorizonDays:     7,
		Slots:           []domain.FreeSlot{domain.NewFreeSlot(start, 30)},
	}}
	observer := &recordingObserver{}

	h := NewHandler(uc, observer, nopLogger{})

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/availability?durationMinutes=30&limit=10", nil)
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// Query параметры доходят до use case как есть
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "30", uc.lastReq.DurationMinutes)
	assert.Equal(t, "10", uc.lastReq.SlotLimit)

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 30, body.DurationMinutes)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, start.Format(time.RFC3339), body.Slots[0].Start)

	assert.Equal(t, []int{1}, observer.counts)
}

func TestHandler_NilObserverIsFine(t *testing.T) {
	uc := &mockUseCase{resp: &getAvailability.Response{}}

	h := NewHandler(uc, nil, nopLogger{})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"work hours misconfigured", getAvailability.ErrWorkHoursMisconfigured, http.StatusInternalServerError},
		{"meeting store unavailable", getAvailability.ErrMeetingSourceUnavailable, http.StatusInternalServerError},
		{"unknown error", getAvailability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&mockUseCase{err: tt.err}, nil, nopLogger{})

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/availability", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		})
	}
}
