package get_availability

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	"github.com/m04kA/SMC-OutreachService/internal/integrations/calendar"
	"github.com/m04kA/SMC-OutreachService/pkg/ptr"
)

type mockMeetingRepo struct {
	meetings []*domain.Meeting
	err      error
}

func (m *mockMeetingRepo) List(ctx context.Context) ([]*domain.Meeting, error) {
	return m.meetings, m.err
}

type mockCalendarClient struct {
	events   []calendar.Event
	degraded bool
}

func (m *mockCalendarClient) FetchEventsWithGracefulDegradation(ctx context.Context, maxEvents int) ([]calendar.Event, error) {
	if m.degraded {
		return nil, fmt.Errorf("%w: connection refused", calendar.ErrServiceDegraded)
	}
	return m.events, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(repo *mockMeetingRepo, cal *mockCalendarClient, now time.Time) *UseCase {
	uc := NewUseCase(repo, cal, defaultParams(), nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestUseCase_Execute_MergesBothSources(t *testing.T) {
	day := testDay()
	now := at(day, 8, 0)

	repo := &mockMeetingRepo{meetings: []*domain.Meeting{{
		Title:     "intro call",
		StartTime: at(day, 10, 0),
		EndTime:   ptr.Ptr(at(day, 10, 30)),
	}}}
	cal := &mockCalendarClient{events: []calendar.Event{{
		Title: "standup",
		Start: at(day, 14, 0).Format(time.RFC3339),
		End:   ptr.Ptr(at(day, 15, 0).Format(time.RFC3339)),
	}}}

	uc := newTestUseCase(repo, cal, now)

	resp, err := uc.Execute(context.Background(), &Request{MinLeadMinutes: "0", HorizonDays: "1"})
	require.NoError(t, err)

	starts := slotStarts(resp.Slots)
	// Встреча из хранилища
	assert.NotContains(t, starts, at(day, 10, 0))
	// Событие календаря (два получасовых слота)
	assert.NotContains(t, starts, at(day, 14, 0))
	assert.NotContains(t, starts, at(day, 14, 30))
	// Соседние слоты свободны
	assert.Contains(t, starts, at(day, 9, 30))
	assert.Contains(t, starts, at(day, 10, 30))
	assert.Contains(t, starts, at(day, 15, 0))

	assert.Equal(t, now, resp.GeneratedAt)
	assert.Equal(t, domain.DefaultDurationMinutes, resp.DurationMinutes)
	assert.Equal(t, 1, resp.HorizonDays)
}

func TestUseCase_Execute_CalendarDegradationIsNotFatal(t *testing.T) {
	day := testDay()
	now := at(day, 8, 0)

	repo := &mockMeetingRepo{meetings: []*domain.Meeting{{
		Title:     "intro call",
		StartTime: at(day, 10, 0),
		EndTime:   ptr.Ptr(at(day, 10, 30)),
	}}}
	cal := &mockCalendarClient{degraded: true}

	uc := newTestUseCase(repo, cal, now)

	resp, err := uc.Execute(context.Background(), &Request{MinLeadMinutes: "0", HorizonDays: "1"})
	require.NoError(t, err)

	// Движок работает только по интервалам встреч
	starts := slotStarts(resp.Slots)
	assert.NotContains(t, starts, at(day, 10, 0))
	assert.Contains(t, starts, at(day, 9, 0))
}

func TestUseCase_Execute_MeetingStoreFailureIsFatal(t *testing.T) {
	repo := &mockMeetingRepo{err: errors.New("disk read failed")}
	cal := &mockCalendarClient{}

	uc := newTestUseCase(repo, cal, at(testDay(), 8, 0))

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrMeetingSourceUnavailable)
}

func TestUseCase_Execute_WorkHoursMisconfigured(t *testing.T) {
	defaults := defaultParams()
	defaults.WorkStartHour = 18
	defaults.WorkEndHour = 9

	uc := NewUseCase(&mockMeetingRepo{}, &mockCalendarClient{}, defaults, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: at(testDay(), 8, 0)}

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrWorkHoursMisconfigured)
}

func TestUseCase_Execute_LeadTimeFromRequest(t *testing.T) {
	day := testDay()
	now := at(day, 9, 30)

	uc := newTestUseCase(&mockMeetingRepo{}, &mockCalendarClient{}, now)

	resp, err := uc.Execute(context.Background(), &Request{MinLeadMinutes: "60", HorizonDays: "1"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Slots)

	// now + 60 минут = 10:30, более ранних слотов быть не должно
	assert.Equal(t, at(day, 10, 30), resp.Slots[0].Start)
}

func TestUseCase_Execute_ClampsRequestParams(t *testing.T) {
	uc := newTestUseCase(&mockMeetingRepo{}, &mockCalendarClient{}, at(testDay(), 8, 0))

	resp, err := uc.Execute(context.Background(), &Request{
		DurationMinutes: "9999",
		SlotLimit:       "5",
		HorizonDays:     "1",
		MinLeadMinutes:  "0",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.MaxDurationMinutes, resp.DurationMinutes)
	assert.LessOrEqual(t, len(resp.Slots), 5)
}
