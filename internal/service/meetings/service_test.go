package meetings

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	meetingsRepo "github.com/m04kA/SMC-OutreachService/internal/infra/storage/meetings"
	"github.com/m04kA/SMC-OutreachService/internal/service/meetings/models"
	"github.com/m04kA/SMC-OutreachService/pkg/ptr"
)

type mockMeetingRepo struct {
	meetings map[string]*domain.Meeting
	nextID   int
}

func newMockMeetingRepo() *mockMeetingRepo {
	return &mockMeetingRepo{meetings: map[string]*domain.Meeting{}}
}

func (m *mockMeetingRepo) Create(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error) {
	m.nextID++
	meeting.ID = fmt.Sprintf("meeting-%d", m.nextID)
	meeting.CreatedAt = time.Now()
	meeting.UpdatedAt = meeting.CreatedAt
	m.meetings[meeting.ID] = meeting
	return meeting, nil
}

func (m *mockMeetingRepo) List(ctx context.Context) ([]*domain.Meeting, error) {
	result := make([]*domain.Meeting, 0, len(m.meetings))
	for _, meeting := range m.meetings {
		result = append(result, meeting)
	}
	return result, nil
}

func (m *mockMeetingRepo) GetByID(ctx context.Context, id string) (*domain.Meeting, error) {
	meeting, ok := m.meetings[id]
	if !ok {
		return nil, meetingsRepo.ErrMeetingNotFound
	}
	return meeting, nil
}

func (m *mockMeetingRepo) Update(ctx context.Context, meeting *domain.Meeting) (*domain.Meeting, error) {
	if _, ok := m.meetings[meeting.ID]; !ok {
		return nil, meetingsRepo.ErrMeetingNotFound
	}
	m.meetings[meeting.ID] = meeting
	return meeting, nil
}

func (m *mockMeetingRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.meetings[id]; !ok {
		return meetingsRepo.ErrMeetingNotFound
	}
	delete(m.meetings, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testStart() time.Time {
	return time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)
}

func TestService_Create(t *testing.T) {
	svc := NewService(newMockMeetingRepo(), nopLogger{})
	ctx := context.Background()

	t.Run("valid meeting", func(t *testing.T) {
		resp, err := svc.Create(ctx, &models.CreateMeetingRequest{
			Title:     "Демо звонок",
			StartTime: testStart(),
			EndTime:   ptr.Ptr(testStart().Add(30 * time.Minute)),
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, "Демо звонок", resp.Title)
	})

	t.Run("end without value allowed", func(t *testing.T) {
		resp, err := svc.Create(ctx, &models.CreateMeetingRequest{
			Title:     "Быстрый созвон",
			StartTime: testStart(),
		})
		require.NoError(t, err)
		assert.Nil(t, resp.EndTime)
	})

	t.Run("empty title rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, &models.CreateMeetingRequest{StartTime: testStart()})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("too long title rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, &models.CreateMeetingRequest{
			Title:     strings.Repeat("а", domain.MaxMeetingTitleLength+1),
			StartTime: testStart(),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("zero start rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, &models.CreateMeetingRequest{Title: "встреча"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("end before start rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, &models.CreateMeetingRequest{
			Title:     "встреча",
			StartTime: testStart(),
			EndTime:   ptr.Ptr(testStart().Add(-time.Hour)),
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("end equals start rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, &models.CreateMeetingRequest{
			Title:     "встреча",
			StartTime: testStart(),
			EndTime:   ptr.Ptr(testStart()),
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})
}

func TestService_Update(t *testing.T) {
	repo := newMockMeetingRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateMeetingRequest{
		Title:     "встреча",
		StartTime: testStart(),
	})
	require.NoError(t, err)

	t.Run("partial update", func(t *testing.T) {
		resp, err := svc.Update(ctx, created.ID, &models.UpdateMeetingRequest{
			Title: ptr.Ptr("перенесённая встреча"),
			Notes: ptr.Ptr("клиент попросил позже"),
		})
		require.NoError(t, err)
		assert.Equal(t, "перенесённая встреча", resp.Title)
		require.NotNil(t, resp.Notes)
		assert.True(t, resp.StartTime.Equal(testStart()))
	})

	t.Run("invalid time range rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, created.ID, &models.UpdateMeetingRequest{
			EndTime: ptr.Ptr(testStart().Add(-time.Hour)),
		})
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.Update(ctx, "missing", &models.UpdateMeetingRequest{})
		assert.ErrorIs(t, err, ErrMeetingNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	repo := newMockMeetingRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	created, err := svc.Create(ctx, &models.CreateMeetingRequest{
		Title:     "встреча",
		StartTime: testStart(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrMeetingNotFound)
}

func TestService_List(t *testing.T) {
	repo := newMockMeetingRepo()
	svc := NewService(repo, nopLogger{})
	ctx := context.Background()

	_, err := svc.Create(ctx, &models.CreateMeetingRequest{Title: "первая", StartTime: testStart()})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &models.CreateMeetingRequest{Title: "вторая", StartTime: testStart().Add(time.Hour)})
	require.NoError(t, err)

	resp, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Meetings, 2)
}
