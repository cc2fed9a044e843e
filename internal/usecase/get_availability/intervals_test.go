package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	"github.com/m04kA/SMC-OutreachService/internal/integrations/calendar"
	"github.com/m04kA/SMC-OutreachService/pkg/ptr"
)

func TestMeetingsToIntervals(t *testing.T) {
	day := testDay()

	t.Run("explicit end preserved", func(t *testing.T) {
		meetings := []*domain.Meeting{{
			Title:     "demo call",
			StartTime: at(day, 10, 0),
			EndTime:   ptr.Ptr(at(day, 10, 45)),
		}}

		intervals := meetingsToIntervals(meetings)
		require.Len(t, intervals, 1)
		assert.Equal(t, at(day, 10, 0), intervals[0].Start)
		assert.Equal(t, at(day, 10, 45), intervals[0].End)
		assert.Equal(t, domain.SourceMeeting, intervals[0].Source)
	})

	t.Run("missing end defaults to one hour", func(t *testing.T) {
		meetings := []*domain.Meeting{{
			StartTime: at(day, 10, 0),
		}}

		intervals := meetingsToIntervals(meetings)
		require.Len(t, intervals, 1)
		assert.Equal(t, at(day, 11, 0), intervals[0].End)
	})

	t.Run("end before start defaults to one hour", func(t *testing.T) {
		meetings := []*domain.Meeting{{
			StartTime: at(day, 10, 0),
			EndTime:   ptr.Ptr(at(day, 9, 0)),
		}}

		intervals := meetingsToIntervals(meetings)
		require.Len(t, intervals, 1)
		assert.Equal(t, at(day, 11, 0), intervals[0].End)
	})

	t.Run("zero start dropped", func(t *testing.T) {
		meetings := []*domain.Meeting{{Title: "broken"}}
		assert.Empty(t, meetingsToIntervals(meetings))
	})
}

func TestEventsToIntervals(t *testing.T) {
	t.Run("full timestamps", func(t *testing.T) {
		events := []calendar.Event{{
			Title: "offsite",
			Start: "2026-03-10T14:00:00+03:00",
			End:   ptr.Ptr("2026-03-10T16:00:00+03:00"),
		}}

		intervals := eventsToIntervals(events)
		require.Len(t, intervals, 1)
		assert.Equal(t, domain.SourceCalendar, intervals[0].Source)
		assert.Equal(t, 2*time.Hour, intervals[0].End.Sub(intervals[0].Start))
	})

	t.Run("unparseable start dropped", func(t *testing.T) {
		events := []calendar.Event{{Start: "not-a-date"}}
		assert.Empty(t, eventsToIntervals(events))
	})

	t.Run("missing end defaults to one hour", func(t *testing.T) {
		events := []calendar.Event{{Start: "2026-03-10T14:00:00Z"}}

		intervals := eventsToIntervals(events)
		require.Len(t, intervals, 1)
		assert.Equal(t, time.Hour, intervals[0].End.Sub(intervals[0].Start))
	})

	t.Run("unparseable end defaults to one hour", func(t *testing.T) {
		events := []calendar.Event{{
			Start: "2026-03-10T14:00:00Z",
			End:   ptr.Ptr("later"),
		}}

		intervals := eventsToIntervals(events)
		require.Len(t, intervals, 1)
		assert.Equal(t, time.Hour, intervals[0].End.Sub(intervals[0].Start))
	})

	t.Run("date only treated as local midnight", func(t *testing.T) {
		events := []calendar.Event{{Start: "2026-03-10"}}

		intervals := eventsToIntervals(events)
		require.Len(t, intervals, 1)
		assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local), intervals[0].Start)
	})
}

func TestBuildDayIndex(t *testing.T) {
	day := testDay()

	t.Run("single day interval", func(t *testing.T) {
		index := buildDayIndex([]domain.BusyInterval{{
			Start: at(day, 10, 0),
			End:   at(day, 11, 0),
		}})

		require.Len(t, index, 1)
		assert.Len(t, index["2026-03-10"], 1)
	})

	t.Run("cross midnight interval registered under both days", func(t *testing.T) {
		nextDay := day.AddDate(0, 0, 1)
		index := buildDayIndex([]domain.BusyInterval{{
			Start: at(day, 23, 0),
			End:   at(nextDay, 2, 0),
		}})

		require.Len(t, index, 2)
		assert.Len(t, index["2026-03-10"], 1)
		assert.Len(t, index["2026-03-11"], 1)
	})

	t.Run("multi day interval touches every day", func(t *testing.T) {
		index := buildDayIndex([]domain.BusyInterval{{
			Start: at(day, 12, 0),
			End:   at(day.AddDate(0, 0, 2), 12, 0),
		}})

		assert.Len(t, index, 3)
	})

	t.Run("invalid interval skipped", func(t *testing.T) {
		index := buildDayIndex([]domain.BusyInterval{{
			Start: at(day, 11, 0),
			End:   at(day, 10, 0),
		}})

		assert.Empty(t, index)
	})
}
