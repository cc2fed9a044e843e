package get_availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
)

func defaultParams() domain.AvailabilityParams {
	return domain.AvailabilityParams{
		DurationMinutes: domain.DefaultDurationMinutes,
		SlotMinutes:     domain.DefaultSlotMinutes,
		HorizonDays:     domain.DefaultHorizonDays,
		SlotLimit:       domain.DefaultSlotLimit,
		MinLeadMinutes:  domain.DefaultMinLeadMinutes,
		WorkStartHour:   domain.DefaultWorkStartHour,
		WorkEndHour:     domain.DefaultWorkEndHour,
	}
}

func TestResolveParams_EmptyRequestUsesDefaults(t *testing.T) {
	params, err := resolveParams(&Request{}, defaultParams())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultDurationMinutes, params.DurationMinutes)
	assert.Equal(t, domain.DefaultSlotMinutes, params.SlotMinutes)
	assert.Equal(t, domain.DefaultHorizonDays, params.HorizonDays)
	assert.Equal(t, domain.DefaultSlotLimit, params.SlotLimit)
	assert.Equal(t, domain.DefaultMinLeadMinutes, params.MinLeadMinutes)
	assert.Equal(t, domain.DefaultWorkStartHour, params.WorkStartHour)
	assert.Equal(t, domain.DefaultWorkEndHour, params.WorkEndHour)
}

func TestResolveParams_ClampsOutOfRangeValues(t *testing.T) {
	req := &Request{
		DurationMinutes: "999",
		SlotMinutes:     "1",
		HorizonDays:     "45",
		SlotLimit:       "0",
		MinLeadMinutes:  "-30",
	}

	params, err := resolveParams(req, defaultParams())
	require.NoError(t, err)

	assert.Equal(t, domain.MaxDurationMinutes, params.DurationMinutes)
	assert.Equal(t, domain.MinSlotMinutes, params.SlotMinutes)
	assert.Equal(t, domain.MaxHorizonDays, params.HorizonDays)
	assert.Equal(t, domain.MinSlotLimit, params.SlotLimit)
	assert.Equal(t, domain.MinLeadMinutesBound, params.MinLeadMinutes)
}

func TestResolveParams_GarbageFallsBackToDefaults(t *testing.T) {
	req := &Request{
		DurationMinutes: "abc",
		HorizonDays:     "1.5",
	}

	params, err := resolveParams(req, defaultParams())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultDurationMinutes, params.DurationMinutes)
	assert.Equal(t, domain.DefaultHorizonDays, params.HorizonDays)
}

func TestResolveParams_ValidValuesPassThrough(t *testing.T) {
	req := &Request{
		DurationMinutes: "60",
		SlotMinutes:     "15",
		HorizonDays:     "14",
		SlotLimit:       "50",
		MinLeadMinutes:  "120",
	}

	params, err := resolveParams(req, defaultParams())
	require.NoError(t, err)

	assert.Equal(t, 60, params.DurationMinutes)
	assert.Equal(t, 15, params.SlotMinutes)
	assert.Equal(t, 14, params.HorizonDays)
	assert.Equal(t, 50, params.SlotLimit)
	assert.Equal(t, 120, params.MinLeadMinutes)
}

func TestResolveParams_WorkHoursMisconfigured(t *testing.T) {
	t.Run("end equals start", func(t *testing.T) {
		defaults := defaultParams()
		defaults.WorkStartHour = 9
		defaults.WorkEndHour = 9

		_, err := resolveParams(&Request{}, defaults)
		assert.ErrorIs(t, err, ErrWorkHoursMisconfigured)
	})

	t.Run("end before start", func(t *testing.T) {
		defaults := defaultParams()
		defaults.WorkStartHour = 18
		defaults.WorkEndHour = 9

		_, err := resolveParams(&Request{}, defaults)
		assert.ErrorIs(t, err, ErrWorkHoursMisconfigured)
	})
}

func TestClampParam(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		fallback int
		want     int
	}{
		{"empty uses fallback", "", 30, 30},
		{"valid in range", "45", 30, 45},
		{"below min clamps", "5", 30, 15},
		{"above max clamps", "500", 30, 240},
		{"not a number uses fallback", "x", 30, 30},
		{"fallback also clamped", "", 1000, 240},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := clampParam(tt.raw, 15, 240, tt.fallback)
			assert.Equal(t, tt.want, got)
		})
	}
}
