package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePolicyDefaults(t *testing.T) {
	p, ok := ResolvePolicy(ShiftSpec{Type: ShiftFlexible})
	require.True(t, ok)
	assert.Equal(t, 510, p.WorkingMinutes)
	assert.Equal(t, 30, p.PaidBreakAllowanceMinutes)
	assert.Equal(t, 540, p.BaseShiftMinutes)
	assert.False(t, p.IsFixed)
	assert.False(t, p.IsNarrowWindow)
}

func TestResolvePolicyFixed(t *testing.T) {
	p, ok := ResolvePolicy(ShiftSpec{
		Type:      ShiftFixed,
		StartTime: "09:00",
		EndTime:   "18:00",
	})
	require.True(t, ok)
	assert.True(t, p.IsFixed)
	assert.Equal(t, 9*60, p.StartMinute)
	assert.Equal(t, 18*60, p.EndMinute)
	assert.Equal(t, 540, p.BaseShiftMinutes)
}

func TestResolvePolicyNarrowWindow(t *testing.T) {
	p, ok := ResolvePolicy(ShiftSpec{
		Type:         ShiftFixed,
		StartTime:    "10:00",
		EndTime:      "19:00",
		NarrowWindow: true,
	})
	require.True(t, ok)
	assert.True(t, p.IsNarrowWindow)
	assert.Equal(t, 10*60, p.StartMinute)
	assert.Equal(t, 19*60, p.EndMinute)
}

func TestResolvePolicyOverrides(t *testing.T) {
	p, ok := ResolvePolicy(ShiftSpec{
		Type:             ShiftFlexible,
		WorkingMinutes:   420,
		PaidBreakMinutes: 45,
	})
	require.True(t, ok)
	assert.Equal(t, 420, p.WorkingMinutes)
	assert.Equal(t, 45, p.PaidBreakAllowanceMinutes)
	assert.Equal(t, 465, p.BaseShiftMinutes)
}

func TestResolvePolicyDurationHours(t *testing.T) {
	p, ok := ResolvePolicy(ShiftSpec{Type: ShiftFlexible, DurationHours: 8})
	require.True(t, ok)
	assert.Equal(t, 450, p.WorkingMinutes)
	assert.Equal(t, 480, p.BaseShiftMinutes)
}

func TestResolvePolicyFailsClosed(t *testing.T) {
	cases := []struct {
		name string
		spec ShiftSpec
	}{
		{"fixed missing start", ShiftSpec{Type: ShiftFixed, EndTime: "18:00"}},
		{"fixed missing end", ShiftSpec{Type: ShiftFixed, StartTime: "09:00"}},
		{"fixed garbage start", ShiftSpec{Type: ShiftFixed, StartTime: "whenever", EndTime: "18:00"}},
		{"fixed out of range", ShiftSpec{Type: ShiftFixed, StartTime: "25:00", EndTime: "18:00"}},
		{"unknown type", ShiftSpec{Type: "ROTATING"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := ResolvePolicy(tc.spec)
			assert.False(t, ok)
		})
	}
}

func TestParseClockMinutes(t *testing.T) {
	m, err := ParseClockMinutes("10:30")
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	m, err = ParseClockMinutes("08:15:27")
	require.NoError(t, err)
	assert.Equal(t, 495, m)

	_, err = ParseClockMinutes("930")
	assert.Error(t, err)
}
