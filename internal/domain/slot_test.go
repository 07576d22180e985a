package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelFor(t *testing.T) {
	tests := []struct {
		id   int
		want string
	}{
		{0, "7:00-9:00"},
		{1, "9:00-11:00"},
		{2, "11:00-13:00"},
		{3, "13:00-15:00"},
		{4, "16:00-17:00"},
		{5, ClosedLabel},
		{-1, ClosedLabel},
		{100, ClosedLabel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelFor(tt.id), "id=%d", tt.id)
	}
	assert.Equal(t, "Closed", ClosedLabel)
}

func TestBuildSchedule_NoBookings(t *testing.T) {
	slots := BuildSchedule(nil)

	require.Len(t, slots, SlotsPerDay)
	for i, s := range slots {
		assert.Equal(t, i, s.ID)
		assert.Equal(t, LabelFor(i), s.Label)
		assert.True(t, s.Available)
	}
}

func TestBuildSchedule_MarksBookedSlots(t *testing.T) {
	slots := BuildSchedule([]int{4, 2, 2, 9, -3})

	require.Len(t, slots, SlotsPerDay)
	want := []bool{true, true, false, true, false}
	for i, s := range slots {
		assert.Equal(t, i, s.ID)
		assert.Equal(t, want[i], s.Available, "slot %d", i)
	}
}

func TestBuildSchedule_AllBooked(t *testing.T) {
	slots := BuildSchedule([]int{0, 1, 2, 3, 4})

	require.Len(t, slots, SlotsPerDay)
	for _, s := range slots {
		assert.False(t, s.Available)
	}
}
