package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveShiftConflict_Table(t *testing.T) {
	tests := []struct {
		name         string
		shiftType    ShiftType
		presence     BookingPresence
		wantConflict bool
		wantCode     ConflictCode
	}{
		{"whole day on free date", ShiftTypeWholeDay, NoActiveBooking, false, ""},
		{"whole day on booked date", ShiftTypeWholeDay, HasActiveBooking, true, CodeConflictWithExistingBooking},
		{"hourly on free date", ShiftTypeHourly, NoActiveBooking, false, ""},
		{"hourly on booked date", ShiftTypeHourly, HasActiveBooking, true, CodeDateAlreadyBooked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ResolveShiftConflict(tt.shiftType, tt.presence)
			assert.Equal(t, tt.wantConflict, d.HasConflict)
			assert.Equal(t, tt.wantCode, d.Code)
			assert.NotEmpty(t, d.Message)
		})
	}
}

func TestResolveShiftConflict_UnknownTypeIsConflict(t *testing.T) {
	d := ResolveShiftConflict(ShiftType("night"), NoActiveBooking)
	assert.True(t, d.HasConflict)
	assert.Equal(t, CodeDateAlreadyBooked, d.Code)
}

func TestPresenceOf(t *testing.T) {
	assert.Equal(t, NoActiveBooking, PresenceOf(0))
	assert.Equal(t, HasActiveBooking, PresenceOf(1))
	assert.Equal(t, HasActiveBooking, PresenceOf(3))
}

func TestShiftDecision(t *testing.T) {
	d, ok := ShiftDecision(nil)
	assert.False(t, ok)
	assert.Equal(t, CodeShiftNotFound, d.Code)

	d, ok = ShiftDecision(&Shift{Type: ShiftTypeHourly, IsActive: false})
	assert.False(t, ok)
	assert.Equal(t, CodeShiftInactive, d.Code)

	_, ok = ShiftDecision(&Shift{Type: ShiftTypeHourly, IsActive: true})
	assert.True(t, ok)
}
