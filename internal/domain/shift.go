package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/dobaato-technical/KnowALocal-sub000/pkg/types"
)

// ShiftType governs how a shift excludes other bookings on the same date
type ShiftType string

const (
	ShiftTypeWholeDay ShiftType = "whole_day"
	ShiftTypeHourly   ShiftType = "hourly"
)

// IsValid returns true for known shift types
func (t ShiftType) IsValid() bool {
	return t == ShiftTypeWholeDay || t == ShiftTypeHourly
}

// Shift bookable time window template
type Shift struct {
	ID        uuid.UUID
	Name      string
	StartTime types.TimeString
	EndTime   types.TimeString
	Type      ShiftType
	IsActive  bool
	CreatedAt time.Time
}

func (s *Shift) IsWholeDay() bool {
	return s.Type == ShiftTypeWholeDay
}
