package domain

// ConflictCode machine-readable reason of a rejected availability check
type ConflictCode string

const (
	CodeShiftNotFound               ConflictCode = "SHIFT_NOT_FOUND"
	CodeShiftInactive               ConflictCode = "SHIFT_INACTIVE"
	CodeConflictWithExistingBooking ConflictCode = "CONFLICT_WITH_EXISTING_BOOKING"
	CodeDateAlreadyBooked           ConflictCode = "DATE_ALREADY_BOOKED"
	CodeDateUnavailable             ConflictCode = "DATE_UNAVAILABLE"
)

// User-facing messages, safe for direct display
const (
	MsgAvailable                   = "This date is available"
	MsgShiftNotFound               = "The selected shift does not exist"
	MsgShiftInactive               = "The selected shift is no longer offered"
	MsgConflictWithExistingBooking = "A whole-day tour cannot be booked because this date already has a booking"
	MsgDateAlreadyBooked           = "This date is no longer available"
	MsgDateUnavailable             = "This date is not available for booking"
)

// BookingPresence whether the date already has an active booking
type BookingPresence int

const (
	NoActiveBooking BookingPresence = iota
	HasActiveBooking
)

// Decision outcome of the shift conflict table
type Decision struct {
	HasConflict bool
	Code        ConflictCode
	Message     string
}

type decisionKey struct {
	shiftType ShiftType
	presence  BookingPresence
}

// decisionTable ShiftType x BookingPresence -> Decision
// Hourly shifts share the single daily slot with whole-day shifts and each other
var decisionTable = map[decisionKey]Decision{
	{ShiftTypeWholeDay, NoActiveBooking}:  {HasConflict: false, Message: MsgAvailable},
	{ShiftTypeWholeDay, HasActiveBooking}: {HasConflict: true, Code: CodeConflictWithExistingBooking, Message: MsgConflictWithExistingBooking},
	{ShiftTypeHourly, NoActiveBooking}:    {HasConflict: false, Message: MsgAvailable},
	{ShiftTypeHourly, HasActiveBooking}:   {HasConflict: true, Code: CodeDateAlreadyBooked, Message: MsgDateAlreadyBooked},
}

// PresenceOf converts an active booking count into BookingPresence
func PresenceOf(activeBookings int) BookingPresence {
	if activeBookings > 0 {
		return HasActiveBooking
	}
	return NoActiveBooking
}

// ResolveShiftConflict looks the pair up in the decision table.
// An unknown shift type never reaches the table through validated input;
// it is treated as a taken date.
func ResolveShiftConflict(shiftType ShiftType, presence BookingPresence) Decision {
	if d, ok := decisionTable[decisionKey{shiftType, presence}]; ok {
		return d
	}
	return Decision{HasConflict: true, Code: CodeDateAlreadyBooked, Message: MsgDateAlreadyBooked}
}

// ShiftDecision rejects missing or inactive shifts before the table is consulted
func ShiftDecision(shift *Shift) (Decision, bool) {
	if shift == nil {
		return Decision{HasConflict: true, Code: CodeShiftNotFound, Message: MsgShiftNotFound}, false
	}
	if !shift.IsActive {
		return Decision{HasConflict: true, Code: CodeShiftInactive, Message: MsgShiftInactive}, false
	}
	return Decision{}, true
}
