package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinYear                = 1000
	MaxYear                = 9999
	MaxReasonLength        = 500
	MaxAdditionalInfoLen   = 2000
	MaxShiftNameLength     = 100
	MaxCustomerNameLength  = 200
	MinParticipants        = 1
	MaxParticipants        = 50
	DefaultBookingCurrency = "usd"
)

// ActiveStatuses статусы, которые занимают дату
// Используется при проверке конфликтов и в уникальном индексе bookings_one_active_per_date
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// ActiveStatusStrings ActiveStatuses в виде строк для SQL фильтров
func ActiveStatusStrings() []string {
	result := make([]string, len(ActiveStatuses))
	for i, s := range ActiveStatuses {
		result[i] = string(s)
	}
	return result
}
