package ledger

import (
	"fmt"
	"time"
)

// RecurringInterval is how often a recurring transaction repeats.
type RecurringInterval string

const (
	RecurringDaily   RecurringInterval = "DAILY"
	RecurringWeekly  RecurringInterval = "WEEKLY"
	RecurringMonthly RecurringInterval = "MONTHLY"
	RecurringYearly  RecurringInterval = "YEARLY"
)

func (i RecurringInterval) Valid() bool {
	switch i {
	case RecurringDaily, RecurringWeekly, RecurringMonthly, RecurringYearly:
		return true
	}
	return false
}

// ValidateRecurrence enforces that an interval is set exactly when the
// transaction is recurring.
func ValidateRecurrence(isRecurring bool, interval *RecurringInterval) error {
	if !isRecurring {
		if interval != nil {
			return fmt.Errorf("%w: interval %q set on a non-recurring transaction", ErrInvalidRecurrence, *interval)
		}
		return nil
	}
	if interval == nil {
		return fmt.Errorf("%w: recurring transaction without interval", ErrInvalidRecurrence)
	}
	if !interval.Valid() {
		return fmt.Errorf("%w: unknown interval %q", ErrInvalidRecurrence, *interval)
	}
	return nil
}

// NextRecurringDate returns the date the next instance of a recurring
// transaction is due. Month and year steps follow time.AddDate normalisation,
// so Jan 31 + 1 month is Mar 3 (or Mar 2 in leap years).
func NextRecurringDate(from time.Time, interval RecurringInterval) (time.Time, error) {
	switch interval {
	case RecurringDaily:
		return from.AddDate(0, 0, 1), nil
	case RecurringWeekly:
		return from.AddDate(0, 0, 7), nil
	case RecurringMonthly:
		return from.AddDate(0, 1, 0), nil
	case RecurringYearly:
		return from.AddDate(1, 0, 0), nil
	}
	return time.Time{}, fmt.Errorf("%w: unknown interval %q", ErrInvalidRecurrence, interval)
}

// MonthBounds returns [start, end) of the UTC calendar month containing t.
func MonthBounds(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
