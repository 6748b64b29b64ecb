package carrier

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrShippingHourIsNotConstructed is returned when a ShippingHour was not
// created through NewShippingHour.
var ErrShippingHourIsNotConstructed = errors.New(
	"ShippingHour must be created via NewShippingHour constructor")

// ShippingHour is a recurring weekly departure window: a day of week and a
// time of day on the warehouse-local clock. It is an immutable value object.
type ShippingHour struct { //nolint:recvcheck //using for validation
	day    time.Weekday
	hour   int
	minute int

	guard guard.ConstructorGuard
}

// NewShippingHour creates a departure window, validating the time of day.
func NewShippingHour(day time.Weekday, hour, minute int) (ShippingHour, error) {
	sh := ShippingHour{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(sh.setDay(day), sh.setTime(hour, minute)); err != nil {
		return ShippingHour{}, err
	}

	return sh, nil
}

// Validate ensures the value was created through the constructor.
func (s ShippingHour) Validate() error {
	return s.guard.Validate(ErrShippingHourIsNotConstructed)
}

// Day returns the weekday of the departure window.
func (s ShippingHour) Day() time.Weekday {
	return s.day
}

// Hour returns the hour of day of the departure window.
func (s ShippingHour) Hour() int {
	return s.hour
}

// Minute returns the minute within the hour of the departure window.
func (s ShippingHour) Minute() int {
	return s.minute
}

func (s *ShippingHour) setDay(day time.Weekday) error {
	if day < time.Sunday || day > time.Saturday {
		return errs.NewValueIsInvalidErrorWithCause("day",
			fmt.Errorf("%d is not a weekday", day))
	}
	s.day = day
	return nil
}

func (s *ShippingHour) setTime(hour, minute int) error {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return errs.NewValueIsInvalidErrorWithCause("time",
			fmt.Errorf("%02d:%02d is not a time of day", hour, minute))
	}
	s.hour = hour
	s.minute = minute
	return nil
}
