// Package dateutil defines the canonical date key used to address one
// day's planner record, plus the week math the weekly report needs.
package dateutil

import (
	"fmt"
	"time"
)

const (
	layoutISO = "2006-01-02"
	layoutUS  = "January 2, 2006"
)

// Key identifies a single calendar day as a zero-padded YYYY-MM-DD string.
// Keys compare lexicographically in date order.
type Key string

// For returns the key for t in the local timezone.
func For(t time.Time) Key {
	return Key(t.Format(layoutISO))
}

// Today returns the key for the current local date.
func Today() Key {
	return For(time.Now())
}

// Parse validates s as a YYYY-MM-DD key.
func Parse(s string) (Key, error) {
	if _, err := time.ParseInLocation(layoutISO, s, time.Local); err != nil {
		return "", fmt.Errorf("dateutil: invalid date %q: %w", s, err)
	}
	return Key(s), nil
}

// Time returns the midnight local time for the key.
func (k Key) Time() (time.Time, error) {
	t, err := time.ParseInLocation(layoutISO, string(k), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("dateutil: invalid key %q: %w", string(k), err)
	}
	return t, nil
}

// AddDays returns the key n days after k. Invalid keys are returned unchanged.
func (k Key) AddDays(n int) Key {
	t, err := k.Time()
	if err != nil {
		return k
	}
	return For(t.AddDate(0, 0, n))
}

// StartOfWeek returns the Monday of the week containing k. A Sunday key
// maps six days back.
func (k Key) StartOfWeek() Key {
	t, err := k.Time()
	if err != nil {
		return k
	}
	back := int(t.Weekday()) - int(time.Monday)
	if t.Weekday() == time.Sunday {
		back = 6
	}
	return For(t.AddDate(0, 0, -back))
}

// Label formats the key for display, like "January 2, 2006".
func (k Key) Label() string {
	t, err := k.Time()
	if err != nil {
		return string(k)
	}
	return t.Format(layoutUS)
}

// DayName returns the weekday name for the key.
func (k Key) DayName() string {
	t, err := k.Time()
	if err != nil {
		return string(k)
	}
	return t.Weekday().String()
}

func (k Key) String() string {
	return string(k)
}
