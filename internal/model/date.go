package model

import (
	"errors"
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("model: invalid progress date")

func ParseDate(raw string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return parsed, nil
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// DateOf truncates a timestamp to midnight UTC of its calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
