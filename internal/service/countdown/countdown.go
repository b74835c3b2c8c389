// Package countdown turns milestone dates into signed day counts.
package countdown

import (
	"fmt"
	"time"

	"github.com/heartmarshall/ustwo-backend/internal/domain"
)

// ParseDate parses a strict YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %q: %w", s, domain.ErrInvalidDateFormat)
	}
	return d, nil
}

// DaysUntil returns the number of whole days from now's calendar date (in
// now's location) to the event date. Positive means the event is ahead,
// zero means today, negative means it has passed.
func DaysUntil(eventDateISO string, now time.Time) (int, error) {
	event, err := ParseDate(eventDateISO)
	if err != nil {
		return 0, err
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	target := time.Date(event.Year(), event.Month(), event.Day(), 0, 0, 0, 0, time.UTC)

	return int(unixDay(target) - unixDay(today)), nil
}

// unixDay numbers a UTC midnight by whole days since 1970-01-01. Unlike
// time.Duration it covers every year ParseDate accepts.
func unixDay(midnight time.Time) int64 {
	return midnight.Unix() / secondsPerDay
}

const secondsPerDay = 24 * 60 * 60

// Phrase renders a day count: "N days to go" when days > 0, "N days ago"
// otherwise (a milestone on today reads "0 days ago").
func Phrase(days int) string {
	if days > 0 {
		return fmt.Sprintf("%d days to go", days)
	}
	return fmt.Sprintf("%d days ago", -days)
}

// ForMilestones computes countdowns for every milestone, preserving order.
// Fails on the first stored date that does not parse.
func ForMilestones(milestones []domain.Milestone, now time.Time) ([]domain.Countdown, error) {
	out := make([]domain.Countdown, 0, len(milestones))
	for _, m := range milestones {
		days, err := DaysUntil(m.EventDate, now)
		if err != nil {
			return nil, fmt.Errorf("milestone %d: %w", m.ID, err)
		}
		out = append(out, domain.Countdown{
			EventName: m.EventName,
			EventDate: m.EventDate,
			Days:      days,
		})
	}
	return out, nil
}
