package domain

// DateLayout is the only accepted milestone date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Milestone is a named event on a calendar date. EventDate is kept as the
// literal validated string.
type Milestone struct {
	ID        int64
	TenantID  TenantID
	EventName string
	EventDate string
}

// Countdown is a milestone paired with its signed day difference from today.
type Countdown struct {
	EventName string
	EventDate string
	Days      int
}

// Upcoming reports whether the event is strictly in the future.
// A milestone falling on today is not upcoming.
func (c Countdown) Upcoming() bool {
	return c.Days > 0
}
