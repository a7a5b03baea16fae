package domain

import "time"

// DateLayout is the calendar-day format used for flight dates on the wire.
const DateLayout = "2006-01-02"

type Flight struct {
	ID          int64
	FromCity    City
	ToCity      City
	Date        time.Time
	Duration    float64
	MaxCapacity int
}

// TruncateDay drops the clock part so flight dates compare by UTC calendar
// day.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
