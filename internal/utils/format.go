package utils

import "time"

const (
	DateOnly = "2006-01-02"
	// PushedAt matches how image push timestamps are printed: seconds plus UTC offset.
	PushedAt      = "2006-01-02 15:04:05-07:00"
	PushedAtMicro = "2006-01-02 15:04:05.000000-07:00"
)

// Timestamp formats t in the local zone with PushedAt, switching to
// PushedAtMicro when t has a sub-second part. Zero times render as "-".
func Timestamp(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	t = t.In(time.Local)
	if t.Nanosecond()/1000 != 0 {
		return t.Format(PushedAtMicro)
	}
	return t.Format(PushedAt)
}
