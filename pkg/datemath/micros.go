package datemath

import "time"

// FromMicros converts microseconds since the Unix epoch to a UTC time.Time.
func FromMicros(usec int64) time.Time {
	return time.UnixMicro(usec).UTC()
}

// MicrosToISO renders microseconds since the Unix epoch as an ISO-8601 UTC
// timestamp. Whole seconds omit the fraction; otherwise all six fractional
// digits are kept.
func MicrosToISO(usec int64) string {
	t := FromMicros(usec)
	if t.Nanosecond() == 0 {
		return t.Format(LayoutSeconds)
	}
	return t.Format(LayoutMicros)
}
