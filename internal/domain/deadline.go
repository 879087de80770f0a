package domain

import "time"

// DeadlineAfter returns the start of the day that follows from+days in loc.
// An instant at 14:30 on the 15th with days=1 yields 00:00 on the 17th.
func DeadlineAfter(from time.Time, days int, loc *time.Location) time.Time {
	local := from.In(loc)
	y, m, d := local.Date()
	return time.Date(y, m, d+days+1, 0, 0, 0, 0, loc)
}
