package attendance

import "time"

// AttendanceRecord is one clock-in, optionally closed by a clock-out. A
// record with a nil CheckOutTime is an open shift.
type AttendanceRecord struct {
	ID           int64
	EmployeeID   int64
	CheckInTime  time.Time
	CheckOutTime *time.Time
	Location     *string
	Notes        *string
	CreatedAt    time.Time
}

func (r AttendanceRecord) IsOpen() bool {
	return r.CheckOutTime == nil
}

// WorkDuration returns the elapsed time between check-in and check-out as
// whole hours and leftover whole minutes, truncating. Both the check-out
// reply and the status reply go through this, so the two can never disagree.
func (r AttendanceRecord) WorkDuration() (hours int, minutes int) {
	if r.CheckOutTime == nil {
		return 0, 0
	}
	d := r.CheckOutTime.Sub(r.CheckInTime)
	hours = int(d / time.Hour)
	minutes = int(d % time.Hour / time.Minute)
	return hours, minutes
}
