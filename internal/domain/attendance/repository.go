package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// GetTodayByEmployeeID returns the latest record whose check-in falls on
	// the calendar day of `day` (server-local). Returns ErrRecordNotFound
	// when the employee has no record that day.
	GetTodayByEmployeeID(ctx context.Context, employeeID int64, day time.Time) (AttendanceRecord, error)

	// CheckIn inserts a new open record for the employee.
	CheckIn(ctx context.Context, employeeID int64, at time.Time, location *string) (AttendanceRecord, error)

	// CheckOut closes a record by setting its check-out timestamp.
	CheckOut(ctx context.Context, recordID int64, at time.Time) (AttendanceRecord, error)
}
