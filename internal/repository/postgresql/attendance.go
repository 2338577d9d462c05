package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/flosclinic/attendance-bot/internal/domain/attendance"
	"github.com/flosclinic/attendance-bot/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// GetTodayByEmployeeID implements attendance.AttendanceRepository.
//
// Note: there is no uniqueness constraint on open records, so two racing
// check-ins can insert two open records for the same day. The latest one
// wins here, matching the original system's behavior.
func (a *attendanceRepositoryImpl) GetTodayByEmployeeID(ctx context.Context, employeeID int64, day time.Time) (attendance.AttendanceRecord, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		SELECT id, employee_id, check_in_time, check_out_time, location, notes, created_at
		FROM attendance_records
		WHERE employee_id = $1 AND check_in_time >= $2 AND check_in_time < $3
		ORDER BY check_in_time DESC
		LIMIT 1
	`

	var rec attendance.AttendanceRecord
	err := a.db.QueryRow(ctx, query, employeeID, dayStart, dayEnd).Scan(
		&rec.ID, &rec.EmployeeID, &rec.CheckInTime, &rec.CheckOutTime,
		&rec.Location, &rec.Notes, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRecord{}, attendance.ErrRecordNotFound
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to get today's attendance record: %w", err)
	}

	return rec, nil
}

// CheckIn implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) CheckIn(ctx context.Context, employeeID int64, at time.Time, location *string) (attendance.AttendanceRecord, error) {
	query := `
		INSERT INTO attendance_records (employee_id, check_in_time, location)
		VALUES ($1, $2, $3)
		RETURNING id, employee_id, check_in_time, check_out_time, location, notes, created_at
	`

	var rec attendance.AttendanceRecord
	err := a.db.QueryRow(ctx, query, employeeID, at, location).Scan(
		&rec.ID, &rec.EmployeeID, &rec.CheckInTime, &rec.CheckOutTime,
		&rec.Location, &rec.Notes, &rec.CreatedAt,
	)
	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to insert check-in record: %w", err)
	}

	return rec, nil
}

// CheckOut implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) CheckOut(ctx context.Context, recordID int64, at time.Time) (attendance.AttendanceRecord, error) {
	query := `
		UPDATE attendance_records
		SET check_out_time = $1
		WHERE id = $2
		RETURNING id, employee_id, check_in_time, check_out_time, location, notes, created_at
	`

	var rec attendance.AttendanceRecord
	err := a.db.QueryRow(ctx, query, at, recordID).Scan(
		&rec.ID, &rec.EmployeeID, &rec.CheckInTime, &rec.CheckOutTime,
		&rec.Location, &rec.Notes, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRecord{}, attendance.ErrRecordNotFound
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to set check-out time: %w", err)
	}

	return rec, nil
}
