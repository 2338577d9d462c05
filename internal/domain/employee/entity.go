package employee

import "time"

type Employee struct {
	ID             int64
	OrganizationID int64
	LineUserID     string
	Name           string
	EmployeeNumber *string
	Role           *string
	IsActive       bool
	CreatedAt      time.Time
}
