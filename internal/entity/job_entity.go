package entity

import "time"

type JobStatus string

const (
	JobStatusScheduled  JobStatus = "scheduled"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusCancelled  JobStatus = "cancelled"
)

// Terminal returns true for statuses a job cannot leave.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusCancelled
}

type Job struct {
	Id                 int
	CustomerId         int
	VehicleId          int
	TechnicianId       *int
	Status             JobStatus
	ScheduledStartTime time.Time
	ScheduledEndTime   time.Time
	ActualStartTime    *time.Time
	ActualEndTime      *time.Time
	Address            string
	City               string
	State              string
	ZipCode            string
	Notes              string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// JobService is a line item fixing the price a service was booked at.
// Line items are replaced wholesale when a job is edited.
type JobService struct {
	Id        int
	JobId     int
	ServiceId int
	Quantity  int
	Price     float64
}
