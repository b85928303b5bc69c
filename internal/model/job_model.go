package model

import "time"

type Job struct {
	Id                 int        `gorm:"primaryKey;autoIncrement"`
	CustomerId         int        `gorm:"not null;index"`
	VehicleId          int        `gorm:"not null;index"`
	TechnicianId       *int       `gorm:"index"`
	Status             string     `gorm:"type:varchar(50);not null;index"`
	ScheduledStartTime time.Time  `gorm:"not null;index"`
	ScheduledEndTime   time.Time  `gorm:"not null"`
	ActualStartTime    *time.Time `gorm:""`
	ActualEndTime      *time.Time `gorm:""`
	Address            string     `gorm:"type:varchar(255)"`
	City               string     `gorm:"type:varchar(100)"`
	State              string     `gorm:"type:varchar(50)"`
	ZipCode            string     `gorm:"type:varchar(20)"`
	Notes              string     `gorm:"type:text"`
	CreatedAt          time.Time  `gorm:"autoCreateTime"`
	UpdatedAt          time.Time  `gorm:"autoUpdateTime"`
}

func (Job) TableName() string {
	return "jobs"
}

type JobService struct {
	Id        int     `gorm:"primaryKey;autoIncrement"`
	JobId     int     `gorm:"not null;index"`
	ServiceId int     `gorm:"not null;index"`
	Quantity  int     `gorm:"default:1"`
	Price     float64 `gorm:"type:decimal(10,2);not null"`
}

func (JobService) TableName() string {
	return "job_services"
}
