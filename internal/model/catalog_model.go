package model

import "time"

type Service struct {
	Id              int       `gorm:"primaryKey;autoIncrement"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text"`
	Price           float64   `gorm:"type:decimal(10,2);not null"`
	DurationMinutes int       `gorm:"default:60"`
	Color           string    `gorm:"type:varchar(20)"`
	IsActive        bool      `gorm:"default:true"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (Service) TableName() string {
	return "services"
}
