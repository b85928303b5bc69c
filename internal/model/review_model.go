package model

import "time"

type Review struct {
	Id           int       `gorm:"primaryKey;autoIncrement"`
	CustomerId   int       `gorm:"not null;index"`
	JobId        *int      `gorm:"index"`
	Rating       int       `gorm:"not null"`
	Comment      string    `gorm:"type:text"`
	Source       string    `gorm:"type:varchar(50)"`
	Responded    bool      `gorm:"default:false"`
	ResponseText string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Review) TableName() string {
	return "reviews"
}
