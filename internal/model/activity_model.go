package model

import (
	"time"

	"gorm.io/datatypes"
)

type Activity struct {
	Id          int            `gorm:"primaryKey;autoIncrement"`
	Type        string         `gorm:"type:varchar(50);not null;index"`
	CustomerId  *int           `gorm:"index"`
	JobId       *int           `gorm:"index"`
	InvoiceId   *int           `gorm:"index"`
	Description string         `gorm:"type:text"`
	Metadata    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt   time.Time      `gorm:"autoCreateTime;index"`
}

func (Activity) TableName() string {
	return "activities"
}
