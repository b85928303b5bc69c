package model

import (
	"time"

	"gorm.io/datatypes"
)

type Customer struct {
	Id        int            `gorm:"primaryKey;autoIncrement"`
	FullName  string         `gorm:"type:varchar(255);not null;index"`
	Email     string         `gorm:"type:varchar(255);index"`
	Phone     string         `gorm:"type:varchar(50)"`
	Address   string         `gorm:"type:varchar(255)"`
	City      string         `gorm:"type:varchar(100)"`
	State     string         `gorm:"type:varchar(50)"`
	ZipCode   string         `gorm:"type:varchar(20)"`
	Tags      datatypes.JSON `gorm:"type:jsonb"`
	Notes     string         `gorm:"type:text"`
	CreatedAt time.Time      `gorm:"autoCreateTime;index"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Customer) TableName() string {
	return "customers"
}

type Vehicle struct {
	Id           int       `gorm:"primaryKey;autoIncrement"`
	CustomerId   int       `gorm:"not null;index"`
	Make         string    `gorm:"type:varchar(100)"`
	Model        string    `gorm:"type:varchar(100)"`
	Year         int       `gorm:""`
	Color        string    `gorm:"type:varchar(50)"`
	LicensePlate string    `gorm:"type:varchar(50)"`
	Vin          string    `gorm:"type:varchar(50)"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}
