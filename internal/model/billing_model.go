package model

import "time"

type Invoice struct {
	Id            int        `gorm:"primaryKey;autoIncrement"`
	JobId         int        `gorm:"not null;index"`
	InvoiceNumber string     `gorm:"type:varchar(50);uniqueIndex"`
	Subtotal      float64    `gorm:"type:decimal(10,2);not null"`
	Tax           float64    `gorm:"type:decimal(10,2);default:0"`
	Discount      float64    `gorm:"type:decimal(10,2);default:0"`
	Total         float64    `gorm:"type:decimal(10,2);not null"`
	Paid          bool       `gorm:"default:false;index"`
	PaidDate      *time.Time `gorm:""`
	PaidAmount    float64    `gorm:"type:decimal(10,2);default:0"`
	Notes         string     `gorm:"type:text"`
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime"`
}

func (Invoice) TableName() string {
	return "invoices"
}

type Payment struct {
	Id            int       `gorm:"primaryKey;autoIncrement"`
	InvoiceId     int       `gorm:"not null;index"`
	Amount        float64   `gorm:"type:decimal(10,2);not null"`
	Method        string    `gorm:"type:varchar(50);not null"`
	TransactionId string    `gorm:"type:varchar(255)"`
	Date          time.Time `gorm:"not null"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (Payment) TableName() string {
	return "payments"
}
