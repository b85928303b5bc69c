package model

import (
	"time"

	"gorm.io/datatypes"
)

type MembershipPlan struct {
	Id           int            `gorm:"primaryKey;autoIncrement"`
	Name         string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Description  string         `gorm:"type:text"`
	MonthlyPrice float64        `gorm:"type:decimal(10,2);not null"`
	AnnualPrice  float64        `gorm:"type:decimal(10,2);not null"`
	Features     datatypes.JSON `gorm:"type:jsonb"`
	IsActive     bool           `gorm:"default:true"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
}

func (MembershipPlan) TableName() string {
	return "membership_plans"
}

type CustomerSubscription struct {
	Id                   int        `gorm:"primaryKey;autoIncrement"`
	CustomerId           int        `gorm:"not null;index"`
	PlanId               int        `gorm:"not null;index"`
	Status               string     `gorm:"type:varchar(50);not null;index"`
	BillingCycle         string     `gorm:"type:varchar(20);not null"`
	GatewayOrderId       *string    `gorm:"type:varchar(255);index"`
	GatewayTransactionId *string    `gorm:"type:varchar(255)"`
	StartDate            time.Time  `gorm:"not null"`
	CanceledAt           *time.Time `gorm:""`
	CreatedAt            time.Time  `gorm:"autoCreateTime"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime"`
}

func (CustomerSubscription) TableName() string {
	return "customer_subscriptions"
}
