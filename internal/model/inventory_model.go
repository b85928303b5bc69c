package model

import "time"

type InventoryItem struct {
	Id              int       `gorm:"primaryKey;autoIncrement"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Sku             string    `gorm:"type:varchar(100);uniqueIndex"`
	Category        string    `gorm:"type:varchar(100)"`
	UnitPrice       float64   `gorm:"type:decimal(10,2);default:0"`
	CostPrice       float64   `gorm:"type:decimal(10,2);default:0"`
	QuantityInStock int       `gorm:"default:0"`
	MinStockLevel   int       `gorm:"default:0"`
	IsActive        bool      `gorm:"default:true"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

type InventoryTransaction struct {
	Id              int       `gorm:"primaryKey;autoIncrement"`
	InventoryItemId int       `gorm:"not null;index"`
	Quantity        int       `gorm:"not null"`
	Type            string    `gorm:"type:varchar(20);not null"`
	UserId          int       `gorm:"not null;index"`
	JobId           *int      `gorm:"index"`
	Notes           string    `gorm:"type:text"`
	Date            time.Time `gorm:"not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (InventoryTransaction) TableName() string {
	return "inventory_transactions"
}
