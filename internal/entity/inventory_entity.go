package entity

import "time"

type TransactionType string

const (
	TransactionTypeIn         TransactionType = "in"
	TransactionTypeOut        TransactionType = "out"
	TransactionTypeReturn     TransactionType = "return"
	TransactionTypeAdjustment TransactionType = "adjustment"
)

type InventoryItem struct {
	Id              int
	Name            string
	Sku             string
	Category        string
	UnitPrice       float64
	CostPrice       float64
	QuantityInStock int
	MinStockLevel   int
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// LowStock reports whether the item is at or below its reorder threshold.
func (i *InventoryItem) LowStock() bool {
	return i.QuantityInStock <= i.MinStockLevel
}

// InventoryTransaction is an immutable ledger entry. "in" and "return" add
// to stock, "out" subtracts (and is rejected if it would go negative),
// "adjustment" overwrites the stock count with Quantity verbatim.
type InventoryTransaction struct {
	Id              int
	InventoryItemId int
	Quantity        int
	Type            TransactionType
	UserId          int
	JobId           *int
	Notes           string
	Date            time.Time
	CreatedAt       time.Time
}
