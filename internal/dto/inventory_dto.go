package dto

import "time"

type CreateInventoryItemRequest struct {
	Name          string  `json:"name" validate:"required"`
	Sku           string  `json:"sku" validate:"required"`
	Category      string  `json:"category"`
	UnitPrice     float64 `json:"unit_price" validate:"gte=0"`
	CostPrice     float64 `json:"cost_price" validate:"gte=0"`
	MinStockLevel int     `json:"min_stock_level" validate:"gte=0"`
}

type UpdateInventoryItemRequest struct {
	Name          *string  `json:"name"`
	Category      *string  `json:"category"`
	UnitPrice     *float64 `json:"unit_price" validate:"omitempty,gte=0"`
	CostPrice     *float64 `json:"cost_price" validate:"omitempty,gte=0"`
	MinStockLevel *int     `json:"min_stock_level" validate:"omitempty,gte=0"`
	IsActive      *bool    `json:"is_active"`
}

type InventoryItemResponse struct {
	Id              int       `json:"id"`
	Name            string    `json:"name"`
	Sku             string    `json:"sku"`
	Category        string    `json:"category,omitempty"`
	UnitPrice       float64   `json:"unit_price"`
	CostPrice       float64   `json:"cost_price"`
	QuantityInStock int       `json:"quantity_in_stock"`
	MinStockLevel   int       `json:"min_stock_level"`
	LowStock        bool      `json:"low_stock"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateInventoryTransactionRequest struct {
	InventoryItemId int    `json:"inventory_item_id" validate:"required,gt=0"`
	Quantity        int    `json:"quantity" validate:"required,gte=0"`
	Type            string `json:"type" validate:"required,oneof=in out return adjustment"`
	JobId           *int   `json:"job_id"`
	Notes           string `json:"notes"`
}

type InventoryTransactionResponse struct {
	Id              int       `json:"id"`
	InventoryItemId int       `json:"inventory_item_id"`
	Quantity        int       `json:"quantity"`
	Type            string    `json:"type"`
	UserId          int       `json:"user_id"`
	JobId           *int      `json:"job_id,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Date            time.Time `json:"date"`
}

// TechnicianHolding is the net quantity of an item checked out by a
// technician (out minus return); only positive holdings are reported.
type TechnicianHolding struct {
	InventoryItemId int    `json:"inventory_item_id"`
	ItemName        string `json:"item_name"`
	Sku             string `json:"sku"`
	Quantity        int    `json:"quantity"`
}
