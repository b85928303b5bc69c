package contract

import (
	"context"

	"detailops-be/internal/entity"
)

type InventoryRepository interface {
	CreateItem(ctx context.Context, item *entity.InventoryItem) error
	UpdateItem(ctx context.Context, item *entity.InventoryItem) error
	DeleteItem(ctx context.Context, id int) (bool, error)
	FindItemByID(ctx context.Context, id int) (*entity.InventoryItem, error)
	FindItemBySku(ctx context.Context, sku string) (*entity.InventoryItem, error)
	FindAllItems(ctx context.Context, activeOnly bool) ([]*entity.InventoryItem, error)

	// Transactions are an append-only ledger; stock recomputation is applied
	// by the service layer before the ledger row is written.
	CreateTransaction(ctx context.Context, tx *entity.InventoryTransaction) error
	FindTransactionsByItem(ctx context.Context, itemId int) ([]*entity.InventoryTransaction, error)
	FindTransactionsByUser(ctx context.Context, userId int) ([]*entity.InventoryTransaction, error)
	CountTransactionsByItem(ctx context.Context, itemId int) (int, error)
}
