package mapper

import (
	"detailops-be/internal/entity"
	"detailops-be/internal/model"
)

type InventoryMapper struct{}

func NewInventoryMapper() *InventoryMapper {
	return &InventoryMapper{}
}

func (m *InventoryMapper) ItemToEntity(i *model.InventoryItem) *entity.InventoryItem {
	if i == nil {
		return nil
	}
	return &entity.InventoryItem{
		Id:              i.Id,
		Name:            i.Name,
		Sku:             i.Sku,
		Category:        i.Category,
		UnitPrice:       i.UnitPrice,
		CostPrice:       i.CostPrice,
		QuantityInStock: i.QuantityInStock,
		MinStockLevel:   i.MinStockLevel,
		IsActive:        i.IsActive,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

func (m *InventoryMapper) ItemToModel(i *entity.InventoryItem) *model.InventoryItem {
	if i == nil {
		return nil
	}
	return &model.InventoryItem{
		Id:              i.Id,
		Name:            i.Name,
		Sku:             i.Sku,
		Category:        i.Category,
		UnitPrice:       i.UnitPrice,
		CostPrice:       i.CostPrice,
		QuantityInStock: i.QuantityInStock,
		MinStockLevel:   i.MinStockLevel,
		IsActive:        i.IsActive,
		CreatedAt:       i.CreatedAt,
		UpdatedAt:       i.UpdatedAt,
	}
}

func (m *InventoryMapper) ItemsToEntities(items []*model.InventoryItem) []*entity.InventoryItem {
	entities := make([]*entity.InventoryItem, len(items))
	for i, item := range items {
		entities[i] = m.ItemToEntity(item)
	}
	return entities
}

func (m *InventoryMapper) TransactionToEntity(t *model.InventoryTransaction) *entity.InventoryTransaction {
	if t == nil {
		return nil
	}
	return &entity.InventoryTransaction{
		Id:              t.Id,
		InventoryItemId: t.InventoryItemId,
		Quantity:        t.Quantity,
		Type:            entity.TransactionType(t.Type),
		UserId:          t.UserId,
		JobId:           t.JobId,
		Notes:           t.Notes,
		Date:            t.Date,
		CreatedAt:       t.CreatedAt,
	}
}

func (m *InventoryMapper) TransactionToModel(t *entity.InventoryTransaction) *model.InventoryTransaction {
	if t == nil {
		return nil
	}
	return &model.InventoryTransaction{
		Id:              t.Id,
		InventoryItemId: t.InventoryItemId,
		Quantity:        t.Quantity,
		Type:            string(t.Type),
		UserId:          t.UserId,
		JobId:           t.JobId,
		Notes:           t.Notes,
		Date:            t.Date,
		CreatedAt:       t.CreatedAt,
	}
}

func (m *InventoryMapper) TransactionsToEntities(txs []*model.InventoryTransaction) []*entity.InventoryTransaction {
	entities := make([]*entity.InventoryTransaction, len(txs))
	for i, t := range txs {
		entities[i] = m.TransactionToEntity(t)
	}
	return entities
}
