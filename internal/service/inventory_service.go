package service

import (
	"context"
	"fmt"
	"time"

	"detailops-be/internal/dto"
	"detailops-be/internal/entity"
	"detailops-be/internal/pkg/logger"
	"detailops-be/internal/repository"
	"detailops-be/pkg/events"
	pkgNats "detailops-be/pkg/nats"
)

type IInventoryService interface {
	CreateItem(ctx context.Context, req *dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error)
	UpdateItem(ctx context.Context, id int, req *dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error)
	// DeleteItem deactivates instead of deleting when the item has ledger
	// history; deactivated reports which happened.
	DeleteItem(ctx context.Context, id int) (deleted, deactivated bool, err error)
	ShowItem(ctx context.Context, id int) (*dto.InventoryItemResponse, error)
	GetAllItems(ctx context.Context, activeOnly bool) ([]*dto.InventoryItemResponse, error)

	RecordTransaction(ctx context.Context, userId int, req *dto.CreateInventoryTransactionRequest) (*dto.InventoryTransactionResponse, error)
	GetItemTransactions(ctx context.Context, itemId int) ([]*dto.InventoryTransactionResponse, error)
	GetTechnicianHoldings(ctx context.Context, userId int) ([]*dto.TechnicianHolding, error)
}

type inventoryService struct {
	store           repository.Datastore
	activityService IActivityService
	eventPublisher  *pkgNats.Publisher
	logger          logger.ILogger
}

func NewInventoryService(
	store repository.Datastore,
	activityService IActivityService,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IInventoryService {
	return &inventoryService{
		store:           store,
		activityService: activityService,
		eventPublisher:  eventPublisher,
		logger:          log,
	}
}

func itemToResponse(i *entity.InventoryItem) *dto.InventoryItemResponse {
	return &dto.InventoryItemResponse{
		Id:              i.Id,
		Name:            i.Name,
		Sku:             i.Sku,
		Category:        i.Category,
		UnitPrice:       i.UnitPrice,
		CostPrice:       i.CostPrice,
		QuantityInStock: i.QuantityInStock,
		MinStockLevel:   i.MinStockLevel,
		LowStock:        i.LowStock(),
		IsActive:        i.IsActive,
		CreatedAt:       i.CreatedAt,
	}
}

func transactionToResponse(t *entity.InventoryTransaction) *dto.InventoryTransactionResponse {
	return &dto.InventoryTransactionResponse{
		Id:              t.Id,
		InventoryItemId: t.InventoryItemId,
		Quantity:        t.Quantity,
		Type:            string(t.Type),
		UserId:          t.UserId,
		JobId:           t.JobId,
		Notes:           t.Notes,
		Date:            t.Date,
	}
}

func (s *inventoryService) CreateItem(ctx context.Context, req *dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	existing, err := s.store.Inventory().FindItemBySku(ctx, req.Sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, dto.Conflict("sku already exists")
	}

	now := time.Now()
	item := &entity.InventoryItem{
		Name:          req.Name,
		Sku:           req.Sku,
		Category:      req.Category,
		UnitPrice:     req.UnitPrice,
		CostPrice:     req.CostPrice,
		MinStockLevel: req.MinStockLevel,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.store.Inventory().CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return itemToResponse(item), nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id int, req *dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	item, err := s.store.Inventory().FindItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.UnitPrice != nil {
		item.UnitPrice = *req.UnitPrice
	}
	if req.CostPrice != nil {
		item.CostPrice = *req.CostPrice
	}
	if req.MinStockLevel != nil {
		item.MinStockLevel = *req.MinStockLevel
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}
	item.UpdatedAt = time.Now()

	if err := s.store.Inventory().UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return itemToResponse(item), nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, id int) (bool, bool, error) {
	item, err := s.store.Inventory().FindItemByID(ctx, id)
	if err != nil {
		return false, false, err
	}
	if item == nil {
		return false, false, nil
	}

	count, err := s.store.Inventory().CountTransactionsByItem(ctx, id)
	if err != nil {
		return false, false, err
	}
	if count > 0 {
		// Ledger history must stay resolvable, so the item is retired
		// instead of removed.
		item.IsActive = false
		item.UpdatedAt = time.Now()
		if err := s.store.Inventory().UpdateItem(ctx, item); err != nil {
			return false, false, err
		}
		return false, true, nil
	}

	deleted, err := s.store.Inventory().DeleteItem(ctx, id)
	return deleted, false, err
}

func (s *inventoryService) ShowItem(ctx context.Context, id int) (*dto.InventoryItemResponse, error) {
	item, err := s.store.Inventory().FindItemByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}
	return itemToResponse(item), nil
}

func (s *inventoryService) GetAllItems(ctx context.Context, activeOnly bool) ([]*dto.InventoryItemResponse, error) {
	items, err := s.store.Inventory().FindAllItems(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.InventoryItemResponse, len(items))
	for i, item := range items {
		result[i] = itemToResponse(item)
	}
	return result, nil
}

func (s *inventoryService) RecordTransaction(ctx context.Context, userId int, req *dto.CreateInventoryTransactionRequest) (*dto.InventoryTransactionResponse, error) {
	item, err := s.store.Inventory().FindItemByID(ctx, req.InventoryItemId)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, dto.BadRequest("inventory item not found")
	}

	// Stock is recomputed before anything is written; a rejected "out"
	// leaves both the item and the ledger untouched.
	txType := entity.TransactionType(req.Type)
	switch txType {
	case entity.TransactionTypeIn, entity.TransactionTypeReturn:
		item.QuantityInStock += req.Quantity
	case entity.TransactionTypeOut:
		if req.Quantity > item.QuantityInStock {
			return nil, &dto.InsufficientStockError{
				ItemName:  item.Name,
				Requested: req.Quantity,
				Available: item.QuantityInStock,
			}
		}
		item.QuantityInStock -= req.Quantity
	case entity.TransactionTypeAdjustment:
		// Adjustment sets the count outright; Quantity is the new total.
		item.QuantityInStock = req.Quantity
	}
	item.UpdatedAt = time.Now()

	if err := s.store.Inventory().UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	now := time.Now()
	tx := &entity.InventoryTransaction{
		InventoryItemId: item.Id,
		Quantity:        req.Quantity,
		Type:            txType,
		UserId:          userId,
		JobId:           req.JobId,
		Notes:           req.Notes,
		Date:            now,
		CreatedAt:       now,
	}
	if err := s.store.Inventory().CreateTransaction(ctx, tx); err != nil {
		return nil, err
	}

	_ = s.activityService.Record(ctx, &entity.Activity{
		Type:        entity.ActivityInventoryTransaction,
		JobId:       req.JobId,
		Description: fmt.Sprintf("Inventory %s: %d x %s", txType, req.Quantity, item.Name),
		Metadata: map[string]interface{}{
			"item_id": item.Id,
			"type":    string(txType),
			"stock":   item.QuantityInStock,
		},
	})

	if item.LowStock() {
		if err := s.eventPublisher.Publish(ctx, events.New(events.TypeInventoryLowStock, map[string]interface{}{
			"item_id": item.Id,
			"sku":     item.Sku,
			"stock":   item.QuantityInStock,
			"minimum": item.MinStockLevel,
		})); err != nil {
			s.logger.Warn("inventory", "event publish failed", map[string]interface{}{
				"item_id": item.Id,
				"error":   err.Error(),
			})
		}
	}

	return transactionToResponse(tx), nil
}

func (s *inventoryService) GetItemTransactions(ctx context.Context, itemId int) ([]*dto.InventoryTransactionResponse, error) {
	item, err := s.store.Inventory().FindItemByID(ctx, itemId)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, dto.NotFound("inventory item not found")
	}

	txs, err := s.store.Inventory().FindTransactionsByItem(ctx, itemId)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.InventoryTransactionResponse, len(txs))
	for i, t := range txs {
		result[i] = transactionToResponse(t)
	}
	return result, nil
}

// GetTechnicianHoldings nets each item's "out" minus "return" for one user
// and reports the positive balances.
func (s *inventoryService) GetTechnicianHoldings(ctx context.Context, userId int) ([]*dto.TechnicianHolding, error) {
	txs, err := s.store.Inventory().FindTransactionsByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	net := make(map[int]int)
	for _, t := range txs {
		switch t.Type {
		case entity.TransactionTypeOut:
			net[t.InventoryItemId] += t.Quantity
		case entity.TransactionTypeReturn:
			net[t.InventoryItemId] -= t.Quantity
		}
	}

	var holdings []*dto.TechnicianHolding
	for _, t := range txs {
		qty, pending := net[t.InventoryItemId]
		if !pending || qty <= 0 {
			continue
		}
		delete(net, t.InventoryItemId)

		item, err := s.store.Inventory().FindItemByID(ctx, t.InventoryItemId)
		if err != nil {
			return nil, err
		}
		name, sku := "", ""
		if item != nil {
			name, sku = item.Name, item.Sku
		}
		holdings = append(holdings, &dto.TechnicianHolding{
			InventoryItemId: t.InventoryItemId,
			ItemName:        name,
			Sku:             sku,
			Quantity:        qty,
		})
	}
	return holdings, nil
}
