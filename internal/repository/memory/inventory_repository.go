package memory

import (
	"context"
	"sort"
	"sync"

	"detailops-be/internal/entity"
)

type InventoryRepository struct {
	mu         sync.RWMutex
	items      map[int]*entity.InventoryItem
	txs        map[int]*entity.InventoryTransaction
	nextItemId int
	nextTxId   int
}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{
		items:      make(map[int]*entity.InventoryItem),
		txs:        make(map[int]*entity.InventoryTransaction),
		nextItemId: 1,
		nextTxId:   1,
	}
}

func cloneItem(i *entity.InventoryItem) *entity.InventoryItem {
	out := *i
	return &out
}

func cloneInventoryTx(t *entity.InventoryTransaction) *entity.InventoryTransaction {
	out := *t
	return &out
}

func (r *InventoryRepository) CreateItem(ctx context.Context, item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.Id = r.nextItemId
	r.nextItemId++
	r.items[item.Id] = cloneItem(item)
	return nil
}

func (r *InventoryRepository) UpdateItem(ctx context.Context, item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.Id] = cloneItem(item)
	return nil
}

func (r *InventoryRepository) DeleteItem(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *InventoryRepository) FindItemByID(ctx context.Context, id int) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return cloneItem(i), nil
}

func (r *InventoryRepository) FindItemBySku(ctx context.Context, sku string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, i := range r.items {
		if i.Sku != "" && i.Sku == sku {
			return cloneItem(i), nil
		}
	}
	return nil, nil
}

func (r *InventoryRepository) FindAllItems(ctx context.Context, activeOnly bool) ([]*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.InventoryItem
	for _, i := range r.items {
		if activeOnly && !i.IsActive {
			continue
		}
		result = append(result, cloneItem(i))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}

func (r *InventoryRepository) CreateTransaction(ctx context.Context, tx *entity.InventoryTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	tx.Id = r.nextTxId
	r.nextTxId++
	r.txs[tx.Id] = cloneInventoryTx(tx)
	return nil
}

func (r *InventoryRepository) FindTransactionsByItem(ctx context.Context, itemId int) ([]*entity.InventoryTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.InventoryTransaction
	for _, t := range r.txs {
		if t.InventoryItemId == itemId {
			result = append(result, cloneInventoryTx(t))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}

func (r *InventoryRepository) FindTransactionsByUser(ctx context.Context, userId int) ([]*entity.InventoryTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.InventoryTransaction
	for _, t := range r.txs {
		if t.UserId == userId {
			result = append(result, cloneInventoryTx(t))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}

func (r *InventoryRepository) CountTransactionsByItem(ctx context.Context, itemId int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, t := range r.txs {
		if t.InventoryItemId == itemId {
			count++
		}
	}
	return count, nil
}
