package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"detailops-be/internal/entity"
	"detailops-be/internal/mapper"
	"detailops-be/internal/model"
	"detailops-be/internal/repository/contract"
)

type InventoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.InventoryMapper
}

func NewInventoryRepository(db *gorm.DB) contract.InventoryRepository {
	return &InventoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewInventoryMapper(),
	}
}

func (r *InventoryRepositoryImpl) CreateItem(ctx context.Context, item *entity.InventoryItem) error {
	m := r.mapper.ItemToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ItemToEntity(m)
	return nil
}

func (r *InventoryRepositoryImpl) UpdateItem(ctx context.Context, item *entity.InventoryItem) error {
	m := r.mapper.ItemToModel(item)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ItemToEntity(m)
	return nil
}

func (r *InventoryRepositoryImpl) DeleteItem(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.InventoryItem{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *InventoryRepositoryImpl) FindItemByID(ctx context.Context, id int) (*entity.InventoryItem, error) {
	var m model.InventoryItem
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ItemToEntity(&m), nil
}

func (r *InventoryRepositoryImpl) FindItemBySku(ctx context.Context, sku string) (*entity.InventoryItem, error) {
	var m model.InventoryItem
	if err := r.db.WithContext(ctx).Where("sku = ?", sku).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ItemToEntity(&m), nil
}

func (r *InventoryRepositoryImpl) FindAllItems(ctx context.Context, activeOnly bool) ([]*entity.InventoryItem, error) {
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var models []*model.InventoryItem
	if err := query.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ItemsToEntities(models), nil
}

func (r *InventoryRepositoryImpl) CreateTransaction(ctx context.Context, tx *entity.InventoryTransaction) error {
	m := r.mapper.TransactionToModel(tx)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*tx = *r.mapper.TransactionToEntity(m)
	return nil
}

func (r *InventoryRepositoryImpl) FindTransactionsByItem(ctx context.Context, itemId int) ([]*entity.InventoryTransaction, error) {
	var models []*model.InventoryTransaction
	if err := r.db.WithContext(ctx).Where("inventory_item_id = ?", itemId).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.TransactionsToEntities(models), nil
}

func (r *InventoryRepositoryImpl) FindTransactionsByUser(ctx context.Context, userId int) ([]*entity.InventoryTransaction, error) {
	var models []*model.InventoryTransaction
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.TransactionsToEntities(models), nil
}

func (r *InventoryRepositoryImpl) CountTransactionsByItem(ctx context.Context, itemId int) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.InventoryTransaction{}).
		Where("inventory_item_id = ?", itemId).
		Count(&count).Error
	return int(count), err
}
