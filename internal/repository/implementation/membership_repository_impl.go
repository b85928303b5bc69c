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

type MembershipRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MembershipMapper
}

func NewMembershipRepository(db *gorm.DB) contract.MembershipRepository {
	return &MembershipRepositoryImpl{
		db:     db,
		mapper: mapper.NewMembershipMapper(),
	}
}

func (r *MembershipRepositoryImpl) CreatePlan(ctx context.Context, plan *entity.MembershipPlan) error {
	m := r.mapper.PlanToModel(plan)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*plan = *r.mapper.PlanToEntity(m)
	return nil
}

func (r *MembershipRepositoryImpl) UpdatePlan(ctx context.Context, plan *entity.MembershipPlan) error {
	m := r.mapper.PlanToModel(plan)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*plan = *r.mapper.PlanToEntity(m)
	return nil
}

func (r *MembershipRepositoryImpl) DeletePlan(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.MembershipPlan{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *MembershipRepositoryImpl) FindPlanByID(ctx context.Context, id int) (*entity.MembershipPlan, error) {
	var m model.MembershipPlan
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PlanToEntity(&m), nil
}

func (r *MembershipRepositoryImpl) FindPlanByName(ctx context.Context, name string) (*entity.MembershipPlan, error) {
	var m model.MembershipPlan
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.PlanToEntity(&m), nil
}

func (r *MembershipRepositoryImpl) FindAllPlans(ctx context.Context, activeOnly bool) ([]*entity.MembershipPlan, error) {
	query := r.db.WithContext(ctx)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var models []*model.MembershipPlan
	if err := query.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.PlansToEntities(models), nil
}

func (r *MembershipRepositoryImpl) CountSubscriptionsByPlan(ctx context.Context, planId int) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.CustomerSubscription{}).
		Where("plan_id = ?", planId).
		Count(&count).Error
	return int(count), err
}

func (r *MembershipRepositoryImpl) CreateSubscription(ctx context.Context, sub *entity.CustomerSubscription) error {
	m := r.mapper.SubscriptionToModel(sub)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*sub = *r.mapper.SubscriptionToEntity(m)
	return nil
}

func (r *MembershipRepositoryImpl) UpdateSubscription(ctx context.Context, sub *entity.CustomerSubscription) error {
	m := r.mapper.SubscriptionToModel(sub)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*sub = *r.mapper.SubscriptionToEntity(m)
	return nil
}

func (r *MembershipRepositoryImpl) FindSubscriptionByID(ctx context.Context, id int) (*entity.CustomerSubscription, error) {
	var m model.CustomerSubscription
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SubscriptionToEntity(&m), nil
}

func (r *MembershipRepositoryImpl) FindActiveSubscriptionByCustomer(ctx context.Context, customerId int) (*entity.CustomerSubscription, error) {
	var m model.CustomerSubscription
	err := r.db.WithContext(ctx).
		Where("customer_id = ? AND status = ?", customerId, string(entity.SubscriptionStatusActive)).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SubscriptionToEntity(&m), nil
}

func (r *MembershipRepositoryImpl) FindSubscriptionsByCustomer(ctx context.Context, customerId int) ([]*entity.CustomerSubscription, error) {
	var models []*model.CustomerSubscription
	if err := r.db.WithContext(ctx).Where("customer_id = ?", customerId).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.SubscriptionsToEntities(models), nil
}

func (r *MembershipRepositoryImpl) FindSubscriptionByOrderId(ctx context.Context, orderId string) (*entity.CustomerSubscription, error) {
	var m model.CustomerSubscription
	if err := r.db.WithContext(ctx).Where("gateway_order_id = ?", orderId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SubscriptionToEntity(&m), nil
}
