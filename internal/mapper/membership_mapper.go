package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"detailops-be/internal/entity"
	"detailops-be/internal/model"
)

type MembershipMapper struct{}

func NewMembershipMapper() *MembershipMapper {
	return &MembershipMapper{}
}

func (m *MembershipMapper) PlanToEntity(p *model.MembershipPlan) *entity.MembershipPlan {
	if p == nil {
		return nil
	}

	var features []string
	if len(p.Features) > 0 {
		_ = json.Unmarshal(p.Features, &features)
	}

	return &entity.MembershipPlan{
		Id:           p.Id,
		Name:         p.Name,
		Description:  p.Description,
		MonthlyPrice: p.MonthlyPrice,
		AnnualPrice:  p.AnnualPrice,
		Features:     features,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
	}
}

func (m *MembershipMapper) PlanToModel(p *entity.MembershipPlan) *model.MembershipPlan {
	if p == nil {
		return nil
	}

	var features datatypes.JSON
	if p.Features != nil {
		raw, _ := json.Marshal(p.Features)
		features = datatypes.JSON(raw)
	}

	return &model.MembershipPlan{
		Id:           p.Id,
		Name:         p.Name,
		Description:  p.Description,
		MonthlyPrice: p.MonthlyPrice,
		AnnualPrice:  p.AnnualPrice,
		Features:     features,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
	}
}

func (m *MembershipMapper) PlansToEntities(plans []*model.MembershipPlan) []*entity.MembershipPlan {
	entities := make([]*entity.MembershipPlan, len(plans))
	for i, p := range plans {
		entities[i] = m.PlanToEntity(p)
	}
	return entities
}

func (m *MembershipMapper) SubscriptionToEntity(s *model.CustomerSubscription) *entity.CustomerSubscription {
	if s == nil {
		return nil
	}
	return &entity.CustomerSubscription{
		Id:                   s.Id,
		CustomerId:           s.CustomerId,
		PlanId:               s.PlanId,
		Status:               entity.SubscriptionStatus(s.Status),
		BillingCycle:         entity.BillingCycle(s.BillingCycle),
		GatewayOrderId:       s.GatewayOrderId,
		GatewayTransactionId: s.GatewayTransactionId,
		StartDate:            s.StartDate,
		CanceledAt:           s.CanceledAt,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func (m *MembershipMapper) SubscriptionToModel(s *entity.CustomerSubscription) *model.CustomerSubscription {
	if s == nil {
		return nil
	}
	return &model.CustomerSubscription{
		Id:                   s.Id,
		CustomerId:           s.CustomerId,
		PlanId:               s.PlanId,
		Status:               string(s.Status),
		BillingCycle:         string(s.BillingCycle),
		GatewayOrderId:       s.GatewayOrderId,
		GatewayTransactionId: s.GatewayTransactionId,
		StartDate:            s.StartDate,
		CanceledAt:           s.CanceledAt,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}

func (m *MembershipMapper) SubscriptionsToEntities(subs []*model.CustomerSubscription) []*entity.CustomerSubscription {
	entities := make([]*entity.CustomerSubscription, len(subs))
	for i, s := range subs {
		entities[i] = m.SubscriptionToEntity(s)
	}
	return entities
}
