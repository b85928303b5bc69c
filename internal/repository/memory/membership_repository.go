package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"detailops-be/internal/entity"
)

type MembershipRepository struct {
	mu         sync.RWMutex
	plans      map[int]*entity.MembershipPlan
	subs       map[int]*entity.CustomerSubscription
	nextPlanId int
	nextSubId  int
}

func NewMembershipRepository() *MembershipRepository {
	return &MembershipRepository{
		plans:      make(map[int]*entity.MembershipPlan),
		subs:       make(map[int]*entity.CustomerSubscription),
		nextPlanId: 1,
		nextSubId:  1,
	}
}

func clonePlan(p *entity.MembershipPlan) *entity.MembershipPlan {
	out := *p
	if p.Features != nil {
		out.Features = append([]string(nil), p.Features...)
	}
	return &out
}

func cloneSubscription(s *entity.CustomerSubscription) *entity.CustomerSubscription {
	out := *s
	return &out
}

func (r *MembershipRepository) CreatePlan(ctx context.Context, plan *entity.MembershipPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	plan.Id = r.nextPlanId
	r.nextPlanId++
	r.plans[plan.Id] = clonePlan(plan)
	return nil
}

func (r *MembershipRepository) UpdatePlan(ctx context.Context, plan *entity.MembershipPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[plan.Id] = clonePlan(plan)
	return nil
}

func (r *MembershipRepository) DeletePlan(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[id]; !ok {
		return false, nil
	}
	delete(r.plans, id)
	return true, nil
}

func (r *MembershipRepository) FindPlanByID(ctx context.Context, id int) (*entity.MembershipPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.plans[id]
	if !ok {
		return nil, nil
	}
	return clonePlan(p), nil
}

func (r *MembershipRepository) FindPlanByName(ctx context.Context, name string) (*entity.MembershipPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.plans {
		if strings.EqualFold(p.Name, name) {
			return clonePlan(p), nil
		}
	}
	return nil, nil
}

func (r *MembershipRepository) FindAllPlans(ctx context.Context, activeOnly bool) ([]*entity.MembershipPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.MembershipPlan
	for _, p := range r.plans {
		if activeOnly && !p.IsActive {
			continue
		}
		result = append(result, clonePlan(p))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}

func (r *MembershipRepository) CountSubscriptionsByPlan(ctx context.Context, planId int) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, s := range r.subs {
		if s.PlanId == planId {
			count++
		}
	}
	return count, nil
}

func (r *MembershipRepository) CreateSubscription(ctx context.Context, sub *entity.CustomerSubscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	sub.Id = r.nextSubId
	r.nextSubId++
	r.subs[sub.Id] = cloneSubscription(sub)
	return nil
}

func (r *MembershipRepository) UpdateSubscription(ctx context.Context, sub *entity.CustomerSubscription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.subs[sub.Id] = cloneSubscription(sub)
	return nil
}

func (r *MembershipRepository) FindSubscriptionByID(ctx context.Context, id int) (*entity.CustomerSubscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.subs[id]
	if !ok {
		return nil, nil
	}
	return cloneSubscription(s), nil
}

func (r *MembershipRepository) FindActiveSubscriptionByCustomer(ctx context.Context, customerId int) (*entity.CustomerSubscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.subs {
		if s.CustomerId == customerId && s.Status == entity.SubscriptionStatusActive {
			return cloneSubscription(s), nil
		}
	}
	return nil, nil
}

func (r *MembershipRepository) FindSubscriptionsByCustomer(ctx context.Context, customerId int) ([]*entity.CustomerSubscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.CustomerSubscription
	for _, s := range r.subs {
		if s.CustomerId == customerId {
			result = append(result, cloneSubscription(s))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}

func (r *MembershipRepository) FindSubscriptionByOrderId(ctx context.Context, orderId string) (*entity.CustomerSubscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, s := range r.subs {
		if s.GatewayOrderId != nil && *s.GatewayOrderId == orderId {
			return cloneSubscription(s), nil
		}
	}
	return nil, nil
}
