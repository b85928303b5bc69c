package contract

import (
	"context"

	"detailops-be/internal/entity"
)

type MembershipRepository interface {
	CreatePlan(ctx context.Context, plan *entity.MembershipPlan) error
	UpdatePlan(ctx context.Context, plan *entity.MembershipPlan) error
	DeletePlan(ctx context.Context, id int) (bool, error)
	FindPlanByID(ctx context.Context, id int) (*entity.MembershipPlan, error)
	FindPlanByName(ctx context.Context, name string) (*entity.MembershipPlan, error)
	FindAllPlans(ctx context.Context, activeOnly bool) ([]*entity.MembershipPlan, error)
	CountSubscriptionsByPlan(ctx context.Context, planId int) (int, error)

	CreateSubscription(ctx context.Context, sub *entity.CustomerSubscription) error
	UpdateSubscription(ctx context.Context, sub *entity.CustomerSubscription) error
	FindSubscriptionByID(ctx context.Context, id int) (*entity.CustomerSubscription, error)
	FindActiveSubscriptionByCustomer(ctx context.Context, customerId int) (*entity.CustomerSubscription, error)
	FindSubscriptionsByCustomer(ctx context.Context, customerId int) ([]*entity.CustomerSubscription, error)
	FindSubscriptionByOrderId(ctx context.Context, orderId string) (*entity.CustomerSubscription, error)
}
