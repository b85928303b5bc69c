package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"detailops-be/internal/dto"
	"detailops-be/internal/entity"
	"detailops-be/internal/pkg/logger"
	"detailops-be/internal/repository"
	"detailops-be/pkg/events"
	pkgNats "detailops-be/pkg/nats"
)

type IMembershipService interface {
	CreatePlan(ctx context.Context, req *dto.CreateMembershipPlanRequest) (*dto.MembershipPlanResponse, error)
	UpdatePlan(ctx context.Context, id int, req *dto.UpdateMembershipPlanRequest) (*dto.MembershipPlanResponse, error)
	// DeletePlan refuses when any subscription references the plan.
	DeletePlan(ctx context.Context, id int) (bool, error)
	ShowPlan(ctx context.Context, id int) (*dto.MembershipPlanResponse, error)
	GetAllPlans(ctx context.Context, activeOnly bool) ([]*dto.MembershipPlanResponse, error)

	Subscribe(ctx context.Context, req *dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error)
	CancelSubscription(ctx context.Context, id int) (*dto.SubscriptionResponse, error)
	GetCustomerSubscriptions(ctx context.Context, customerId int) ([]*dto.SubscriptionResponse, error)

	Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	HandleGatewayNotification(ctx context.Context, req *dto.GatewayWebhookRequest) error
}

type MembershipConfig struct {
	GatewayServerKey  string
	GatewayProduction bool
	ClientURL         string
}

type membershipService struct {
	store           repository.Datastore
	activityService IActivityService
	eventPublisher  *pkgNats.Publisher
	cfg             MembershipConfig
	logger          logger.ILogger
}

func NewMembershipService(
	store repository.Datastore,
	activityService IActivityService,
	eventPublisher *pkgNats.Publisher,
	cfg MembershipConfig,
	log logger.ILogger,
) IMembershipService {
	return &membershipService{
		store:           store,
		activityService: activityService,
		eventPublisher:  eventPublisher,
		cfg:             cfg,
		logger:          log,
	}
}

func planToResponse(p *entity.MembershipPlan) *dto.MembershipPlanResponse {
	features := p.Features
	if features == nil {
		features = []string{}
	}
	return &dto.MembershipPlanResponse{
		Id:           p.Id,
		Name:         p.Name,
		Description:  p.Description,
		MonthlyPrice: p.MonthlyPrice,
		AnnualPrice:  p.AnnualPrice,
		Features:     features,
		IsActive:     p.IsActive,
	}
}

func subscriptionToResponse(s *entity.CustomerSubscription) *dto.SubscriptionResponse {
	return &dto.SubscriptionResponse{
		Id:           s.Id,
		CustomerId:   s.CustomerId,
		PlanId:       s.PlanId,
		Status:       string(s.Status),
		BillingCycle: string(s.BillingCycle),
		StartDate:    s.StartDate,
		CanceledAt:   s.CanceledAt,
	}
}

func (s *membershipService) CreatePlan(ctx context.Context, req *dto.CreateMembershipPlanRequest) (*dto.MembershipPlanResponse, error) {
	existing, err := s.store.Memberships().FindPlanByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, dto.Conflict("plan name already exists")
	}

	plan := &entity.MembershipPlan{
		Name:         req.Name,
		Description:  req.Description,
		MonthlyPrice: req.MonthlyPrice,
		AnnualPrice:  req.AnnualPrice,
		Features:     req.Features,
		IsActive:     true,
		CreatedAt:    time.Now(),
	}
	if err := s.store.Memberships().CreatePlan(ctx, plan); err != nil {
		return nil, err
	}
	return planToResponse(plan), nil
}

func (s *membershipService) UpdatePlan(ctx context.Context, id int, req *dto.UpdateMembershipPlanRequest) (*dto.MembershipPlanResponse, error) {
	plan, err := s.store.Memberships().FindPlanByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, nil
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.MonthlyPrice != nil {
		plan.MonthlyPrice = *req.MonthlyPrice
	}
	if req.AnnualPrice != nil {
		plan.AnnualPrice = *req.AnnualPrice
	}
	if req.Features != nil {
		plan.Features = *req.Features
	}
	if req.IsActive != nil {
		plan.IsActive = *req.IsActive
	}

	if err := s.store.Memberships().UpdatePlan(ctx, plan); err != nil {
		return nil, err
	}
	return planToResponse(plan), nil
}

func (s *membershipService) DeletePlan(ctx context.Context, id int) (bool, error) {
	plan, err := s.store.Memberships().FindPlanByID(ctx, id)
	if err != nil {
		return false, err
	}
	if plan == nil {
		return false, nil
	}

	count, err := s.store.Memberships().CountSubscriptionsByPlan(ctx, id)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, dto.Conflict("plan has subscriptions and cannot be deleted")
	}
	return s.store.Memberships().DeletePlan(ctx, id)
}

func (s *membershipService) ShowPlan(ctx context.Context, id int) (*dto.MembershipPlanResponse, error) {
	plan, err := s.store.Memberships().FindPlanByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, nil
	}
	return planToResponse(plan), nil
}

func (s *membershipService) GetAllPlans(ctx context.Context, activeOnly bool) ([]*dto.MembershipPlanResponse, error) {
	plans, err := s.store.Memberships().FindAllPlans(ctx, activeOnly)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.MembershipPlanResponse, len(plans))
	for i, p := range plans {
		result[i] = planToResponse(p)
	}
	return result, nil
}

// activateSubscription enforces the one-active-per-customer rule by
// canceling any prior active subscription before the new one goes live.
func (s *membershipService) activateSubscription(ctx context.Context, sub *entity.CustomerSubscription) error {
	prior, err := s.store.Memberships().FindActiveSubscriptionByCustomer(ctx, sub.CustomerId)
	if err != nil {
		return err
	}
	if prior != nil && prior.Id != sub.Id {
		now := time.Now()
		prior.Status = entity.SubscriptionStatusCanceled
		prior.CanceledAt = &now
		prior.UpdatedAt = now
		if err := s.store.Memberships().UpdateSubscription(ctx, prior); err != nil {
			return err
		}
	}

	sub.Status = entity.SubscriptionStatusActive
	sub.UpdatedAt = time.Now()
	return s.store.Memberships().UpdateSubscription(ctx, sub)
}

func (s *membershipService) Subscribe(ctx context.Context, req *dto.CreateSubscriptionRequest) (*dto.SubscriptionResponse, error) {
	customer, err := s.store.Customers().FindByID(ctx, req.CustomerId)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, dto.BadRequest("customer not found")
	}

	plan, err := s.store.Memberships().FindPlanByID(ctx, req.PlanId)
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsActive {
		return nil, dto.BadRequest("plan not found or inactive")
	}

	now := time.Now()
	sub := &entity.CustomerSubscription{
		CustomerId:   req.CustomerId,
		PlanId:       req.PlanId,
		Status:       entity.SubscriptionStatusPending,
		BillingCycle: entity.BillingCycle(req.BillingCycle),
		StartDate:    now,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.Memberships().CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}
	if err := s.activateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	cid := sub.CustomerId
	_ = s.activityService.Record(ctx, &entity.Activity{
		Type:        entity.ActivitySubscriptionCreated,
		CustomerId:  &cid,
		Description: fmt.Sprintf("%s joined the %s plan", customer.FullName, plan.Name),
	})

	if err := s.eventPublisher.Publish(ctx, events.New(events.TypeSubscriptionActive, map[string]interface{}{
		"subscription_id": sub.Id,
		"customer_id":     sub.CustomerId,
		"plan_id":         sub.PlanId,
	})); err != nil {
		s.logger.Warn("membership", "event publish failed", map[string]interface{}{
			"subscription_id": sub.Id,
			"error":           err.Error(),
		})
	}

	return subscriptionToResponse(sub), nil
}

func (s *membershipService) CancelSubscription(ctx context.Context, id int) (*dto.SubscriptionResponse, error) {
	sub, err := s.store.Memberships().FindSubscriptionByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}
	if sub.Status == entity.SubscriptionStatusCanceled {
		return subscriptionToResponse(sub), nil
	}

	now := time.Now()
	sub.Status = entity.SubscriptionStatusCanceled
	sub.CanceledAt = &now
	sub.UpdatedAt = now
	if err := s.store.Memberships().UpdateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	cid := sub.CustomerId
	_ = s.activityService.Record(ctx, &entity.Activity{
		Type:        entity.ActivitySubscriptionCanceled,
		CustomerId:  &cid,
		Description: fmt.Sprintf("Subscription #%d canceled", sub.Id),
	})

	if err := s.eventPublisher.Publish(ctx, events.New(events.TypeSubscriptionCanceled, map[string]interface{}{
		"subscription_id": sub.Id,
		"customer_id":     sub.CustomerId,
	})); err != nil {
		s.logger.Warn("membership", "event publish failed", map[string]interface{}{
			"subscription_id": sub.Id,
			"error":           err.Error(),
		})
	}

	return subscriptionToResponse(sub), nil
}

func (s *membershipService) GetCustomerSubscriptions(ctx context.Context, customerId int) ([]*dto.SubscriptionResponse, error) {
	subs, err := s.store.Memberships().FindSubscriptionsByCustomer(ctx, customerId)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.SubscriptionResponse, len(subs))
	for i, sub := range subs {
		result[i] = subscriptionToResponse(sub)
	}
	return result, nil
}

// Checkout creates a pending subscription and opens a Snap transaction for
// it. The subscription only activates when the gateway webhook settles.
func (s *membershipService) Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	customer, err := s.store.Customers().FindByID(ctx, req.CustomerId)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, dto.BadRequest("customer not found")
	}

	plan, err := s.store.Memberships().FindPlanByID(ctx, req.PlanId)
	if err != nil {
		return nil, err
	}
	if plan == nil || !plan.IsActive {
		return nil, dto.BadRequest("plan not found or inactive")
	}

	price := plan.MonthlyPrice
	if req.BillingCycle == string(entity.BillingCycleAnnual) {
		price = plan.AnnualPrice
	}

	orderId := fmt.Sprintf("SUB-%s", uuid.NewString())
	now := time.Now()
	sub := &entity.CustomerSubscription{
		CustomerId:     req.CustomerId,
		PlanId:         req.PlanId,
		Status:         entity.SubscriptionStatusPending,
		BillingCycle:   entity.BillingCycle(req.BillingCycle),
		GatewayOrderId: &orderId,
		StartDate:      now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.Memberships().CreateSubscription(ctx, sub); err != nil {
		return nil, err
	}

	env := midtrans.Sandbox
	if s.cfg.GatewayProduction {
		env = midtrans.Production
	}
	var sClient snap.Client
	sClient.New(s.cfg.GatewayServerKey, env)

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderId,
			GrossAmt: int64(price),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		Callbacks: &snap.Callbacks{
			Finish: fmt.Sprintf("%s/memberships?payment=success", s.cfg.ClientURL),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: customer.FullName,
			Email: customer.Email,
			Phone: customer.Phone,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    fmt.Sprintf("plan-%d", plan.Id),
				Price: int64(price),
				Qty:   1,
				Name:  fmt.Sprintf("%s (%s)", plan.Name, req.BillingCycle),
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := sClient.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("payment gateway error: %v", midErr.GetMessage())
	}

	return &dto.CheckoutResponse{
		OrderId:     orderId,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}

func (s *membershipService) HandleGatewayNotification(ctx context.Context, req *dto.GatewayWebhookRequest) error {
	if s.cfg.GatewayServerKey == "" {
		return fmt.Errorf("payment gateway not configured")
	}

	// signature = SHA512(order_id + status_code + gross_amount + server_key)
	signatureInput := req.OrderId + req.StatusCode + req.GrossAmount + s.cfg.GatewayServerKey
	expected := fmt.Sprintf("%x", sha512.Sum512([]byte(signatureInput)))
	if req.SignatureKey != expected {
		s.logger.Warn("membership", "webhook signature mismatch", map[string]interface{}{
			"order_id": req.OrderId,
		})
		return dto.Unauthorized("invalid signature")
	}

	sub, err := s.store.Memberships().FindSubscriptionByOrderId(ctx, req.OrderId)
	if err != nil {
		return err
	}
	if sub == nil {
		return dto.NotFound("subscription not found")
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		if req.FraudStatus == "challenge" || req.FraudStatus == "deny" {
			return nil
		}
		sub.GatewayTransactionId = &req.TransactionId
		if err := s.activateSubscription(ctx, sub); err != nil {
			return err
		}

		cid := sub.CustomerId
		_ = s.activityService.Record(ctx, &entity.Activity{
			Type:        entity.ActivitySubscriptionCreated,
			CustomerId:  &cid,
			Description: fmt.Sprintf("Subscription #%d activated via payment gateway", sub.Id),
		})

		if err := s.eventPublisher.Publish(ctx, events.New(events.TypeSubscriptionActive, map[string]interface{}{
			"subscription_id": sub.Id,
			"customer_id":     sub.CustomerId,
			"order_id":        req.OrderId,
		})); err != nil {
			s.logger.Warn("membership", "event publish failed", map[string]interface{}{
				"subscription_id": sub.Id,
				"error":           err.Error(),
			})
		}

	case "cancel", "deny", "expire", "failure":
		now := time.Now()
		sub.Status = entity.SubscriptionStatusCanceled
		sub.CanceledAt = &now
		sub.UpdatedAt = now
		if err := s.store.Memberships().UpdateSubscription(ctx, sub); err != nil {
			return err
		}
	}

	return nil
}
