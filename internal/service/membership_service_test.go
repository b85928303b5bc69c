package service

import (
	"context"
	"crypto/sha512"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detailops-be/internal/dto"
	"detailops-be/internal/entity"
	"detailops-be/internal/repository"
)

const testGatewayKey = "SB-Mid-server-testkey"

func newMembershipFixture(t *testing.T) (IMembershipService, repository.Datastore, int, int) {
	t.Helper()
	store := newTestStore()
	customerId, _ := seedCustomerWithVehicle(t, store)

	memberships := NewMembershipService(store, newTestActivityService(store), nil, MembershipConfig{
		GatewayServerKey: testGatewayKey,
		ClientURL:        "http://localhost:5173",
	}, nopLogger{})

	plan, err := memberships.CreatePlan(context.Background(), &dto.CreateMembershipPlanRequest{
		Name:         "Gold",
		MonthlyPrice: 59,
		AnnualPrice:  590,
		Features:     []string{"monthly exterior wash", "priority booking"},
	})
	require.NoError(t, err)

	return memberships, store, customerId, plan.Id
}

func TestCreatePlanRejectsDuplicateName(t *testing.T) {
	memberships, _, _, _ := newMembershipFixture(t)

	_, err := memberships.CreatePlan(context.Background(), &dto.CreateMembershipPlanRequest{
		Name:         "Gold",
		MonthlyPrice: 99,
		AnnualPrice:  990,
	})
	var statusErr *dto.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 409, statusErr.Code)
}

func TestSubscribeCancelsPriorActive(t *testing.T) {
	memberships, _, customerId, planId := newMembershipFixture(t)
	ctx := context.Background()

	first, err := memberships.Subscribe(ctx, &dto.CreateSubscriptionRequest{
		CustomerId:   customerId,
		PlanId:       planId,
		BillingCycle: "monthly",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", first.Status)

	second, err := memberships.Subscribe(ctx, &dto.CreateSubscriptionRequest{
		CustomerId:   customerId,
		PlanId:       planId,
		BillingCycle: "annual",
	})
	require.NoError(t, err)
	assert.Equal(t, "active", second.Status)

	subs, err := memberships.GetCustomerSubscriptions(ctx, customerId)
	require.NoError(t, err)
	require.Len(t, subs, 2)

	var active, canceled int
	for _, sub := range subs {
		switch sub.Status {
		case "active":
			active++
		case "canceled":
			canceled++
			assert.NotNil(t, sub.CanceledAt)
		}
	}
	assert.Equal(t, 1, active)
	assert.Equal(t, 1, canceled)
}

func TestCancelSubscriptionSetsTimestamp(t *testing.T) {
	memberships, _, customerId, planId := newMembershipFixture(t)
	ctx := context.Background()

	sub, err := memberships.Subscribe(ctx, &dto.CreateSubscriptionRequest{
		CustomerId:   customerId,
		PlanId:       planId,
		BillingCycle: "monthly",
	})
	require.NoError(t, err)

	canceled, err := memberships.CancelSubscription(ctx, sub.Id)
	require.NoError(t, err)
	assert.Equal(t, "canceled", canceled.Status)
	require.NotNil(t, canceled.CanceledAt)

	// Canceling again is a no-op, not an error.
	again, err := memberships.CancelSubscription(ctx, sub.Id)
	require.NoError(t, err)
	assert.Equal(t, canceled.CanceledAt, again.CanceledAt)
}

func TestDeletePlanRefusedWhenSubscribed(t *testing.T) {
	memberships, _, customerId, planId := newMembershipFixture(t)
	ctx := context.Background()

	_, err := memberships.Subscribe(ctx, &dto.CreateSubscriptionRequest{
		CustomerId:   customerId,
		PlanId:       planId,
		BillingCycle: "monthly",
	})
	require.NoError(t, err)

	_, err = memberships.DeletePlan(ctx, planId)
	var statusErr *dto.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 409, statusErr.Code)

	// Fresh plan with no subscribers deletes fine.
	fresh, err := memberships.CreatePlan(ctx, &dto.CreateMembershipPlanRequest{
		Name:         "Silver",
		MonthlyPrice: 29,
		AnnualPrice:  290,
	})
	require.NoError(t, err)
	deleted, err := memberships.DeletePlan(ctx, fresh.Id)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func gatewaySignature(orderId, statusCode, grossAmount string) string {
	return fmt.Sprintf("%x", sha512.Sum512([]byte(orderId+statusCode+grossAmount+testGatewayKey)))
}

func seedPendingGatewaySubscription(t *testing.T, store repository.Datastore, customerId, planId int, orderId string) *entity.CustomerSubscription {
	t.Helper()
	now := time.Now()
	sub := &entity.CustomerSubscription{
		CustomerId:     customerId,
		PlanId:         planId,
		Status:         entity.SubscriptionStatusPending,
		BillingCycle:   entity.BillingCycleMonthly,
		GatewayOrderId: &orderId,
		StartDate:      now,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	require.NoError(t, store.Memberships().CreateSubscription(context.Background(), sub))
	return sub
}

func TestWebhookSettlementActivatesSubscription(t *testing.T) {
	memberships, store, customerId, planId := newMembershipFixture(t)
	ctx := context.Background()

	orderId := "SUB-test-order-1"
	sub := seedPendingGatewaySubscription(t, store, customerId, planId, orderId)

	err := memberships.HandleGatewayNotification(ctx, &dto.GatewayWebhookRequest{
		OrderId:           orderId,
		TransactionId:     "mt-123",
		TransactionStatus: "settlement",
		StatusCode:        "200",
		GrossAmount:       "59.00",
		SignatureKey:      gatewaySignature(orderId, "200", "59.00"),
	})
	require.NoError(t, err)

	stored, err := store.Memberships().FindSubscriptionByID(ctx, sub.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusActive, stored.Status)
	require.NotNil(t, stored.GatewayTransactionId)
	assert.Equal(t, "mt-123", *stored.GatewayTransactionId)
}

func TestWebhookRejectsBadSignature(t *testing.T) {
	memberships, store, customerId, planId := newMembershipFixture(t)
	ctx := context.Background()

	orderId := "SUB-test-order-2"
	sub := seedPendingGatewaySubscription(t, store, customerId, planId, orderId)

	err := memberships.HandleGatewayNotification(ctx, &dto.GatewayWebhookRequest{
		OrderId:           orderId,
		TransactionStatus: "settlement",
		StatusCode:        "200",
		GrossAmount:       "59.00",
		SignatureKey:      "forged",
	})
	var statusErr *dto.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 401, statusErr.Code)

	stored, err := store.Memberships().FindSubscriptionByID(ctx, sub.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusPending, stored.Status)
}

func TestWebhookExpireCancelsSubscription(t *testing.T) {
	memberships, store, customerId, planId := newMembershipFixture(t)
	ctx := context.Background()

	orderId := "SUB-test-order-3"
	sub := seedPendingGatewaySubscription(t, store, customerId, planId, orderId)

	err := memberships.HandleGatewayNotification(ctx, &dto.GatewayWebhookRequest{
		OrderId:           orderId,
		TransactionStatus: "expire",
		StatusCode:        "407",
		GrossAmount:       "59.00",
		SignatureKey:      gatewaySignature(orderId, "407", "59.00"),
	})
	require.NoError(t, err)

	stored, err := store.Memberships().FindSubscriptionByID(ctx, sub.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.SubscriptionStatusCanceled, stored.Status)
	assert.NotNil(t, stored.CanceledAt)
}
