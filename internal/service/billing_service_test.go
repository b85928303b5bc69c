package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detailops-be/internal/dto"
)

func newBillingFixture(t *testing.T) (IBillingService, int) {
	t.Helper()
	store := newTestStore()
	customerId, vehicleId := seedCustomerWithVehicle(t, store)
	serviceId := seedCatalogService(t, store, "Full Detail", 249)
	job := seedJob(t, store, customerId, vehicleId, serviceId)

	billing := NewBillingService(store, newTestActivityService(store), noopMailer(), nil, nopLogger{})
	return billing, job.Id
}

func TestCreateInvoiceAssignsNumber(t *testing.T) {
	billing, jobId := newBillingFixture(t)
	ctx := context.Background()

	inv, err := billing.CreateInvoice(ctx, &dto.CreateInvoiceRequest{
		JobId:    jobId,
		Subtotal: 249,
		Tax:      20,
		Total:    269,
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-000001", inv.InvoiceNumber)
	assert.False(t, inv.Paid)
	assert.Zero(t, inv.PaidAmount)
}

func TestCreateInvoiceUnknownJob(t *testing.T) {
	billing, _ := newBillingFixture(t)

	_, err := billing.CreateInvoice(context.Background(), &dto.CreateInvoiceRequest{
		JobId: 999,
		Total: 100,
	})
	var statusErr *dto.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 400, statusErr.Code)
}

func TestRecordPaymentAccumulatesLedger(t *testing.T) {
	billing, jobId := newBillingFixture(t)
	ctx := context.Background()

	inv, err := billing.CreateInvoice(ctx, &dto.CreateInvoiceRequest{JobId: jobId, Total: 200})
	require.NoError(t, err)

	inv, err = billing.RecordPayment(ctx, inv.Id, &dto.CreatePaymentRequest{Amount: 80, Method: "cash"})
	require.NoError(t, err)
	assert.Equal(t, 80.0, inv.PaidAmount)
	assert.False(t, inv.Paid)
	assert.Nil(t, inv.PaidDate)

	inv, err = billing.RecordPayment(ctx, inv.Id, &dto.CreatePaymentRequest{Amount: 120, Method: "card"})
	require.NoError(t, err)
	assert.Equal(t, 200.0, inv.PaidAmount)
	assert.True(t, inv.Paid)
	require.NotNil(t, inv.PaidDate)

	payments, err := billing.GetPayments(ctx, inv.Id)
	require.NoError(t, err)
	assert.Len(t, payments, 2)
}

func TestPaidAmountIsLedgerSumNotRunningTotal(t *testing.T) {
	billing, jobId := newBillingFixture(t)
	ctx := context.Background()

	inv, err := billing.CreateInvoice(ctx, &dto.CreateInvoiceRequest{JobId: jobId, Total: 300})
	require.NoError(t, err)

	// Three partials; the paid amount must always equal the ledger sum.
	for _, amount := range []float64{100, 100, 100} {
		inv, err = billing.RecordPayment(ctx, inv.Id, &dto.CreatePaymentRequest{Amount: amount, Method: "cash"})
		require.NoError(t, err)
	}
	assert.Equal(t, 300.0, inv.PaidAmount)
	assert.True(t, inv.Paid)
}

func TestPaidInvoiceCannotBeEditedOrDeleted(t *testing.T) {
	billing, jobId := newBillingFixture(t)
	ctx := context.Background()

	inv, err := billing.CreateInvoice(ctx, &dto.CreateInvoiceRequest{JobId: jobId, Total: 50})
	require.NoError(t, err)
	_, err = billing.RecordPayment(ctx, inv.Id, &dto.CreatePaymentRequest{Amount: 50, Method: "cash"})
	require.NoError(t, err)

	newTotal := 75.0
	_, err = billing.UpdateInvoice(ctx, inv.Id, &dto.UpdateInvoiceRequest{Total: &newTotal})
	var statusErr *dto.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 409, statusErr.Code)

	_, err = billing.DeleteInvoice(ctx, inv.Id)
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 409, statusErr.Code)
}

func TestLoweringTotalBelowLedgerMarksPaid(t *testing.T) {
	billing, jobId := newBillingFixture(t)
	ctx := context.Background()

	inv, err := billing.CreateInvoice(ctx, &dto.CreateInvoiceRequest{JobId: jobId, Total: 500})
	require.NoError(t, err)
	inv, err = billing.RecordPayment(ctx, inv.Id, &dto.CreatePaymentRequest{Amount: 200, Method: "transfer"})
	require.NoError(t, err)
	assert.False(t, inv.Paid)

	newTotal := 200.0
	inv, err = billing.UpdateInvoice(ctx, inv.Id, &dto.UpdateInvoiceRequest{Total: &newTotal})
	require.NoError(t, err)
	assert.True(t, inv.Paid)
	assert.Equal(t, 200.0, inv.PaidAmount)
}
