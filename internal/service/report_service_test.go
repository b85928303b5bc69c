package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detailops-be/internal/dto"
	"detailops-be/internal/repository"
)

type reportFixture struct {
	store     repository.Datastore
	reports   IReportService
	jobs      IJobService
	billing   IBillingService
	inventory IInventoryService

	customerId int
	vehicleId  int
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	store := newTestStore()
	activity := newTestActivityService(store)
	customerId, vehicleId := seedCustomerWithVehicle(t, store)

	return &reportFixture{
		store:      store,
		reports:    NewReportService(store, activity),
		jobs:       NewJobService(store, activity, noopMailer(), nil, nopLogger{}),
		billing:    NewBillingService(store, activity, noopMailer(), nil, nopLogger{}),
		inventory:  NewInventoryService(store, activity, nil, nopLogger{}),
		customerId: customerId,
		vehicleId:  vehicleId,
	}
}

// completePaidJob books a job for one service, completes it, and pays its
// invoice in full.
func (f *reportFixture) completePaidJob(t *testing.T, serviceId int, qty int, total float64) {
	f.completePaidJobAt(t, serviceId, qty, total, time.Now().Add(time.Hour))
}

// completePaidJobAt is completePaidJob with an explicit scheduled start.
func (f *reportFixture) completePaidJobAt(t *testing.T, serviceId int, qty int, total float64, start time.Time) {
	t.Helper()
	ctx := context.Background()

	job, err := f.jobs.Create(ctx, &dto.CreateJobRequest{
		CustomerId:         f.customerId,
		VehicleId:          f.vehicleId,
		ScheduledStartTime: start,
		ScheduledEndTime:   start.Add(time.Hour),
		Services:           []dto.JobLineItemRequest{{ServiceId: serviceId, Quantity: qty}},
	})
	require.NoError(t, err)

	_, err = f.jobs.UpdateStatus(ctx, job.Id, &dto.UpdateJobStatusRequest{Status: "completed"})
	require.NoError(t, err)

	inv, err := f.billing.CreateInvoice(ctx, &dto.CreateInvoiceRequest{JobId: job.Id, Total: total})
	require.NoError(t, err)
	_, err = f.billing.RecordPayment(ctx, inv.Id, &dto.CreatePaymentRequest{Amount: total, Method: "card"})
	require.NoError(t, err)
}

func TestRevenueStatsEmptyWindow(t *testing.T) {
	f := newReportFixture(t)

	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)
	stats, err := f.reports.GetRevenueStats(context.Background(), start, end)
	require.NoError(t, err)

	assert.Zero(t, stats.TotalRevenue)
	assert.Zero(t, stats.JobsCompleted)
	// No completed jobs must not divide by zero.
	assert.Zero(t, stats.AvgJobValue)
	// The fixture customer was created inside the window.
	assert.Equal(t, 1, stats.NewCustomers)
}

func TestRevenueStatsAggregates(t *testing.T) {
	f := newReportFixture(t)
	washId := seedCatalogService(t, f.store, "Exterior Wash", 49)

	f.completePaidJob(t, washId, 1, 49)
	f.completePaidJob(t, washId, 2, 98)

	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)
	stats, err := f.reports.GetRevenueStats(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, 147.0, stats.TotalRevenue)
	assert.Equal(t, 2, stats.JobsCompleted)
	assert.Equal(t, 73.5, stats.AvgJobValue)
}

func TestRevenueStatsWindowFollowsScheduledStart(t *testing.T) {
	f := newReportFixture(t)
	detailId := seedCatalogService(t, f.store, "Full Detail", 100)

	// Booked two days ago, completed and paid just now.
	scheduled := time.Now().Add(-47 * time.Hour)
	f.completePaidJobAt(t, detailId, 2, 216.5, scheduled)

	start := time.Now().Add(-48 * time.Hour)
	end := time.Now().Add(-46 * time.Hour)
	stats, err := f.reports.GetRevenueStats(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, 216.5, stats.TotalRevenue)
	assert.Equal(t, 1, stats.JobsCompleted)
	assert.Equal(t, 216.5, stats.AvgJobValue)

	top, err := f.reports.GetTopServices(context.Background(), start, end, 5)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, detailId, top[0].ServiceId)
	assert.Equal(t, 200.0, top[0].Revenue)
	assert.Equal(t, 2, top[0].Count)

	// A window around the payment time misses the job: the schedule, not
	// the payment date, decides membership.
	nowStats, err := f.reports.GetRevenueStats(context.Background(), time.Now().Add(-time.Hour), time.Now().Add(time.Hour))
	require.NoError(t, err)
	assert.Zero(t, nowStats.TotalRevenue)
	assert.Zero(t, nowStats.JobsCompleted)
}

func TestTopServicesOrderedByRevenue(t *testing.T) {
	f := newReportFixture(t)
	washId := seedCatalogService(t, f.store, "Exterior Wash", 49)
	detailId := seedCatalogService(t, f.store, "Full Detail", 249)

	f.completePaidJob(t, washId, 3, 147)
	f.completePaidJob(t, detailId, 1, 249)

	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)
	top, err := f.reports.GetTopServices(context.Background(), start, end, 10)
	require.NoError(t, err)
	require.Len(t, top, 2)

	assert.Equal(t, "Full Detail", top[0].ServiceName)
	assert.Equal(t, 249.0, top[0].Revenue)
	assert.Equal(t, "Exterior Wash", top[1].ServiceName)
	assert.Equal(t, 147.0, top[1].Revenue)
	assert.Equal(t, 3, top[1].Count)
}

func TestTopServicesHonorsLimit(t *testing.T) {
	f := newReportFixture(t)
	washId := seedCatalogService(t, f.store, "Exterior Wash", 49)
	detailId := seedCatalogService(t, f.store, "Full Detail", 249)

	f.completePaidJob(t, washId, 1, 49)
	f.completePaidJob(t, detailId, 1, 249)

	start := time.Now().Add(-time.Hour)
	end := time.Now().Add(time.Hour)
	top, err := f.reports.GetTopServices(context.Background(), start, end, 1)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Full Detail", top[0].ServiceName)
}

func TestDashboardCounters(t *testing.T) {
	f := newReportFixture(t)
	ctx := context.Background()
	washId := seedCatalogService(t, f.store, "Exterior Wash", 49)

	f.completePaidJob(t, washId, 1, 49)

	// One unpaid invoice.
	job := seedJob(t, f.store, f.customerId, f.vehicleId, washId)
	_, err := f.billing.CreateInvoice(ctx, &dto.CreateInvoiceRequest{JobId: job.Id, Total: 100})
	require.NoError(t, err)

	// One low-stock item (stock 0, minimum 5).
	_, err = f.inventory.CreateItem(ctx, &dto.CreateInventoryItemRequest{
		Name: "Microfiber Towels", Sku: "TOWEL-12", MinStockLevel: 5,
	})
	require.NoError(t, err)

	dash, err := f.reports.GetDashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 49.0, dash.RevenueThisMonth)
	assert.Equal(t, 1, dash.UnpaidInvoices)
	assert.Equal(t, 1, dash.LowStockItems)
	assert.NotEmpty(t, dash.RecentActivities)
}
