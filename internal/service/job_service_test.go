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

func newJobFixture(t *testing.T) (IJobService, repository.Datastore, int, int, int) {
	t.Helper()
	store := newTestStore()
	customerId, vehicleId := seedCustomerWithVehicle(t, store)
	serviceId := seedCatalogService(t, store, "Interior Detail", 149)

	jobs := NewJobService(store, newTestActivityService(store), noopMailer(), nil, nopLogger{})
	return jobs, store, customerId, vehicleId, serviceId
}

func TestCreateJobSnapshotsPrices(t *testing.T) {
	jobs, store, customerId, vehicleId, serviceId := newJobFixture(t)
	ctx := context.Background()

	start := time.Now().Add(48 * time.Hour)
	job, err := jobs.Create(ctx, &dto.CreateJobRequest{
		CustomerId:         customerId,
		VehicleId:          vehicleId,
		ScheduledStartTime: start,
		ScheduledEndTime:   start.Add(2 * time.Hour),
		Services:           []dto.JobLineItemRequest{{ServiceId: serviceId, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "scheduled", job.Status)
	require.Len(t, job.Services, 1)
	assert.Equal(t, 149.0, job.Services[0].Price)

	// Raising the catalog price later must not touch the booked line.
	catalog := NewCatalogService(store)
	newPrice := 199.0
	_, err = catalog.Update(ctx, serviceId, &dto.UpdateServiceRequest{Price: &newPrice})
	require.NoError(t, err)

	job, err = jobs.Show(ctx, job.Id)
	require.NoError(t, err)
	assert.Equal(t, 149.0, job.Services[0].Price)
}

func TestCreateJobRejectsForeignVehicle(t *testing.T) {
	jobs, store, customerId, _, serviceId := newJobFixture(t)
	ctx := context.Background()

	otherId, otherVehicleId := seedCustomerWithVehicle(t, store)
	require.NotEqual(t, customerId, otherId)

	start := time.Now().Add(time.Hour)
	_, err := jobs.Create(ctx, &dto.CreateJobRequest{
		CustomerId:         customerId,
		VehicleId:          otherVehicleId,
		ScheduledStartTime: start,
		ScheduledEndTime:   start.Add(time.Hour),
		Services:           []dto.JobLineItemRequest{{ServiceId: serviceId, Quantity: 1}},
	})
	var statusErr *dto.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 400, statusErr.Code)
}

func TestStatusTransitionTimestamps(t *testing.T) {
	jobs, store, customerId, vehicleId, serviceId := newJobFixture(t)
	ctx := context.Background()
	job := seedJob(t, store, customerId, vehicleId, serviceId)

	job, err := jobs.UpdateStatus(ctx, job.Id, &dto.UpdateJobStatusRequest{Status: "in_progress"})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", job.Status)
	require.NotNil(t, job.ActualStartTime)
	assert.Nil(t, job.ActualEndTime)

	job, err = jobs.UpdateStatus(ctx, job.Id, &dto.UpdateJobStatusRequest{Status: "completed"})
	require.NoError(t, err)
	require.NotNil(t, job.ActualEndTime)
}

func TestCompletingSkippedJobBackfillsStart(t *testing.T) {
	jobs, store, customerId, vehicleId, serviceId := newJobFixture(t)
	ctx := context.Background()
	job := seedJob(t, store, customerId, vehicleId, serviceId)

	// Straight to completed without in_progress.
	job, err := jobs.UpdateStatus(ctx, job.Id, &dto.UpdateJobStatusRequest{Status: "completed"})
	require.NoError(t, err)
	require.NotNil(t, job.ActualStartTime)
	require.NotNil(t, job.ActualEndTime)
}

func TestTerminalJobRefusesChanges(t *testing.T) {
	jobs, store, customerId, vehicleId, serviceId := newJobFixture(t)
	ctx := context.Background()
	job := seedJob(t, store, customerId, vehicleId, serviceId)

	_, err := jobs.UpdateStatus(ctx, job.Id, &dto.UpdateJobStatusRequest{Status: "cancelled"})
	require.NoError(t, err)

	var statusErr *dto.StatusError
	_, err = jobs.UpdateStatus(ctx, job.Id, &dto.UpdateJobStatusRequest{Status: "in_progress"})
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 409, statusErr.Code)

	notes := "late edit"
	_, err = jobs.Update(ctx, job.Id, &dto.UpdateJobRequest{Notes: &notes})
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 409, statusErr.Code)
}

func TestSameStatusIsNoOp(t *testing.T) {
	jobs, store, customerId, vehicleId, serviceId := newJobFixture(t)
	ctx := context.Background()
	job := seedJob(t, store, customerId, vehicleId, serviceId)

	res, err := jobs.UpdateStatus(ctx, job.Id, &dto.UpdateJobStatusRequest{Status: "scheduled"})
	require.NoError(t, err)
	assert.Equal(t, "scheduled", res.Status)
	assert.Nil(t, res.ActualStartTime)
}

func TestUpdateReplacesLineItemsWholesale(t *testing.T) {
	jobs, store, customerId, vehicleId, serviceId := newJobFixture(t)
	ctx := context.Background()
	job := seedJob(t, store, customerId, vehicleId, serviceId)

	waxId := seedCatalogService(t, store, "Wax Finish", 79)
	newLines := []dto.JobLineItemRequest{{ServiceId: waxId, Quantity: 1}}
	updated, err := jobs.Update(ctx, job.Id, &dto.UpdateJobRequest{Services: &newLines})
	require.NoError(t, err)
	require.Len(t, updated.Services, 1)
	assert.Equal(t, waxId, updated.Services[0].ServiceId)
	assert.Equal(t, 79.0, updated.Services[0].Price)
}
