package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"detailops-be/internal/dto"
	"detailops-be/internal/pkg/logger"
	"detailops-be/internal/pkg/mailer"
	"detailops-be/internal/repository"
	"detailops-be/internal/repository/memory"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}
func (nopLogger) GetLogById(id string) (*logger.LogEntry, error) { return nil, nil }

func newTestStore() repository.Datastore {
	return memory.NewDatastore()
}

func noopMailer() mailer.IEmailService {
	return &mailer.NoopEmailService{}
}

func newTestActivityService(store repository.Datastore) IActivityService {
	return NewActivityService(store, nil, nopLogger{})
}

func seedCustomerWithVehicle(t *testing.T, store repository.Datastore) (customerId, vehicleId int) {
	t.Helper()
	ctx := context.Background()

	customers := NewCustomerService(store, newTestActivityService(store))
	customer, err := customers.Create(ctx, &dto.CreateCustomerRequest{
		FullName: "Dana Whitfield",
		Email:    "dana@example.com",
		Phone:    "555-0142",
	})
	require.NoError(t, err)

	vehicle, err := customers.AddVehicle(ctx, customer.Id, &dto.CreateVehicleRequest{
		Make:  "Subaru",
		Model: "Outback",
		Year:  2021,
	})
	require.NoError(t, err)

	return customer.Id, vehicle.Id
}

func seedCatalogService(t *testing.T, store repository.Datastore, name string, price float64) int {
	t.Helper()
	ctx := context.Background()

	catalog := NewCatalogService(store)
	svc, err := catalog.Create(ctx, &dto.CreateServiceRequest{
		Name:            name,
		Price:           price,
		DurationMinutes: 60,
	})
	require.NoError(t, err)
	return svc.Id
}

func seedJob(t *testing.T, store repository.Datastore, customerId, vehicleId, serviceId int) *dto.JobResponse {
	t.Helper()
	ctx := context.Background()

	jobs := NewJobService(store, newTestActivityService(store), noopMailer(), nil, nopLogger{})
	start := time.Now().Add(24 * time.Hour)
	job, err := jobs.Create(ctx, &dto.CreateJobRequest{
		CustomerId:         customerId,
		VehicleId:          vehicleId,
		ScheduledStartTime: start,
		ScheduledEndTime:   start.Add(2 * time.Hour),
		Services:           []dto.JobLineItemRequest{{ServiceId: serviceId, Quantity: 1}},
	})
	require.NoError(t, err)
	return job
}
