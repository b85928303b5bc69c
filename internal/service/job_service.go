package service

import (
	"context"
	"fmt"
	"time"

	"detailops-be/internal/dto"
	"detailops-be/internal/entity"
	"detailops-be/internal/pkg/logger"
	"detailops-be/internal/pkg/mailer"
	"detailops-be/internal/repository"
	"detailops-be/internal/repository/contract"
	"detailops-be/pkg/events"
	pkgNats "detailops-be/pkg/nats"
)

type IJobService interface {
	Create(ctx context.Context, req *dto.CreateJobRequest) (*dto.JobResponse, error)
	Update(ctx context.Context, id int, req *dto.UpdateJobRequest) (*dto.JobResponse, error)
	UpdateStatus(ctx context.Context, id int, req *dto.UpdateJobStatusRequest) (*dto.JobResponse, error)
	Delete(ctx context.Context, id int) (bool, error)
	Show(ctx context.Context, id int) (*dto.JobResponse, error)
	GetAll(ctx context.Context, filter contract.JobFilter) ([]*dto.JobResponse, error)
}

type jobService struct {
	store           repository.Datastore
	activityService IActivityService
	emailService    mailer.IEmailService
	eventPublisher  *pkgNats.Publisher
	logger          logger.ILogger
}

func NewJobService(
	store repository.Datastore,
	activityService IActivityService,
	emailService mailer.IEmailService,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IJobService {
	return &jobService{
		store:           store,
		activityService: activityService,
		emailService:    emailService,
		eventPublisher:  eventPublisher,
		logger:          log,
	}
}

func jobToResponse(j *entity.Job, items []*entity.JobService) *dto.JobResponse {
	lines := make([]dto.JobLineItemResponse, len(items))
	for i, item := range items {
		lines[i] = dto.JobLineItemResponse{
			Id:        item.Id,
			ServiceId: item.ServiceId,
			Quantity:  item.Quantity,
			Price:     item.Price,
		}
	}
	return &dto.JobResponse{
		Id:                 j.Id,
		CustomerId:         j.CustomerId,
		VehicleId:          j.VehicleId,
		TechnicianId:       j.TechnicianId,
		Status:             string(j.Status),
		ScheduledStartTime: j.ScheduledStartTime,
		ScheduledEndTime:   j.ScheduledEndTime,
		ActualStartTime:    j.ActualStartTime,
		ActualEndTime:      j.ActualEndTime,
		Address:            j.Address,
		City:               j.City,
		State:              j.State,
		ZipCode:            j.ZipCode,
		Notes:              j.Notes,
		Services:           lines,
		CreatedAt:          j.CreatedAt,
	}
}

// buildLineItems snapshots the current catalog price into each line item so
// later price edits never change what was booked.
func (s *jobService) buildLineItems(ctx context.Context, reqs []dto.JobLineItemRequest) ([]*entity.JobService, error) {
	items := make([]*entity.JobService, 0, len(reqs))
	for _, r := range reqs {
		svc, err := s.store.Catalog().FindByID(ctx, r.ServiceId)
		if err != nil {
			return nil, err
		}
		if svc == nil {
			return nil, dto.BadRequest(fmt.Sprintf("service %d not found", r.ServiceId))
		}
		items = append(items, &entity.JobService{
			ServiceId: svc.Id,
			Quantity:  r.Quantity,
			Price:     svc.Price,
		})
	}
	return items, nil
}

func (s *jobService) Create(ctx context.Context, req *dto.CreateJobRequest) (*dto.JobResponse, error) {
	customer, err := s.store.Customers().FindByID(ctx, req.CustomerId)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, dto.BadRequest("customer not found")
	}

	vehicle, err := s.store.Customers().FindVehicleByID(ctx, req.VehicleId)
	if err != nil {
		return nil, err
	}
	if vehicle == nil || vehicle.CustomerId != req.CustomerId {
		return nil, dto.BadRequest("vehicle not found for customer")
	}

	items, err := s.buildLineItems(ctx, req.Services)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	job := &entity.Job{
		CustomerId:         req.CustomerId,
		VehicleId:          req.VehicleId,
		TechnicianId:       req.TechnicianId,
		Status:             entity.JobStatusScheduled,
		ScheduledStartTime: req.ScheduledStartTime,
		ScheduledEndTime:   req.ScheduledEndTime,
		Address:            req.Address,
		City:               req.City,
		State:              req.State,
		ZipCode:            req.ZipCode,
		Notes:              req.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.store.Jobs().Create(ctx, job); err != nil {
		return nil, err
	}
	if err := s.store.Jobs().ReplaceServices(ctx, job.Id, items); err != nil {
		return nil, err
	}

	cid, jid := job.CustomerId, job.Id
	var meta map[string]interface{}
	if job.TechnicianId != nil {
		meta = map[string]interface{}{"technician_id": *job.TechnicianId}
	}
	_ = s.activityService.Record(ctx, &entity.Activity{
		Type:        entity.ActivityJobScheduled,
		CustomerId:  &cid,
		JobId:       &jid,
		Description: fmt.Sprintf("Job #%d scheduled for %s", job.Id, customer.FullName),
		Metadata:    meta,
	})

	return jobToResponse(job, items), nil
}

func (s *jobService) Update(ctx context.Context, id int, req *dto.UpdateJobRequest) (*dto.JobResponse, error) {
	job, err := s.store.Jobs().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, nil
	}
	if job.Status.Terminal() {
		return nil, dto.Conflict("job is already closed")
	}

	if req.TechnicianId != nil {
		job.TechnicianId = req.TechnicianId
	}
	if req.ScheduledStartTime != nil {
		job.ScheduledStartTime = *req.ScheduledStartTime
	}
	if req.ScheduledEndTime != nil {
		job.ScheduledEndTime = *req.ScheduledEndTime
	}
	if req.Address != nil {
		job.Address = *req.Address
	}
	if req.City != nil {
		job.City = *req.City
	}
	if req.State != nil {
		job.State = *req.State
	}
	if req.ZipCode != nil {
		job.ZipCode = *req.ZipCode
	}
	if req.Notes != nil {
		job.Notes = *req.Notes
	}
	job.UpdatedAt = time.Now()

	if err := s.store.Jobs().Update(ctx, job); err != nil {
		return nil, err
	}

	if req.Services != nil {
		items, err := s.buildLineItems(ctx, *req.Services)
		if err != nil {
			return nil, err
		}
		if err := s.store.Jobs().ReplaceServices(ctx, job.Id, items); err != nil {
			return nil, err
		}
	}

	items, err := s.store.Jobs().FindServicesByJob(ctx, job.Id)
	if err != nil {
		return nil, err
	}
	return jobToResponse(job, items), nil
}

var jobStatusActivity = map[entity.JobStatus]entity.ActivityType{
	entity.JobStatusScheduled:  entity.ActivityJobScheduled,
	entity.JobStatusInProgress: entity.ActivityJobInProgress,
	entity.JobStatusCompleted:  entity.ActivityJobCompleted,
	entity.JobStatusCancelled:  entity.ActivityJobCancelled,
}

func (s *jobService) UpdateStatus(ctx context.Context, id int, req *dto.UpdateJobStatusRequest) (*dto.JobResponse, error) {
	job, err := s.store.Jobs().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, nil
	}

	next := entity.JobStatus(req.Status)
	if job.Status == next {
		items, err := s.store.Jobs().FindServicesByJob(ctx, job.Id)
		if err != nil {
			return nil, err
		}
		return jobToResponse(job, items), nil
	}
	if job.Status.Terminal() {
		return nil, dto.Conflict(fmt.Sprintf("job is %s and cannot change status", job.Status))
	}

	now := time.Now()
	switch next {
	case entity.JobStatusInProgress:
		job.ActualStartTime = &now
	case entity.JobStatusCompleted:
		if job.ActualStartTime == nil {
			job.ActualStartTime = &now
		}
		job.ActualEndTime = &now
	}
	job.Status = next
	job.UpdatedAt = now

	if err := s.store.Jobs().Update(ctx, job); err != nil {
		return nil, err
	}

	cid, jid := job.CustomerId, job.Id
	_ = s.activityService.Record(ctx, &entity.Activity{
		Type:        jobStatusActivity[next],
		CustomerId:  &cid,
		JobId:       &jid,
		Description: fmt.Sprintf("Job #%d is now %s", job.Id, next),
	})

	if next == entity.JobStatusCompleted {
		s.notifyCompleted(ctx, job)
	}

	items, err := s.store.Jobs().FindServicesByJob(ctx, job.Id)
	if err != nil {
		return nil, err
	}
	return jobToResponse(job, items), nil
}

func (s *jobService) notifyCompleted(ctx context.Context, job *entity.Job) {
	customer, err := s.store.Customers().FindByID(ctx, job.CustomerId)
	if err != nil || customer == nil {
		return
	}

	if customer.Email != "" {
		if err := s.emailService.SendJobCompleted(customer.Email, customer.FullName, job.Id); err != nil {
			s.logger.Warn("job", "completion email failed", map[string]interface{}{
				"job_id": job.Id,
				"error":  err.Error(),
			})
		}
	}

	if err := s.eventPublisher.Publish(ctx, events.New(events.TypeJobCompleted, map[string]interface{}{
		"job_id":      job.Id,
		"customer_id": job.CustomerId,
	})); err != nil {
		s.logger.Warn("job", "event publish failed", map[string]interface{}{
			"job_id": job.Id,
			"error":  err.Error(),
		})
	}
}

func (s *jobService) Delete(ctx context.Context, id int) (bool, error) {
	return s.store.Jobs().Delete(ctx, id)
}

func (s *jobService) Show(ctx context.Context, id int) (*dto.JobResponse, error) {
	job, err := s.store.Jobs().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, nil
	}
	items, err := s.store.Jobs().FindServicesByJob(ctx, job.Id)
	if err != nil {
		return nil, err
	}
	return jobToResponse(job, items), nil
}

func (s *jobService) GetAll(ctx context.Context, filter contract.JobFilter) ([]*dto.JobResponse, error) {
	jobs, err := s.store.Jobs().FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(jobs))
	for i, j := range jobs {
		ids[i] = j.Id
	}
	items, err := s.store.Jobs().FindServicesByJobIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byJob := make(map[int][]*entity.JobService)
	for _, item := range items {
		byJob[item.JobId] = append(byJob[item.JobId], item)
	}

	result := make([]*dto.JobResponse, len(jobs))
	for i, j := range jobs {
		result[i] = jobToResponse(j, byJob[j.Id])
	}
	return result, nil
}
