package mapper

import (
	"detailops-be/internal/entity"
	"detailops-be/internal/model"
)

type JobMapper struct{}

func NewJobMapper() *JobMapper {
	return &JobMapper{}
}

func (m *JobMapper) ToEntity(j *model.Job) *entity.Job {
	if j == nil {
		return nil
	}
	return &entity.Job{
		Id:                 j.Id,
		CustomerId:         j.CustomerId,
		VehicleId:          j.VehicleId,
		TechnicianId:       j.TechnicianId,
		Status:             entity.JobStatus(j.Status),
		ScheduledStartTime: j.ScheduledStartTime,
		ScheduledEndTime:   j.ScheduledEndTime,
		ActualStartTime:    j.ActualStartTime,
		ActualEndTime:      j.ActualEndTime,
		Address:            j.Address,
		City:               j.City,
		State:              j.State,
		ZipCode:            j.ZipCode,
		Notes:              j.Notes,
		CreatedAt:          j.CreatedAt,
		UpdatedAt:          j.UpdatedAt,
	}
}

func (m *JobMapper) ToModel(j *entity.Job) *model.Job {
	if j == nil {
		return nil
	}
	return &model.Job{
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
		CreatedAt:          j.CreatedAt,
		UpdatedAt:          j.UpdatedAt,
	}
}

func (m *JobMapper) ToEntities(jobs []*model.Job) []*entity.Job {
	entities := make([]*entity.Job, len(jobs))
	for i, j := range jobs {
		entities[i] = m.ToEntity(j)
	}
	return entities
}

func (m *JobMapper) ServiceToEntity(s *model.JobService) *entity.JobService {
	if s == nil {
		return nil
	}
	return &entity.JobService{
		Id:        s.Id,
		JobId:     s.JobId,
		ServiceId: s.ServiceId,
		Quantity:  s.Quantity,
		Price:     s.Price,
	}
}

func (m *JobMapper) ServiceToModel(s *entity.JobService) *model.JobService {
	if s == nil {
		return nil
	}
	return &model.JobService{
		Id:        s.Id,
		JobId:     s.JobId,
		ServiceId: s.ServiceId,
		Quantity:  s.Quantity,
		Price:     s.Price,
	}
}

func (m *JobMapper) ServicesToEntities(items []*model.JobService) []*entity.JobService {
	entities := make([]*entity.JobService, len(items))
	for i, s := range items {
		entities[i] = m.ServiceToEntity(s)
	}
	return entities
}
