package memory

import (
	"context"
	"sort"
	"sync"

	"detailops-be/internal/entity"
	"detailops-be/internal/repository/contract"
)

type JobRepository struct {
	mu         sync.RWMutex
	jobs       map[int]*entity.Job
	services   map[int]*entity.JobService
	nextId     int
	nextLineId int
}

func NewJobRepository() *JobRepository {
	return &JobRepository{
		jobs:       make(map[int]*entity.Job),
		services:   make(map[int]*entity.JobService),
		nextId:     1,
		nextLineId: 1,
	}
}

func cloneJob(j *entity.Job) *entity.Job {
	out := *j
	return &out
}

func cloneJobService(s *entity.JobService) *entity.JobService {
	out := *s
	return &out
}

func (r *JobRepository) Create(ctx context.Context, job *entity.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job.Id = r.nextId
	r.nextId++
	r.jobs[job.Id] = cloneJob(job)
	return nil
}

func (r *JobRepository) Update(ctx context.Context, job *entity.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.jobs[job.Id] = cloneJob(job)
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return false, nil
	}
	delete(r.jobs, id)
	for lid, s := range r.services {
		if s.JobId == id {
			delete(r.services, lid)
		}
	}
	return true, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id int) (*entity.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.jobs[id]
	if !ok {
		return nil, nil
	}
	return cloneJob(j), nil
}

func matchesJob(j *entity.Job, f contract.JobFilter) bool {
	if f.Status != nil && j.Status != *f.Status {
		return false
	}
	if f.CustomerId != nil && j.CustomerId != *f.CustomerId {
		return false
	}
	if f.TechnicianId != nil {
		if j.TechnicianId == nil || *j.TechnicianId != *f.TechnicianId {
			return false
		}
	}
	if f.From != nil && j.ScheduledStartTime.Before(*f.From) {
		return false
	}
	if f.To != nil && !j.ScheduledStartTime.Before(*f.To) {
		return false
	}
	return true
}

func (r *JobRepository) FindAll(ctx context.Context, filter contract.JobFilter) ([]*entity.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.Job
	for _, j := range r.jobs {
		if matchesJob(j, filter) {
			result = append(result, cloneJob(j))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}

func (r *JobRepository) ReplaceServices(ctx context.Context, jobId int, items []*entity.JobService) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for lid, s := range r.services {
		if s.JobId == jobId {
			delete(r.services, lid)
		}
	}
	for _, item := range items {
		item.Id = r.nextLineId
		r.nextLineId++
		item.JobId = jobId
		r.services[item.Id] = cloneJobService(item)
	}
	return nil
}

func (r *JobRepository) FindServicesByJob(ctx context.Context, jobId int) ([]*entity.JobService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.JobService
	for _, s := range r.services {
		if s.JobId == jobId {
			result = append(result, cloneJobService(s))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}

func (r *JobRepository) FindServicesByJobIDs(ctx context.Context, jobIds []int) ([]*entity.JobService, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wanted := make(map[int]bool, len(jobIds))
	for _, id := range jobIds {
		wanted[id] = true
	}
	var result []*entity.JobService
	for _, s := range r.services {
		if wanted[s.JobId] {
			result = append(result, cloneJobService(s))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}
