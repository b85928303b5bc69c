package contract

import (
	"context"
	"time"

	"detailops-be/internal/entity"
)

// JobFilter matches jobs on equality/range criteria. From/To bound the
// scheduled start time.
type JobFilter struct {
	Status       *entity.JobStatus
	CustomerId   *int
	TechnicianId *int
	From         *time.Time
	To           *time.Time
}

type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	Update(ctx context.Context, job *entity.Job) error
	Delete(ctx context.Context, id int) (bool, error)
	FindByID(ctx context.Context, id int) (*entity.Job, error)
	FindAll(ctx context.Context, filter JobFilter) ([]*entity.Job, error)

	// Line items are replaced wholesale (delete-all-then-recreate).
	ReplaceServices(ctx context.Context, jobId int, items []*entity.JobService) error
	FindServicesByJob(ctx context.Context, jobId int) ([]*entity.JobService, error)
	FindServicesByJobIDs(ctx context.Context, jobIds []int) ([]*entity.JobService, error)
}
