package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"detailops-be/internal/entity"
	"detailops-be/internal/mapper"
	"detailops-be/internal/model"
	"detailops-be/internal/repository/contract"
)

type JobRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.JobMapper
}

func NewJobRepository(db *gorm.DB) contract.JobRepository {
	return &JobRepositoryImpl{
		db:     db,
		mapper: mapper.NewJobMapper(),
	}
}

func (r *JobRepositoryImpl) Create(ctx context.Context, job *entity.Job) error {
	m := r.mapper.ToModel(job)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*job = *r.mapper.ToEntity(m)
	return nil
}

func (r *JobRepositoryImpl) Update(ctx context.Context, job *entity.Job) error {
	m := r.mapper.ToModel(job)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*job = *r.mapper.ToEntity(m)
	return nil
}

func (r *JobRepositoryImpl) Delete(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Job{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	if err := r.db.WithContext(ctx).Where("job_id = ?", id).Delete(&model.JobService{}).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *JobRepositoryImpl) FindByID(ctx context.Context, id int) (*entity.Job, error) {
	var m model.Job
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *JobRepositoryImpl) FindAll(ctx context.Context, filter contract.JobFilter) ([]*entity.Job, error) {
	query := r.db.WithContext(ctx)
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}
	if filter.CustomerId != nil {
		query = query.Where("customer_id = ?", *filter.CustomerId)
	}
	if filter.TechnicianId != nil {
		query = query.Where("technician_id = ?", *filter.TechnicianId)
	}
	if filter.From != nil {
		query = query.Where("scheduled_start_time >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("scheduled_start_time < ?", *filter.To)
	}

	var models []*model.Job
	if err := query.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *JobRepositoryImpl) ReplaceServices(ctx context.Context, jobId int, items []*entity.JobService) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", jobId).Delete(&model.JobService{}).Error; err != nil {
			return err
		}
		for _, item := range items {
			item.JobId = jobId
			m := r.mapper.ServiceToModel(item)
			m.Id = 0
			if err := tx.Create(m).Error; err != nil {
				return err
			}
			*item = *r.mapper.ServiceToEntity(m)
		}
		return nil
	})
}

func (r *JobRepositoryImpl) FindServicesByJob(ctx context.Context, jobId int) ([]*entity.JobService, error) {
	var models []*model.JobService
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobId).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ServicesToEntities(models), nil
}

func (r *JobRepositoryImpl) FindServicesByJobIDs(ctx context.Context, jobIds []int) ([]*entity.JobService, error) {
	if len(jobIds) == 0 {
		return nil, nil
	}
	var models []*model.JobService
	if err := r.db.WithContext(ctx).Where("job_id IN ?", jobIds).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ServicesToEntities(models), nil
}
