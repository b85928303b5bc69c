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

type BillingRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.BillingMapper
}

func NewBillingRepository(db *gorm.DB) contract.BillingRepository {
	return &BillingRepositoryImpl{
		db:     db,
		mapper: mapper.NewBillingMapper(),
	}
}

func (r *BillingRepositoryImpl) CreateInvoice(ctx context.Context, invoice *entity.Invoice) error {
	m := r.mapper.InvoiceToModel(invoice)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*invoice = *r.mapper.InvoiceToEntity(m)
	return nil
}

func (r *BillingRepositoryImpl) UpdateInvoice(ctx context.Context, invoice *entity.Invoice) error {
	m := r.mapper.InvoiceToModel(invoice)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*invoice = *r.mapper.InvoiceToEntity(m)
	return nil
}

func (r *BillingRepositoryImpl) DeleteInvoice(ctx context.Context, id int) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&model.Invoice{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	if err := r.db.WithContext(ctx).Where("invoice_id = ?", id).Delete(&model.Payment{}).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (r *BillingRepositoryImpl) FindInvoiceByID(ctx context.Context, id int) (*entity.Invoice, error) {
	var m model.Invoice
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.InvoiceToEntity(&m), nil
}

func (r *BillingRepositoryImpl) FindInvoiceByJob(ctx context.Context, jobId int) (*entity.Invoice, error) {
	var m model.Invoice
	if err := r.db.WithContext(ctx).Where("job_id = ?", jobId).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.InvoiceToEntity(&m), nil
}

func (r *BillingRepositoryImpl) FindInvoiceByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	var m model.Invoice
	if err := r.db.WithContext(ctx).Where("invoice_number = ?", number).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.InvoiceToEntity(&m), nil
}

func (r *BillingRepositoryImpl) applyFilter(query *gorm.DB, filter contract.InvoiceFilter) *gorm.DB {
	if filter.Paid != nil {
		query = query.Where("paid = ?", *filter.Paid)
	}
	if filter.JobId != nil {
		query = query.Where("job_id = ?", *filter.JobId)
	}
	return query
}

func (r *BillingRepositoryImpl) FindAllInvoices(ctx context.Context, filter contract.InvoiceFilter) ([]*entity.Invoice, error) {
	var models []*model.Invoice
	query := r.applyFilter(r.db.WithContext(ctx), filter)
	if err := query.Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.InvoicesToEntities(models), nil
}

func (r *BillingRepositoryImpl) CountInvoices(ctx context.Context, filter contract.InvoiceFilter) (int, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&model.Invoice{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (r *BillingRepositoryImpl) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	m := r.mapper.PaymentToModel(payment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*payment = *r.mapper.PaymentToEntity(m)
	return nil
}

func (r *BillingRepositoryImpl) FindPaymentsByInvoice(ctx context.Context, invoiceId int) ([]*entity.Payment, error) {
	var models []*model.Payment
	if err := r.db.WithContext(ctx).Where("invoice_id = ?", invoiceId).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.PaymentsToEntities(models), nil
}
