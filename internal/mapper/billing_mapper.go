package mapper

import (
	"detailops-be/internal/entity"
	"detailops-be/internal/model"
)

type BillingMapper struct{}

func NewBillingMapper() *BillingMapper {
	return &BillingMapper{}
}

func (m *BillingMapper) InvoiceToEntity(i *model.Invoice) *entity.Invoice {
	if i == nil {
		return nil
	}
	return &entity.Invoice{
		Id:            i.Id,
		JobId:         i.JobId,
		InvoiceNumber: i.InvoiceNumber,
		Subtotal:      i.Subtotal,
		Tax:           i.Tax,
		Discount:      i.Discount,
		Total:         i.Total,
		Paid:          i.Paid,
		PaidDate:      i.PaidDate,
		PaidAmount:    i.PaidAmount,
		Notes:         i.Notes,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func (m *BillingMapper) InvoiceToModel(i *entity.Invoice) *model.Invoice {
	if i == nil {
		return nil
	}
	return &model.Invoice{
		Id:            i.Id,
		JobId:         i.JobId,
		InvoiceNumber: i.InvoiceNumber,
		Subtotal:      i.Subtotal,
		Tax:           i.Tax,
		Discount:      i.Discount,
		Total:         i.Total,
		Paid:          i.Paid,
		PaidDate:      i.PaidDate,
		PaidAmount:    i.PaidAmount,
		Notes:         i.Notes,
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func (m *BillingMapper) InvoicesToEntities(invoices []*model.Invoice) []*entity.Invoice {
	entities := make([]*entity.Invoice, len(invoices))
	for i, inv := range invoices {
		entities[i] = m.InvoiceToEntity(inv)
	}
	return entities
}

func (m *BillingMapper) PaymentToEntity(p *model.Payment) *entity.Payment {
	if p == nil {
		return nil
	}
	return &entity.Payment{
		Id:            p.Id,
		InvoiceId:     p.InvoiceId,
		Amount:        p.Amount,
		Method:        entity.PaymentMethod(p.Method),
		TransactionId: p.TransactionId,
		Date:          p.Date,
		CreatedAt:     p.CreatedAt,
	}
}

func (m *BillingMapper) PaymentToModel(p *entity.Payment) *model.Payment {
	if p == nil {
		return nil
	}
	return &model.Payment{
		Id:            p.Id,
		InvoiceId:     p.InvoiceId,
		Amount:        p.Amount,
		Method:        string(p.Method),
		TransactionId: p.TransactionId,
		Date:          p.Date,
		CreatedAt:     p.CreatedAt,
	}
}

func (m *BillingMapper) PaymentsToEntities(payments []*model.Payment) []*entity.Payment {
	entities := make([]*entity.Payment, len(payments))
	for i, p := range payments {
		entities[i] = m.PaymentToEntity(p)
	}
	return entities
}
