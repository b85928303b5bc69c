package contract

import (
	"context"

	"detailops-be/internal/entity"
)

type InvoiceFilter struct {
	Paid  *bool
	JobId *int
}

type BillingRepository interface {
	CreateInvoice(ctx context.Context, invoice *entity.Invoice) error
	UpdateInvoice(ctx context.Context, invoice *entity.Invoice) error
	DeleteInvoice(ctx context.Context, id int) (bool, error)
	FindInvoiceByID(ctx context.Context, id int) (*entity.Invoice, error)
	FindInvoiceByJob(ctx context.Context, jobId int) (*entity.Invoice, error)
	FindInvoiceByNumber(ctx context.Context, number string) (*entity.Invoice, error)
	FindAllInvoices(ctx context.Context, filter InvoiceFilter) ([]*entity.Invoice, error)
	CountInvoices(ctx context.Context, filter InvoiceFilter) (int, error)

	CreatePayment(ctx context.Context, payment *entity.Payment) error
	FindPaymentsByInvoice(ctx context.Context, invoiceId int) ([]*entity.Payment, error)
}
