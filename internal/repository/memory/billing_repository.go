package memory

import (
	"context"
	"sort"
	"sync"

	"detailops-be/internal/entity"
	"detailops-be/internal/repository/contract"
)

type BillingRepository struct {
	mu            sync.RWMutex
	invoices      map[int]*entity.Invoice
	payments      map[int]*entity.Payment
	nextId        int
	nextPaymentId int
}

func NewBillingRepository() *BillingRepository {
	return &BillingRepository{
		invoices:      make(map[int]*entity.Invoice),
		payments:      make(map[int]*entity.Payment),
		nextId:        1,
		nextPaymentId: 1,
	}
}

func cloneInvoice(i *entity.Invoice) *entity.Invoice {
	out := *i
	return &out
}

func clonePayment(p *entity.Payment) *entity.Payment {
	out := *p
	return &out
}

func (r *BillingRepository) CreateInvoice(ctx context.Context, invoice *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	invoice.Id = r.nextId
	r.nextId++
	r.invoices[invoice.Id] = cloneInvoice(invoice)
	return nil
}

func (r *BillingRepository) UpdateInvoice(ctx context.Context, invoice *entity.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invoices[invoice.Id] = cloneInvoice(invoice)
	return nil
}

func (r *BillingRepository) DeleteInvoice(ctx context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.invoices[id]; !ok {
		return false, nil
	}
	delete(r.invoices, id)
	for pid, p := range r.payments {
		if p.InvoiceId == id {
			delete(r.payments, pid)
		}
	}
	return true, nil
}

func (r *BillingRepository) FindInvoiceByID(ctx context.Context, id int) (*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	return cloneInvoice(i), nil
}

func (r *BillingRepository) FindInvoiceByJob(ctx context.Context, jobId int) (*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, i := range r.invoices {
		if i.JobId == jobId {
			return cloneInvoice(i), nil
		}
	}
	return nil, nil
}

func (r *BillingRepository) FindInvoiceByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, i := range r.invoices {
		if i.InvoiceNumber == number {
			return cloneInvoice(i), nil
		}
	}
	return nil, nil
}

func matchesInvoice(i *entity.Invoice, f contract.InvoiceFilter) bool {
	if f.Paid != nil && i.Paid != *f.Paid {
		return false
	}
	if f.JobId != nil && i.JobId != *f.JobId {
		return false
	}
	return true
}

func (r *BillingRepository) FindAllInvoices(ctx context.Context, filter contract.InvoiceFilter) ([]*entity.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.Invoice
	for _, i := range r.invoices {
		if matchesInvoice(i, filter) {
			result = append(result, cloneInvoice(i))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}

func (r *BillingRepository) CountInvoices(ctx context.Context, filter contract.InvoiceFilter) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	count := 0
	for _, i := range r.invoices {
		if matchesInvoice(i, filter) {
			count++
		}
	}
	return count, nil
}

func (r *BillingRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	payment.Id = r.nextPaymentId
	r.nextPaymentId++
	r.payments[payment.Id] = clonePayment(payment)
	return nil
}

func (r *BillingRepository) FindPaymentsByInvoice(ctx context.Context, invoiceId int) ([]*entity.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*entity.Payment
	for _, p := range r.payments {
		if p.InvoiceId == invoiceId {
			result = append(result, clonePayment(p))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })
	return result, nil
}
