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

type IBillingService interface {
	CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	UpdateInvoice(ctx context.Context, id int, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error)
	DeleteInvoice(ctx context.Context, id int) (bool, error)
	ShowInvoice(ctx context.Context, id int) (*dto.InvoiceResponse, error)
	GetAllInvoices(ctx context.Context, filter contract.InvoiceFilter) ([]*dto.InvoiceResponse, error)

	RecordPayment(ctx context.Context, invoiceId int, req *dto.CreatePaymentRequest) (*dto.InvoiceResponse, error)
	GetPayments(ctx context.Context, invoiceId int) ([]*dto.PaymentResponse, error)
}

type billingService struct {
	store           repository.Datastore
	activityService IActivityService
	emailService    mailer.IEmailService
	eventPublisher  *pkgNats.Publisher
	logger          logger.ILogger
}

func NewBillingService(
	store repository.Datastore,
	activityService IActivityService,
	emailService mailer.IEmailService,
	eventPublisher *pkgNats.Publisher,
	log logger.ILogger,
) IBillingService {
	return &billingService{
		store:           store,
		activityService: activityService,
		emailService:    emailService,
		eventPublisher:  eventPublisher,
		logger:          log,
	}
}

func invoiceToResponse(i *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
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
	}
}

func paymentToResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		Id:            p.Id,
		InvoiceId:     p.InvoiceId,
		Amount:        p.Amount,
		Method:        string(p.Method),
		TransactionId: p.TransactionId,
		Date:          p.Date,
	}
}

func (s *billingService) CreateInvoice(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	job, err := s.store.Jobs().FindByID(ctx, req.JobId)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, dto.BadRequest("job not found")
	}

	now := time.Now()
	invoice := &entity.Invoice{
		JobId:     req.JobId,
		Subtotal:  req.Subtotal,
		Tax:       req.Tax,
		Discount:  req.Discount,
		Total:     req.Total,
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Billing().CreateInvoice(ctx, invoice); err != nil {
		return nil, err
	}

	// The number derives from the assigned id, so it is set in a second
	// write after the insert.
	invoice.InvoiceNumber = fmt.Sprintf("INV-%06d", invoice.Id)
	if err := s.store.Billing().UpdateInvoice(ctx, invoice); err != nil {
		return nil, err
	}

	return invoiceToResponse(invoice), nil
}

func (s *billingService) UpdateInvoice(ctx context.Context, id int, req *dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	invoice, err := s.store.Billing().FindInvoiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	if invoice.Paid {
		return nil, dto.Conflict("paid invoices cannot be edited")
	}

	if req.Subtotal != nil {
		invoice.Subtotal = *req.Subtotal
	}
	if req.Tax != nil {
		invoice.Tax = *req.Tax
	}
	if req.Discount != nil {
		invoice.Discount = *req.Discount
	}
	if req.Total != nil {
		invoice.Total = *req.Total
	}
	if req.Notes != nil {
		invoice.Notes = *req.Notes
	}
	invoice.UpdatedAt = time.Now()

	if err := s.store.Billing().UpdateInvoice(ctx, invoice); err != nil {
		return nil, err
	}

	// A lowered total may be covered by payments already on the ledger.
	if err := s.applyPaymentEffect(ctx, invoice); err != nil {
		return nil, err
	}
	return invoiceToResponse(invoice), nil
}

func (s *billingService) DeleteInvoice(ctx context.Context, id int) (bool, error) {
	invoice, err := s.store.Billing().FindInvoiceByID(ctx, id)
	if err != nil {
		return false, err
	}
	if invoice == nil {
		return false, nil
	}
	if invoice.Paid {
		return false, dto.Conflict("paid invoices cannot be deleted")
	}
	return s.store.Billing().DeleteInvoice(ctx, id)
}

func (s *billingService) ShowInvoice(ctx context.Context, id int) (*dto.InvoiceResponse, error) {
	invoice, err := s.store.Billing().FindInvoiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}
	return invoiceToResponse(invoice), nil
}

func (s *billingService) GetAllInvoices(ctx context.Context, filter contract.InvoiceFilter) ([]*dto.InvoiceResponse, error) {
	invoices, err := s.store.Billing().FindAllInvoices(ctx, filter)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		result[i] = invoiceToResponse(inv)
	}
	return result, nil
}

// applyPaymentEffect recomputes the invoice's paid state from its payment
// ledger. PaidAmount is always the ledger sum, so replays converge instead
// of double counting.
func (s *billingService) applyPaymentEffect(ctx context.Context, invoice *entity.Invoice) error {
	payments, err := s.store.Billing().FindPaymentsByInvoice(ctx, invoice.Id)
	if err != nil {
		return err
	}

	var sum float64
	for _, p := range payments {
		sum += p.Amount
	}

	wasPaid := invoice.Paid
	invoice.PaidAmount = sum
	invoice.Paid = sum >= invoice.Total
	if invoice.Paid && invoice.PaidDate == nil {
		now := time.Now()
		invoice.PaidDate = &now
	}
	if !invoice.Paid {
		invoice.PaidDate = nil
	}
	invoice.UpdatedAt = time.Now()

	if err := s.store.Billing().UpdateInvoice(ctx, invoice); err != nil {
		return err
	}

	if invoice.Paid && !wasPaid {
		s.notifyPaid(ctx, invoice)
	}
	return nil
}

func (s *billingService) notifyPaid(ctx context.Context, invoice *entity.Invoice) {
	if err := s.eventPublisher.Publish(ctx, events.New(events.TypeInvoicePaid, map[string]interface{}{
		"invoice_id":     invoice.Id,
		"invoice_number": invoice.InvoiceNumber,
		"total":          invoice.Total,
	})); err != nil {
		s.logger.Warn("billing", "event publish failed", map[string]interface{}{
			"invoice_id": invoice.Id,
			"error":      err.Error(),
		})
	}

	job, err := s.store.Jobs().FindByID(ctx, invoice.JobId)
	if err != nil || job == nil {
		return
	}
	customer, err := s.store.Customers().FindByID(ctx, job.CustomerId)
	if err != nil || customer == nil || customer.Email == "" {
		return
	}
	if err := s.emailService.SendPaymentReceipt(customer.Email, customer.FullName, invoice.InvoiceNumber, invoice.PaidAmount, invoice.Total); err != nil {
		s.logger.Warn("billing", "receipt email failed", map[string]interface{}{
			"invoice_id": invoice.Id,
			"error":      err.Error(),
		})
	}
}

func (s *billingService) RecordPayment(ctx context.Context, invoiceId int, req *dto.CreatePaymentRequest) (*dto.InvoiceResponse, error) {
	invoice, err := s.store.Billing().FindInvoiceByID(ctx, invoiceId)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}

	now := time.Now()
	payment := &entity.Payment{
		InvoiceId:     invoiceId,
		Amount:        req.Amount,
		Method:        entity.PaymentMethod(req.Method),
		TransactionId: req.TransactionId,
		Date:          now,
		CreatedAt:     now,
	}
	if err := s.store.Billing().CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	if err := s.applyPaymentEffect(ctx, invoice); err != nil {
		return nil, err
	}

	job, err := s.store.Jobs().FindByID(ctx, invoice.JobId)
	if err == nil && job != nil {
		cid, iid := job.CustomerId, invoice.Id
		_ = s.activityService.Record(ctx, &entity.Activity{
			Type:        entity.ActivityPaymentReceived,
			CustomerId:  &cid,
			JobId:       &invoice.JobId,
			InvoiceId:   &iid,
			Description: fmt.Sprintf("Payment of $%.2f on %s", payment.Amount, invoice.InvoiceNumber),
			Metadata: map[string]interface{}{
				"method": string(payment.Method),
				"amount": payment.Amount,
			},
		})
	}

	return invoiceToResponse(invoice), nil
}

func (s *billingService) GetPayments(ctx context.Context, invoiceId int) ([]*dto.PaymentResponse, error) {
	invoice, err := s.store.Billing().FindInvoiceByID(ctx, invoiceId)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, dto.NotFound("invoice not found")
	}

	payments, err := s.store.Billing().FindPaymentsByInvoice(ctx, invoiceId)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.PaymentResponse, len(payments))
	for i, p := range payments {
		result[i] = paymentToResponse(p)
	}
	return result, nil
}
