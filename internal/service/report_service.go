package service

import (
	"context"
	"sort"
	"time"

	"detailops-be/internal/dto"
	"detailops-be/internal/entity"
	"detailops-be/internal/repository"
	"detailops-be/internal/repository/contract"
)

type IReportService interface {
	GetRevenueStats(ctx context.Context, start, end time.Time) (*dto.RevenueStatsResponse, error)
	GetTopServices(ctx context.Context, start, end time.Time, limit int) ([]*dto.TopServiceResponse, error)
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type reportService struct {
	store           repository.Datastore
	activityService IActivityService
}

func NewReportService(store repository.Datastore, activityService IActivityService) IReportService {
	return &reportService{store: store, activityService: activityService}
}

// completedJobsBetween selects completed jobs whose scheduled start falls in
// [start, end). The schedule drives the window, so a job booked inside it
// still counts even when the work wrapped up after end.
func (s *reportService) completedJobsBetween(ctx context.Context, start, end time.Time) ([]*entity.Job, error) {
	status := entity.JobStatusCompleted
	jobs, err := s.store.Jobs().FindAll(ctx, contract.JobFilter{Status: &status})
	if err != nil {
		return nil, err
	}
	var result []*entity.Job
	for _, j := range jobs {
		if j.ScheduledStartTime.Before(start) || !j.ScheduledStartTime.Before(end) {
			continue
		}
		result = append(result, j)
	}
	return result, nil
}

// revenueOfJobs sums the paid amounts of the given jobs' paid invoices.
func (s *reportService) revenueOfJobs(ctx context.Context, jobs []*entity.Job) (float64, error) {
	var total float64
	for _, j := range jobs {
		inv, err := s.store.Billing().FindInvoiceByJob(ctx, j.Id)
		if err != nil {
			return 0, err
		}
		if inv == nil || !inv.Paid {
			continue
		}
		total += inv.PaidAmount
	}
	return total, nil
}

func (s *reportService) GetRevenueStats(ctx context.Context, start, end time.Time) (*dto.RevenueStatsResponse, error) {
	completed, err := s.completedJobsBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	revenue, err := s.revenueOfJobs(ctx, completed)
	if err != nil {
		return nil, err
	}

	newCustomers, err := s.store.Customers().CountCreatedBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	avg := 0.0
	if len(completed) > 0 {
		avg = revenue / float64(len(completed))
	}

	return &dto.RevenueStatsResponse{
		StartDate:     start,
		EndDate:       end,
		TotalRevenue:  revenue,
		JobsCompleted: len(completed),
		NewCustomers:  newCustomers,
		AvgJobValue:   avg,
	}, nil
}

func (s *reportService) GetTopServices(ctx context.Context, start, end time.Time, limit int) ([]*dto.TopServiceResponse, error) {
	completed, err := s.completedJobsBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	ids := make([]int, len(completed))
	for i, j := range completed {
		ids[i] = j.Id
	}
	items, err := s.store.Jobs().FindServicesByJobIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byService := make(map[int]*dto.TopServiceResponse)
	for _, item := range items {
		agg, ok := byService[item.ServiceId]
		if !ok {
			agg = &dto.TopServiceResponse{ServiceId: item.ServiceId}
			byService[item.ServiceId] = agg
		}
		agg.Revenue += item.Price * float64(item.Quantity)
		agg.Count += item.Quantity
	}

	result := make([]*dto.TopServiceResponse, 0, len(byService))
	for _, agg := range byService {
		svc, err := s.store.Catalog().FindByID(ctx, agg.ServiceId)
		if err != nil {
			return nil, err
		}
		if svc != nil {
			agg.ServiceName = svc.Name
		}
		result = append(result, agg)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Revenue != result[j].Revenue {
			return result[i].Revenue > result[j].Revenue
		}
		return result[i].ServiceId < result[j].ServiceId
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (s *reportService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	todays, err := s.store.Jobs().FindAll(ctx, contract.JobFilter{From: &dayStart, To: &dayEnd})
	if err != nil {
		return nil, err
	}

	monthJobs, err := s.completedJobsBetween(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	revenue, err := s.revenueOfJobs(ctx, monthJobs)
	if err != nil {
		return nil, err
	}

	unpaid := false
	unpaidCount, err := s.store.Billing().CountInvoices(ctx, contract.InvoiceFilter{Paid: &unpaid})
	if err != nil {
		return nil, err
	}

	items, err := s.store.Inventory().FindAllItems(ctx, true)
	if err != nil {
		return nil, err
	}
	lowStock := 0
	for _, item := range items {
		if item.LowStock() {
			lowStock++
		}
	}

	activities, err := s.activityService.GetRecent(ctx, 10)
	if err != nil {
		return nil, err
	}

	return &dto.DashboardResponse{
		JobsToday:        len(todays),
		RevenueThisMonth: revenue,
		UnpaidInvoices:   unpaidCount,
		LowStockItems:    lowStock,
		RecentActivities: activities,
	}, nil
}
