package dto

import "time"

type RevenueStatsResponse struct {
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	TotalRevenue  float64   `json:"total_revenue"`
	JobsCompleted int       `json:"jobs_completed"`
	NewCustomers  int       `json:"new_customers"`
	AvgJobValue   float64   `json:"avg_job_value"`
}

type TopServiceResponse struct {
	ServiceId   int     `json:"service_id"`
	ServiceName string  `json:"service_name"`
	Revenue     float64 `json:"revenue"`
	Count       int     `json:"count"`
}

// DashboardResponse is the SPA's landing recap.
type DashboardResponse struct {
	JobsToday        int                 `json:"jobs_today"`
	RevenueThisMonth float64             `json:"revenue_this_month"`
	UnpaidInvoices   int                 `json:"unpaid_invoices"`
	LowStockItems    int                 `json:"low_stock_items"`
	RecentActivities []*ActivityResponse `json:"recent_activities"`
}
