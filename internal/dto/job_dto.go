package dto

import "time"

type JobLineItemRequest struct {
	ServiceId int `json:"service_id" validate:"required,gt=0"`
	Quantity  int `json:"quantity" validate:"required,gt=0"`
}

type CreateJobRequest struct {
	CustomerId         int                  `json:"customer_id" validate:"required,gt=0"`
	VehicleId          int                  `json:"vehicle_id" validate:"required,gt=0"`
	TechnicianId       *int                 `json:"technician_id"`
	ScheduledStartTime time.Time            `json:"scheduled_start_time" validate:"required"`
	ScheduledEndTime   time.Time            `json:"scheduled_end_time" validate:"required"`
	Address            string               `json:"address"`
	City               string               `json:"city"`
	State              string               `json:"state"`
	ZipCode            string               `json:"zip_code"`
	Notes              string               `json:"notes"`
	Services           []JobLineItemRequest `json:"services" validate:"required,min=1,dive"`
}

// UpdateJobRequest replaces line items wholesale when Services is present.
type UpdateJobRequest struct {
	TechnicianId       *int                  `json:"technician_id"`
	ScheduledStartTime *time.Time            `json:"scheduled_start_time"`
	ScheduledEndTime   *time.Time            `json:"scheduled_end_time"`
	Address            *string               `json:"address"`
	City               *string               `json:"city"`
	State              *string               `json:"state"`
	ZipCode            *string               `json:"zip_code"`
	Notes              *string               `json:"notes"`
	Services           *[]JobLineItemRequest `json:"services" validate:"omitempty,min=1,dive"`
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled in_progress completed cancelled"`
}

type JobLineItemResponse struct {
	Id        int     `json:"id"`
	ServiceId int     `json:"service_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type JobResponse struct {
	Id                 int                   `json:"id"`
	CustomerId         int                   `json:"customer_id"`
	VehicleId          int                   `json:"vehicle_id"`
	TechnicianId       *int                  `json:"technician_id,omitempty"`
	Status             string                `json:"status"`
	ScheduledStartTime time.Time             `json:"scheduled_start_time"`
	ScheduledEndTime   time.Time             `json:"scheduled_end_time"`
	ActualStartTime    *time.Time            `json:"actual_start_time,omitempty"`
	ActualEndTime      *time.Time            `json:"actual_end_time,omitempty"`
	Address            string                `json:"address,omitempty"`
	City               string                `json:"city,omitempty"`
	State              string                `json:"state,omitempty"`
	ZipCode            string                `json:"zip_code,omitempty"`
	Notes              string                `json:"notes,omitempty"`
	Services           []JobLineItemResponse `json:"services"`
	CreatedAt          time.Time             `json:"created_at"`
}
