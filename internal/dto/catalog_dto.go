package dto

import "time"

type CreateServiceRequest struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" validate:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
	Color           string  `json:"color"`
}

type UpdateServiceRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price" validate:"omitempty,gt=0"`
	DurationMinutes *int     `json:"duration_minutes" validate:"omitempty,gt=0"`
	Color           *string  `json:"color"`
	IsActive        *bool    `json:"is_active"`
}

type ServiceResponse struct {
	Id              int       `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"duration_minutes"`
	Color           string    `json:"color,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}
