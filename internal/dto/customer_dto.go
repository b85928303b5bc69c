package dto

import "time"

type CreateCustomerRequest struct {
	FullName string   `json:"full_name" validate:"required"`
	Email    string   `json:"email" validate:"required,email"`
	Phone    string   `json:"phone" validate:"required"`
	Address  string   `json:"address"`
	City     string   `json:"city"`
	State    string   `json:"state"`
	ZipCode  string   `json:"zip_code"`
	Tags     []string `json:"tags"`
	Notes    string   `json:"notes"`
}

type UpdateCustomerRequest struct {
	FullName *string   `json:"full_name"`
	Email    *string   `json:"email" validate:"omitempty,email"`
	Phone    *string   `json:"phone"`
	Address  *string   `json:"address"`
	City     *string   `json:"city"`
	State    *string   `json:"state"`
	ZipCode  *string   `json:"zip_code"`
	Tags     *[]string `json:"tags"`
	Notes    *string   `json:"notes"`
}

type CustomerResponse struct {
	Id        int       `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address,omitempty"`
	City      string    `json:"city,omitempty"`
	State     string    `json:"state,omitempty"`
	ZipCode   string    `json:"zip_code,omitempty"`
	Tags      []string  `json:"tags"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerListResponse is the only paginated listing in the API.
type CustomerListResponse struct {
	Customers []*CustomerResponse `json:"customers"`
	Total     int                 `json:"total"`
	Page      int                 `json:"page"`
	PageSize  int                 `json:"page_size"`
}

type CreateVehicleRequest struct {
	Make         string `json:"make" validate:"required"`
	Model        string `json:"model" validate:"required"`
	Year         int    `json:"year" validate:"required,gte=1900"`
	Color        string `json:"color"`
	LicensePlate string `json:"license_plate"`
	Vin          string `json:"vin"`
}

type UpdateVehicleRequest struct {
	Make         *string `json:"make"`
	Model        *string `json:"model"`
	Year         *int    `json:"year" validate:"omitempty,gte=1900"`
	Color        *string `json:"color"`
	LicensePlate *string `json:"license_plate"`
	Vin          *string `json:"vin"`
}

type VehicleResponse struct {
	Id           int       `json:"id"`
	CustomerId   int       `json:"customer_id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	Color        string    `json:"color,omitempty"`
	LicensePlate string    `json:"license_plate,omitempty"`
	Vin          string    `json:"vin,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
