package entity

import "time"

type Customer struct {
	Id        int
	FullName  string
	Email     string
	Phone     string
	Address   string
	City      string
	State     string
	ZipCode   string
	Tags      []string
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Vehicle struct {
	Id           int
	CustomerId   int
	Make         string
	Model        string
	Year         int
	Color        string
	LicensePlate string
	Vin          string
	CreatedAt    time.Time
}
