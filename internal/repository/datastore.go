package repository

import "detailops-be/internal/repository/contract"

// Datastore hands out the entity repositories. Two implementations exist:
// the in-memory store (default, data lives for the process lifetime) and
// the gorm/postgres store used in production. It is constructed once at
// startup and injected into the services.
type Datastore interface {
	Users() contract.UserRepository
	Customers() contract.CustomerRepository
	Catalog() contract.CatalogRepository
	Jobs() contract.JobRepository
	Billing() contract.BillingRepository
	Activities() contract.ActivityRepository
	Reviews() contract.ReviewRepository
	Memberships() contract.MembershipRepository
	Inventory() contract.InventoryRepository
}
