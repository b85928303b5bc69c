package implementation

import (
	"gorm.io/gorm"

	"detailops-be/internal/repository"
	"detailops-be/internal/repository/contract"
)

// Datastore is the gorm/postgres backend.
type Datastore struct {
	users       contract.UserRepository
	customers   contract.CustomerRepository
	catalog     contract.CatalogRepository
	jobs        contract.JobRepository
	billing     contract.BillingRepository
	activities  contract.ActivityRepository
	reviews     contract.ReviewRepository
	memberships contract.MembershipRepository
	inventory   contract.InventoryRepository
}

func NewDatastore(db *gorm.DB) repository.Datastore {
	return &Datastore{
		users:       NewUserRepository(db),
		customers:   NewCustomerRepository(db),
		catalog:     NewCatalogRepository(db),
		jobs:        NewJobRepository(db),
		billing:     NewBillingRepository(db),
		activities:  NewActivityRepository(db),
		reviews:     NewReviewRepository(db),
		memberships: NewMembershipRepository(db),
		inventory:   NewInventoryRepository(db),
	}
}

func (d *Datastore) Users() contract.UserRepository             { return d.users }
func (d *Datastore) Customers() contract.CustomerRepository     { return d.customers }
func (d *Datastore) Catalog() contract.CatalogRepository        { return d.catalog }
func (d *Datastore) Jobs() contract.JobRepository               { return d.jobs }
func (d *Datastore) Billing() contract.BillingRepository        { return d.billing }
func (d *Datastore) Activities() contract.ActivityRepository    { return d.activities }
func (d *Datastore) Reviews() contract.ReviewRepository         { return d.reviews }
func (d *Datastore) Memberships() contract.MembershipRepository { return d.memberships }
func (d *Datastore) Inventory() contract.InventoryRepository    { return d.inventory }
