package memory

import (
	"detailops-be/internal/repository"
	"detailops-be/internal/repository/contract"
)

// Datastore is the in-memory backend. Every collection is a map guarded by
// its repository's RWMutex, with a private id counter starting at 1 that is
// never reused. The process lifetime is the data lifetime.
type Datastore struct {
	users       *UserRepository
	customers   *CustomerRepository
	catalog     *CatalogRepository
	jobs        *JobRepository
	billing     *BillingRepository
	activities  *ActivityRepository
	reviews     *ReviewRepository
	memberships *MembershipRepository
	inventory   *InventoryRepository
}

func NewDatastore() repository.Datastore {
	return &Datastore{
		users:       NewUserRepository(),
		customers:   NewCustomerRepository(),
		catalog:     NewCatalogRepository(),
		jobs:        NewJobRepository(),
		billing:     NewBillingRepository(),
		activities:  NewActivityRepository(),
		reviews:     NewReviewRepository(),
		memberships: NewMembershipRepository(),
		inventory:   NewInventoryRepository(),
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
