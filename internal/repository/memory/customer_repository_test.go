package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detailops-be/internal/entity"
	"detailops-be/internal/repository/contract"
)

func seedCustomers(t *testing.T, r *CustomerRepository, n int) {
	t.Helper()
	ctx := context.Background()
	for i := 1; i <= n; i++ {
		c := &entity.Customer{
			FullName:  fmt.Sprintf("Customer %02d", i),
			Email:     fmt.Sprintf("customer%02d@example.com", i),
			Phone:     fmt.Sprintf("555-01%02d", i),
			CreatedAt: time.Now(),
		}
		require.NoError(t, r.Create(ctx, c))
		require.Equal(t, i, c.Id)
	}
}

func TestCustomerIdsAreNeverReused(t *testing.T) {
	r := NewCustomerRepository()
	ctx := context.Background()
	seedCustomers(t, r, 3)

	deleted, err := r.Delete(ctx, 3)
	require.NoError(t, err)
	require.True(t, deleted)

	c := &entity.Customer{FullName: "Newcomer", Email: "new@example.com"}
	require.NoError(t, r.Create(ctx, c))
	assert.Equal(t, 4, c.Id)
}

func TestCustomerSearchMatchesNameEmailPhone(t *testing.T) {
	r := NewCustomerRepository()
	ctx := context.Background()
	require.NoError(t, r.Create(ctx, &entity.Customer{FullName: "Alice Moran", Email: "alice@acme.io", Phone: "555-2001"}))
	require.NoError(t, r.Create(ctx, &entity.Customer{FullName: "Bob Tran", Email: "bob@acme.io", Phone: "555-2002"}))

	byName, total, err := r.FindAll(ctx, contract.CustomerFilter{Search: "moran"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, byName, 1)
	assert.Equal(t, "Alice Moran", byName[0].FullName)

	byPhone, total, err := r.FindAll(ctx, contract.CustomerFilter{Search: "2002"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Bob Tran", byPhone[0].FullName)

	byDomain, total, err := r.FindAll(ctx, contract.CustomerFilter{Search: "acme.io"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, byDomain, 2)
}

func TestCustomerPagination(t *testing.T) {
	r := NewCustomerRepository()
	seedCustomers(t, r, 7)
	ctx := context.Background()

	page1, total, err := r.FindAll(ctx, contract.CustomerFilter{Page: 1, PageSize: 3})
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, page1, 3)
	assert.Equal(t, 1, page1[0].Id)

	page3, total, err := r.FindAll(ctx, contract.CustomerFilter{Page: 3, PageSize: 3})
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	require.Len(t, page3, 1)
	assert.Equal(t, 7, page3[0].Id)

	beyond, total, err := r.FindAll(ctx, contract.CustomerFilter{Page: 5, PageSize: 3})
	require.NoError(t, err)
	assert.Equal(t, 7, total)
	assert.Empty(t, beyond)
}

func TestFindersReturnClones(t *testing.T) {
	r := NewCustomerRepository()
	ctx := context.Background()
	c := &entity.Customer{FullName: "Original Name", Email: "orig@example.com", Tags: []string{"vip"}}
	require.NoError(t, r.Create(ctx, c))

	got, err := r.FindByID(ctx, c.Id)
	require.NoError(t, err)
	got.FullName = "Mutated"
	got.Tags[0] = "mutated"

	again, err := r.FindByID(ctx, c.Id)
	require.NoError(t, err)
	assert.Equal(t, "Original Name", again.FullName)
	assert.Equal(t, []string{"vip"}, again.Tags)
}

func TestDeleteCustomerCascadesVehicles(t *testing.T) {
	r := NewCustomerRepository()
	ctx := context.Background()
	c := &entity.Customer{FullName: "Cascade Test", Email: "cascade@example.com"}
	require.NoError(t, r.Create(ctx, c))
	v := &entity.Vehicle{CustomerId: c.Id, Make: "Honda", Model: "Civic", Year: 2020}
	require.NoError(t, r.CreateVehicle(ctx, v))

	deleted, err := r.Delete(ctx, c.Id)
	require.NoError(t, err)
	require.True(t, deleted)

	gone, err := r.FindVehicleByID(ctx, v.Id)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
