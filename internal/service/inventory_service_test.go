package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detailops-be/internal/dto"
)

func newInventoryFixture(t *testing.T) (IInventoryService, int) {
	t.Helper()
	store := newTestStore()
	inventory := NewInventoryService(store, newTestActivityService(store), nil, nopLogger{})

	item, err := inventory.CreateItem(context.Background(), &dto.CreateInventoryItemRequest{
		Name:          "Clay Bar",
		Sku:           "CLAY-100",
		UnitPrice:     25,
		CostPrice:     12,
		MinStockLevel: 5,
	})
	require.NoError(t, err)
	return inventory, item.Id
}

func TestCreateItemStartsAtZeroStock(t *testing.T) {
	inventory, itemId := newInventoryFixture(t)

	item, err := inventory.ShowItem(context.Background(), itemId)
	require.NoError(t, err)
	assert.Zero(t, item.QuantityInStock)
	assert.True(t, item.LowStock)
}

func TestCreateItemDuplicateSku(t *testing.T) {
	inventory, _ := newInventoryFixture(t)

	_, err := inventory.CreateItem(context.Background(), &dto.CreateInventoryItemRequest{
		Name: "Another Clay Bar",
		Sku:  "CLAY-100",
	})
	var statusErr *dto.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 409, statusErr.Code)
}

func TestStockMovements(t *testing.T) {
	inventory, itemId := newInventoryFixture(t)
	ctx := context.Background()

	_, err := inventory.RecordTransaction(ctx, 1, &dto.CreateInventoryTransactionRequest{
		InventoryItemId: itemId, Quantity: 20, Type: "in",
	})
	require.NoError(t, err)

	_, err = inventory.RecordTransaction(ctx, 1, &dto.CreateInventoryTransactionRequest{
		InventoryItemId: itemId, Quantity: 6, Type: "out",
	})
	require.NoError(t, err)

	item, err := inventory.ShowItem(ctx, itemId)
	require.NoError(t, err)
	assert.Equal(t, 14, item.QuantityInStock)
}

func TestRejectedOutLeavesNothingBehind(t *testing.T) {
	inventory, itemId := newInventoryFixture(t)
	ctx := context.Background()

	_, err := inventory.RecordTransaction(ctx, 1, &dto.CreateInventoryTransactionRequest{
		InventoryItemId: itemId, Quantity: 3, Type: "in",
	})
	require.NoError(t, err)

	_, err = inventory.RecordTransaction(ctx, 1, &dto.CreateInventoryTransactionRequest{
		InventoryItemId: itemId, Quantity: 10, Type: "out",
	})
	var stockErr *dto.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 10, stockErr.Requested)
	assert.Equal(t, 3, stockErr.Available)

	// Neither the stock level nor the ledger moved.
	item, err := inventory.ShowItem(ctx, itemId)
	require.NoError(t, err)
	assert.Equal(t, 3, item.QuantityInStock)

	txs, err := inventory.GetItemTransactions(ctx, itemId)
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestAdjustmentOverwritesStock(t *testing.T) {
	inventory, itemId := newInventoryFixture(t)
	ctx := context.Background()

	_, err := inventory.RecordTransaction(ctx, 1, &dto.CreateInventoryTransactionRequest{
		InventoryItemId: itemId, Quantity: 50, Type: "in",
	})
	require.NoError(t, err)

	// Physical count found 42; adjustment sets the total, not a delta.
	_, err = inventory.RecordTransaction(ctx, 1, &dto.CreateInventoryTransactionRequest{
		InventoryItemId: itemId, Quantity: 42, Type: "adjustment",
	})
	require.NoError(t, err)

	item, err := inventory.ShowItem(ctx, itemId)
	require.NoError(t, err)
	assert.Equal(t, 42, item.QuantityInStock)
}

func TestDeleteItemWithHistoryDeactivates(t *testing.T) {
	inventory, itemId := newInventoryFixture(t)
	ctx := context.Background()

	_, err := inventory.RecordTransaction(ctx, 1, &dto.CreateInventoryTransactionRequest{
		InventoryItemId: itemId, Quantity: 5, Type: "in",
	})
	require.NoError(t, err)

	deleted, deactivated, err := inventory.DeleteItem(ctx, itemId)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.True(t, deactivated)

	item, err := inventory.ShowItem(ctx, itemId)
	require.NoError(t, err)
	assert.False(t, item.IsActive)
}

func TestDeleteItemWithoutHistoryRemoves(t *testing.T) {
	inventory, itemId := newInventoryFixture(t)
	ctx := context.Background()

	deleted, deactivated, err := inventory.DeleteItem(ctx, itemId)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.False(t, deactivated)

	item, err := inventory.ShowItem(ctx, itemId)
	require.NoError(t, err)
	assert.Nil(t, item)
}

func TestTechnicianHoldingsNetsOutMinusReturn(t *testing.T) {
	inventory, itemId := newInventoryFixture(t)
	ctx := context.Background()

	_, err := inventory.RecordTransaction(ctx, 1, &dto.CreateInventoryTransactionRequest{
		InventoryItemId: itemId, Quantity: 30, Type: "in",
	})
	require.NoError(t, err)

	techId := 7
	_, err = inventory.RecordTransaction(ctx, techId, &dto.CreateInventoryTransactionRequest{
		InventoryItemId: itemId, Quantity: 8, Type: "out",
	})
	require.NoError(t, err)
	_, err = inventory.RecordTransaction(ctx, techId, &dto.CreateInventoryTransactionRequest{
		InventoryItemId: itemId, Quantity: 3, Type: "return",
	})
	require.NoError(t, err)

	holdings, err := inventory.GetTechnicianHoldings(ctx, techId)
	require.NoError(t, err)
	require.Len(t, holdings, 1)
	assert.Equal(t, 5, holdings[0].Quantity)
	assert.Equal(t, "Clay Bar", holdings[0].ItemName)
}

func TestTechnicianHoldingsOmitsSettledItems(t *testing.T) {
	inventory, itemId := newInventoryFixture(t)
	ctx := context.Background()

	_, err := inventory.RecordTransaction(ctx, 1, &dto.CreateInventoryTransactionRequest{
		InventoryItemId: itemId, Quantity: 10, Type: "in",
	})
	require.NoError(t, err)

	techId := 9
	_, err = inventory.RecordTransaction(ctx, techId, &dto.CreateInventoryTransactionRequest{
		InventoryItemId: itemId, Quantity: 4, Type: "out",
	})
	require.NoError(t, err)
	_, err = inventory.RecordTransaction(ctx, techId, &dto.CreateInventoryTransactionRequest{
		InventoryItemId: itemId, Quantity: 4, Type: "return",
	})
	require.NoError(t, err)

	holdings, err := inventory.GetTechnicianHoldings(ctx, techId)
	require.NoError(t, err)
	assert.Empty(t, holdings)
}
