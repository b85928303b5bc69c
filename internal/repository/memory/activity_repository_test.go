package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detailops-be/internal/entity"
)

func TestFindRecentNewestFirst(t *testing.T) {
	r := NewActivityRepository()
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		require.NoError(t, r.Create(ctx, &entity.Activity{
			Type:        entity.ActivityJobScheduled,
			Description: "entry",
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
		}))
	}

	recent, err := r.FindRecent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, 5, recent[0].Id)
	assert.Equal(t, 4, recent[1].Id)
	assert.Equal(t, 3, recent[2].Id)
}

func TestFindRecentTiesBreakOnId(t *testing.T) {
	r := NewActivityRepository()
	ctx := context.Background()

	// Same timestamp for every entry; newest id wins.
	ts := time.Now()
	for i := 0; i < 4; i++ {
		require.NoError(t, r.Create(ctx, &entity.Activity{
			Type:        entity.ActivityPaymentReceived,
			Description: "tie",
			CreatedAt:   ts,
		}))
	}

	recent, err := r.FindRecent(ctx, 4)
	require.NoError(t, err)
	require.Len(t, recent, 4)
	for i, a := range recent {
		assert.Equal(t, 4-i, a.Id)
	}
}

func TestFindRecentLimitExceedsEntries(t *testing.T) {
	r := NewActivityRepository()
	ctx := context.Background()
	require.NoError(t, r.Create(ctx, &entity.Activity{Type: entity.ActivityCustomerCreated, CreatedAt: time.Now()}))

	recent, err := r.FindRecent(ctx, 50)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}
