package memory

import (
	"context"
	"sort"
	"sync"

	"detailops-be/internal/entity"
)

type ActivityRepository struct {
	mu         sync.RWMutex
	activities map[int]*entity.Activity
	nextId     int
}

func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{
		activities: make(map[int]*entity.Activity),
		nextId:     1,
	}
}

func cloneActivity(a *entity.Activity) *entity.Activity {
	out := *a
	if a.Metadata != nil {
		out.Metadata = make(map[string]interface{}, len(a.Metadata))
		for k, v := range a.Metadata {
			out.Metadata[k] = v
		}
	}
	return &out
}

func (r *ActivityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	activity.Id = r.nextId
	r.nextId++
	r.activities[activity.Id] = cloneActivity(activity)
	return nil
}

// FindRecent returns activities newest first. Ties on CreatedAt fall back to
// id so the order is stable within a burst of writes.
func (r *ActivityRepository) FindRecent(ctx context.Context, limit int) ([]*entity.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]*entity.Activity, 0, len(r.activities))
	for _, a := range r.activities {
		result = append(result, cloneActivity(a))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].Id > result[j].Id
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
