package contract

import (
	"context"

	"detailops-be/internal/entity"
)

// Activities are append-only; there is no update or delete.
type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	FindRecent(ctx context.Context, limit int) ([]*entity.Activity, error)
}
