package ports

import (
	"context"

	"github.com/foodexpress/foodexpress-api/internal/core/domain"
)

// RestaurantCache is a best-effort read cache in front of public
// restaurant reads. Implementations must treat every operation as
// optional: a cache failure never fails the request.
type RestaurantCache interface {
	Get(ctx context.Context, id string) (*domain.Restaurant, bool)
	Set(ctx context.Context, r *domain.Restaurant)
	Invalidate(ctx context.Context, id string)
}
