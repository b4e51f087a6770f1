package ports

import (
	"context"

	"github.com/foodexpress/foodexpress-api/internal/core/domain"
)

// ListInput carries the pagination and sorting parameters shared by the
// public list endpoints. Zero values fall back to the service defaults
// (page 1, limit 10, ascending name sort).
type ListInput struct {
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// RestaurantInput carries the data for creating or replacing a restaurant.
type RestaurantInput struct {
	Name         string
	Address      string
	Phone        string
	OpeningHours string
}

// RestaurantPage is the paginated list envelope returned to clients.
type RestaurantPage struct {
	Data       []domain.Restaurant
	Page       int
	Limit      int
	TotalPages int
	TotalItems int64
}

// RestaurantService defines restaurant use cases. Reads are public;
// writes are restricted to admins at the routing layer.
type RestaurantService interface {
	Create(ctx context.Context, input RestaurantInput) (*domain.Restaurant, error)
	Get(ctx context.Context, id string) (*domain.Restaurant, error)
	List(ctx context.Context, input ListInput) (*RestaurantPage, error)
	Update(ctx context.Context, id string, input RestaurantInput) (*domain.Restaurant, error)
	// Delete removes the restaurant and cascades over its menus before
	// reporting success.
	Delete(ctx context.Context, id string) error
}
