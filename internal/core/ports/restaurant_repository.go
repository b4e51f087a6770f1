package ports

import (
	"context"

	"github.com/foodexpress/foodexpress-api/internal/core/domain"
)

// RestaurantPatch carries the fields of a restaurant update.
type RestaurantPatch struct {
	Name         string
	Address      string
	Phone        string
	OpeningHours string
}

// RestaurantRepository defines persistence for restaurant records.
type RestaurantRepository interface {
	Create(ctx context.Context, r *domain.Restaurant) (*domain.Restaurant, error)
	FindByID(ctx context.Context, id string) (*domain.Restaurant, error)
	// FindPage returns one page of restaurants plus the unfiltered total.
	FindPage(ctx context.Context, sortField string, sortAsc bool, skip, limit int) ([]domain.Restaurant, int64, error)
	Update(ctx context.Context, id string, patch RestaurantPatch) (*domain.Restaurant, error)
	Delete(ctx context.Context, id string) error
}
