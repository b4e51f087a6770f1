package ports

import (
	"context"

	"github.com/foodexpress/foodexpress-api/internal/core/domain"
)

// MenuPatch carries the fields of a menu update.
type MenuPatch struct {
	RestaurantID string
	Name         string
	Description  string
	Price        float64
	Category     string
}

// MenuRepository defines persistence for menu records.
type MenuRepository interface {
	Create(ctx context.Context, m *domain.Menu) (*domain.Menu, error)
	FindByID(ctx context.Context, id string) (*domain.Menu, error)
	// FindPage returns one page of menus and the total matching count.
	// An empty restaurantID means no restaurant filter.
	FindPage(ctx context.Context, restaurantID, sortField string, sortAsc bool, skip, limit int) ([]domain.Menu, int64, error)
	Update(ctx context.Context, id string, patch MenuPatch) (*domain.Menu, error)
	Delete(ctx context.Context, id string) error
	// DeleteByRestaurant removes every menu referencing restaurantID and
	// returns how many were removed. Used by the restaurant cascade.
	DeleteByRestaurant(ctx context.Context, restaurantID string) (int64, error)
}
