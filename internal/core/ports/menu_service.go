package ports

import (
	"context"

	"github.com/foodexpress/foodexpress-api/internal/core/domain"
)

// MenuInput carries the data for creating or replacing a menu.
type MenuInput struct {
	RestaurantID string
	Name         string
	Description  string
	Price        float64
	Category     string
}

// ListMenusInput extends the shared list parameters with an optional
// restaurant filter.
type ListMenusInput struct {
	ListInput
	RestaurantID string
}

// MenuPage is the paginated list envelope for menus.
type MenuPage struct {
	Data       []domain.Menu
	Page       int
	Limit      int
	TotalPages int
	TotalItems int64
}

// MenuService defines menu use cases. Reads are public; writes are
// restricted to admins at the routing layer.
type MenuService interface {
	Create(ctx context.Context, input MenuInput) (*domain.Menu, error)
	Get(ctx context.Context, id string) (*domain.Menu, error)
	List(ctx context.Context, input ListMenusInput) (*MenuPage, error)
	Update(ctx context.Context, id string, input MenuInput) (*domain.Menu, error)
	Delete(ctx context.Context, id string) error
}
