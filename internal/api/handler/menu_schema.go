package handler

import "github.com/foodexpress/foodexpress-api/internal/core/domain"

type menuRequest struct {
	RestaurantID string   `json:"restaurant_id" validate:"required"`
	Name         string   `json:"name"          validate:"required,min=2"`
	Description  string   `json:"description"`
	// Price is a pointer so a free item (0) still passes required.
	Price    *float64 `json:"price"    validate:"required,gte=0"`
	Category string   `json:"category" validate:"required"`
}

type menuResponse struct {
	Menu *domain.Menu `json:"menu"`
}

type listMenusResponse struct {
	Data       []domain.Menu      `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
