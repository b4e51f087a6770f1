package handler

import "github.com/foodexpress/foodexpress-api/internal/core/domain"

type restaurantRequest struct {
	Name         string `json:"name"          validate:"required,min=2"`
	Address      string `json:"address"       validate:"required"`
	Phone        string `json:"phone"         validate:"required"`
	OpeningHours string `json:"opening_hours" validate:"required"`
}

type restaurantResponse struct {
	Restaurant *domain.Restaurant `json:"restaurant"`
}

type listRestaurantsResponse struct {
	Data       []domain.Restaurant `json:"data"`
	Pagination paginationResponse  `json:"pagination"`
}
