package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foodexpress/foodexpress-api/internal/core/ports"
)

// RestaurantHandler handles HTTP requests for restaurants. Reads are
// public; writes sit behind the admin gate in the router.
type RestaurantHandler struct {
	service ports.RestaurantService
}

func NewRestaurantHandler(service ports.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{service: service}
}

// List returns a page of restaurants.
//
// @Summary      List restaurants
// @Tags         restaurants
// @Produce      json
// @Param        sort_by     query     string  false  "name or address"
// @Param        sort_order  query     string  false  "asc or desc"
// @Param        page        query     int     false  "Page number (1-based)"
// @Param        limit       query     int     false  "Page size"
// @Success      200         {object}  listRestaurantsResponse
// @Router       /restaurants [get]
func (h *RestaurantHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), listInputFromQuery(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listRestaurantsResponse{
		Data: page.Data,
		Pagination: paginationResponse{
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
			TotalItems: page.TotalItems,
		},
	})
}

// Get returns one restaurant by id.
//
// @Summary      Get a restaurant
// @Tags         restaurants
// @Produce      json
// @Param        id   path      string  true  "Restaurant id"
// @Success      200  {object}  nil
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /restaurants/{id} [get]
func (h *RestaurantHandler) Get(c echo.Context) error {
	restaurant, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, restaurant)
}

// Create adds a restaurant. Admin only.
//
// @Summary      Create a restaurant
// @Tags         restaurants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      restaurantRequest  true  "Restaurant details"
// @Success      201   {object}  restaurantResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /restaurants [post]
func (h *RestaurantHandler) Create(c echo.Context) error {
	var req restaurantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	restaurant, err := h.service.Create(c.Request().Context(), ports.RestaurantInput{
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
		OpeningHours: req.OpeningHours,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, restaurantResponse{Restaurant: restaurant})
}

// Update replaces a restaurant's fields. Admin only.
//
// @Summary      Update a restaurant
// @Tags         restaurants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Restaurant id"
// @Param        body  body      restaurantRequest  true  "Restaurant details"
// @Success      200   {object}  restaurantResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /restaurants/{id} [put]
func (h *RestaurantHandler) Update(c echo.Context) error {
	var req restaurantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	restaurant, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.RestaurantInput{
		Name:         req.Name,
		Address:      req.Address,
		Phone:        req.Phone,
		OpeningHours: req.OpeningHours,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, restaurantResponse{Restaurant: restaurant})
}

// Delete removes a restaurant and cascades over its menus. Admin only.
//
// @Summary      Delete a restaurant
// @Tags         restaurants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Restaurant id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /restaurants/{id} [delete]
func (h *RestaurantHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "restaurant and associated menus deleted"})
}
