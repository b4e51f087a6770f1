package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foodexpress/foodexpress-api/internal/core/ports"
)

// MenuHandler handles HTTP requests for menus. Reads are public; writes
// sit behind the admin gate in the router.
type MenuHandler struct {
	service ports.MenuService
}

func NewMenuHandler(service ports.MenuService) *MenuHandler {
	return &MenuHandler{service: service}
}

// List returns a page of menus, optionally filtered by restaurant.
//
// @Summary      List menus
// @Tags         menus
// @Produce      json
// @Param        restaurant_id  query     string  false  "Filter by restaurant id"
// @Param        sort_by        query     string  false  "name, price or category"
// @Param        sort_order     query     string  false  "asc or desc"
// @Param        page           query     int     false  "Page number (1-based)"
// @Param        limit          query     int     false  "Page size"
// @Success      200            {object}  listMenusResponse
// @Router       /menus [get]
func (h *MenuHandler) List(c echo.Context) error {
	page, err := h.service.List(c.Request().Context(), ports.ListMenusInput{
		ListInput:    listInputFromQuery(c),
		RestaurantID: c.QueryParam("restaurant_id"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, listMenusResponse{
		Data: page.Data,
		Pagination: paginationResponse{
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
			TotalItems: page.TotalItems,
		},
	})
}

// Get returns one menu by id.
//
// @Summary      Get a menu
// @Tags         menus
// @Produce      json
// @Param        id   path      string  true  "Menu id"
// @Success      200  {object}  nil
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /menus/{id} [get]
func (h *MenuHandler) Get(c echo.Context) error {
	menu, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, menu)
}

// Create adds a menu to a restaurant. Admin only; the referenced
// restaurant must exist.
//
// @Summary      Create a menu
// @Tags         menus
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      menuRequest  true  "Menu details"
// @Success      201   {object}  menuResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /menus [post]
func (h *MenuHandler) Create(c echo.Context) error {
	var req menuRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	menu, err := h.service.Create(c.Request().Context(), ports.MenuInput{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        *req.Price,
		Category:     req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, menuResponse{Menu: menu})
}

// Update replaces a menu's fields. Admin only.
//
// @Summary      Update a menu
// @Tags         menus
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Menu id"
// @Param        body  body      menuRequest  true  "Menu details"
// @Success      200   {object}  menuResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /menus/{id} [put]
func (h *MenuHandler) Update(c echo.Context) error {
	var req menuRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	menu, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.MenuInput{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        *req.Price,
		Category:     req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, menuResponse{Menu: menu})
}

// Delete removes a menu. Admin only.
//
// @Summary      Delete a menu
// @Tags         menus
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Menu id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /menus/{id} [delete]
func (h *MenuHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "menu deleted"})
}
