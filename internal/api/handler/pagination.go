package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/foodexpress/foodexpress-api/internal/core/ports"
)

// listInputFromQuery parses the shared pagination/sorting query
// parameters. Unparseable values fall back to the service defaults.
func listInputFromQuery(c echo.Context) ports.ListInput {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	return ports.ListInput{
		SortBy:    c.QueryParam("sort_by"),
		SortOrder: c.QueryParam("sort_order"),
		Page:      page,
		Limit:     limit,
	}
}

type paginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
	TotalItems int64 `json:"total_items"`
}
