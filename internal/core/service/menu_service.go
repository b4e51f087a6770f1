package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/foodexpress/foodexpress-api/internal/core/domain"
	"github.com/foodexpress/foodexpress-api/internal/core/ports"
)

// MenuService implements menu CRUD. Create and Update verify that the
// referenced restaurant exists before persisting.
type MenuService struct {
	repo        ports.MenuRepository
	restaurants ports.RestaurantRepository
	logger      zerolog.Logger
}

func NewMenuService(repo ports.MenuRepository, restaurants ports.RestaurantRepository, logger zerolog.Logger) *MenuService {
	return &MenuService{repo: repo, restaurants: restaurants, logger: logger}
}

func (s *MenuService) Create(ctx context.Context, input ports.MenuInput) (*domain.Menu, error) {
	if _, err := s.restaurants.FindByID(ctx, input.RestaurantID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Menu{
		RestaurantID: input.RestaurantID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Category:     input.Category,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("menu_id", created.ID).Str("restaurant_id", created.RestaurantID).Msg("menu created")
	return created, nil
}

func (s *MenuService) Get(ctx context.Context, id string) (*domain.Menu, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *MenuService) List(ctx context.Context, input ports.ListMenusInput) (*ports.MenuPage, error) {
	page, limit := normalizePage(input.Page, input.Limit)
	sortField := "name"
	switch input.SortBy {
	case "price", "category":
		sortField = input.SortBy
	}
	sortAsc := input.SortOrder != "desc"

	data, total, err := s.repo.FindPage(ctx, input.RestaurantID, sortField, sortAsc, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	return &ports.MenuPage{
		Data:       data,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
		TotalItems: total,
	}, nil
}

func (s *MenuService) Update(ctx context.Context, id string, input ports.MenuInput) (*domain.Menu, error) {
	if _, err := s.restaurants.FindByID(ctx, input.RestaurantID); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, ports.MenuPatch{
		RestaurantID: input.RestaurantID,
		Name:         input.Name,
		Description:  input.Description,
		Price:        input.Price,
		Category:     input.Category,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("menu_id", id).Msg("menu updated")
	return updated, nil
}

func (s *MenuService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("menu_id", id).Msg("menu deleted")
	return nil
}
