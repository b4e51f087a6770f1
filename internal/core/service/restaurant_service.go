package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/foodexpress/foodexpress-api/internal/api/metrics"
	"github.com/foodexpress/foodexpress-api/internal/core/domain"
	"github.com/foodexpress/foodexpress-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// RestaurantService implements restaurant CRUD with a best-effort read
// cache in front of public single-restaurant reads. Deleting a
// restaurant cascades over its menus before success is reported.
type RestaurantService struct {
	repo   ports.RestaurantRepository
	menus  ports.MenuRepository
	cache  ports.RestaurantCache
	logger zerolog.Logger
}

func NewRestaurantService(repo ports.RestaurantRepository, menus ports.MenuRepository, cache ports.RestaurantCache, logger zerolog.Logger) *RestaurantService {
	return &RestaurantService{repo: repo, menus: menus, cache: cache, logger: logger}
}

func (s *RestaurantService) Create(ctx context.Context, input ports.RestaurantInput) (*domain.Restaurant, error) {
	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Restaurant{
		Name:         input.Name,
		Address:      input.Address,
		Phone:        input.Phone,
		OpeningHours: input.OpeningHours,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("restaurant_id", created.ID).Str("name", created.Name).Msg("restaurant created")
	return created, nil
}

func (s *RestaurantService) Get(ctx context.Context, id string) (*domain.Restaurant, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, id); ok {
			metrics.RestaurantCacheTotal.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.RestaurantCacheTotal.WithLabelValues("miss").Inc()
	}

	r, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, r)
	}
	return r, nil
}

func (s *RestaurantService) List(ctx context.Context, input ports.ListInput) (*ports.RestaurantPage, error) {
	page, limit := normalizePage(input.Page, input.Limit)
	sortField := "name"
	if input.SortBy == "address" {
		sortField = "address"
	}
	sortAsc := input.SortOrder != "desc"

	data, total, err := s.repo.FindPage(ctx, sortField, sortAsc, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}

	return &ports.RestaurantPage{
		Data:       data,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages(total, limit),
		TotalItems: total,
	}, nil
}

func (s *RestaurantService) Update(ctx context.Context, id string, input ports.RestaurantInput) (*domain.Restaurant, error) {
	updated, err := s.repo.Update(ctx, id, ports.RestaurantPatch{
		Name:         input.Name,
		Address:      input.Address,
		Phone:        input.Phone,
		OpeningHours: input.OpeningHours,
	})
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	s.logger.Info().Str("restaurant_id", id).Msg("restaurant updated")
	return updated, nil
}

// Delete removes the restaurant, then removes every menu referencing it.
// The cascade is best-effort: there is no multi-document transaction,
// but it must be attempted before success is returned.
func (s *RestaurantService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	removed, err := s.menus.DeleteByRestaurant(ctx, id)
	if err != nil {
		return err
	}
	metrics.MenusCascadeDeletedTotal.Add(float64(removed))

	if s.cache != nil {
		s.cache.Invalidate(ctx, id)
	}
	s.logger.Info().Str("restaurant_id", id).Int64("menus_removed", removed).Msg("restaurant deleted")
	return nil
}

// normalizePage clamps page/limit to sane positive values.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	return page, limit
}

// totalPages is ceil(total/limit), never negative.
func totalPages(total int64, limit int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
