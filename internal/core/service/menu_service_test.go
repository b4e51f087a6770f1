package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/foodexpress/foodexpress-api/internal/core/domain"
	"github.com/foodexpress/foodexpress-api/internal/core/ports"
)

func newMenuFixture(t *testing.T) (*MenuService, *RestaurantService, *domain.Restaurant) {
	t.Helper()
	restaurants := newStubRestaurantRepo()
	menus := newStubMenuRepo()
	restaurantSvc := NewRestaurantService(restaurants, menus, nil, testLogger())
	menuSvc := NewMenuService(menus, restaurants, testLogger())
	return menuSvc, restaurantSvc, newRestaurant(t, restaurantSvc, "Fixture Kitchen")
}

func TestMenuService_Create_UnknownRestaurant(t *testing.T) {
	svc, _, _ := newMenuFixture(t)

	_, err := svc.Create(context.Background(), ports.MenuInput{
		RestaurantID: "nope",
		Name:         "orphan",
		Price:        3,
		Category:     "main",
	})
	if err != domain.ErrRestaurantNotFound {
		t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
	}
}

func TestMenuService_Update_UnknownRestaurant(t *testing.T) {
	svc, _, restaurant := newMenuFixture(t)

	created, err := svc.Create(context.Background(), ports.MenuInput{
		RestaurantID: restaurant.ID,
		Name:         "soup",
		Price:        5,
		Category:     "starter",
	})
	if err != nil {
		t.Fatalf("create menu: %v", err)
	}

	_, err = svc.Update(context.Background(), created.ID, ports.MenuInput{
		RestaurantID: "nope",
		Name:         "soup",
		Price:        5,
		Category:     "starter",
	})
	if err != domain.ErrRestaurantNotFound {
		t.Fatalf("expected ErrRestaurantNotFound, got %v", err)
	}
}

func TestMenuService_List_RestaurantFilter(t *testing.T) {
	svc, restaurantSvc, first := newMenuFixture(t)
	second := newRestaurant(t, restaurantSvc, "Second Kitchen")

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(context.Background(), ports.MenuInput{
			RestaurantID: first.ID,
			Name:         fmt.Sprintf("first-%d", i),
			Price:        float64(i),
			Category:     "main",
		}); err != nil {
			t.Fatalf("create menu: %v", err)
		}
	}
	if _, err := svc.Create(context.Background(), ports.MenuInput{
		RestaurantID: second.ID,
		Name:         "other",
		Price:        1,
		Category:     "main",
	}); err != nil {
		t.Fatalf("create menu: %v", err)
	}

	filtered, err := svc.List(context.Background(), ports.ListMenusInput{RestaurantID: first.ID})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if filtered.TotalItems != 3 {
		t.Fatalf("expected 3 filtered menus, got %d", filtered.TotalItems)
	}
	for _, m := range filtered.Data {
		if m.RestaurantID != first.ID {
			t.Fatalf("filter leaked menu for restaurant %q", m.RestaurantID)
		}
	}

	all, err := svc.List(context.Background(), ports.ListMenusInput{})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if all.TotalItems != 4 {
		t.Fatalf("expected 4 unfiltered menus, got %d", all.TotalItems)
	}
}

func TestMenuService_List_SortByPrice(t *testing.T) {
	svc, _, restaurant := newMenuFixture(t)

	prices := []float64{7.5, 2, 12}
	for i, p := range prices {
		if _, err := svc.Create(context.Background(), ports.MenuInput{
			RestaurantID: restaurant.ID,
			Name:         fmt.Sprintf("dish-%d", i),
			Price:        p,
			Category:     "main",
		}); err != nil {
			t.Fatalf("create menu: %v", err)
		}
	}

	page, err := svc.List(context.Background(), ports.ListMenusInput{
		ListInput: ports.ListInput{SortBy: "price"},
	})
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if page.Data[0].Price != 2 || page.Data[2].Price != 12 {
		t.Fatalf("expected ascending price order, got %v %v %v",
			page.Data[0].Price, page.Data[1].Price, page.Data[2].Price)
	}

	// Unknown sort keys fall back to name ordering rather than erroring.
	if _, err := svc.List(context.Background(), ports.ListMenusInput{
		ListInput: ports.ListInput{SortBy: "bogus"},
	}); err != nil {
		t.Fatalf("List with unknown sort key returned error: %v", err)
	}
}

func TestMenuService_Delete_NotFound(t *testing.T) {
	svc, _, _ := newMenuFixture(t)
	if err := svc.Delete(context.Background(), "missing"); err != domain.ErrMenuNotFound {
		t.Fatalf("expected ErrMenuNotFound, got %v", err)
	}
}
