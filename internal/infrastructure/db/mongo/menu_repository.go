package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/foodexpress/foodexpress-api/internal/core/domain"
	"github.com/foodexpress/foodexpress-api/internal/core/ports"
)

const menusCollection = "menus"

type MenuRepository struct {
	coll *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{coll: db.Collection(menusCollection)}
}

type menuDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	RestaurantID primitive.ObjectID `bson:"restaurant_id"`
	Name         string             `bson:"name"`
	Description  string             `bson:"description,omitempty"`
	Price        float64            `bson:"price"`
	Category     string             `bson:"category"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d menuDoc) toDomain() domain.Menu {
	return domain.Menu{
		ID:           d.ID.Hex(),
		RestaurantID: d.RestaurantID.Hex(),
		Name:         d.Name,
		Description:  d.Description,
		Price:        d.Price,
		Category:     d.Category,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

// EnsureIndexes creates the restaurant_id index backing the list filter
// and the cascade delete.
func (r *MenuRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "restaurant_id", Value: 1}},
	})
	return err
}

func (r *MenuRepository) Create(ctx context.Context, menu *domain.Menu) (*domain.Menu, error) {
	rid, err := primitive.ObjectIDFromHex(menu.RestaurantID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := menuDoc{
		RestaurantID: rid,
		Name:         menu.Name,
		Description:  menu.Description,
		Price:        menu.Price,
		Category:     menu.Category,
		CreatedAt:    menu.CreatedAt,
		UpdatedAt:    menu.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert menu: %w", err)
	}

	created := *menu
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *MenuRepository) FindByID(ctx context.Context, id string) (*domain.Menu, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc menuDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, fmt.Errorf("find menu: %w", err)
	}

	menu := doc.toDomain()
	return &menu, nil
}

func (r *MenuRepository) FindPage(ctx context.Context, restaurantID, sortField string, sortAsc bool, skip, limit int) ([]domain.Menu, int64, error) {
	filter := bson.M{}
	if restaurantID != "" {
		rid, err := primitive.ObjectIDFromHex(restaurantID)
		if err != nil {
			return nil, 0, domain.ErrInvalidID
		}
		filter["restaurant_id"] = rid
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	dir := 1
	if !sortAsc {
		dir = -1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: dir}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list menus: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []menuDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode menus: %w", err)
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count menus: %w", err)
	}

	menus := make([]domain.Menu, len(docs))
	for i, d := range docs {
		menus[i] = d.toDomain()
	}
	return menus, total, nil
}

func (r *MenuRepository) Update(ctx context.Context, id string, patch ports.MenuPatch) (*domain.Menu, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	rid, err := primitive.ObjectIDFromHex(patch.RestaurantID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc menuDoc
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"restaurant_id": rid,
			"name":          patch.Name,
			"description":   patch.Description,
			"price":         patch.Price,
			"category":      patch.Category,
			"updated_at":    time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, fmt.Errorf("update menu: %w", err)
	}

	menu := doc.toDomain()
	return &menu, nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete menu: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrMenuNotFound
	}
	return nil
}

// DeleteByRestaurant removes every menu referencing restaurantID.
func (r *MenuRepository) DeleteByRestaurant(ctx context.Context, restaurantID string) (int64, error) {
	rid, err := primitive.ObjectIDFromHex(restaurantID)
	if err != nil {
		return 0, domain.ErrInvalidID
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteMany(ctx, bson.M{"restaurant_id": rid})
	if err != nil {
		return 0, fmt.Errorf("cascade delete menus: %w", err)
	}
	return res.DeletedCount, nil
}
