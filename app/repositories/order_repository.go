package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/pkg/metrics"
)

// OrderRepository handles the orders collection.
type OrderRepository struct {
	orders   *mongo.Collection
	products *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		orders:   db.Collection("orders"),
		products: db.Collection("products"),
	}
}

// Create persists a new order, stamping createdAt/updatedAt.
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) error {
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	defer metrics.ObserveQuery("insert", time.Now())

	res, err := r.orders.InsertOne(ctx, order)
	if err != nil {
		return fmt.Errorf("orders: insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		order.ID = oid
	}
	return nil
}

// AllExpanded returns every order, newest first, with each line item's
// product reference expanded to the full product document. The expansion is
// a single $in fetch joined in memory; a productId that no longer resolves
// stays null, exactly like a dangling populate.
func (r *OrderRepository) AllExpanded(ctx context.Context) ([]models.OrderView, error) {
	defer metrics.ObserveQuery("find", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.orders.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("orders: find: %w", err)
	}
	defer cur.Close(ctx)

	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("orders: decode: %w", err)
	}

	lookup, err := r.productLookup(ctx, orders)
	if err != nil {
		return nil, err
	}

	views := make([]models.OrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, o.View(lookup))
	}
	return views, nil
}

// Delete removes an order and returns the deleted document.
func (r *OrderRepository) Delete(ctx context.Context, id string) (*models.Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	defer metrics.ObserveQuery("delete", time.Now())

	var order models.Order
	err = r.orders.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("orders: delete %s: %w", id, err)
	}
	return &order, nil
}

// productLookup fetches every product referenced by the given orders.
func (r *OrderRepository) productLookup(ctx context.Context, orders []models.Order) (map[primitive.ObjectID]*models.Product, error) {
	seen := map[primitive.ObjectID]bool{}
	ids := []primitive.ObjectID{}
	for _, o := range orders {
		for _, li := range o.Products {
			if !seen[li.ProductID] {
				seen[li.ProductID] = true
				ids = append(ids, li.ProductID)
			}
		}
	}

	lookup := make(map[primitive.ObjectID]*models.Product, len(ids))
	if len(ids) == 0 {
		return lookup, nil
	}

	defer metrics.ObserveQuery("find", time.Now())

	cur, err := r.products.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("orders: expand products: %w", err)
	}
	defer cur.Close(ctx)

	var products []models.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("orders: decode products: %w", err)
	}

	for i := range products {
		lookup[products[i].ID] = &products[i]
	}
	return lookup, nil
}
