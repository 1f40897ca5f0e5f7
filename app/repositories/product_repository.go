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

// ProductRepository handles the products collection.
type ProductRepository struct {
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{col: db.Collection("products")}
}

// All returns every product, optionally restricted to an exact category
// match. No pagination — the result set is unbounded by contract.
func (r *ProductRepository) All(ctx context.Context, category string) ([]models.Product, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	return r.find(ctx, filter, nil)
}

// SortedByID returns all products ordered by _id. ObjectIDs are
// monotonically-ish increasing, so this stands in for creation order —
// products carry no timestamp field.
func (r *ProductRepository) SortedByID(ctx context.Context, ascending bool) ([]models.Product, error) {
	return r.find(ctx, bson.M{}, sortDoc("_id", ascending))
}

// SortedByPrice returns all products ordered by price.
func (r *ProductRepository) SortedByPrice(ctx context.Context, ascending bool) ([]models.Product, error) {
	return r.find(ctx, bson.M{}, sortDoc("price", ascending))
}

// FindByID fetches one product. Returns ErrInvalidID for malformed ids and
// ErrNotFound when no document matches.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	defer metrics.ObserveQuery("find", time.Now())

	var product models.Product
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("products: find %s: %w", id, err)
	}
	return &product, nil
}

// Create persists a new product and fills in its generated id.
func (r *ProductRepository) Create(ctx context.Context, product *models.Product) error {
	defer metrics.ObserveQuery("insert", time.Now())

	res, err := r.col.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("products: insert: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	return nil
}

// Update applies a partial update and returns the updated document.
func (r *ProductRepository) Update(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	set := update.Set()
	if len(set) == 0 {
		// Nothing to change; behave like an update that matched the document.
		return r.FindByID(ctx, id)
	}

	defer metrics.ObserveQuery("update", time.Now())

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var product models.Product
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("products: update %s: %w", id, err)
	}
	return &product, nil
}

// Delete removes a product and returns the deleted document.
func (r *ProductRepository) Delete(ctx context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	defer metrics.ObserveQuery("delete", time.Now())

	var product models.Product
	err = r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&product)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("products: delete %s: %w", id, err)
	}
	return &product, nil
}

func (r *ProductRepository) find(ctx context.Context, filter bson.M, sort bson.D) ([]models.Product, error) {
	defer metrics.ObserveQuery("find", time.Now())

	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("products: find: %w", err)
	}
	defer cur.Close(ctx)

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("products: decode: %w", err)
	}
	return products, nil
}

func sortDoc(field string, ascending bool) bson.D {
	dir := -1
	if ascending {
		dir = 1
	}
	return bson.D{{Key: field, Value: dir}}
}
