package controllers

import (
	"context"
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/bind"
	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/response"
	"github.com/shashiranjanraj/vastra/pkg/storage"
	"github.com/shashiranjanraj/vastra/pkg/upload"
	"github.com/shashiranjanraj/vastra/pkg/validate"
)

// hexID is the lexical shape of a store-assigned id. Malformed ids are
// rejected with 400 before any query is issued.
var hexID = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ProductStore is what the product endpoints need from the products
// collection.
type ProductStore interface {
	All(ctx context.Context, category string) ([]models.Product, error)
	SortedByID(ctx context.Context, ascending bool) ([]models.Product, error)
	SortedByPrice(ctx context.Context, ascending bool) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error)
	Delete(ctx context.Context, id string) (*models.Product, error)
}

// ProductController serves the product routes. The admin routes are "admin"
// by path convention only — the API has never had an auth layer, and adding
// one would change the observable contract.
type ProductController struct {
	store ProductStore
	disk  storage.Disk
}

func NewProductController(store ProductStore, disk storage.Disk) *ProductController {
	return &ProductController{store: store, disk: disk}
}

// Index handles GET /getAllProducts with optional exact-match ?category=.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.store.All(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		logger.WithCtx(r.Context()).Error("fetch products", "error", err)
		response.Error(w, http.StatusInternalServerError, "An error occurred while fetching products")
		return
	}
	response.Success(w, products)
}

// Newest handles GET /newest: all products, most recently created first.
// Creation order is approximated by descending _id.
func (c *ProductController) Newest(w http.ResponseWriter, r *http.Request) {
	c.sortedByID(w, r, false)
}

// Oldest handles GET /oldest: ascending _id.
func (c *ProductController) Oldest(w http.ResponseWriter, r *http.Request) {
	c.sortedByID(w, r, true)
}

func (c *ProductController) sortedByID(w http.ResponseWriter, r *http.Request, ascending bool) {
	products, err := c.store.SortedByID(r.Context(), ascending)
	if err != nil {
		logger.WithCtx(r.Context()).Error("fetch products by id order", "error", err)
		response.Error(w, http.StatusInternalServerError, "An error occurred while fetching products")
		return
	}
	response.Success(w, products)
}

// PriceHigh handles GET /price-high: price descending.
func (c *ProductController) PriceHigh(w http.ResponseWriter, r *http.Request) {
	c.sortedByPrice(w, r, false)
}

// PriceLow handles GET /price-low: price ascending.
func (c *ProductController) PriceLow(w http.ResponseWriter, r *http.Request) {
	c.sortedByPrice(w, r, true)
}

func (c *ProductController) sortedByPrice(w http.ResponseWriter, r *http.Request, ascending bool) {
	products, err := c.store.SortedByPrice(r.Context(), ascending)
	if err != nil {
		logger.WithCtx(r.Context()).Error("fetch products by price", "error", err)
		response.Error(w, http.StatusInternalServerError, "An error occurred while fetching products")
		return
	}
	response.Success(w, products)
}

// Show handles GET /{id}.
func (c *ProductController) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !hexID.MatchString(id) {
		response.Error(w, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := c.store.FindByID(r.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		response.Error(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		logger.WithCtx(r.Context()).Error("fetch product", "id", id, "error", err)
		response.Error(w, http.StatusInternalServerError, "An error occurred while fetching the product")
		return
	}

	response.Success(w, product)
}

// Store handles POST /admin/products: multipart create with a mandatory
// image in the "picture" field.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	picture, err := upload.Save(c.disk, r, "picture")
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrMissingFile):
			response.Error(w, http.StatusBadRequest, "Image is required")
		case errors.Is(err, upload.ErrNotAllowed):
			response.Error(w, http.StatusBadRequest, upload.ErrNotAllowed.Error())
		default:
			logger.WithCtx(r.Context()).Error("store product image", "error", err)
			response.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	product, errMsg := productFromForm(r, picture)
	if errMsg != "" {
		response.Error(w, http.StatusBadRequest, errMsg)
		return
	}

	if err := c.store.Create(r.Context(), product); err != nil {
		logger.WithCtx(r.Context()).Error("create product", "error", err)
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	response.Created(w, product)
}

// productFromForm builds and validates a Product from the multipart fields.
// Returns a non-empty message on failure.
func productFromForm(r *http.Request, picture string) (*models.Product, string) {
	product := &models.Product{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Picture:     picture,
	}

	if raw := r.FormValue("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, "The price field must be a number."
		}
		product.Price = price
	}
	if raw := r.FormValue("Discounted_price"); raw != "" {
		discounted, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, "The Discounted_price field must be a number."
		}
		product.DiscountedPrice = discounted
	}
	if raw := r.FormValue("ratings"); raw != "" {
		ratings, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, "The ratings field must be a number."
		}
		product.Ratings = ratings
	}

	if errs := validate.Struct(product); validate.HasErrors(errs) {
		return nil, validate.ErrorMessage(errs)
	}

	return product, ""
}

// Update handles PUT /admin/products/{id}: partial update, re-validated.
func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	var update models.ProductUpdate
	if _, err := bind.JSON(r, &update); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	if errs := update.Validate(); validate.HasErrors(errs) {
		response.Error(w, http.StatusBadRequest, validate.ErrorMessage(errs))
		return
	}

	product, err := c.store.Update(r.Context(), chi.URLParam(r, "id"), update)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Product not found")
	case err != nil:
		// The update path reports every store failure as a 400 with the
		// raw message, including malformed ids.
		response.Error(w, http.StatusBadRequest, err.Error())
	default:
		response.Success(w, product)
	}
}

// Destroy handles DELETE /admin/products/{id}.
func (c *ProductController) Destroy(w http.ResponseWriter, r *http.Request) {
	_, err := c.store.Delete(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		response.Error(w, http.StatusNotFound, "Product not found")
	case err != nil:
		logger.WithCtx(r.Context()).Error("delete product", "error", err)
		response.Error(w, http.StatusInternalServerError, err.Error())
	default:
		response.Message(w, http.StatusOK, "Product deleted successfully")
	}
}
