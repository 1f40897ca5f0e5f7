// Package controllers holds the HTTP handlers for the storefront API.
package controllers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/repositories"
	"github.com/shashiranjanraj/vastra/pkg/bind"
	"github.com/shashiranjanraj/vastra/pkg/logger"
	"github.com/shashiranjanraj/vastra/pkg/response"
	"github.com/shashiranjanraj/vastra/pkg/validate"
)

// OrderStore is what the order endpoints need from the orders collection.
type OrderStore interface {
	Create(ctx context.Context, order *models.Order) error
	AllExpanded(ctx context.Context) ([]models.OrderView, error)
	Delete(ctx context.Context, id string) (*models.Order, error)
}

// OrderController serves the order routes. Unlike the product routes, this
// surface reports every failure — validation included — as a 500 with the
// error message; that asymmetry is part of the contract being preserved.
type OrderController struct {
	store OrderStore
}

func NewOrderController(store OrderStore) *OrderController {
	return &OrderController{store: store}
}

// Store handles POST /api/orders. totalPrice is taken from the caller as-is
// and productId references are not checked against the products collection.
func (c *OrderController) Store(w http.ResponseWriter, r *http.Request) {
	var input models.OrderInput

	errs, err := bind.JSON(r, &input)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if validate.HasErrors(errs) {
		response.Error(w, http.StatusInternalServerError, validate.ErrorMessage(errs))
		return
	}

	order, err := input.Order()
	if err != nil {
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := c.store.Create(r.Context(), order); err != nil {
		logger.WithCtx(r.Context()).Error("create order", "error", err)
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Created(w, map[string]interface{}{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// Index handles GET /api/orders: every order, newest first, product
// references expanded. Unbounded by contract.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	orders, err := c.store.AllExpanded(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("fetch orders", "error", err)
		response.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	response.Success(w, map[string]interface{}{"orders": orders})
}

// Destroy handles POST /api/orders/{id}/delete. The route predates any order
// lifecycle: it is an unconditional hard delete, not a completion marker.
func (c *OrderController) Destroy(w http.ResponseWriter, r *http.Request) {
	order, err := c.store.Delete(r.Context(), chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		response.Message(w, http.StatusNotFound, "Order not found")
	case err != nil:
		logger.WithCtx(r.Context()).Error("delete order", "error", err)
		response.Error(w, http.StatusInternalServerError, err.Error())
	default:
		response.JSON(w, http.StatusOK, map[string]interface{}{
			"message": "Order deleted successfully",
			"order":   order,
		})
	}
}
