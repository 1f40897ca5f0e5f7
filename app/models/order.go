package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order is a placed order. totalPrice is supplied by the caller and is never
// recomputed against the line items; productId entries are weak references
// that are not checked against the products collection at write time. Both
// are long-standing contract, not oversights to fix here.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	CustomerName    string             `bson:"customerName"  json:"customerName"`
	CustomerEmail   string             `bson:"customerEmail" json:"customerEmail"`
	CustomerPhone   string             `bson:"customerPhone" json:"customerPhone"`
	CustomerAddress string             `bson:"customerAddress" json:"customerAddress"`
	TotalPrice      float64            `bson:"totalPrice"    json:"totalPrice"`
	Products        []LineItem         `bson:"products"      json:"products"`
	CreatedAt       time.Time          `bson:"createdAt"     json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"     json:"updatedAt"`
}

// LineItem is one (product reference, quantity) entry of an order.
type LineItem struct {
	ProductID primitive.ObjectID `bson:"productId" json:"productId"`
	Quantity  int                `bson:"quantity"  json:"quantity"`
}

// OrderInput is the order-submission body, with productId still in its hex
// string form.
type OrderInput struct {
	CustomerName    string          `json:"customerName"    validate:"required"`
	CustomerEmail   string          `json:"customerEmail"   validate:"required"`
	CustomerPhone   string          `json:"customerPhone"   validate:"required"`
	CustomerAddress string          `json:"customerAddress" validate:"required"`
	TotalPrice      float64         `json:"totalPrice"      validate:"required"`
	Products        []LineItemInput `json:"products"        validate:"required"`
}

// LineItemInput is one line item of an order-submission body.
type LineItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Order converts the input into a persistable Order, parsing each productId.
func (in OrderInput) Order() (*Order, error) {
	items := make([]LineItem, 0, len(in.Products))
	for i, p := range in.Products {
		if p.ProductID == "" {
			return nil, fmt.Errorf("products.%d.productId is required", i)
		}
		id, err := primitive.ObjectIDFromHex(p.ProductID)
		if err != nil {
			return nil, fmt.Errorf("products.%d.productId: %q is not a valid product id", i, p.ProductID)
		}
		if p.Quantity == 0 {
			return nil, fmt.Errorf("products.%d.quantity is required", i)
		}
		items = append(items, LineItem{ProductID: id, Quantity: p.Quantity})
	}

	return &Order{
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		CustomerAddress: in.CustomerAddress,
		TotalPrice:      in.TotalPrice,
		Products:        items,
	}, nil
}

// OrderView is an order as returned by the list endpoint: every product
// reference expanded to the full product document (populate-style — the
// document replaces the id under the same productId key; a dangling
// reference renders as null).
type OrderView struct {
	ID              primitive.ObjectID `json:"_id"`
	CustomerName    string             `json:"customerName"`
	CustomerEmail   string             `json:"customerEmail"`
	CustomerPhone   string             `json:"customerPhone"`
	CustomerAddress string             `json:"customerAddress"`
	TotalPrice      float64            `json:"totalPrice"`
	Products        []LineItemView     `json:"products"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// LineItemView carries the expanded product document for one line item.
type LineItemView struct {
	Product  *Product `json:"productId"`
	Quantity int      `json:"quantity"`
}

// View builds the expanded view of o using the given product lookup.
func (o Order) View(lookup map[primitive.ObjectID]*Product) OrderView {
	items := make([]LineItemView, 0, len(o.Products))
	for _, li := range o.Products {
		items = append(items, LineItemView{
			Product:  lookup[li.ProductID],
			Quantity: li.Quantity,
		})
	}

	return OrderView{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		TotalPrice:      o.TotalPrice,
		Products:        items,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}
