package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
)

func TestOrderInputConversion(t *testing.T) {
	id := primitive.NewObjectID()
	in := models.OrderInput{
		CustomerName:    "Asha Verma",
		CustomerEmail:   "asha@example.com",
		CustomerPhone:   "9876543210",
		CustomerAddress: "14 MG Road, Pune",
		TotalPrice:      1598,
		Products: []models.LineItemInput{
			{ProductID: id.Hex(), Quantity: 2},
		},
	}

	order, err := in.Order()
	require.NoError(t, err)
	assert.Equal(t, "Asha Verma", order.CustomerName)
	require.Len(t, order.Products, 1)
	assert.Equal(t, id, order.Products[0].ProductID)
	assert.Equal(t, 2, order.Products[0].Quantity)
}

func TestOrderInputRejectsBadProductID(t *testing.T) {
	in := models.OrderInput{Products: []models.LineItemInput{{ProductID: "nope", Quantity: 1}}}
	_, err := in.Order()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid product id")
}

func TestOrderInputRejectsMissingQuantity(t *testing.T) {
	in := models.OrderInput{Products: []models.LineItemInput{
		{ProductID: primitive.NewObjectID().Hex()},
	}}
	_, err := in.Order()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity is required")
}

func TestOrderViewExpandsKnownProductsAndNullsDangling(t *testing.T) {
	known := primitive.NewObjectID()
	dangling := primitive.NewObjectID()
	product := &models.Product{ID: known, Name: "Linen shirt", Category: "Casual Wear"}

	order := models.Order{
		ID: primitive.NewObjectID(),
		Products: []models.LineItem{
			{ProductID: known, Quantity: 2},
			{ProductID: dangling, Quantity: 1},
		},
	}

	view := order.View(map[primitive.ObjectID]*models.Product{known: product})
	require.Len(t, view.Products, 2)
	assert.Equal(t, product, view.Products[0].Product)
	assert.Nil(t, view.Products[1].Product)

	// On the wire the expanded document sits under the productId key and the
	// dangling reference serializes as null.
	raw, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"productId":{`)
	assert.Contains(t, string(raw), `"productId":null`)
}
