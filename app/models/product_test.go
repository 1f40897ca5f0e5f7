package models_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vastra/app/models"
)

func TestProductWireKeysKeepHistoricalSpelling(t *testing.T) {
	p := models.Product{
		ID:              primitive.NewObjectID(),
		Name:            "Linen shirt",
		Description:     "Full sleeve",
		Price:           799,
		DiscountedPrice: 599,
		Category:        "Casual Wear",
		Picture:         "/uploads/1712170230123.png",
	}

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"Discounted_price":599`)
	assert.False(t, strings.Contains(string(raw), `"discountedPrice"`))
}

func TestValidCategory(t *testing.T) {
	for _, c := range models.Categories {
		assert.True(t, models.ValidCategory(c), c)
	}
	assert.False(t, models.ValidCategory("Casual wear"), "category match is case sensitive")
	assert.False(t, models.ValidCategory(""))
}

func TestProductUpdateValidate(t *testing.T) {
	bad := "Winter Wear"
	high := 5.5
	empty := ""

	errs := models.ProductUpdate{Category: &bad, Ratings: &high, Name: &empty}.Validate()
	assert.Contains(t, errs, "category")
	assert.Contains(t, errs, "ratings")
	assert.Contains(t, errs, "name")

	ok := "Printed Shirt"
	assert.Empty(t, models.ProductUpdate{Category: &ok}.Validate())
	assert.Empty(t, models.ProductUpdate{}.Validate(), "absent fields are not validated")
}

func TestProductUpdateSetOnlyIncludesPresentFields(t *testing.T) {
	price := 599.0
	set := models.ProductUpdate{Price: &price}.Set()
	require.Len(t, set, 1)
	assert.Equal(t, 599.0, set["price"])

	assert.Empty(t, models.ProductUpdate{}.Set())
}
