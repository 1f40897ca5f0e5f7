package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Categories is the closed set of product categories the store sells.
var Categories = []string{"Casual Wear", "Printed Shirt", "Ladies Shirt"}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// Product is a sellable item. The wire keys (including the historical
// Discounted_price spelling) match the documents already in the products
// collection.
type Product struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"              json:"_id,omitempty"`
	Name            string             `bson:"name"                       json:"name"                       validate:"required"`
	Description     string             `bson:"description"                json:"description"                validate:"required"`
	Price           float64            `bson:"price"                      json:"price"                      validate:"required,numeric"`
	DiscountedPrice float64            `bson:"Discounted_price,omitempty" json:"Discounted_price,omitempty"`
	Category        string             `bson:"category"                   json:"category"                   validate:"required,in=Casual Wear,Printed Shirt,Ladies Shirt"`
	Picture         string             `bson:"picture"                    json:"picture"                    validate:"required"`
	Ratings         float64            `bson:"ratings,omitempty"          json:"ratings,omitempty"          validate:"nullable,gte=0,lte=5"`
}

// ProductUpdate is a partial product: only non-nil fields are applied.
// Updates are re-validated field by field before touching the store.
type ProductUpdate struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	DiscountedPrice *float64 `json:"Discounted_price"`
	Category        *string  `json:"category"`
	Picture         *string  `json:"picture"`
	Ratings         *float64 `json:"ratings"`
}

// Validate checks every field that is present. Returns field → message.
func (u ProductUpdate) Validate() map[string]string {
	errs := make(map[string]string)

	if u.Name != nil && *u.Name == "" {
		errs["name"] = "The name field is required."
	}
	if u.Description != nil && *u.Description == "" {
		errs["description"] = "The description field is required."
	}
	if u.Category != nil && !ValidCategory(*u.Category) {
		errs["category"] = "`" + *u.Category + "` is not a valid value for category."
	}
	if u.Picture != nil && *u.Picture == "" {
		errs["picture"] = "The picture field is required."
	}
	if u.Ratings != nil && (*u.Ratings < 0 || *u.Ratings > 5) {
		errs["ratings"] = "The ratings must be between 0 and 5."
	}

	return errs
}

// Set builds the $set document from the fields present in the update.
func (u ProductUpdate) Set() bson.M {
	set := bson.M{}

	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.DiscountedPrice != nil {
		set["Discounted_price"] = *u.DiscountedPrice
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Picture != nil {
		set["picture"] = *u.Picture
	}
	if u.Ratings != nil {
		set["ratings"] = *u.Ratings
	}

	return set
}
