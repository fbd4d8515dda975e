package models

import "strings"

// Grocery represents an item in the groceries collection.
type Grocery struct {
	ID         Key     `json:"id" bson:"_id,omitempty"`
	Name       string  `json:"name" bson:"name"`
	Quantity   float64 `json:"quantity" bson:"quantity"`
	Price      float64 `json:"price" bson:"price"`
	Timestamps `bson:",inline"`
}

// GetID returns the document key.
func (g *Grocery) GetID() Key { return g.ID }

// SetID assigns the document key.
func (g *Grocery) SetID(id Key) { g.ID = id }

// SameData reports whether both documents carry identical fields, key and
// timestamps excluded.
func (g *Grocery) SameData(o *Grocery) bool {
	return g.Name == o.Name && g.Quantity == o.Quantity && g.Price == o.Price
}

// GroceryInput is the raw create/replace payload for a grocery. Quantity
// and price are pointers so an absent value can be told apart from a legal
// zero.
type GroceryInput struct {
	Name     string   `json:"name" validate:"required,notblank"`
	Quantity *float64 `json:"quantity" validate:"required,gte=0"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
}

// Model converts the validated input into a storable document.
func (in *GroceryInput) Model() Grocery {
	return Grocery{
		Name:     strings.TrimSpace(in.Name),
		Quantity: *in.Quantity,
		Price:    *in.Price,
	}
}
