package models

import "strings"

// Clothes represents an item in the clothes collection.
type Clothes struct {
	ID         Key     `json:"id" bson:"_id,omitempty"`
	Name       string  `json:"name" bson:"name"`
	Size       string  `json:"size" bson:"size"`
	Price      float64 `json:"price" bson:"price"`
	Timestamps `bson:",inline"`
}

// GetID returns the document key.
func (c *Clothes) GetID() Key { return c.ID }

// SetID assigns the document key.
func (c *Clothes) SetID(id Key) { c.ID = id }

// SameData reports whether both documents carry identical fields, key and
// timestamps excluded.
func (c *Clothes) SameData(o *Clothes) bool {
	return c.Name == o.Name && c.Size == o.Size && c.Price == o.Price
}

// ClothesInput is the raw create/replace payload for a clothes item. Price
// must be strictly positive, unlike groceries.
type ClothesInput struct {
	Name  string   `json:"name" validate:"required,notblank"`
	Size  string   `json:"size" validate:"required,notblank"`
	Price *float64 `json:"price" validate:"required,gt=0"`
}

// Model converts the validated input into a storable document.
func (in *ClothesInput) Model() Clothes {
	return Clothes{
		Name:  strings.TrimSpace(in.Name),
		Size:  strings.TrimSpace(in.Size),
		Price: *in.Price,
	}
}
