package models

import "strings"

// Electronics represents an item in the electronics collection.
type Electronics struct {
	ID         Key     `json:"id" bson:"_id,omitempty"`
	Name       string  `json:"name" bson:"name"`
	Brand      string  `json:"brand" bson:"brand"`
	Price      float64 `json:"price" bson:"price"`
	Timestamps `bson:",inline"`
}

// GetID returns the document key.
func (e *Electronics) GetID() Key { return e.ID }

// SetID assigns the document key.
func (e *Electronics) SetID(id Key) { e.ID = id }

// SameData reports whether both documents carry identical fields, key and
// timestamps excluded.
func (e *Electronics) SameData(o *Electronics) bool {
	return e.Name == o.Name && e.Brand == o.Brand && e.Price == o.Price
}

// ElectronicsInput is the raw create/replace payload for an electronics
// item.
type ElectronicsInput struct {
	Name  string   `json:"name" validate:"required,notblank"`
	Brand string   `json:"brand" validate:"required,notblank"`
	Price *float64 `json:"price" validate:"required,gt=0"`
}

// Model converts the validated input into a storable document.
func (in *ElectronicsInput) Model() Electronics {
	return Electronics{
		Name:  strings.TrimSpace(in.Name),
		Brand: strings.TrimSpace(in.Brand),
		Price: *in.Price,
	}
}
