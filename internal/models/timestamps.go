package models

import "time"

// Timestamps carries the creation and last-update times every stored
// document has. CreatedAt is set once at insert; UpdatedAt moves on every
// replace that actually changes the document.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// Stamp sets both timestamps, used at insert time.
func (t *Timestamps) Stamp(now time.Time) {
	t.CreatedAt = now
	t.UpdatedAt = now
}

// Touch moves UpdatedAt only.
func (t *Timestamps) Touch(now time.Time) {
	t.UpdatedAt = now
}

// Stamps exposes the embedded timestamps through any document type.
func (t *Timestamps) Stamps() *Timestamps {
	return t
}
