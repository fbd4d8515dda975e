package models

import "strings"

// User represents a user document. Username is unique within the
// collection; the uniqueness check lives in the handler/repository pair.
type User struct {
	ID         Key    `json:"id" bson:"_id,omitempty"`
	Firstname  string `json:"firstname" bson:"firstname"`
	Lastname   string `json:"lastname" bson:"lastname"`
	Username   string `json:"username" bson:"username"`
	Password   string `json:"password" bson:"password"`
	Timestamps `bson:",inline"`
}

// GetID returns the document key.
func (u *User) GetID() Key { return u.ID }

// SetID assigns the document key.
func (u *User) SetID(id Key) { u.ID = id }

// SameData reports whether both documents carry identical fields, key and
// timestamps excluded.
func (u *User) SameData(o *User) bool {
	return u.Firstname == o.Firstname &&
		u.Lastname == o.Lastname &&
		u.Username == o.Username &&
		u.Password == o.Password
}

// UserInput is the raw create/replace payload for a user.
type UserInput struct {
	Firstname string `json:"firstname" validate:"required,notblank"`
	Lastname  string `json:"lastname" validate:"required,notblank"`
	Username  string `json:"username" validate:"required,notblank"`
	Password  string `json:"password" validate:"required,notblank,min=6"`
}

// Model converts the validated input into a storable document.
func (in *UserInput) Model() User {
	return User{
		Firstname: strings.TrimSpace(in.Firstname),
		Lastname:  strings.TrimSpace(in.Lastname),
		Username:  strings.TrimSpace(in.Username),
		Password:  in.Password,
	}
}
