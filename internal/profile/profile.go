package profile

import (
	"strings"

	"github.com/2beens/fittrack/pkg"
)

// Profile merges the identity fields of the user with the body metrics of its profile row.
// Age and gender come from the profile when set there.
type Profile struct {
	FirstName *string  `json:"firstName"`
	LastName  *string  `json:"lastName"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Phone     *string  `json:"phone"`
	Age       *int     `json:"age"`
	Gender    *string  `json:"gender"`
	Height    *float64 `json:"height"`
	Weight    *float64 `json:"weight"`
}

type Update struct {
	FirstName    *string
	LastName     *string
	Phone        *string
	Age          *int
	Gender       *string
	Height       *float64
	Weight       *float64
	PasswordHash *string
}

var updateMessages = map[string]string{
	"age":       "Invalid age",
	"height":    "Invalid height",
	"weight":    "Invalid weight",
	"phone":     "Invalid phone format",
	"password":  "Password must be at least 6 characters",
	"gender":    "Invalid gender",
	"firstName": "Invalid first name",
	"lastName":  "Invalid last name",
}

type UpdateRequest struct {
	Age       *int     `json:"age" validate:"omitempty,min=10,max=120"`
	Gender    *string  `json:"gender" validate:"omitempty,max=20"`
	Height    *float64 `json:"height" validate:"omitempty,gt=0,lte=9999.99"`
	Weight    *float64 `json:"weight" validate:"omitempty,gt=0,lte=9999.99"`
	FirstName *string  `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string  `json:"lastName" validate:"omitempty,max=100"`
	Phone     *string  `json:"phone" validate:"omitempty,phone"`
	Password  *string  `json:"password" validate:"omitempty,min=6"`
}

// Normalize drops a blank password so it is treated as not provided.
func (r *UpdateRequest) Normalize() {
	if r.Password != nil && strings.TrimSpace(*r.Password) == "" {
		r.Password = nil
	}
}

func (r *UpdateRequest) Validate() error {
	return pkg.ValidateStruct(r, updateMessages)
}

func (r *UpdateRequest) ToUpdate() Update {
	return Update{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Age:       r.Age,
		Gender:    r.Gender,
		Height:    r.Height,
		Weight:    r.Weight,
	}
}
