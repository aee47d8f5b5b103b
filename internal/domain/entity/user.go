package entity

import (
	"time"
)

const (
	RoleLandlord = "landlord"
	RoleTenant   = "tenant"
)

// ValidRole reports whether role names one of the two user partitions.
func ValidRole(role string) bool {
	return role == RoleLandlord || role == RoleTenant
}

type User struct {
	ID       string `json:"id" firestore:"id"`
	Name     string `json:"name" firestore:"name"`
	Phone    string `json:"phone" firestore:"phone"`
	Password string `json:"-" firestore:"password"`
	Address  string `json:"address,omitempty" firestore:"address,omitempty"`
	Gender   string `json:"gender,omitempty" firestore:"gender,omitempty"`
	Role     string `json:"role" firestore:"role"`
	Bio      string `json:"bio,omitempty" firestore:"bio,omitempty"`
	Avatar   string `json:"avatar,omitempty" firestore:"avatar,omitempty"`
	Email    string `json:"email,omitempty" firestore:"email,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
