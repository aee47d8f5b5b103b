package entity

import (
	"fmt"
	"time"
)

type Favorite struct {
	ID        string    `json:"id" firestore:"id"`
	UID       string    `json:"uid" firestore:"uid"`
	RentalID  string    `json:"rental_id" firestore:"rentalId"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

// FavoriteID is deterministic per (tenant, rental) pair so that a document
// Create precondition makes insert-if-absent atomic.
func FavoriteID(uid, rentalID string) string {
	return fmt.Sprintf("%s_%s", uid, rentalID)
}

// FavoriteWithRental joins a favorite with the listing it references.
type FavoriteWithRental struct {
	FavDocID string  `json:"fav_doc_id"`
	Rental   *Rental `json:"rental"`
}
