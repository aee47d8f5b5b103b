package entity

import (
	"time"
)

type Rental struct {
	ID         string `json:"id" firestore:"id"`
	LandlordID string `json:"landlord_id" firestore:"landlordId"`
	Title      string `json:"title" firestore:"title"`
	Address    string `json:"address" firestore:"address"`

	// Derived from the address; defaulted when geocoding fails.
	Lat float64 `json:"lat" firestore:"lat"`
	Lng float64 `json:"lng" firestore:"lng"`

	Type        string   `json:"type" firestore:"type"`
	Price       int      `json:"price" firestore:"price"`
	Deposit     int      `json:"deposit" firestore:"deposit"`
	Floor       int      `json:"floor" firestore:"floor"`
	Area        float64  `json:"area" firestore:"area"`
	Rooms       int      `json:"rooms" firestore:"rooms"`
	Amenities   []string `json:"amenities" firestore:"amenities"`
	Description string   `json:"description" firestore:"description"`
	Images      []string `json:"images" firestore:"images"`

	// Gates visibility on the public listing endpoint.
	IsPublished bool `json:"is_published" firestore:"isPublished"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

type Amenity struct {
	Name string `json:"name" firestore:"name"`
}
