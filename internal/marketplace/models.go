// Package marketplace exposes vehicle sale listings. Reads are public;
// creating a listing requires authentication and only works for a vehicle the
// caller owns. Listing details are snapshotted off the vehicle at creation.
package marketplace

import "time"

type Listing struct {
	ID          string  `bson:"-" json:"id"`
	UserID      string  `bson:"user_id" json:"user_id"`
	VehicleID   string  `bson:"vehicle_id" json:"vehicle_id"`
	Price       float64 `bson:"price" json:"price"`
	Description *string `bson:"description,omitempty" json:"description,omitempty"`
	ContactName *string `bson:"contact_name,omitempty" json:"contact_name,omitempty"`

	// Snapshot of the vehicle at listing time.
	Make     string  `bson:"make" json:"make"`
	Model    string  `bson:"model" json:"model"`
	Year     int     `bson:"year" json:"year"`
	Odometer *int    `bson:"odometer,omitempty" json:"odometer,omitempty"`
	Image    *string `bson:"image,omitempty" json:"image,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

type CreateRequest struct {
	VehicleID   string  `json:"vehicle_id"`
	Price       float64 `json:"price"`
	Description *string `json:"description"`
	ContactName *string `json:"contact_name"`
}
