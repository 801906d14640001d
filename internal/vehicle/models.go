package vehicle

import "time"

// Vehicle is an owner-scoped record. UserID is stamped at creation and never
// reassigned by updates.
type Vehicle struct {
	ID            string     `bson:"-" json:"id"`
	UserID        string     `bson:"user_id" json:"user_id"`
	Rego          string     `bson:"rego" json:"rego"`
	VIN           string     `bson:"vin" json:"vin"`
	Make          string     `bson:"make" json:"make"`
	Model         string     `bson:"model" json:"model"`
	Year          int        `bson:"year" json:"year"`
	BodyType      *string    `bson:"body_type,omitempty" json:"body_type,omitempty"`
	Color         *string    `bson:"color,omitempty" json:"color,omitempty"`
	Odometer      *int       `bson:"odometer,omitempty" json:"odometer,omitempty"`
	Image         *string    `bson:"image,omitempty" json:"image,omitempty"` // base64
	PurchaseDate  *time.Time `bson:"purchase_date,omitempty" json:"purchase_date,omitempty"`
	PurchasePrice *float64   `bson:"purchase_price,omitempty" json:"purchase_price,omitempty"`
	DealerID      *string    `bson:"dealer_id,omitempty" json:"dealer_id,omitempty"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
}

type CreateRequest struct {
	Rego          string     `json:"rego"`
	VIN           string     `json:"vin"`
	Make          string     `json:"make"`
	Model         string     `json:"model"`
	Year          int        `json:"year"`
	BodyType      *string    `json:"body_type"`
	Color         *string    `json:"color"`
	Odometer      *int       `json:"odometer"`
	Image         *string    `json:"image"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	PurchasePrice *float64   `json:"purchase_price"`
	DealerID      *string    `json:"dealer_id"`
}

// UpdateRequest carries a partial update. Nil fields are not applied, so an
// explicit null in the request body is silently dropped rather than clearing
// the stored value.
type UpdateRequest struct {
	Rego          *string    `json:"rego"`
	VIN           *string    `json:"vin"`
	Make          *string    `json:"make"`
	Model         *string    `json:"model"`
	Year          *int       `json:"year"`
	BodyType      *string    `json:"body_type"`
	Color         *string    `json:"color"`
	Odometer      *int       `json:"odometer"`
	Image         *string    `json:"image"`
	PurchaseDate  *time.Time `json:"purchase_date"`
	PurchasePrice *float64   `json:"purchase_price"`
	DealerID      *string    `json:"dealer_id"`
}

func (r UpdateRequest) apply(v *Vehicle) {
	if r.Rego != nil {
		v.Rego = *r.Rego
	}
	if r.VIN != nil {
		v.VIN = *r.VIN
	}
	if r.Make != nil {
		v.Make = *r.Make
	}
	if r.Model != nil {
		v.Model = *r.Model
	}
	if r.Year != nil {
		v.Year = *r.Year
	}
	if r.BodyType != nil {
		v.BodyType = r.BodyType
	}
	if r.Color != nil {
		v.Color = r.Color
	}
	if r.Odometer != nil {
		v.Odometer = r.Odometer
	}
	if r.Image != nil {
		v.Image = r.Image
	}
	if r.PurchaseDate != nil {
		v.PurchaseDate = r.PurchaseDate
	}
	if r.PurchasePrice != nil {
		v.PurchasePrice = r.PurchasePrice
	}
	if r.DealerID != nil {
		v.DealerID = r.DealerID
	}
}
