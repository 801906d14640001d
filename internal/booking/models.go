// Package booking manages owner-scoped service bookings. Unlike the
// date-derived entitlement statuses, a booking's status is a stored workflow
// state that moves through Pending, Confirmed, Completed or Cancelled.
package booking

import "time"

const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// ValidStatus reports whether s is a recognised workflow state.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID          string    `bson:"-" json:"id"`
	UserID      string    `bson:"user_id" json:"user_id"`
	VehicleID   string    `bson:"vehicle_id" json:"vehicle_id"`
	DealerID    *string   `bson:"dealer_id,omitempty" json:"dealer_id,omitempty"`
	ServiceType string    `bson:"service_type" json:"service_type"`
	BookingDate time.Time `bson:"booking_date" json:"booking_date"`
	Notes       *string   `bson:"notes,omitempty" json:"notes,omitempty"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

type CreateRequest struct {
	VehicleID   string    `json:"vehicle_id"`
	DealerID    *string   `json:"dealer_id"`
	ServiceType string    `json:"service_type"`
	BookingDate time.Time `json:"booking_date"`
	Notes       *string   `json:"notes"`
}

type UpdateRequest struct {
	DealerID    *string    `json:"dealer_id"`
	ServiceType *string    `json:"service_type"`
	BookingDate *time.Time `json:"booking_date"`
	Notes       *string    `json:"notes"`
	Status      *string    `json:"status"`
}

func (r UpdateRequest) apply(b *Booking) {
	if r.DealerID != nil {
		b.DealerID = r.DealerID
	}
	if r.ServiceType != nil {
		b.ServiceType = *r.ServiceType
	}
	if r.BookingDate != nil {
		b.BookingDate = *r.BookingDate
	}
	if r.Notes != nil {
		b.Notes = r.Notes
	}
	if r.Status != nil {
		b.Status = *r.Status
	}
}
