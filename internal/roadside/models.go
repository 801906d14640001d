// Package roadside manages owner-scoped roadside assistance memberships.
// Status is derived from the end date on every read.
package roadside

import (
	"time"

	"motorvault/internal/status"
)

type Membership struct {
	ID               string    `bson:"-" json:"id"`
	UserID           string    `bson:"user_id" json:"user_id"`
	VehicleID        *string   `bson:"vehicle_id,omitempty" json:"vehicle_id,omitempty"`
	Provider         string    `bson:"provider" json:"provider"`
	MembershipNumber string    `bson:"membership_number" json:"membership_number"`
	PlanType         string    `bson:"plan_type" json:"plan_type"`
	StartDate        time.Time `bson:"start_date" json:"start_date"`
	EndDate          time.Time `bson:"end_date" json:"end_date"`
	Price            *float64  `bson:"price,omitempty" json:"price,omitempty"`
	CreatedAt        time.Time `bson:"created_at" json:"created_at"`

	Status status.Status `bson:"-" json:"status"`
}

func (m *Membership) deriveStatus(now time.Time) {
	m.Status = status.FromEnd(now, m.EndDate)
}

type CreateRequest struct {
	VehicleID        *string   `json:"vehicle_id"`
	Provider         string    `json:"provider"`
	MembershipNumber string    `json:"membership_number"`
	PlanType         string    `json:"plan_type"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	Price            *float64  `json:"price"`
}

type UpdateRequest struct {
	VehicleID        *string    `json:"vehicle_id"`
	Provider         *string    `json:"provider"`
	MembershipNumber *string    `json:"membership_number"`
	PlanType         *string    `json:"plan_type"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	Price            *float64   `json:"price"`
}

func (r UpdateRequest) apply(m *Membership) {
	if r.VehicleID != nil {
		m.VehicleID = r.VehicleID
	}
	if r.Provider != nil {
		m.Provider = *r.Provider
	}
	if r.MembershipNumber != nil {
		m.MembershipNumber = *r.MembershipNumber
	}
	if r.PlanType != nil {
		m.PlanType = *r.PlanType
	}
	if r.StartDate != nil {
		m.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		m.EndDate = *r.EndDate
	}
	if r.Price != nil {
		m.Price = r.Price
	}
}
