// Package insurance manages owner-scoped insurance policy records. A policy's
// status is derived from its end date on every read and never stored.
package insurance

import (
	"time"

	"motorvault/internal/status"
)

type Policy struct {
	ID             string     `bson:"-" json:"id"`
	UserID         string     `bson:"user_id" json:"user_id"`
	VehicleID      *string    `bson:"vehicle_id,omitempty" json:"vehicle_id,omitempty"`
	Provider       string     `bson:"provider" json:"provider"`
	PolicyNumber   string     `bson:"policy_number" json:"policy_number"`
	PolicyType     string     `bson:"policy_type" json:"policy_type"`
	StartDate      time.Time  `bson:"start_date" json:"start_date"`
	EndDate        time.Time  `bson:"end_date" json:"end_date"`
	Premium        *float64   `bson:"premium,omitempty" json:"premium,omitempty"`
	Excess         *float64   `bson:"excess,omitempty" json:"excess,omitempty"`
	CoverageAmount *float64   `bson:"coverage_amount,omitempty" json:"coverage_amount,omitempty"`
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`

	// Status is computed at read time, not persisted.
	Status status.Status `bson:"-" json:"status"`
}

func (p *Policy) deriveStatus(now time.Time) {
	p.Status = status.FromEnd(now, p.EndDate)
}

type CreateRequest struct {
	VehicleID      *string   `json:"vehicle_id"`
	Provider       string    `json:"provider"`
	PolicyNumber   string    `json:"policy_number"`
	PolicyType     string    `json:"policy_type"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Premium        *float64  `json:"premium"`
	Excess         *float64  `json:"excess"`
	CoverageAmount *float64  `json:"coverage_amount"`
}

// UpdateRequest carries a partial update; nil fields are left untouched.
type UpdateRequest struct {
	VehicleID      *string    `json:"vehicle_id"`
	Provider       *string    `json:"provider"`
	PolicyNumber   *string    `json:"policy_number"`
	PolicyType     *string    `json:"policy_type"`
	StartDate      *time.Time `json:"start_date"`
	EndDate        *time.Time `json:"end_date"`
	Premium        *float64   `json:"premium"`
	Excess         *float64   `json:"excess"`
	CoverageAmount *float64   `json:"coverage_amount"`
}

func (r UpdateRequest) apply(p *Policy) {
	if r.VehicleID != nil {
		p.VehicleID = r.VehicleID
	}
	if r.Provider != nil {
		p.Provider = *r.Provider
	}
	if r.PolicyNumber != nil {
		p.PolicyNumber = *r.PolicyNumber
	}
	if r.PolicyType != nil {
		p.PolicyType = *r.PolicyType
	}
	if r.StartDate != nil {
		p.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		p.EndDate = *r.EndDate
	}
	if r.Premium != nil {
		p.Premium = r.Premium
	}
	if r.Excess != nil {
		p.Excess = r.Excess
	}
	if r.CoverageAmount != nil {
		p.CoverageAmount = r.CoverageAmount
	}
}
