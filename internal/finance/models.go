// Package finance manages owner-scoped vehicle finance records (loans and
// leases). Status is derived from the end date on every read.
package finance

import (
	"time"

	"motorvault/internal/status"
)

type Product struct {
	ID                 string    `bson:"-" json:"id"`
	UserID             string    `bson:"user_id" json:"user_id"`
	VehicleID          *string   `bson:"vehicle_id,omitempty" json:"vehicle_id,omitempty"`
	Lender             string    `bson:"lender" json:"lender"`
	ProductType        string    `bson:"product_type" json:"product_type"`
	LoanAmount         float64   `bson:"loan_amount" json:"loan_amount"`
	OutstandingBalance float64   `bson:"outstanding_balance" json:"outstanding_balance"`
	InterestRate       *float64  `bson:"interest_rate,omitempty" json:"interest_rate,omitempty"`
	MonthlyPayment     *float64  `bson:"monthly_payment,omitempty" json:"monthly_payment,omitempty"`
	StartDate          time.Time `bson:"start_date" json:"start_date"`
	EndDate            time.Time `bson:"end_date" json:"end_date"`
	CreatedAt          time.Time `bson:"created_at" json:"created_at"`

	Status status.Status `bson:"-" json:"status"`
}

func (p *Product) deriveStatus(now time.Time) {
	p.Status = status.FromEnd(now, p.EndDate)
}

type CreateRequest struct {
	VehicleID   *string   `json:"vehicle_id"`
	Lender      string    `json:"lender"`
	ProductType string    `json:"product_type"`
	LoanAmount  float64   `json:"loan_amount"`
	// OutstandingBalance defaults to the loan amount when omitted.
	OutstandingBalance *float64  `json:"outstanding_balance"`
	InterestRate       *float64  `json:"interest_rate"`
	MonthlyPayment     *float64  `json:"monthly_payment"`
	StartDate          time.Time `json:"start_date"`
	EndDate            time.Time `json:"end_date"`
}

type UpdateRequest struct {
	VehicleID          *string    `json:"vehicle_id"`
	Lender             *string    `json:"lender"`
	ProductType        *string    `json:"product_type"`
	LoanAmount         *float64   `json:"loan_amount"`
	OutstandingBalance *float64   `json:"outstanding_balance"`
	InterestRate       *float64   `json:"interest_rate"`
	MonthlyPayment     *float64   `json:"monthly_payment"`
	StartDate          *time.Time `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
}

func (r UpdateRequest) apply(p *Product) {
	if r.VehicleID != nil {
		p.VehicleID = r.VehicleID
	}
	if r.Lender != nil {
		p.Lender = *r.Lender
	}
	if r.ProductType != nil {
		p.ProductType = *r.ProductType
	}
	if r.LoanAmount != nil {
		p.LoanAmount = *r.LoanAmount
	}
	if r.OutstandingBalance != nil {
		p.OutstandingBalance = *r.OutstandingBalance
	}
	if r.InterestRate != nil {
		p.InterestRate = r.InterestRate
	}
	if r.MonthlyPayment != nil {
		p.MonthlyPayment = r.MonthlyPayment
	}
	if r.StartDate != nil {
		p.StartDate = *r.StartDate
	}
	if r.EndDate != nil {
		p.EndDate = *r.EndDate
	}
}
