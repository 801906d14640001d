package finance

import (
	"context"

	"motorvault/internal/status"
	dErrors "motorvault/pkg/domain-errors"
	"motorvault/pkg/requestcontext"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (Product, error) {
	now := requestcontext.Now(ctx).UTC()

	// A brand-new loan that doesn't state a balance owes the full amount.
	balance := req.LoanAmount
	if req.OutstandingBalance != nil {
		balance = *req.OutstandingBalance
	}

	p := Product{
		UserID:             userID,
		VehicleID:          req.VehicleID,
		Lender:             req.Lender,
		ProductType:        req.ProductType,
		LoanAmount:         req.LoanAmount,
		OutstandingBalance: balance,
		InterestRate:       req.InterestRate,
		MonthlyPayment:     req.MonthlyPayment,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		CreatedAt:          now,
	}
	created, err := s.store.Insert(ctx, p)
	if err != nil {
		return Product{}, err
	}
	created.deriveStatus(now)
	return created, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Product, error) {
	products, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := requestcontext.Now(ctx).UTC()
	out := make([]Product, 0, len(products))
	for _, p := range products {
		p.deriveStatus(now)
		out = append(out, p)
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, userID, id string) (Product, error) {
	p, err := s.store.FindByOwner(ctx, id, userID)
	if err != nil {
		return Product{}, notFoundOr(err, "finance product not found")
	}
	p.deriveStatus(requestcontext.Now(ctx).UTC())
	return p, nil
}

func (s *Service) Update(ctx context.Context, userID, id string, req UpdateRequest) (Product, error) {
	if err := s.store.Update(ctx, id, userID, req); err != nil {
		return Product{}, notFoundOr(err, "finance product not found")
	}
	return s.Get(ctx, userID, id)
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if err := s.store.Delete(ctx, id, userID); err != nil {
		return notFoundOr(err, "finance product not found")
	}
	return nil
}

// CountActive reports the owner's finance products still inside their term.
func (s *Service) CountActive(ctx context.Context, userID string) (int64, error) {
	products, err := s.store.ListByOwner(ctx, userID)
	if err != nil {
		return 0, err
	}
	now := requestcontext.Now(ctx).UTC()
	var n int64
	for _, p := range products {
		if status.FromEnd(now, p.EndDate) == status.Active {
			n++
		}
	}
	return n, nil
}

func notFoundOr(err error, message string) error {
	if dErrors.Is(err, dErrors.CodeNotFound) {
		return dErrors.New(dErrors.CodeNotFound, message)
	}
	return err
}
