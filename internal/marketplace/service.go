package marketplace

import (
	"context"

	"motorvault/internal/vehicle"
	dErrors "motorvault/pkg/domain-errors"
	"motorvault/pkg/requestcontext"
)

// VehicleReader is the slice of the vehicle service a listing needs: an
// owner-scoped lookup that fails with NotFound for vehicles the caller does
// not own.
type VehicleReader interface {
	Get(ctx context.Context, userID, id string) (vehicle.Vehicle, error)
}

type Service struct {
	store    Store
	vehicles VehicleReader
}

func NewService(store Store, vehicles VehicleReader) *Service {
	return &Service{store: store, vehicles: vehicles}
}

// Create lists a vehicle for sale. The owner-scoped vehicle lookup doubles as
// the ownership check: listing someone else's vehicle fails with NotFound.
func (s *Service) Create(ctx context.Context, userID string, req CreateRequest) (Listing, error) {
	v, err := s.vehicles.Get(ctx, userID, req.VehicleID)
	if err != nil {
		return Listing{}, err
	}

	l := Listing{
		UserID:      userID,
		VehicleID:   v.ID,
		Price:       req.Price,
		Description: req.Description,
		ContactName: req.ContactName,
		Make:        v.Make,
		Model:       v.Model,
		Year:        v.Year,
		Odometer:    v.Odometer,
		Image:       v.Image,
		CreatedAt:   requestcontext.Now(ctx).UTC(),
	}
	return s.store.Insert(ctx, l)
}

func (s *Service) List(ctx context.Context) ([]Listing, error) {
	listings, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []Listing{}
	}
	return listings, nil
}

func (s *Service) Get(ctx context.Context, id string) (Listing, error) {
	l, err := s.store.FindByID(ctx, id)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			return Listing{}, dErrors.New(dErrors.CodeNotFound, "listing not found")
		}
		return Listing{}, err
	}
	return l, nil
}
