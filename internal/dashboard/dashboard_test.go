package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motorvault/internal/booking"
	"motorvault/internal/finance"
	"motorvault/internal/insurance"
	"motorvault/internal/roadside"
	"motorvault/internal/vehicle"
	"motorvault/pkg/requestcontext"
)

func TestService_Stats(t *testing.T) {
	vehicles := vehicle.NewService(vehicle.NewInMemoryStore())
	ins := insurance.NewService(insurance.NewInMemoryStore())
	fin := finance.NewService(finance.NewInMemoryStore())
	rsa := roadside.NewService(roadside.NewInMemoryStore())
	bookings := booking.NewService(booking.NewInMemoryStore())
	svc := NewService(vehicles, ins, fin, rsa, bookings)

	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)

	v, err := vehicles.Create(ctx, "owner-1", vehicle.CreateRequest{
		Rego: "ABC123", VIN: "VIN1", Make: "Mazda", Model: "3", Year: 2021,
	})
	require.NoError(t, err)
	_, err = vehicles.Create(ctx, "owner-1", vehicle.CreateRequest{
		Rego: "XYZ789", VIN: "VIN2", Make: "Ford", Model: "Ranger", Year: 2023,
	})
	require.NoError(t, err)

	_, err = ins.Create(ctx, "owner-1", insurance.CreateRequest{
		Provider: "AAMI", PolicyNumber: "P1", PolicyType: "comprehensive",
		StartDate: now.AddDate(-1, 0, 0), EndDate: now.AddDate(0, 6, 0),
	})
	require.NoError(t, err)
	// Lapsed policy must not count.
	_, err = ins.Create(ctx, "owner-1", insurance.CreateRequest{
		Provider: "NRMA", PolicyNumber: "P2", PolicyType: "third-party",
		StartDate: now.AddDate(-2, 0, 0), EndDate: now.AddDate(-1, 0, 0),
	})
	require.NoError(t, err)

	_, err = rsa.Create(ctx, "owner-1", roadside.CreateRequest{
		Provider: "NRMA", MembershipNumber: "RS-1", PlanType: "basic",
		StartDate: now, EndDate: now.AddDate(1, 0, 0),
	})
	require.NoError(t, err)

	_, err = bookings.Create(ctx, "owner-1", booking.CreateRequest{
		VehicleID: v.ID, ServiceType: "logbook service", BookingDate: now.AddDate(0, 1, 0),
	})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, Stats{
		Vehicles:        2,
		ActiveInsurance: 1,
		ActiveFinance:   0,
		ActiveRoadside:  1,
		PendingBookings: 1,
	}, stats)
}

func TestService_Stats_EmptyOwner(t *testing.T) {
	svc := NewService(
		vehicle.NewService(vehicle.NewInMemoryStore()),
		insurance.NewService(insurance.NewInMemoryStore()),
		finance.NewService(finance.NewInMemoryStore()),
		roadside.NewService(roadside.NewInMemoryStore()),
		booking.NewService(booking.NewInMemoryStore()),
	)

	stats, err := svc.Stats(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
}
