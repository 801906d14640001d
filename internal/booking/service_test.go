package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "motorvault/pkg/domain-errors"
)

func strPtr(s string) *string { return &s }

func newTestBooking(t *testing.T, svc *Service, userID string) Booking {
	t.Helper()
	b, err := svc.Create(context.Background(), userID, CreateRequest{
		VehicleID:   "veh-1",
		ServiceType: "logbook service",
		BookingDate: time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return b
}

func TestService_Create_StartsPending(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	b := newTestBooking(t, svc, "owner-1")
	assert.Equal(t, StatusPending, b.Status)
	assert.Equal(t, "owner-1", b.UserID)
}

func TestService_Update_MovesThroughWorkflow(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	b := newTestBooking(t, svc, "owner-1")

	confirmed, err := svc.Update(context.Background(), "owner-1", b.ID, UpdateRequest{
		Status: strPtr(StatusConfirmed),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, confirmed.Status)

	done, err := svc.Update(context.Background(), "owner-1", b.ID, UpdateRequest{
		Status: strPtr(StatusCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, done.Status)
}

func TestService_Update_RejectsUnknownStatus(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	b := newTestBooking(t, svc, "owner-1")

	_, err := svc.Update(context.Background(), "owner-1", b.ID, UpdateRequest{
		Status: strPtr("Teleported"),
	})
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeValidation))

	got, err := svc.Get(context.Background(), "owner-1", b.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, got.Status)
}

func TestService_ForeignOwnerLooksMissing(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	b := newTestBooking(t, svc, "owner-1")

	_, err := svc.Get(context.Background(), "owner-2", b.ID)
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))

	_, err = svc.Update(context.Background(), "owner-2", b.ID, UpdateRequest{Status: strPtr(StatusCancelled)})
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
}

func TestService_CountPending(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	newTestBooking(t, svc, "owner-1")
	b := newTestBooking(t, svc, "owner-1")

	_, err := svc.Update(context.Background(), "owner-1", b.ID, UpdateRequest{
		Status: strPtr(StatusCancelled),
	})
	require.NoError(t, err)

	n, err := svc.CountPending(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
