package roadside

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motorvault/internal/status"
	dErrors "motorvault/pkg/domain-errors"
	"motorvault/pkg/requestcontext"
)

func ctxAt(now time.Time) context.Context {
	return requestcontext.WithTime(context.Background(), now)
}

func TestService_StatusFollowsEndDate(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)

	m, err := svc.Create(ctxAt(start), "owner-1", CreateRequest{
		Provider:         "NRMA",
		MembershipNumber: "RS-991",
		PlanType:         "premium",
		StartDate:        start,
		EndDate:          end,
	})
	require.NoError(t, err)
	assert.Equal(t, status.Active, m.Status)

	got, err := svc.Get(ctxAt(end.Add(time.Second)), "owner-1", m.ID)
	require.NoError(t, err)
	assert.Equal(t, status.Expired, got.Status)
}

func TestService_ForeignOwnerLooksMissing(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m, err := svc.Create(ctxAt(start), "owner-1", CreateRequest{
		Provider: "NRMA", MembershipNumber: "RS-991", PlanType: "basic",
		StartDate: start, EndDate: start.AddDate(1, 0, 0),
	})
	require.NoError(t, err)

	_, err = svc.Get(ctxAt(start), "owner-2", m.ID)
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))

	err = svc.Delete(ctxAt(start), "owner-2", m.ID)
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
}

func TestService_CountActive(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.Create(ctxAt(start), "owner-1", CreateRequest{
		Provider: "NRMA", MembershipNumber: "RS-1", PlanType: "basic",
		StartDate: start, EndDate: start.AddDate(1, 0, 0),
	})
	require.NoError(t, err)
	_, err = svc.Create(ctxAt(start), "owner-1", CreateRequest{
		Provider: "RACV", MembershipNumber: "RS-2", PlanType: "basic",
		StartDate: start, EndDate: start.AddDate(0, 1, 0),
	})
	require.NoError(t, err)

	n, err := svc.CountActive(ctxAt(start.AddDate(0, 6, 0)), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
