package insurance

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

func timePtr(t time.Time) *time.Time { return &t }

func newTestPolicy(t *testing.T, svc *Service, userID string, start, end time.Time) Policy {
	t.Helper()
	p, err := svc.Create(ctxAt(start), userID, CreateRequest{
		Provider:     "AAMI",
		PolicyNumber: "POL-100",
		PolicyType:   "comprehensive",
		StartDate:    start,
		EndDate:      end,
	})
	require.NoError(t, err)
	return p
}

func TestService_StatusDerivedOnEveryRead(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	p := newTestPolicy(t, svc, "owner-1", start, end)

	got, err := svc.Get(ctxAt(end.Add(-time.Hour)), "owner-1", p.ID)
	require.NoError(t, err)
	assert.Equal(t, status.Active, got.Status)

	// Exactly at the end instant the policy is already expired.
	got, err = svc.Get(ctxAt(end), "owner-1", p.ID)
	require.NoError(t, err)
	assert.Equal(t, status.Expired, got.Status)
}

func TestService_ExpiredPolicyRevivesWhenEndDateExtended(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	p := newTestPolicy(t, svc, "owner-1", start, end)

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	got, err := svc.Get(ctxAt(now), "owner-1", p.ID)
	require.NoError(t, err)
	assert.Equal(t, status.Expired, got.Status)

	renewed, err := svc.Update(ctxAt(now), "owner-1", p.ID, UpdateRequest{
		EndDate: timePtr(time.Date(2027, 2, 1, 0, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	assert.Equal(t, status.Active, renewed.Status)
}

func TestService_ForeignOwnerLooksMissing(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p := newTestPolicy(t, svc, "owner-1", start, start.AddDate(1, 0, 0))

	_, err := svc.Get(ctxAt(start), "owner-2", p.ID)
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))

	_, err = svc.Update(ctxAt(start), "owner-2", p.ID, UpdateRequest{Provider: strPtr("NRMA")})
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))

	err = svc.Delete(ctxAt(start), "owner-2", p.ID)
	assert.True(t, dErrors.Is(err, dErrors.CodeNotFound))
}

func TestService_CountActive(t *testing.T) {
	svc := NewService(NewInMemoryStore())
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newTestPolicy(t, svc, "owner-1", start, start.AddDate(1, 0, 0))
	newTestPolicy(t, svc, "owner-1", start, start.AddDate(0, 1, 0))
	newTestPolicy(t, svc, "owner-2", start, start.AddDate(1, 0, 0))

	// Two months in: the one-month policy has lapsed.
	n, err := svc.CountActive(ctxAt(start.AddDate(0, 2, 0)), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func strPtr(s string) *string { return &s }
