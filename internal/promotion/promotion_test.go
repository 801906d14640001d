package promotion

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motorvault/internal/status"
	"motorvault/pkg/requestcontext"
)

func ctxAt(now time.Time) context.Context {
	return requestcontext.WithTime(context.Background(), now)
}

func seed(t *testing.T, store *InMemoryStore, title string, start, end time.Time) Promotion {
	t.Helper()
	p, err := store.Insert(context.Background(), Promotion{
		Title:     title,
		StartDate: start,
		EndDate:   end,
	})
	require.NoError(t, err)
	return p
}

func TestService_WindowBoundariesAreActive(t *testing.T) {
	store := NewInMemoryStore()
	svc := NewService(store)
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
	p := seed(t, store, "May sale", start, end)

	cases := map[string]struct {
		now  time.Time
		want status.Status
	}{
		"before start":     {start.Add(-time.Second), status.Upcoming},
		"exactly at start": {start, status.Active},
		"mid window":       {start.AddDate(0, 0, 15), status.Active},
		"exactly at end":   {end, status.Active},
		"after end":        {end.Add(time.Second), status.Expired},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := svc.Get(ctxAt(tc.now), p.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Status)
		})
	}
}

func TestService_List_StatusFilter(t *testing.T) {
	store := NewInMemoryStore()
	svc := NewService(store)
	now := time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)

	seed(t, store, "running", now.AddDate(0, 0, -5), now.AddDate(0, 0, 5))
	seed(t, store, "future", now.AddDate(0, 1, 0), now.AddDate(0, 2, 0))
	seed(t, store, "past", now.AddDate(0, -2, 0), now.AddDate(0, -1, 0))

	active, err := svc.List(ctxAt(now), "active")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "running", active[0].Title)

	all, err := svc.List(ctxAt(now), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := svc.List(ctxAt(now), "bogus")
	require.NoError(t, err)
	assert.Empty(t, none)
}
