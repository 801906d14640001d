// Package status derives the lifecycle state of time-bound records. Status is
// computed fresh on every read and never persisted: "now" moves independently
// of any write to the record, so a stored status would go stale.
package status

import "time"

// Status is the derived lifecycle state of an entitlement or promotion.
type Status string

const (
	Active   Status = "Active"
	Upcoming Status = "Upcoming"
	Expired  Status = "Expired"
)

// FromEnd derives status from an end date alone (insurance, finance,
// roadside). The comparison is strict: a record ending exactly at now is
// already Expired.
func FromEnd(now, end time.Time) Status {
	if end.After(now) {
		return Active
	}
	return Expired
}

// FromWindow derives status from a start/end window (promotions). Boundaries
// resolve differently from FromEnd: now == start and now == end are both
// Active here. The two policies are deliberately kept separate; callers pick
// the one their record kind has always used.
func FromWindow(now, start, end time.Time) Status {
	if now.Before(start) {
		return Upcoming
	}
	if now.After(end) {
		return Expired
	}
	return Active
}
