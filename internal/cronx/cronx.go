// Package cronx evaluates standard five-field cron expressions against a
// tick window rather than a live scheduler. The action engine calls
// Evaluator.Fired once per action-label cron value on every control-loop
// tick, so evaluation has to be idempotent under variable tick latency:
// a schedule fires iff its next match after the previous tick falls at or
// before the current one, regardless of how far apart the ticks actually
// landed.
package cronx

import (
	"fmt"
	"time"

	"github.com/robfig/cron"
)

// Schedule is a parsed five-field cron expression. The zero value is not
// valid; construct one with Parse.
type Schedule struct {
	spec     string
	schedule cron.Schedule
}

// Parse parses spec as a standard five-field cron expression (minute, hour,
// day of month, month, day of week), the same dialect robfig/cron's standard
// parser accepts. Parse failures are the caller's responsibility to log and
// exclude: cronx never retries or falls back on a bad expression.
func Parse(spec string) (Schedule, error) {
	sched, err := cron.ParseStandard(spec)
	if err != nil {
		return Schedule{}, fmt.Errorf("invalid cron expression %q: %w", spec, err)
	}

	return Schedule{spec: spec, schedule: sched}, nil
}

// String returns the original expression text.
func (s Schedule) String() string {
	return s.spec
}

// Valid reports whether s was produced by a successful Parse.
func (s Schedule) Valid() bool {
	return s.schedule != nil
}

// Evaluator evaluates Schedule values against a tick window in a fixed time
// zone. The zero value evaluates in UTC.
type Evaluator struct {
	loc *time.Location
}

// NewEvaluator returns an Evaluator that interprets tick boundaries in loc.
// A nil loc defaults to UTC, matching the configured default.
func NewEvaluator(loc *time.Location) *Evaluator {
	if loc == nil {
		loc = time.UTC
	}

	return &Evaluator{loc: loc}
}

// Fired reports whether sched has at least one occurrence in the half-open
// window (since, until]. Both bounds are converted to the evaluator's time
// zone before evaluation so that DST transitions in other zones don't shift
// the comparison.
func (e *Evaluator) Fired(sched Schedule, since, until time.Time) bool {
	if !sched.Valid() {
		return false
	}

	loc := e.loc
	if loc == nil {
		loc = time.UTC
	}

	next := sched.schedule.Next(since.In(loc))

	return !next.After(until.In(loc))
}
