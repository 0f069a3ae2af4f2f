// Package scheduler resolves, for each monitored container, at most one
// ActionKind to dispatch this cycle: evaluate the four action-label cron
// expressions, apply the Update > Recreate > Restart > HealthRestart
// precedence, and enforce rolling-restart fairness within project groups.
package scheduler

import (
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rcarmo/guerite/internal/cronx"
	"github.com/rcarmo/guerite/internal/inventory"
	"github.com/rcarmo/guerite/pkg/types"
)

// swappingKinds are the action kinds rolling-restart fairness rations to
// one per project group per cycle.
var swappingKinds = map[types.ActionKind]bool{
	types.ActionUpdate:   true,
	types.ActionRecreate: true,
}

// precedenceOrder is evaluated top to bottom; the first cron that fires wins.
var precedenceOrder = []types.ActionKind{
	types.ActionUpdate,
	types.ActionRecreate,
	types.ActionRestart,
	types.ActionHealthRestart,
}

// Decision is one container's resolved action for the current cycle.
type Decision struct {
	Container types.Container
	Action    types.ActionKind
}

// Resolve evaluates every monitored container's cron expressions against
// the tick window (since, until] and returns the highest-precedence action
// that fired for each, in the order containers were given.
func Resolve(evaluator *cronx.Evaluator, containers []types.Container, since, until time.Time) []Decision {
	decisions := make([]Decision, 0, len(containers))

	for _, c := range containers {
		decisions = append(decisions, Decision{Container: c, Action: resolveOne(evaluator, c, since, until)})
	}

	return decisions
}

func resolveOne(evaluator *cronx.Evaluator, c types.Container, since, until time.Time) types.ActionKind {
	for _, kind := range precedenceOrder {
		expr, ok := c.CronExpression(kind)
		if !ok || expr == "" {
			continue
		}

		sched, err := cronx.Parse(expr)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"container": c.Name(),
				"action":    kind.String(),
			}).Warn("Invalid cron expression, excluding this action for this container")

			continue
		}

		if evaluator.Fired(sched, since, until) {
			return kind
		}
	}

	return types.ActionNone
}

// ApplyRollingRestart enforces §4.5's fairness rule: within each project
// group, at most one container may run Update or Recreate this cycle. The
// remaining candidates are reduced to ActionNone, deferred to a later
// cycle, preferring the container least recently acted on (ties by name).
func ApplyRollingRestart(
	decisions []Decision,
	groups []inventory.Group,
	records map[string]types.BackoffRecord,
) []Decision {
	byName := make(map[string]int, len(decisions))
	for i, d := range decisions {
		byName[d.Container.Name()] = i
	}

	result := append([]Decision(nil), decisions...)

	for _, group := range groups {
		candidates := make([]string, 0)

		for _, c := range group.Containers {
			idx, ok := byName[c.Name()]
			if !ok {
				continue
			}

			if swappingKinds[result[idx].Action] {
				candidates = append(candidates, c.Name())
			}
		}

		if len(candidates) <= 1 {
			continue
		}

		sort.Slice(candidates, func(i, j int) bool {
			ti := lastActionFor(records, candidates[i])
			tj := lastActionFor(records, candidates[j])

			if !ti.Equal(tj) {
				return ti.Before(tj)
			}

			return candidates[i] < candidates[j]
		})

		for _, deferred := range candidates[1:] {
			idx := byName[deferred]
			logrus.WithFields(logrus.Fields{
				"container": deferred,
				"project":   group.Project,
			}).Debug("Deferring rolling-restart candidate to a later cycle")
			result[idx].Action = types.ActionNone
		}
	}

	return result
}

func lastActionFor(records map[string]types.BackoffRecord, name string) time.Time {
	record, ok := records[name]
	if !ok {
		return time.Time{}
	}

	var last time.Time

	for _, t := range record.LastActionAt {
		if t.After(last) {
			last = t
		}
	}

	return last
}
