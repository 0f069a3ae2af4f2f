// Package inventory builds the set of monitored containers for one control
// loop cycle: list from the Engine Client, filter down to what guerite
// should act on, group by project, and track which names are newly seen.
package inventory

import (
	"context"
	"fmt"

	"github.com/rcarmo/guerite/pkg/filters"
	"github.com/rcarmo/guerite/pkg/types"
)

// Group is the containers sharing one project label. An empty project
// value is its own singleton group, keyed by "".
type Group struct {
	Project    string
	Containers []types.Container
}

// Snapshot is one cycle's monitored-container listing: containers grouped
// by project, plus the names first seen this cycle.
type Snapshot struct {
	Groups  []Group
	Detects []string
}

// Builder lists and filters containers on each cycle. The zero value is
// not valid; construct one with New.
type Builder struct {
	client types.Client
	filter types.Filter
	seen   map[string]struct{}
	warmed bool
}

// New returns a Builder that lists through client and additionally applies
// extra (the include/exclude/scope filter built by filters.BuildFilter) on
// top of the always-applied monitored-label and swarm-managed checks.
func New(client types.Client, extra types.Filter) *Builder {
	filter := extra
	if filter == nil {
		filter = filters.NoFilter
	}

	b := &Builder{
		client: client,
		filter: filters.SwarmManagedFilter,
		seen:   map[string]struct{}{},
	}

	return b.withExtra(filter)
}

// withExtra folds extra into the builder's base filter chain. Kept as a
// method rather than inlined in New so the base swarm-managed check always
// runs first regardless of what extra does.
func (b *Builder) withExtra(extra types.Filter) *Builder {
	base := b.filter

	b.filter = func(c types.FilterableContainer) bool {
		return base(c) && extra(c)
	}

	return b
}

// isMonitored reports whether c carries at least one action-label cron
// expression, the Container Inventory's definition of "in scope at all"
// independent of the include/exclude/scope filters.
func isMonitored(c types.Container) bool {
	for _, kind := range []types.ActionKind{
		types.ActionUpdate,
		types.ActionRecreate,
		types.ActionRestart,
		types.ActionHealthRestart,
	} {
		if _, ok := c.CronExpression(kind); ok {
			return true
		}
	}

	return false
}

// Build lists containers, applies the monitored-label and configured
// filters, groups survivors by project label, and reports which names are
// new since the previous Build call. The first call on a fresh Builder
// reports no detects, since there is no previous cycle to compare against.
func (b *Builder) Build(ctx context.Context) (Snapshot, error) {
	all, err := b.client.ListContainers(ctx, b.filter)
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to list containers: %w", err)
	}

	monitored := make([]types.Container, 0, len(all))

	for _, c := range all {
		if isMonitored(c) {
			monitored = append(monitored, c)
		}
	}

	groups := groupByProject(monitored)

	current := make(map[string]struct{}, len(monitored))

	var detects []string

	for _, c := range monitored {
		current[c.Name()] = struct{}{}

		if b.warmed {
			if _, ok := b.seen[c.Name()]; !ok {
				detects = append(detects, c.Name())
			}
		}
	}

	b.seen = current
	b.warmed = true

	return Snapshot{Groups: groups, Detects: detects}, nil
}

// groupByProject partitions containers by their guerite.project label,
// preserving first-seen project order so cycle-to-cycle output is stable.
// Each container without a project forms its own singleton group.
func groupByProject(containers []types.Container) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)

	for _, c := range containers {
		project, _ := c.Project()

		if i, ok := index[project]; ok && project != "" {
			groups[i].Containers = append(groups[i].Containers, c)

			continue
		}

		index[project] = len(groups)
		groups = append(groups, Group{Project: project, Containers: []types.Container{c}})
	}

	return groups
}
