// Package planner implements the Dependency Planner: per-project ordering
// of containers by their declared depends-on lists, with a gate predicate
// for whether a container's dependencies are ready to proceed against.
package planner

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/rcarmo/guerite/pkg/types"
)

// Plan is one project group's containers in dependency-topological order,
// each annotated with whether its dependencies are currently ready.
type Plan struct {
	Project string
	Nodes   []Node
}

// Node pairs a container with its readiness for this cycle.
type Node struct {
	Container types.Container
	// Gated is true when at least one declared dependency is not running
	// and healthy; a gated node's action is skipped this cycle.
	Gated bool
}

// Build orders containers within one project group by dependency, breaking
// cycles deterministically by sorting the cycle's members by name, and
// computes the gate predicate for each node from the rest of the group.
func Build(project string, containers []types.Container) Plan {
	byName := make(map[string]types.Container, len(containers))
	for _, c := range containers {
		byName[baseName(c.Name())] = c
	}

	order := topoSort(containers, byName)

	nodes := make([]Node, 0, len(order))
	for _, c := range order {
		nodes = append(nodes, Node{Container: c, Gated: gated(c, byName)})
	}

	return Plan{Project: project, Nodes: nodes}
}

// gated reports whether any of c's declared dependencies fails to resolve
// to a running container whose health is either absent or healthy.
func gated(c types.Container, byName map[string]types.Container) bool {
	for _, dep := range c.DependsOn() {
		other, ok := byName[baseName(dep)]
		if !ok {
			continue // dependency outside this group is not this planner's concern
		}

		if !other.IsRunning() {
			return true
		}

		if other.HasHealthCheck() && other.Health() != types.HealthHealthy {
			return true
		}
	}

	return false
}

// topoSort returns containers ordered so that every dependency precedes its
// dependents. Cycles are broken by visiting remaining nodes in name order,
// which keeps the sort deterministic and logs the cycle at warn level.
func topoSort(containers []types.Container, byName map[string]types.Container) []types.Container {
	names := make([]string, 0, len(containers))
	for _, c := range containers {
		names = append(names, baseName(c.Name()))
	}

	sort.Strings(names)

	visited := make(map[string]bool, len(names))
	visiting := make(map[string]bool, len(names))
	order := make([]types.Container, 0, len(names))

	var visit func(name string)

	visit = func(name string) {
		if visited[name] {
			return
		}

		c, ok := byName[name]
		if !ok {
			return
		}

		if visiting[name] {
			logrus.WithField("container", name).Warn("Dependency cycle detected, breaking deterministically")

			return
		}

		visiting[name] = true

		deps := append([]string(nil), c.DependsOn()...)
		sort.Strings(deps)

		for _, dep := range deps {
			visit(baseName(dep))
		}

		visiting[name] = false
		visited[name] = true
		order = append(order, c)
	}

	for _, name := range names {
		visit(name)
	}

	return order
}

// baseName strips nothing today but centralizes the name key used for
// dependency resolution, in case depends-on labels later gain a qualifier.
func baseName(name string) string {
	return name
}
