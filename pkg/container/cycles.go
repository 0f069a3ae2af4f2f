package container

import (
	"github.com/rcarmo/guerite/internal/util"
	"github.com/rcarmo/guerite/pkg/types"
)

// CycleDetector implements cycle detection in container dependency graphs using the three-color DFS algorithm.
//
// The three-color DFS algorithm is a graph traversal technique that detects cycles by maintaining
// three states for each node during depth-first search:
//
//  1. White (0): Node has not been visited yet.
//  2. Gray (1): Node is currently being visited (in the current DFS path). A back edge to a gray
//     node indicates a cycle.
//  3. Black (2): Node has been fully explored, including all its descendants.
type CycleDetector struct {
	graph  map[string][]string
	colors map[string]int // 0: white, 1: gray, 2: black
	cycles map[string]bool
	path   []string
}

// dfs performs depth-first search to detect cycles in the dependency graph using the three-color algorithm.
func (cd *CycleDetector) dfs(node string) {
	cd.colors[node] = 1 // gray
	cd.path = append(cd.path, node)

	for _, neighbor := range cd.graph[node] {
		if cd.colors[neighbor] == 0 {
			cd.dfs(neighbor)
		} else if cd.colors[neighbor] == 1 {
			// Back edge to a gray node: every node in the path from that
			// node's first occurrence through the current node is cyclic.
			idx := -1

			for i, n := range cd.path {
				if n == neighbor {
					idx = i

					break
				}
			}

			if idx >= 0 {
				for i := idx; i < len(cd.path); i++ {
					cd.cycles[cd.path[i]] = true
				}
			}
		}
	}

	cd.path = cd.path[:len(cd.path)-1]
	cd.colors[node] = 2 // black
}

// DetectCycles identifies all containers involved in circular dependencies, as
// reported by each container's DependsOn, using three-color DFS.
//
// Container names are normalized and dependencies not present in the input
// list are ignored, so a container depending on something outside its project
// group never triggers a false cycle.
func DetectCycles(containers []types.Container) map[string]bool {
	cycleDetector := &CycleDetector{
		graph:  make(map[string][]string),
		colors: make(map[string]int),
		cycles: make(map[string]bool),
		path:   []string{},
	}

	for _, c := range containers {
		name := ResolveContainerIdentifier(c)

		deps := c.DependsOn()
		normalizedDeps := make([]string, len(deps))

		for i, dep := range deps {
			normalizedDeps[i] = util.NormalizeContainerName(dep)
		}

		cycleDetector.graph[name] = normalizedDeps
		cycleDetector.colors[name] = 0
	}

	for name, neighbors := range cycleDetector.graph {
		filtered := make([]string, 0, len(neighbors))

		for _, neighbor := range neighbors {
			if _, exists := cycleDetector.colors[neighbor]; exists {
				filtered = append(filtered, neighbor)
			}
		}

		cycleDetector.graph[name] = filtered
	}

	for name := range cycleDetector.graph {
		if cycleDetector.colors[name] == 0 {
			cycleDetector.dfs(name)
		}
	}

	return cycleDetector.cycles
}
