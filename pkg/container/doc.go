// Package container provides functionality for managing containers through the
// engine's API. It defines types and methods to interact with the Docker API,
// interpret container metadata, and implement the swap/rollback operations the
// action engine drives.
//
// Key components:
//   - Container: Implements types.Container for state and metadata operations.
//   - Client: Interface for engine API interactions (list, pull, start, stop, prune).
//   - imageClient: Manages image pulling, registry staleness probing and pruning.
//   - Labels: Methods to interpret guerite.* labels and lifecycle hooks.
//
// Usage example:
//
//	cli := container.NewClient(container.ClientOptions{})
//	containers, _ := cli.ListContainers(ctx, filters.NoFilter)
//	for _, c := range containers {
//	    newImageID, _ := cli.PullImage(ctx, c)
//	    if newImageID != c.ImageID() {
//	        cli.StopContainer(ctx, c, 10*time.Second)
//	    }
//	}
//
// The package integrates with Docker's API via docker/docker client libraries
// and supports scope filtering, registry authentication and custom lifecycle
// hooks around each action.
package container
