// Package types defines the core interfaces and structs shared across Guerite.
//
// Key components:
//   - Container: the monitored view of a single running container.
//   - Client: the narrow Engine Client capability set the action engine runs against.
//   - ActionKind, HookPoint: the vocabulary of the action engine's state machine.
//   - BackoffRecord: the per-container persisted retry/backoff bookkeeping.
//   - Filter, FilterableContainer: the container-selection boundary used by Inventory.
//   - Notifier, Event: the notification dispatcher boundary.
//
// The package has no behavior of its own — it exists so internal/engine,
// internal/scheduler, internal/inventory, and internal/planner can depend on
// a shared vocabulary without importing each other or the concrete pkg/container
// and internal/notify implementations.
package types
