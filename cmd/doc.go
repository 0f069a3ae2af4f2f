// Package cmd contains the command-line interface for Guerite. It wires
// the root command that drives the daemon's control loop: reading flags and
// environment into a types.RunConfig, constructing the Engine Client and
// Notification Dispatcher, and ticking the Cron Evaluator, Dependency
// Planner, Scheduler, and Action Engine once per TickInterval while serving
// an optional HTTP control surface.
package cmd
