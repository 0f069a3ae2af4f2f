// Package meta holds build-time identity shared by the CLI and startup log.
package meta

// Version is overridden at build time via -ldflags "-X ...meta.Version=...".
var Version = "dev"
