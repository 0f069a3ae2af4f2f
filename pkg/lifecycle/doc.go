// Package lifecycle runs pre-check, pre-update, post-update, and post-check
// hook commands inside a container via the Engine Client's exec facility.
//
// Usage example:
//
//	lifecycle.Run(ctx, client, container, types.HookPreUpdate, int(cfg.HookTimeout.Seconds()))
package lifecycle
