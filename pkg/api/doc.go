// Package api provides an HTTP server for Guerite’s API endpoints.
// It handles token-authenticated requests for triggering container updates.
//
// Key components:
//   - API: Manages server setup and endpoint registration.
//   - RequireToken: Wraps HTTP handlers with token validation.
//
// Usage example:
//
//	api := api.New("secure-token", ":8080")
//	api.RegisterFunc("/v1/update", updateHandler)
//	if err := api.Start(ctx, true, false); err != nil {
//	    logrus.WithError(err).Error("API start failed")
//	}
//
// The package uses a custom ServeMux for routing, supports graceful shutdown,
// and integrates with logrus for logging server operations.
package api
