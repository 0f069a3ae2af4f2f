// Package logging writes the one-time startup summary: version, notifier
// setup, filter scope, and HTTP API status, either to the local logger or
// batched through the Notification Dispatcher.
package logging

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rcarmo/guerite/internal/util"
	"github.com/rcarmo/guerite/pkg/types"
)

// WriteStartupMessage logs Guerite's version, notifier setup, filter scope,
// and HTTP API status once at process start.
func WriteStartupMessage(
	ctx context.Context,
	cfg types.RunConfig,
	client types.Client,
	notifier types.Notifier,
	version string,
) {
	startupLog := SetupStartupLogger(notifier)

	apiVersion := ""
	if client != nil {
		apiVersion = client.GetVersion()
	}

	startupLog.Info("Guerite ", version, " using engine API v", apiVersion)

	var notifierNames []string
	if notifier != nil {
		notifierNames = notifier.GetNames()
	}

	LogNotifierInfo(startupLog, notifierNames)

	if cfg.Scope != "" {
		startupLog.WithField("scope", cfg.Scope).Info("Only checking containers in scope")
	} else {
		startupLog.Debug(cfg.FilterDesc)
	}

	LogScheduleInfo(startupLog, cfg)

	if cfg.HTTPAPI {
		addr := cfg.HTTPAPIHost + ":" + cfg.HTTPAPIPort
		startupLog.Info(fmt.Sprintf("The HTTP API is enabled at %s.", addr))
	}

	if notifier != nil {
		notifier.SendNotification(types.Event{
			Category: types.EventStartup,
			Title:    "Guerite started",
			Occurred: startedAt(ctx),
		})
		notifier.Close()
	}

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		startupLog.Warn(
			"Trace level enabled: log will include sensitive information as credentials and tokens",
		)
	}
}

func startedAt(ctx context.Context) time.Time {
	if deadline, ok := ctx.Deadline(); ok {
		return deadline
	}

	return time.Now()
}

// SetupStartupLogger returns a log entry and, when notifier is non-nil,
// begins batching so the startup message is delivered as one notification.
func SetupStartupLogger(notifier types.Notifier) *logrus.Entry {
	log := logrus.NewEntry(logrus.StandardLogger())

	if notifier != nil {
		notifier.StartNotification()
	}

	return log
}

// LogNotifierInfo reports which notification transports are configured.
func LogNotifierInfo(log *logrus.Entry, notifierNames []string) {
	if len(notifierNames) > 0 {
		log.Info("Using notifications: " + strings.Join(notifierNames, ", "))
	} else {
		log.Info("Using no notifications")
	}
}

// LogScheduleInfo reports the run mode: one-time, HTTP-triggered, or
// periodic on the configured tick interval.
func LogScheduleInfo(log *logrus.Entry, cfg types.RunConfig) {
	switch {
	case cfg.RunOnce:
		log.Info("Running a one time update.")
	case cfg.HTTPAPI:
		log.Info("Updates via HTTP API enabled, periodic evaluation continues on the tick interval.")
	default:
		log.Info("Evaluating cron schedules every " + util.FormatDuration(cfg.TickInterval) + ".")
	}
}
