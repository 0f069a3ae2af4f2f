package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rcarmo/guerite/internal/cronx"
	"github.com/rcarmo/guerite/internal/engine"
	"github.com/rcarmo/guerite/internal/flags"
	"github.com/rcarmo/guerite/internal/httpapi"
	"github.com/rcarmo/guerite/internal/inventory"
	"github.com/rcarmo/guerite/internal/logging"
	"github.com/rcarmo/guerite/internal/meta"
	"github.com/rcarmo/guerite/internal/notify"
	"github.com/rcarmo/guerite/internal/planner"
	"github.com/rcarmo/guerite/internal/report"
	"github.com/rcarmo/guerite/internal/scheduler"
	"github.com/rcarmo/guerite/internal/state"
	"github.com/rcarmo/guerite/pkg/container"
	"github.com/rcarmo/guerite/pkg/filters"
	"github.com/rcarmo/guerite/pkg/metrics"
	"github.com/rcarmo/guerite/pkg/types"
)

// Errors surfaced during command setup.
var (
	errInvalidAPIHost = errors.New("http-api-host must be empty or a valid IP address")
)

// client is the Engine Client used for every Docker API interaction, built
// once in preRun from Docker-environment flags.
var client types.Client

// notifier dispatches category-filtered notifications over shoutrrr
// transports, built once in preRun from --notification-url/--notifications.
var notifier types.Notifier

// cfg is the assembled run configuration, built once in preRun.
var cfg types.RunConfig

// stateStore persists per-container BackoffRecords across restarts.
var stateStore *state.Store

// rootCmd is the entry point cobra command for the Guerite daemon.
var rootCmd = NewRootCommand()

// NewRootCommand builds the root command: a single long-running daemon
// with no subcommands, its behavior entirely configured through flags and
// environment variables.
func NewRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "guerite",
		Short:   "Supervises container image updates with name-preserving rollback",
		Long:    "\nGuerite cron-triggers container image updates, in-place restarts, recreation, and health-triggered restarts, preserving container names across a swap so dependents never observe a rename. More information available at https://github.com/rcarmo/guerite/.",
		PreRunE: preRun,
		RunE:    run,
		Args:    cobra.NoArgs,
	}
}

func init() {
	flags.SetDefaults()
	flags.RegisterDockerFlags(rootCmd)
	flags.RegisterSystemFlags(rootCmd)
	flags.RegisterNotificationFlags(rootCmd)
}

// Execute runs the root command, the primary entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Fatal("Failed to execute root command")
	}
}

// preRun configures logging, assembles the run configuration, and builds
// the Engine Client and Notification Dispatcher before run starts the
// control loop.
func preRun(cmd *cobra.Command, _ []string) error {
	flagsSet := cmd.PersistentFlags()

	if err := flags.SetupLogging(flagsSet); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	flags.GetSecretsFromFiles(cmd)

	if err := flags.EnvConfig(cmd); err != nil {
		return fmt.Errorf("failed to configure engine environment: %w", err)
	}

	var err error

	cfg, err = flags.BuildRunConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to assemble run configuration: %w", err)
	}

	if cfg.HTTPAPIHost != "" && net.ParseIP(cfg.HTTPAPIHost) == nil {
		return fmt.Errorf("%w: %q", errInvalidAPIHost, cfg.HTTPAPIHost)
	}

	if cfg.HTTPAPIPort == "" {
		cfg.HTTPAPIPort = "8080"
	}

	client = container.NewClient(container.ClientOptions{
		ProbeRegistryStaleness: cfg.RegistryStalenessProbe,
		CPUCopyMode:            "auto",
	})

	notificationURLs, err := flagsSet.GetStringArray("notification-url")
	if err != nil {
		return fmt.Errorf("failed to read notification-url flag: %w", err)
	}

	notificationTitle, err := flagsSet.GetString("notification-title")
	if err != nil {
		return fmt.Errorf("failed to read notification-title flag: %w", err)
	}

	notifier, err = notify.New(notificationURLs, cfg.Notifications, notificationTitle)
	if err != nil {
		return fmt.Errorf("failed to initialize notification dispatcher: %w", err)
	}

	notifier.AddLogHook()

	stateStore = state.New(cfg.StateFile)

	return nil
}

// run starts the control loop and translates its exit code into cobra's
// error return, letting Execute own the fatal-log-and-exit path.
func run(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runMain(ctx)

	return nil
}

// runMain assembles the Cron Evaluator, Dependency Planner, Scheduler,
// Action Engine, and Control Surface, then ticks the control loop until
// ctx is cancelled or cfg.RunOnce completes a single cycle.
func runMain(ctx context.Context) {
	eng := engine.New(client, notifier, cfg)
	mainInventory := inventory.New(client, cfg.Filter)
	evaluator := cronx.NewEvaluator(resolveLocation(cfg.TimeZone))
	records := stateStore.Load()

	var pruneSched cronx.Schedule

	if cfg.PruneCron != "" {
		sched, err := cronx.Parse(cfg.PruneCron)
		if err != nil {
			logrus.WithError(err).Warn("Invalid prune cron expression, image pruning disabled")
		} else {
			pruneSched = sched
		}
	}

	// updateLock serializes every cycle, scheduled or HTTP-triggered, the
	// way the teacher's update handler already assumes a single shared
	// lock channel.
	updateLock := make(chan bool, 1)
	updateLock <- true

	trigger := func(images []string) *metrics.Metric {
		invBuilder := mainInventory
		if len(images) > 0 {
			invBuilder = inventory.New(client, filters.FilterByImage(images, cfg.Filter))
		}

		now := time.Now()
		rpt := runCycle(ctx, eng, invBuilder, evaluator, records, now.Add(-cfg.TickInterval), now, types.ActionUpdate)

		return metrics.NewMetric(rpt)
	}

	api := httpapi.New(client, cfg, trigger, updateLock)
	if err := api.Start(ctx, false); err != nil {
		logrus.WithError(err).Error("Failed to start HTTP control surface")
	}

	awaitEngineClient()
	logging.WriteStartupMessage(ctx, cfg, client, notifier, meta.Version)

	since := time.Now()

	for {
		chanValue := <-updateLock

		until := time.Now()
		rpt := runCycle(ctx, eng, mainInventory, evaluator, records, since, until, types.ActionNone)
		metrics.Default().RegisterScan(metrics.NewMetric(rpt))
		api.RecordCycle(until)

		if pruneSched.Valid() && evaluator.Fired(pruneSched, since, until) {
			runPrune(ctx, records)
		}

		since = until
		updateLock <- chanValue

		if cfg.RunOnce {
			notifier.Close()

			return
		}

		select {
		case <-ctx.Done():
			notifier.Close()

			return
		case <-time.After(cfg.TickInterval):
		}
	}
}

// runCycle lists the monitored containers through invBuilder, resolves an
// action per container (forced uniformly when forced != ActionNone, or via
// the Scheduler's cron precedence and rolling-restart fairness otherwise),
// dispatches project groups concurrently bounded by cfg.WorkerPoolSize, and
// persists the resulting BackoffRecords before returning the cycle report.
func runCycle(
	ctx context.Context,
	eng *engine.Engine,
	invBuilder *inventory.Builder,
	evaluator *cronx.Evaluator,
	records map[string]types.BackoffRecord,
	since, until time.Time,
	forced types.ActionKind,
) types.Report {
	snap, err := invBuilder.Build(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to build container inventory")

		var empty report.Builder

		return empty.Report()
	}

	for _, name := range snap.Detects {
		notifier.SendNotification(types.Event{
			Category: types.EventDetect,
			Title:    "New container detected",
			Message:  name,
			Occurred: time.Now(),
		})
	}

	live := make(map[string]bool)
	for _, group := range snap.Groups {
		for _, c := range group.Containers {
			live[c.Name()] = true
		}
	}

	eng.PruneExpiredLocks(live)

	decisions := resolveDecisions(evaluator, snap, records, since, until, forced)

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		builder report.Builder
	)

	sem := make(chan struct{}, poolSize(cfg.WorkerPoolSize))

	notifier.StartNotification()

	for _, group := range snap.Groups {
		plan := planner.Build(group.Project, group.Containers)

		wg.Add(1)
		sem <- struct{}{}

		go func(plan planner.Plan) {
			defer wg.Done()
			defer func() { <-sem }()

			runProjectGroup(ctx, eng, plan, decisions, records, &mu, &builder)
		}(plan)
	}

	wg.Wait()
	notifier.Close()

	if err := stateStore.Commit(records); err != nil {
		logrus.WithError(err).Error("Failed to persist backoff state")
	}

	return builder.Report()
}

// resolveDecisions returns the per-container action for this cycle: forced
// uniformly for an HTTP-triggered update, or the Scheduler's cron
// precedence plus rolling-restart fairness for a scheduled tick.
func resolveDecisions(
	evaluator *cronx.Evaluator,
	snap inventory.Snapshot,
	records map[string]types.BackoffRecord,
	since, until time.Time,
	forced types.ActionKind,
) map[string]types.ActionKind {
	decisions := make(map[string]types.ActionKind)

	if forced != types.ActionNone {
		for _, group := range snap.Groups {
			for _, c := range group.Containers {
				decisions[c.Name()] = forced
			}
		}

		return decisions
	}

	all := make([]types.Container, 0)
	for _, group := range snap.Groups {
		all = append(all, group.Containers...)
	}

	resolved := scheduler.ApplyRollingRestart(
		scheduler.Resolve(evaluator, all, since, until),
		snap.Groups,
		records,
	)

	for _, d := range resolved {
		decisions[d.Container.Name()] = d.Action
	}

	return decisions
}

// runProjectGroup dispatches one project's containers in dependency
// order, gating a node on the Dependency Planner's static readiness check
// plus any dependency that rolled back or failed earlier in this same
// cycle, per the ordering invariant that a rolled-back dependency skips
// its dependents.
func runProjectGroup(
	ctx context.Context,
	eng *engine.Engine,
	plan planner.Plan,
	decisions map[string]types.ActionKind,
	records map[string]types.BackoffRecord,
	mu *sync.Mutex,
	builder *report.Builder,
) {
	rolledBack := make(map[string]bool)

	for _, node := range plan.Nodes {
		c := node.Container
		name := c.Name()

		action := decisions[name]
		gated := node.Gated || dependsOnRolledBack(c, rolledBack)

		mu.Lock()
		record := records[name]
		mu.Unlock()

		rec, outcome := eng.Run(ctx, c, action, gated, record, time.Now())

		if outcome.State == types.StateRolledBack || outcome.State == types.StateFailed {
			rolledBack[name] = true
		}

		mu.Lock()
		records[name] = rec
		builder.Record(c, action, outcome)
		mu.Unlock()
	}
}

// dependsOnRolledBack reports whether any of c's declared dependencies
// rolled back or failed earlier in the current cycle.
func dependsOnRolledBack(c types.Container, rolledBack map[string]bool) bool {
	for _, dep := range c.DependsOn() {
		if rolledBack[dep] {
			return true
		}
	}

	return false
}

// runPrune defers the whole prune while any rollback artifact is younger
// than cfg.RollbackGrace; otherwise it keeps every listed container's image
// and asks the Engine Client to remove everything else, bounded by
// cfg.PruneTimeout. Success and failure both emit a prune event.
func runPrune(ctx context.Context, records map[string]types.BackoffRecord) {
	if cfg.DryRun {
		logrus.Info("Dry run: prune cycle would execute but no engine calls were made")

		return
	}

	all, err := client.ListAllContainers(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to list containers for pruning")

		return
	}

	keepSet := make(map[types.ImageID]struct{}, len(all))
	for _, c := range all {
		keepSet[c.ImageID()] = struct{}{}
	}

	now := time.Now()

	for _, record := range records {
		if record.Rollback == nil {
			continue
		}

		if now.Sub(record.Rollback.CreatedAt) < cfg.RollbackGrace {
			logrus.WithField("artifact", record.Rollback.OldName).Info("Image prune deferred: rollback_artifact_present")

			return
		}
	}

	keep := make([]types.ImageID, 0, len(keepSet))
	for id := range keepSet {
		keep = append(keep, id)
	}

	pruneCtx, cancel := context.WithTimeout(ctx, cfg.PruneTimeout)
	defer cancel()

	removed, reclaimed, err := client.PruneImages(pruneCtx, keep)
	if err != nil {
		logrus.WithError(err).Error("Image prune failed")

		notifier.SendNotification(types.Event{
			Category: types.EventPrune,
			Title:    "Image prune failed",
			Message:  err.Error(),
			Occurred: now,
		})

		return
	}

	logrus.WithFields(logrus.Fields{
		"removed":         len(removed),
		"reclaimed_bytes": reclaimed,
	}).Info("Pruned unused images")

	notifier.SendNotification(types.Event{
		Category: types.EventPrune,
		Title:    "Image prune completed",
		Message:  fmt.Sprintf("%d image(s) removed, %d bytes reclaimed", len(removed), reclaimed),
		Occurred: now,
	})
}

// resolveLocation parses cfg.TimeZone, falling back to the system's local
// zone for "" or "Local" and to UTC if the named zone is unknown.
func resolveLocation(tz string) *time.Location {
	if tz == "" || tz == "Local" {
		return time.Local
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		logrus.WithError(err).WithField("timezone", tz).Warn("Unknown timezone, evaluating cron in UTC")

		return time.UTC
	}

	return loc
}

// poolSize floors an unset or invalid worker-pool-size flag to 1.
func poolSize(n int) int {
	if n < 1 {
		return 1
	}

	return n
}

// awaitEngineClient gives the engine client a moment to finish negotiating
// before the first cycle runs.
func awaitEngineClient() {
	logrus.Debug("Sleeping for a second to ensure the engine client has been properly initialized.")
	time.Sleep(1 * time.Second)
}
