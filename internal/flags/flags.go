// Package flags manages command-line flags and environment variables for Guerite configuration.
package flags

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rcarmo/guerite/pkg/filters"
	"github.com/rcarmo/guerite/pkg/types"
)

// DockerAPIMinVersion sets the minimum Docker API version supported by Guerite.
const DockerAPIMinVersion string = "1.24"

// Default values for the duration/count settings named in the configuration
// surface, applied in SetDefaults so an unset env var still yields a sane
// RunConfig.
const (
	defaultTickIntervalSeconds       = 60
	defaultStopTimeoutSeconds        = 30
	defaultHealthCheckBackoffSeconds = 300
	defaultHealthCheckTimeoutSeconds = 60
	defaultActionCooldownSeconds     = 60
	defaultRestartRetryLimit         = 3
	defaultRollbackGraceSeconds      = 3600
	defaultPruneTimeoutSeconds       = 180
	defaultHookTimeoutSeconds        = 60
	defaultStartGraceSeconds         = 30
	defaultWorkerPoolSize            = 4
)

// Errors for flag and environment configuration.
var (
	// errInvalidLogFormat indicates an invalid log format was specified in configuration.
	errInvalidLogFormat = errors.New("invalid log format specified")
	// errInvalidLogLevel indicates an invalid log level was specified in configuration.
	errInvalidLogLevel = errors.New("invalid log level specified")
	// errOpenFileFailed indicates a failure to open a file when reading secrets.
	errOpenFileFailed = errors.New("failed to open secret file")
	// errReplaceSliceFailed indicates a failure to replace a slice value in a flag.
	errReplaceSliceFailed = errors.New("failed to replace slice value in flag")
	// errReadFileFailed indicates a failure to read a file's contents for secrets.
	errReadFileFailed = errors.New("failed to read secret file")
	// errSetFlagFailed indicates a failure to set a flag's value during configuration.
	errSetFlagFailed = errors.New("failed to set flag value")
)

// RegisterDockerFlags adds Docker API client flags to the root command.
func RegisterDockerFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()
	flags.StringP("host", "H", envString("DOCKER_HOST"), "daemon socket to connect to")
	flags.BoolP("tlsverify", "v", envBool("DOCKER_TLS_VERIFY"), "use TLS and verify the remote")
	flags.StringP(
		"api-version",
		"a",
		strings.Trim(envString("DOCKER_API_VERSION"), "\""),
		"api version to use by docker client (omit for autonegotiation)",
	)
}

// RegisterSystemFlags adds the core Guerite flow-control flags to the root command.
func RegisterSystemFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()

	flags.IntP(
		"tick-interval",
		"i",
		envInt("GUERITE_TICK_INTERVAL_SECONDS"),
		"How often (in seconds) the control loop evaluates cron expressions")

	flags.StringP(
		"prune-cron",
		"",
		envString("GUERITE_PRUNE_CRON"),
		"Cron expression for the image-prune cycle")

	flags.DurationP(
		"cooldown",
		"",
		envDuration("GUERITE_ACTION_COOLDOWN_SECONDS")*time.Second,
		"Minimum spacing between actions on the same container")

	flags.DurationP(
		"stop-timeout",
		"t",
		envDuration("GUERITE_STOP_TIMEOUT_SECONDS")*time.Second,
		"Timeout before a container is forcefully stopped")

	flags.DurationP(
		"health-check-timeout",
		"",
		envDuration("GUERITE_HEALTH_CHECK_TIMEOUT_SECONDS")*time.Second,
		"How long the probing phase waits for a container to report healthy")

	flags.DurationP(
		"health-check-backoff",
		"",
		envDuration("GUERITE_HEALTH_CHECK_BACKOFF_SECONDS")*time.Second,
		"Minimum spacing between health-triggered restarts on the same container")

	flags.DurationP(
		"start-grace",
		"",
		envDuration("GUERITE_START_GRACE_SECONDS")*time.Second,
		"How long a container must have run before a health restart considers it")

	flags.IntP(
		"restart-retry-limit",
		"",
		envInt("GUERITE_RESTART_RETRY_LIMIT"),
		"Consecutive failures recorded before backoff saturates")

	flags.DurationP(
		"rollback-grace",
		"",
		envDuration("GUERITE_ROLLBACK_GRACE_SECONDS")*time.Second,
		"Age below which a rollback artifact blocks pruning")

	flags.DurationP(
		"prune-timeout",
		"",
		envDuration("GUERITE_PRUNE_TIMEOUT_SECONDS")*time.Second,
		"Timeout bounding the prune operation")

	flags.DurationP(
		"hook-timeout",
		"",
		envDuration("GUERITE_HOOK_TIMEOUT_SECONDS")*time.Second,
		"Default lifecycle hook timeout, overridable per-hook by label")

	flags.IntP(
		"worker-pool-size",
		"",
		envInt("GUERITE_WORKER_POOL_SIZE"),
		"Bound on concurrent project groups")

	flags.BoolP(
		"no-pull",
		"",
		envBool("GUERITE_NO_PULL"),
		"Suppress the pull step of every update")

	flags.BoolP(
		"no-restart",
		"",
		envBool("GUERITE_NO_RESTART"),
		"Suppress every stop/start performed by the action engine")

	flags.BoolP(
		"monitor-only",
		"m",
		envBool("GUERITE_MONITOR_ONLY"),
		"Detect newer images without swapping containers")

	flags.BoolP(
		"dry-run",
		"",
		envBool("GUERITE_DRY_RUN"),
		"Run the full decision pipeline without mutating the engine")

	flags.BoolP(
		"run-once",
		"R",
		envBool("GUERITE_RUN_ONCE"),
		"Perform a single cycle and exit, rather than looping on tick-interval")

	flags.BoolP(
		"rolling-restart",
		"",
		envBool("GUERITE_ROLLING_RESTART"),
		"Cap update/recreate to one container per project group per cycle")

	flags.BoolP(
		"registry-staleness-probe",
		"",
		envBool("GUERITE_REGISTRY_STALENESS_PROBE"),
		"Enable a cheap HEAD/digest pre-check before a full pull")

	flags.StringSliceP(
		"include-containers",
		"",
		// Due to issue spf13/viper#380, can't use viper.GetStringSlice:
		regexp.MustCompile("[, ]+").Split(envString("GUERITE_INCLUDE_CONTAINERS"), -1),
		"Comma-separated list of container names to restrict monitoring to")

	flags.StringSliceP(
		"exclude-containers",
		"x",
		regexp.MustCompile("[, ]+").Split(envString("GUERITE_EXCLUDE_CONTAINERS"), -1),
		"Comma-separated list of container names to explicitly exclude from monitoring")

	flags.StringP(
		"scope",
		"",
		envString("GUERITE_SCOPE"),
		"Restrict monitoring to containers carrying a matching guerite.scope label")

	flags.StringP(
		"state-file",
		"",
		envString("GUERITE_STATE_FILE"),
		"Path to the persisted backoff state document")

	flags.StringP(
		"timezone",
		"",
		envString("GUERITE_TZ"),
		"Timezone the cron evaluator resolves expressions in")

	flags.BoolP(
		"http-api",
		"",
		envBool("GUERITE_HTTP_API"),
		"Enable the HTTP control surface")

	flags.BoolP(
		"http-api-metrics",
		"",
		envBool("GUERITE_HTTP_API_METRICS"),
		"Enable GET /v1/metrics in Prometheus text format")

	flags.StringP(
		"http-api-host",
		"",
		envString("GUERITE_HTTP_API_HOST"),
		"Host to bind the HTTP control surface to (empty binds to all interfaces)")

	flags.StringP(
		"http-api-port",
		"",
		envString("GUERITE_HTTP_API_PORT"),
		"Port to bind the HTTP control surface to")

	flags.StringP(
		"http-api-token",
		"",
		envString("GUERITE_HTTP_API_TOKEN"),
		"Bearer token required by the HTTP control surface")

	// https://no-color.org/
	flags.BoolP(
		"no-color",
		"",
		viper.IsSet("NO_COLOR"),
		"Disable ANSI color escape codes in log output")

	flags.String(
		"log-level",
		envString("GUERITE_LOG_LEVEL"),
		"The maximum log level written to STDERR: panic, fatal, error, warn, info, debug or trace",
	)

	flags.StringP(
		"log-format",
		"l",
		envString("GUERITE_LOG_FORMAT"),
		"Logging format for console output: auto, logfmt, pretty or json",
	)
}

// RegisterNotificationFlags adds notification flags to the root command.
func RegisterNotificationFlags(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()

	flags.StringSliceP(
		"notifications",
		"n",
		envStringSlice("GUERITE_NOTIFICATIONS"),
		"Notification categories to deliver (update, restart, recreate, health, startup, detect, prune, all)")

	flags.StringArray(
		"notification-url",
		envStringSlice("GUERITE_NOTIFICATION_URL"),
		"The shoutrrr URL to send notifications to")

	flags.StringP(
		"notification-title",
		"",
		envString("GUERITE_NOTIFICATION_TITLE"),
		"Title used for notification messages")
}

// envString fetches a string from an environment variable.
func envString(key string) string {
	viper.MustBindEnv(key)

	return viper.GetString(key)
}

// envStringSlice fetches a string slice from an environment variable.
func envStringSlice(key string) []string {
	viper.MustBindEnv(key)

	return viper.GetStringSlice(key)
}

// envInt fetches an integer from an environment variable.
func envInt(key string) int {
	viper.MustBindEnv(key)

	return viper.GetInt(key)
}

// envBool fetches a boolean from an environment variable.
func envBool(key string) bool {
	viper.MustBindEnv(key)

	return viper.GetBool(key)
}

// envDuration fetches a duration (expressed in whole seconds) from an
// environment variable; callers multiply the result by time.Second.
func envDuration(key string) time.Duration {
	viper.MustBindEnv(key)

	return time.Duration(viper.GetInt64(key))
}

// SetDefaults sets default environment variable values.
func SetDefaults() {
	viper.AutomaticEnv()
	viper.SetDefault("DOCKER_HOST", "unix:///var/run/docker.sock")
	viper.SetDefault("GUERITE_TICK_INTERVAL_SECONDS", defaultTickIntervalSeconds)
	viper.SetDefault("GUERITE_STOP_TIMEOUT_SECONDS", defaultStopTimeoutSeconds)
	viper.SetDefault("GUERITE_HEALTH_CHECK_BACKOFF_SECONDS", defaultHealthCheckBackoffSeconds)
	viper.SetDefault("GUERITE_HEALTH_CHECK_TIMEOUT_SECONDS", defaultHealthCheckTimeoutSeconds)
	viper.SetDefault("GUERITE_ACTION_COOLDOWN_SECONDS", defaultActionCooldownSeconds)
	viper.SetDefault("GUERITE_RESTART_RETRY_LIMIT", defaultRestartRetryLimit)
	viper.SetDefault("GUERITE_ROLLBACK_GRACE_SECONDS", defaultRollbackGraceSeconds)
	viper.SetDefault("GUERITE_PRUNE_TIMEOUT_SECONDS", defaultPruneTimeoutSeconds)
	viper.SetDefault("GUERITE_HOOK_TIMEOUT_SECONDS", defaultHookTimeoutSeconds)
	viper.SetDefault("GUERITE_START_GRACE_SECONDS", defaultStartGraceSeconds)
	viper.SetDefault("GUERITE_WORKER_POOL_SIZE", defaultWorkerPoolSize)
	viper.SetDefault("GUERITE_HTTP_API_HOST", "")
	viper.SetDefault("GUERITE_HTTP_API_PORT", "8080")
	viper.SetDefault("GUERITE_NOTIFICATIONS", []string{})
	viper.SetDefault("GUERITE_LOG_LEVEL", "info")
	viper.SetDefault("GUERITE_LOG_FORMAT", "auto")
	viper.SetDefault("GUERITE_TZ", "UTC")
	viper.SetDefault("GUERITE_STATE_FILE", "/var/lib/guerite/state.yaml")
}

// EnvConfig sets Docker environment variables from flags.
func EnvConfig(cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()

	host, err := flags.GetString("host")
	if err != nil {
		return fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}

	tls, err := flags.GetBool("tlsverify")
	if err != nil {
		return fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}

	version, err := flags.GetString("api-version")
	if err != nil {
		return fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}

	if err := setEnvOptStr("DOCKER_HOST", host); err != nil {
		return err
	}

	if err := setEnvOptBool("DOCKER_TLS_VERIFY", tls); err != nil {
		return err
	}

	if err := setEnvOptStr("DOCKER_API_VERSION", version); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"host":    host,
		"tls":     tls,
		"version": version,
	}).Debug("Configured Docker environment variables")

	return nil
}

// BuildRunConfig assembles a types.RunConfig from the parsed flag set, the
// way the teacher's ReadFlags pulled a handful of named settings out of the
// command; this pulls the whole run configuration out at once since every
// setting feeds the same struct downstream.
func BuildRunConfig(cmd *cobra.Command) (types.RunConfig, error) {
	flags := cmd.PersistentFlags()

	cfg := types.RunConfig{}

	getString := func(name string) (string, error) { return flags.GetString(name) }
	getBool := func(name string) (bool, error) { return flags.GetBool(name) }
	getInt := func(name string) (int, error) { return flags.GetInt(name) }
	getDuration := func(name string) (time.Duration, error) { return flags.GetDuration(name) }
	getSlice := func(name string) ([]string, error) { return flags.GetStringSlice(name) }

	var err error

	if cfg.Scope, err = getString("scope"); err != nil {
		return cfg, fmt.Errorf("%w: scope: %w", errSetFlagFailed, err)
	}

	if cfg.StateFile, err = getString("state-file"); err != nil {
		return cfg, fmt.Errorf("%w: state-file: %w", errSetFlagFailed, err)
	}

	if cfg.TimeZone, err = getString("timezone"); err != nil {
		return cfg, fmt.Errorf("%w: timezone: %w", errSetFlagFailed, err)
	}

	if cfg.PruneCron, err = getString("prune-cron"); err != nil {
		return cfg, fmt.Errorf("%w: prune-cron: %w", errSetFlagFailed, err)
	}

	if cfg.HTTPAPIHost, err = getString("http-api-host"); err != nil {
		return cfg, fmt.Errorf("%w: http-api-host: %w", errSetFlagFailed, err)
	}

	if cfg.HTTPAPIPort, err = getString("http-api-port"); err != nil {
		return cfg, fmt.Errorf("%w: http-api-port: %w", errSetFlagFailed, err)
	}

	if cfg.HTTPAPIToken, err = getString("http-api-token"); err != nil {
		return cfg, fmt.Errorf("%w: http-api-token: %w", errSetFlagFailed, err)
	}

	boolFields := []struct {
		name string
		dst  *bool
	}{
		{"dry-run", &cfg.DryRun},
		{"monitor-only", &cfg.MonitorOnly},
		{"no-pull", &cfg.NoPull},
		{"no-restart", &cfg.NoRestart},
		{"rolling-restart", &cfg.RollingRestart},
		{"run-once", &cfg.RunOnce},
		{"registry-staleness-probe", &cfg.RegistryStalenessProbe},
		{"http-api", &cfg.HTTPAPI},
		{"http-api-metrics", &cfg.HTTPAPIMetrics},
	}
	for _, f := range boolFields {
		if *f.dst, err = getBool(f.name); err != nil {
			return cfg, fmt.Errorf("%w: %s: %w", errSetFlagFailed, f.name, err)
		}
	}

	intFields := []struct {
		name string
		dst  *int
	}{
		{"restart-retry-limit", &cfg.RestartRetryLimit},
		{"worker-pool-size", &cfg.WorkerPoolSize},
	}
	for _, f := range intFields {
		if *f.dst, err = getInt(f.name); err != nil {
			return cfg, fmt.Errorf("%w: %s: %w", errSetFlagFailed, f.name, err)
		}
	}

	durationFields := []struct {
		name string
		dst  *time.Duration
	}{
		{"cooldown", &cfg.Cooldown},
		{"stop-timeout", &cfg.StopTimeout},
		{"health-check-timeout", &cfg.HealthCheckTimeout},
		{"health-check-backoff", &cfg.HealthCheckBackoff},
		{"start-grace", &cfg.StartGrace},
		{"rollback-grace", &cfg.RollbackGrace},
		{"prune-timeout", &cfg.PruneTimeout},
		{"hook-timeout", &cfg.HookTimeout},
	}
	for _, f := range durationFields {
		raw, gerr := getDuration(f.name)
		if gerr != nil {
			return cfg, fmt.Errorf("%w: %s: %w", errSetFlagFailed, f.name, gerr)
		}

		*f.dst = raw
	}

	tickSeconds, err := getInt("tick-interval")
	if err != nil {
		return cfg, fmt.Errorf("%w: tick-interval: %w", errSetFlagFailed, err)
	}

	cfg.TickInterval = time.Duration(tickSeconds) * time.Second

	if cfg.Notifications, err = getSlice("notifications"); err != nil {
		return cfg, fmt.Errorf("%w: notifications: %w", errSetFlagFailed, err)
	}

	includeNames, err := getSlice("include-containers")
	if err != nil {
		return cfg, fmt.Errorf("%w: include-containers: %w", errSetFlagFailed, err)
	}

	excludeNames, err := getSlice("exclude-containers")
	if err != nil {
		return cfg, fmt.Errorf("%w: exclude-containers: %w", errSetFlagFailed, err)
	}

	cfg.Filter, cfg.FilterDesc = filters.BuildFilter(includeNames, excludeNames, false, cfg.Scope)

	logrus.WithFields(logrus.Fields{
		"scope":         cfg.Scope,
		"tick_interval": cfg.TickInterval,
		"dry_run":       cfg.DryRun,
		"monitor_only":  cfg.MonitorOnly,
		"http_api":      cfg.HTTPAPI,
	}).Debug("Assembled run configuration")

	return cfg, nil
}

// setEnvOptStr sets an environment variable if needed.
func setEnvOptStr(env string, opt string) error {
	if opt == "" || opt == os.Getenv(env) {
		return nil
	}

	if err := os.Setenv(env, opt); err != nil {
		return fmt.Errorf("failed to set environment variable: %s: %w", env, err)
	}

	return nil
}

// setEnvOptBool sets an environment variable to "1" if true.
func setEnvOptBool(env string, opt bool) error {
	if opt {
		return setEnvOptStr(env, "1")
	}

	return nil
}

// GetSecretsFromFiles updates flags with file contents for secrets.
func GetSecretsFromFiles(rootCmd *cobra.Command) {
	flags := rootCmd.PersistentFlags()
	secrets := []string{
		"notification-url",
		"http-api-token",
	}

	for _, secret := range secrets {
		if err := getSecretFromFile(flags, secret); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"flag": secret,
			}).Fatal("Failed to load secret from file")
		}
	}
}

// getSecretFromFile reads file contents into a flag if applicable.
func getSecretFromFile(flags *pflag.FlagSet, secret string) error {
	flag := flags.Lookup(secret)
	fields := logrus.Fields{"flag": secret}

	if sliceValue, ok := flag.Value.(pflag.SliceValue); ok {
		oldValues := sliceValue.GetSlice()
		values := make([]string, 0, len(oldValues))

		for _, value := range oldValues {
			if value != "" && isFilePath(value) {
				file, err := os.Open(value)
				if err != nil {
					return fmt.Errorf("%w: %w", errOpenFileFailed, err)
				}
				defer file.Close()

				scanner := bufio.NewScanner(file)
				for scanner.Scan() {
					line := scanner.Text()
					if line != "" {
						values = append(values, line)
					}
				}

				if err := scanner.Err(); err != nil {
					return fmt.Errorf("%w: %w", errReadFileFailed, err)
				}

				logrus.WithFields(fields).WithField("file", value).Debug("Read secret from file into slice")
			} else {
				values = append(values, value)
			}
		}

		if err := sliceValue.Replace(values); err != nil {
			return fmt.Errorf("%w: %w", errReplaceSliceFailed, err)
		}

		return nil
	}

	value := flag.Value.String()
	if value != "" && isFilePath(value) {
		content, err := os.ReadFile(value)
		if err != nil {
			return fmt.Errorf("%w: %w", errReadFileFailed, err)
		}

		if err := flags.Set(secret, strings.TrimSpace(string(content))); err != nil {
			return fmt.Errorf("%w: %w", errSetFlagFailed, err)
		}

		logrus.WithFields(fields).WithField("file", value).Debug("Set flag from file contents")
	}

	return nil
}

// isFilePath checks if a string is likely a file path.
func isFilePath(path string) bool {
	firstColon := strings.IndexRune(path, ':')
	if firstColon != 1 && firstColon != -1 {
		// If ':' exists but isn't the second character, it's likely not a file path (e.g., URLs).
		return false
	}

	_, err := os.Stat(path)

	return !errors.Is(err, os.ErrNotExist)
}

// SetupLogging configures the global logger.
func SetupLogging(flags *pflag.FlagSet) error {
	logFormat, err := flags.GetString("log-format")
	if err != nil {
		return fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}

	noColor, err := flags.GetBool("no-color")
	if err != nil {
		return fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}

	if err := configureLogFormat(logFormat, noColor); err != nil {
		return err
	}

	rawLogLevel, err := flags.GetString("log-level")
	if err != nil {
		return fmt.Errorf("%w: %w", errSetFlagFailed, err)
	}

	logLevel, err := logrus.ParseLevel(rawLogLevel)
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidLogLevel, err)
	}

	logrus.SetLevel(logLevel)
	logrus.WithFields(logrus.Fields{
		"format":   logFormat,
		"level":    logLevel,
		"no_color": noColor,
	}).Debug("Configured logging settings")

	return nil
}

// configureLogFormat sets the logrus formatter.
func configureLogFormat(logFormat string, noColor bool) error {
	switch strings.ToLower(logFormat) {
	case "auto":
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors:             noColor,
			EnvironmentOverrideColors: true,
		})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "logfmt":
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	case "pretty":
		logrus.SetFormatter(&logrus.TextFormatter{
			ForceColors:   !noColor,
			FullTimestamp: false,
		})
	default:
		return fmt.Errorf("%w: %s", errInvalidLogFormat, logFormat)
	}

	return nil
}
