// Package notify implements the Notification Dispatcher: category-filtered
// delivery of engine events over shoutrrr-backed transports, plus a log
// hook that folds warn/error lines into the same batch.
package notify

import (
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/nicholas-fedor/shoutrrr"
	shoutrrrTypes "github.com/nicholas-fedor/shoutrrr/pkg/types"
	"github.com/sirupsen/logrus"

	"github.com/rcarmo/guerite/pkg/types"
)

// LocalLog is a logrus logger that never feeds the dispatcher's log hook,
// used for the dispatcher's own diagnostics to avoid notification loops.
var LocalLog = logrus.WithField("notify", "no")

type sender interface {
	Send(message string, params *shoutrrrTypes.Params) []error
}

// allCategory enables every EventCategory when present in GUERITE_NOTIFICATIONS.
const allCategory = "all"

// categoryGroups maps each GUERITE_NOTIFICATIONS name to the EventCategory
// values it enables. update/recreate each cover their own success and
// failure category plus the shared rollback category, since a rollback can
// originate from either action kind.
var categoryGroups = map[string][]types.EventCategory{
	"update":   {types.EventUpdateSucceeded, types.EventUpdateFailed, types.EventRollback},
	"recreate": {types.EventRecreateSucceeded, types.EventRecreateFailed, types.EventRollback},
	"restart":  {types.EventRestart},
	"health":   {types.EventHealthRestart, types.EventRollback},
	"startup":  {types.EventStartup},
	"detect":   {types.EventDetect},
	"prune":    {types.EventPrune},
}

// Dispatcher is the Notification Dispatcher (Notification Dispatcher): it
// filters events by category, batches them between StartNotification and
// Close, and sends the batch through shoutrrr once per cycle.
type Dispatcher struct {
	urls       []string
	router     sender
	categories map[types.EventCategory]bool
	title      string

	mu      sync.Mutex
	batch   []string
	batched bool
}

// New builds a Dispatcher over urls, enabling only the categories named in
// categories (case-insensitive; "all" enables every category). An empty
// urls list still returns a usable Dispatcher whose sends are no-ops other
// than the local log mirror, matching the teacher's "no notifiers
// configured" shape.
func New(urls []string, categories []string, title string) (*Dispatcher, error) {
	logger := log.New(logrus.StandardLogger().WriterLevel(logrus.TraceLevel), "shoutrrr: ", 0)

	router, err := shoutrrr.NewSender(logger, urls...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize notification transports: %w", err)
	}

	return &Dispatcher{
		urls:       urls,
		router:     router,
		categories: parseCategories(categories),
		title:      title,
	}, nil
}

func parseCategories(raw []string) map[types.EventCategory]bool {
	enabled := make(map[types.EventCategory]bool, len(raw))

	for _, c := range raw {
		name := strings.ToLower(strings.TrimSpace(c))
		if name == allCategory {
			enabled[types.EventCategory(allCategory)] = true

			continue
		}

		for _, category := range categoryGroups[name] {
			enabled[category] = true
		}
	}

	return enabled
}

// enabled reports whether category should be delivered, per GUERITE_NOTIFICATIONS.
func (d *Dispatcher) enabled(category types.EventCategory) bool {
	if d.categories[allCategory] {
		return true
	}

	return d.categories[category]
}

// StartNotification begins batching events for one cycle; events recorded
// via SendNotification before the matching Close (or the next
// StartNotification) are delivered as a single message.
func (d *Dispatcher) StartNotification() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.batch = d.batch[:0]
	d.batched = true
}

// SendNotification records event if its category is enabled. Outside a
// StartNotification/Close batch it is sent immediately.
func (d *Dispatcher) SendNotification(event types.Event) {
	if !d.enabled(event.Category) {
		return
	}

	line := event.Title
	if event.Message != "" {
		line = line + ": " + event.Message
	}

	d.mu.Lock()
	if d.batched {
		d.batch = append(d.batch, line)
		d.mu.Unlock()

		return
	}
	d.mu.Unlock()

	d.send([]string{line})
}

// AddLogHook installs a logrus hook that folds warn-and-above log entries
// into the current batch, the way the teacher mirrors its own log output
// into the notification stream.
func (d *Dispatcher) AddLogHook() {
	logrus.AddHook(&logHook{dispatcher: d})
}

// Close flushes any batched events as one message and clears batching state.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	lines := d.batch
	d.batch = nil
	d.batched = false
	d.mu.Unlock()

	if len(lines) > 0 {
		d.send(lines)
	}
}

// GetNames returns the scheme of each configured transport, e.g. "slack".
func (d *Dispatcher) GetNames() []string {
	names := make([]string, 0, len(d.urls))

	for _, u := range d.urls {
		if idx := strings.Index(u, "://"); idx > 0 {
			names = append(names, u[:idx])
		}
	}

	return names
}

// GetURLs returns the configured transport URLs verbatim.
func (d *Dispatcher) GetURLs() []string {
	return d.urls
}

func (d *Dispatcher) send(lines []string) {
	message := strings.Join(lines, "\n")

	params := &shoutrrrTypes.Params{}
	if d.title != "" {
		params.SetTitle(d.title)
	}

	if len(d.urls) == 0 {
		LocalLog.Info(message)

		return
	}

	for _, err := range d.router.Send(message, params) {
		if err != nil {
			LocalLog.WithError(err).Warn("Failed to deliver notification")
		}
	}
}

// logHook folds logrus warn/error entries into the dispatcher's batch
// without going through the category filter, matching the teacher's
// always-on log mirror.
type logHook struct {
	dispatcher *Dispatcher
}

func (h *logHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.WarnLevel, logrus.ErrorLevel, logrus.FatalLevel}
}

func (h *logHook) Fire(entry *logrus.Entry) error {
	if entry.Data["notify"] != nil {
		return nil
	}

	h.dispatcher.mu.Lock()
	if h.dispatcher.batched {
		h.dispatcher.batch = append(h.dispatcher.batch, entry.Message)
		h.dispatcher.mu.Unlock()

		return nil
	}
	h.dispatcher.mu.Unlock()

	h.dispatcher.send([]string{entry.Message})

	return nil
}

var _ types.Notifier = (*Dispatcher)(nil)
