// Package report builds one cycle's types.Report from the per-container
// outcomes the Action Engine returns, the way the teacher's pkg/session
// builds a Report from a Progress map, but fed directly by engine.Outcome
// values instead of a standing progress table.
package report

import (
	"sort"

	"github.com/rcarmo/guerite/internal/engine"
	"github.com/rcarmo/guerite/pkg/types"
)

// containerReport is one container's categorized outcome within a cycle.
type containerReport struct {
	id             types.ContainerID
	name           string
	currentImageID types.ImageID
	latestImageID  types.ImageID
	imageName      string
	errMsg         string
	state          string
}

func (r containerReport) ID() types.ContainerID        { return r.id }
func (r containerReport) Name() string                 { return r.name }
func (r containerReport) CurrentImageID() types.ImageID { return r.currentImageID }
func (r containerReport) LatestImageID() types.ImageID  { return r.latestImageID }
func (r containerReport) ImageName() string             { return r.imageName }
func (r containerReport) Error() string                 { return r.errMsg }
func (r containerReport) State() string                 { return r.state }

// Builder accumulates every container's outcome for one cycle.
type Builder struct {
	scanned   []types.ContainerReport
	updated   []types.ContainerReport
	restarted []types.ContainerReport
	failed    []types.ContainerReport
	skipped   []types.ContainerReport
	stale     []types.ContainerReport
	fresh     []types.ContainerReport
}

// Record files one container's resolved action and engine outcome into the
// report's categories. outcome.NewImageID is the image ID the engine
// settled on after prepare() ran (equal to the container's current image
// when no pull happened or no newer image was found).
func (b *Builder) Record(c types.Container, action types.ActionKind, outcome engine.Outcome) {
	newImageID := outcome.NewImageID
	if newImageID == "" {
		newImageID = c.ImageID()
	}

	cr := containerReport{
		id:             c.ID(),
		name:           c.Name(),
		currentImageID: c.ImageID(),
		latestImageID:  newImageID,
		imageName:      c.ImageName(),
		state:          outcome.State.String(),
	}

	if outcome.Err != nil {
		cr.errMsg = outcome.Err.Error()
	}

	b.scanned = append(b.scanned, cr)

	switch outcome.State {
	case types.StateCommitted:
		if action == types.ActionRestart || action == types.ActionHealthRestart {
			b.restarted = append(b.restarted, cr)
		} else {
			b.updated = append(b.updated, cr)
		}
	case types.StateFailed, types.StateRolledBack:
		b.failed = append(b.failed, cr)
	case types.StateGuarded:
		if action == types.ActionUpdate && newImageID != cr.currentImageID {
			b.stale = append(b.stale, cr)
		} else {
			b.skipped = append(b.skipped, cr)
		}
	case types.StateIdle:
		if action == types.ActionNone {
			b.fresh = append(b.fresh, cr)
		} else {
			b.skipped = append(b.skipped, cr)
		}
	default:
		b.skipped = append(b.skipped, cr)
	}
}

// Report finalizes the accumulated outcomes into a types.Report, sorting
// each category by container ID for stable output.
func (b *Builder) Report() types.Report {
	r := &report{
		scanned:   b.scanned,
		updated:   b.updated,
		restarted: b.restarted,
		failed:    b.failed,
		skipped:   b.skipped,
		stale:     b.stale,
		fresh:     b.fresh,
	}

	for _, category := range [][]types.ContainerReport{
		r.scanned, r.updated, r.restarted, r.failed, r.skipped, r.stale, r.fresh,
	} {
		sortByID(category)
	}

	return r
}

type report struct {
	scanned   []types.ContainerReport
	updated   []types.ContainerReport
	restarted []types.ContainerReport
	failed    []types.ContainerReport
	skipped   []types.ContainerReport
	stale     []types.ContainerReport
	fresh     []types.ContainerReport
}

func (r *report) Scanned() []types.ContainerReport   { return r.scanned }
func (r *report) Updated() []types.ContainerReport   { return r.updated }
func (r *report) Restarted() []types.ContainerReport { return r.restarted }
func (r *report) Failed() []types.ContainerReport    { return r.failed }
func (r *report) Skipped() []types.ContainerReport   { return r.skipped }
func (r *report) Stale() []types.ContainerReport     { return r.stale }
func (r *report) Fresh() []types.ContainerReport     { return r.fresh }

// All deduplicates by container ID, prioritizing updated, restarted,
// failed, skipped, stale, fresh, then scanned.
func (r *report) All() []types.ContainerReport {
	total := len(r.scanned) + len(r.updated) + len(r.restarted) + len(r.failed) +
		len(r.skipped) + len(r.stale) + len(r.fresh)
	all := make([]types.ContainerReport, 0, total)
	seen := map[types.ContainerID]struct{}{}

	appendUnique := func(reports []types.ContainerReport) {
		for _, cr := range reports {
			if _, ok := seen[cr.ID()]; ok {
				continue
			}

			all = append(all, cr)
			seen[cr.ID()] = struct{}{}
		}
	}

	appendUnique(r.updated)
	appendUnique(r.restarted)
	appendUnique(r.failed)
	appendUnique(r.skipped)
	appendUnique(r.stale)
	appendUnique(r.fresh)
	appendUnique(r.scanned)

	sortByID(all)

	return all
}

func sortByID(reports []types.ContainerReport) {
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].ID() < reports[j].ID()
	})
}
