package state_test

import (
	"os"
	"path/filepath"
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"github.com/rcarmo/guerite/internal/state"
	"github.com/rcarmo/guerite/pkg/types"
)

var _ = ginkgo.Describe("Store", func() {
	var dir string

	ginkgo.BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "guerite-state-*")
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
	})

	ginkgo.AfterEach(func() {
		os.RemoveAll(dir)
	})

	ginkgo.It("returns an empty map when the file does not exist", func() {
		store := state.New(filepath.Join(dir, "state.yaml"))
		gomega.Expect(store.Load()).To(gomega.BeEmpty())
	})

	ginkgo.It("round-trips records through commit and load", func() {
		path := filepath.Join(dir, "state.yaml")
		store := state.New(path)

		now := time.Now().UTC().Truncate(time.Second)
		records := map[string]types.BackoffRecord{
			"web": {
				LastActionAt:        map[types.ActionKind]time.Time{types.ActionUpdate: now},
				ConsecutiveFailures: 2,
			},
		}

		gomega.Expect(store.Commit(records)).To(gomega.Succeed())

		loaded := store.Load()
		gomega.Expect(loaded).To(gomega.HaveKey("web"))
		gomega.Expect(loaded["web"].ConsecutiveFailures).To(gomega.Equal(2))
		gomega.Expect(loaded["web"].LastActionAt[types.ActionUpdate].Equal(now)).To(gomega.BeTrue())
	})

	ginkgo.It("leaves no temp files behind after a successful commit", func() {
		path := filepath.Join(dir, "state.yaml")
		store := state.New(path)

		gomega.Expect(store.Commit(map[string]types.BackoffRecord{})).To(gomega.Succeed())

		entries, err := os.ReadDir(dir)
		gomega.Expect(err).ToNot(gomega.HaveOccurred())
		gomega.Expect(entries).To(gomega.HaveLen(1))
		gomega.Expect(entries[0].Name()).To(gomega.Equal("state.yaml"))
	})

	ginkgo.It("treats a corrupt file as empty and logs instead of failing", func() {
		path := filepath.Join(dir, "state.yaml")
		gomega.Expect(os.WriteFile(path, []byte("{not: [valid, yaml"), 0o644)).To(gomega.Succeed())

		store := state.New(path)
		gomega.Expect(store.Load()).To(gomega.BeEmpty())
	})

	ginkgo.It("overwrites a corrupt file on the next commit", func() {
		path := filepath.Join(dir, "state.yaml")
		gomega.Expect(os.WriteFile(path, []byte("{not: [valid, yaml"), 0o644)).To(gomega.Succeed())

		store := state.New(path)
		_ = store.Load()

		records := map[string]types.BackoffRecord{"db": {ConsecutiveFailures: 1}}
		gomega.Expect(store.Commit(records)).To(gomega.Succeed())

		loaded := store.Load()
		gomega.Expect(loaded).To(gomega.HaveKey("db"))
	})
})

var _ = ginkgo.Describe("BackoffRecord", func() {
	ginkgo.It("clears failure state and rollback artifact on success", func() {
		record := types.BackoffRecord{
			ConsecutiveFailures: 3,
			Rollback:            &types.RollbackArtifact{OldName: "web-guerite-old-a1b2c3"},
		}

		record.RecordSuccess()

		gomega.Expect(record.ConsecutiveFailures).To(gomega.Equal(0))
		gomega.Expect(record.Rollback).To(gomega.BeNil())
	})

	ginkgo.It("increments the failure streak and remembers the rollback artifact", func() {
		record := types.BackoffRecord{}
		artifact := &types.RollbackArtifact{OldName: "web-guerite-old-a1b2c3"}

		record.RecordFailure(artifact)

		gomega.Expect(record.ConsecutiveFailures).To(gomega.Equal(1))
		gomega.Expect(record.Rollback).To(gomega.Equal(artifact))
	})

	ginkgo.It("extends eligibility exponentially per consecutive failure, capped at 32x base", func() {
		now := time.Date(2026, 7, 30, 12, 0, 0, 0, time.UTC)
		base := time.Second

		record := types.BackoffRecord{
			LastActionAt: map[types.ActionKind]time.Time{types.ActionUpdate: now},
		}

		firstEligible := record.NextEligible(types.ActionUpdate, base)

		record.RecordFailure(nil)
		secondEligible := record.NextEligible(types.ActionUpdate, base)

		gomega.Expect(secondEligible).To(gomega.BeTemporally(">", firstEligible))

		record.ConsecutiveFailures = 20
		capped := record.NextEligible(types.ActionUpdate, base)
		gomega.Expect(capped).To(gomega.Equal(now.Add(32 * base)))
	})

	ginkgo.It("reports no eligibility constraint when the action has never run", func() {
		record := types.BackoffRecord{}
		gomega.Expect(record.NextEligible(types.ActionUpdate, time.Second).IsZero()).To(gomega.BeTrue())
	})
})
