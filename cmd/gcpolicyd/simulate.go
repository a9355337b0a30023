package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/sizekit/adaptivesize/heap"
	policylog "github.com/sizekit/adaptivesize/internal/log"
	"github.com/sizekit/adaptivesize/policy"
)

// simulator drives a synthetic mutator/collector loop against a
// policy.Adaptive, standing in for the real collector this policy is
// meant to be embedded in. It exists so gcpolicyd has something to
// observe end to end without a real generational collector attached.
type simulator struct {
	p       *policy.Adaptive
	metrics *policy.Metrics
	rnd     *rand.Rand

	youngUsed int64
	oldUsed   int64
}

func newSimulator(p *policy.Adaptive, m *policy.Metrics, seed int64) *simulator {
	return &simulator{p: p, metrics: m, rnd: rand.New(rand.NewSource(seed))}
}

// step runs one simulated collection: a minor collection, escalated to
// a complete one whenever the policy asks for it following the prior
// incremental collection.
func (s *simulator) step(ctx context.Context) {
	complete := s.p.ShouldCollectCompletely(true)

	youngChunkBytes := s.p.EdenSize()
	youngAlignedChunkBytes := int64(s.rnd.Intn(int(youngChunkBytes) + 1))
	s.p.OnCollectionBegin(complete, youngAlignedChunkBytes, youngChunkBytes)
	time.Sleep(time.Duration(s.rnd.Intn(2)) * time.Millisecond)

	survived := int64(s.rnd.Intn(1 << 18))
	promoted := int64(s.rnd.Intn(1 << 17))
	s.youngUsed = survived
	s.oldUsed += promoted

	snap := heap.Snapshot{
		SurvivorChunkBytes: survived,
		TenuredObjectBytes: promoted,
		YoungUsed:          s.youngUsed,
		OldUsed:            s.oldUsed,
	}
	if complete {
		snap.OldGenerationAfterChunkBytes = s.oldUsed
		s.oldUsed = s.oldUsed / 2 // model reclamation from a full collection
	}

	s.p.OnCollectionEnd(complete, heap.OnAllocation, snap)

	if runs := s.p.Analytics().Runs(); len(runs) > 0 {
		s.metrics.RecordPause(ctx, runs[len(runs)-1].PauseNanos)
	}

	counts := s.p.Counts()
	policylog.GetLogger(ctx).
		WithField("complete", complete).
		WithField("eden", s.p.EdenSize()).
		WithField("survivor", s.p.SurvivorSize()).
		WithField("old", s.p.OldSize()).
		WithField("tenuringThreshold", s.p.TenuringThreshold()).
		Infof("collection #%d complete", counts.Total())
}
