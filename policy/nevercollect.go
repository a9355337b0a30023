package policy

import "github.com/sizekit/adaptivesize/heap"

// NeverCollectPolicy is a trivial Policy that never asks for a
// complete collection and never resizes any generation. It exists as
// a baseline for tests and for comparison against Adaptive: the eden,
// survivor, and old sizes it reports are exactly what it was
// constructed with, and PromoSize always reports 0.
type NeverCollectPolicy struct {
	eden, survivor, promo, old int64
	tenuringThreshold          int
	counts                     Counts
}

// NewNeverCollectPolicy constructs a NeverCollectPolicy with fixed
// generation sizes and tenuring threshold.
func NewNeverCollectPolicy(eden, survivor, old int64, tenuringThreshold int) *NeverCollectPolicy {
	return &NeverCollectPolicy{
		eden:              eden,
		survivor:          survivor,
		old:               old,
		tenuringThreshold: tenuringThreshold,
	}
}

func (n *NeverCollectPolicy) Name() string { return "never-collect" }

// ShouldCollectCompletely always returns false: this policy leaves the
// choice of collection kind entirely to its caller.
func (n *NeverCollectPolicy) ShouldCollectCompletely(bool) bool { return false }

func (n *NeverCollectPolicy) OnCollectionBegin(bool, int64, int64) {}

func (n *NeverCollectPolicy) OnCollectionEnd(complete bool, _ heap.Cause, _ heap.Snapshot) {
	if complete {
		n.counts.Major++
	} else {
		n.counts.Minor++
	}
}

func (n *NeverCollectPolicy) GCCount() uint64 { return n.counts.Total() }
func (n *NeverCollectPolicy) Counts() Counts  { return n.counts }

func (n *NeverCollectPolicy) EdenSize() int64        { return n.eden }
func (n *NeverCollectPolicy) SurvivorSize() int64    { return n.survivor }
func (n *NeverCollectPolicy) PromoSize() int64       { return n.promo }
func (n *NeverCollectPolicy) OldSize() int64         { return n.old }
func (n *NeverCollectPolicy) TenuringThreshold() int { return n.tenuringThreshold }

var _ Policy = (*NeverCollectPolicy)(nil)
var _ Policy = (*Adaptive)(nil)
