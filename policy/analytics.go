package policy

import "github.com/sizekit/adaptivesize/heap"

// maxPastRuns bounds the rolling history Analytics retains, mirroring
// this module's teacher's maxPastGCAnalytics.
const maxPastRuns = 10

// Run records the outcome of a single collection, exposed for
// observability only (SPEC_FULL.md §5.1). Nothing in the sizing engine
// reads it back.
type Run struct {
	Complete   bool
	Cause      heap.Cause
	PauseNanos int64
	Promoted   int64
	Survived   int64
}

// Summary aggregates the retained run history.
type Summary struct {
	NumRuns          int
	NumComplete      int
	AvgPauseNanos    int64
	AvgPromoted      int64
	AvgSurvived      int64
	AllTimeRuns      uint64
	AllTimePauseNanos int64
}

// Analytics is the policy's rolling collection-run history. Like
// Adaptive itself it runs only inside stop-the-world callbacks, so it
// carries no mutex.
type Analytics struct {
	past              []Run
	allTimeRuns       uint64
	allTimePauseNanos int64
}

func newAnalytics() *Analytics {
	return &Analytics{past: make([]Run, 0, maxPastRuns)}
}

// record appends a completed collection to the history, evicting the
// oldest entry once maxPastRuns is exceeded.
func (a *Analytics) record(complete bool, cause heap.Cause, snap heap.Snapshot, pauseNanos int64) {
	run := Run{
		Complete:   complete,
		Cause:      cause,
		PauseNanos: pauseNanos,
		Promoted:   snap.TenuredObjectBytes,
		Survived:   snap.SurvivorChunkBytes + snap.SurvivorOverflowObjectBytes,
	}

	a.past = append(a.past, run)
	if len(a.past) > maxPastRuns {
		a.past = a.past[1:]
	}

	a.allTimeRuns++
	a.allTimePauseNanos += pauseNanos
}

// Runs returns a copy of the retained run history, oldest first.
func (a *Analytics) Runs() []Run {
	out := make([]Run, len(a.past))
	copy(out, a.past)
	return out
}

// Summarize aggregates the retained history into a Summary.
func (a *Analytics) Summarize() Summary {
	s := Summary{
		NumRuns:           len(a.past),
		AllTimeRuns:       a.allTimeRuns,
		AllTimePauseNanos: a.allTimePauseNanos,
	}
	if len(a.past) == 0 {
		return s
	}
	for _, run := range a.past {
		if run.Complete {
			s.NumComplete++
		}
		s.AvgPauseNanos += run.PauseNanos
		s.AvgPromoted += run.Promoted
		s.AvgSurvived += run.Survived
	}
	n := int64(len(a.past))
	s.AvgPauseNanos /= n
	s.AvgPromoted /= n
	s.AvgSurvived /= n
	return s
}
