// Package log provides the sizing policy's logging entry point. The
// engine itself never logs (spec.md §5: no I/O in collection
// callbacks); this wrapper exists for the surrounding harness
// (cmd/gcpolicyd, cmd/gcpolicyctl) to attach policy-decision context
// (minor/major counters) to every log line the same way, using
// the same containerd/logrus pairing the sizing engine's teacher uses.
package log

import (
	"context"

	"github.com/containerd/log"
	"github.com/sirupsen/logrus"
)

func init() {
	log.G = GetLogger
}

// GetLogger returns the logrus entry for ctx, augmented with any
// collection-decision fields attached via WithDecision.
func GetLogger(ctx context.Context) *logrus.Entry {
	return log.GetLogger(ctx)
}

// WithDecision returns a context whose logger carries minorCount and
// majorCount fields, so every log line emitted while driving a
// simulated collection loop is attributable to the collection that
// produced it.
func WithDecision(ctx context.Context, minorCount, majorCount uint64) context.Context {
	fields := logrus.Fields{
		"minorCount": minorCount,
		"majorCount": majorCount,
	}
	entry := log.GetLogger(ctx).WithFields(fields)
	return log.WithLogger(ctx, entry)
}
