package main

import (
	"io"
	"os"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"github.com/sizekit/adaptivesize/heap"
)

// scenarioEvent is one collection event in a scenario file: the
// byte-accounting a real collector would report to the policy after a
// single collection. cause defaults to "allocation" when omitted,
// matching heap.OnAllocation.
type scenarioEvent struct {
	Cause              string `toml:"cause"`
	SurvivorBytes      int64  `toml:"survivor_bytes"`
	SurvivorOverflow   bool   `toml:"survivor_overflow"`
	PromotedBytes      int64  `toml:"promoted_bytes"`
	YoungUsed          int64  `toml:"young_used"`
	OldUsed            int64  `toml:"old_used"`
	OldGenerationAfter int64  `toml:"old_generation_after_bytes"`
}

// scenarioFile is the top-level shape of a `-scenario` TOML file: a
// sequence of `[[event]]` tables, replayed against the policy in
// order.
type scenarioFile struct {
	Event []scenarioEvent `toml:"event"`
}

func (e scenarioEvent) cause() heap.Cause {
	if e.Cause == "request" {
		return heap.OnRequest
	}
	return heap.OnAllocation
}

func (e scenarioEvent) snapshot() heap.Snapshot {
	return heap.Snapshot{
		SurvivorChunkBytes:           e.SurvivorBytes,
		SurvivorSpaceOverflow:        e.SurvivorOverflow,
		TenuredObjectBytes:           e.PromotedBytes,
		YoungUsed:                    e.YoungUsed,
		OldUsed:                      e.OldUsed,
		OldGenerationAfterChunkBytes: e.OldGenerationAfter,
	}
}

func loadScenario(path string) (scenarioFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return scenarioFile{}, errors.Wrapf(err, "open scenario file %s", path)
	}
	defer f.Close()
	return loadScenarioReader(f)
}

func loadScenarioReader(r io.Reader) (scenarioFile, error) {
	tree, err := toml.LoadReader(r)
	if err != nil {
		return scenarioFile{}, errors.Wrap(err, "parse scenario toml")
	}
	var s scenarioFile
	if err := tree.Unmarshal(&s); err != nil {
		return scenarioFile{}, errors.Wrap(err, "decode scenario toml")
	}
	return s, nil
}
