package main

import (
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	"github.com/urfave/cli"

	"github.com/sizekit/adaptivesize/config"
	"github.com/sizekit/adaptivesize/heap"
	"github.com/sizekit/adaptivesize/internal/tuning"
	"github.com/sizekit/adaptivesize/policy"
)

func main() {
	app := cli.NewApp()
	app.Name = "gcpolicyctl"
	app.Usage = "replay a scenario of collection events (or a synthetic run) and print the resulting size decisions"

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config",
			Usage: "path to a TOML config file",
		},
		cli.StringFlag{
			Name:  "scenario",
			Usage: "path to a TOML scenario file of [[event]] collection records to replay; if unset, a synthetic run is generated instead",
		},
		cli.StringFlag{
			Name:  "tune",
			Usage: "comma-separated calibration overrides, e.g. readyThreshold=3,gcTimeRatio=9",
		},
		cli.IntFlag{
			Name:  "collections",
			Usage: "number of synthetic collections to run when -scenario is unset",
			Value: 30,
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for the synthetic run's random byte counts",
			Value: 1,
		},
	}

	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "gcpolicyctl: %s\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	calib := cfg.Calibration.ToPolicyCalibration()
	if raw := c.String("tune"); raw != "" {
		overrides, err := tuning.Parse(raw)
		if err != nil {
			return err
		}
		calib = overrides.Apply(calib)
	}

	p := policy.New(
		policy.WithSizeBounds(cfg.Bounds.ToHeapBounds()),
		policy.WithCalibration(calib),
	)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\tKIND\tEDEN\tSURVIVOR\tOLD\tTENURING\n")

	var err error
	if path := c.String("scenario"); path != "" {
		err = runScenario(p, tw, path)
	} else {
		runSynthetic(p, tw, c.Int64("seed"), c.Int("collections"))
	}
	if err != nil {
		return err
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	summary := p.Analytics().Summarize()
	fmt.Fprintf(os.Stdout, "\n%d runs (%d complete), avg pause %dms, avg promoted %d bytes, avg survived %d bytes\n",
		summary.NumRuns, summary.NumComplete, summary.AvgPauseNanos/int64(time.Millisecond),
		summary.AvgPromoted, summary.AvgSurvived)

	return nil
}

// runScenario replays a TOML scenario file's events against p in order,
// writing one tabwriter row per event.
func runScenario(p *policy.Adaptive, tw *tabwriter.Writer, path string) error {
	scenario, err := loadScenario(path)
	if err != nil {
		return err
	}

	for i, ev := range scenario.Event {
		snap := ev.snapshot()
		complete := p.ShouldCollectCompletely(true)

		youngChunkBytes := p.EdenSize()
		youngAlignedChunkBytes := snap.YoungUsed
		if youngAlignedChunkBytes > youngChunkBytes {
			youngAlignedChunkBytes = youngChunkBytes
		}
		p.OnCollectionBegin(complete, youngAlignedChunkBytes, youngChunkBytes)

		p.OnCollectionEnd(complete, ev.cause(), snap)

		writeDecisionRow(tw, i, complete, p)
	}

	return nil
}

// runSynthetic drives p through collections synthetic collections, each
// with randomly generated byte counts seeded by seed, writing one
// tabwriter row per collection.
func runSynthetic(p *policy.Adaptive, tw *tabwriter.Writer, seed int64, collections int) {
	rnd := rand.New(rand.NewSource(seed))

	for i := 0; i < collections; i++ {
		complete := p.ShouldCollectCompletely(true)

		youngChunkBytes := p.EdenSize()
		youngAlignedChunkBytes := int64(rnd.Intn(int(youngChunkBytes) + 1))
		p.OnCollectionBegin(complete, youngAlignedChunkBytes, youngChunkBytes)

		snap := heap.Snapshot{
			SurvivorChunkBytes:           int64(rnd.Intn(1 << 20)),
			SurvivorSpaceOverflow:        rnd.Intn(10) == 0,
			TenuredObjectBytes:           int64(rnd.Intn(1 << 21)),
			YoungUsed:                    int64(rnd.Intn(int(youngChunkBytes) + 1)),
			OldUsed:                      int64(rnd.Intn(1 << 24)),
			OldGenerationAfterChunkBytes: int64(rnd.Intn(1 << 25)),
		}
		p.OnCollectionEnd(complete, heap.OnAllocation, snap)

		writeDecisionRow(tw, i, complete, p)
	}
}

func writeDecisionRow(tw *tabwriter.Writer, index int, complete bool, p *policy.Adaptive) {
	kind := "minor"
	if complete {
		kind = "major"
	}
	fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\n",
		index, kind, p.EdenSize(), p.SurvivorSize(), p.OldSize(), p.TenuringThreshold())
}
