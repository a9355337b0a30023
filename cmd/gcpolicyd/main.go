package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"go.opentelemetry.io/otel"

	"github.com/sizekit/adaptivesize/config"
	policylog "github.com/sizekit/adaptivesize/internal/log"
	"github.com/sizekit/adaptivesize/policy"
)

func main() {
	app := cli.NewApp()
	app.Name = "gcpolicyd"
	app.Usage = "run the adaptive sizing policy against a simulated collector"

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug output in logs",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "path to a TOML config file",
		},
		cli.IntFlag{
			Name:  "collections",
			Usage: "number of simulated collections to run before exiting; 0 runs forever",
			Value: 200,
		},
		cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for the simulated mutator's random byte counts",
			Value: 1,
		},
	}

	app.Before = func(c *cli.Context) error {
		if c.GlobalBool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}

	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "gcpolicyd: %s\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	ctx := context.Background()

	cfg := config.Default()
	if path := c.GlobalString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	p := policy.New(
		policy.WithSizeBounds(cfg.Bounds.ToHeapBounds()),
		policy.WithCalibration(cfg.Calibration.ToPolicyCalibration()),
	)

	m := policy.NewMetrics(p, otel.GetMeterProvider())
	defer m.Close()

	sim := newSimulator(p, m, c.GlobalInt64("seed"))

	n := c.GlobalInt("collections")
	for i := 0; n == 0 || i < n; i++ {
		sim.step(ctx)
	}

	policylog.GetLogger(ctx).
		WithField("totalCollections", p.GCCount()).
		Info("simulation finished")

	return nil
}
