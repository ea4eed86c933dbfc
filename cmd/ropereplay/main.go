// Command ropereplay runs the rope headlessly with a scripted drag and prints
// a fingerprint of every frame it would have drawn. With -runs greater than
// one it plays the same script concurrently on independent scenes and fails
// if any of them disagree.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"honnef.co/go/rope/internal/config"
	"honnef.co/go/rope/internal/layout"
	"honnef.co/go/rope/internal/logging"
	"honnef.co/go/rope/internal/replay"
	"honnef.co/go/rope/internal/scene"
)

var errMismatch = errors.New("replays disagree")

type flags struct {
	config     string
	frames     int
	dt         float64
	dragStart  int
	dragFrames int
	runs       int
}

func main() {
	var f flags
	flag.StringVar(&f.config, "config", "", "path to a YAML configuration file")
	flag.IntVar(&f.frames, "frames", 600, "number of frames to play")
	flag.Float64Var(&f.dt, "dt", 1.0/60, "elapsed time per frame, in seconds")
	flag.IntVar(&f.dragStart, "drag-start", 30, "frame at which the drag begins")
	flag.IntVar(&f.dragFrames, "drag-frames", 120, "length of the drag, in frames")
	flag.IntVar(&f.runs, "runs", 1, "number of concurrent replays to compare")
	flag.Parse()

	if err := run(context.Background(), f); err != nil {
		fmt.Fprintln(os.Stderr, "ropereplay:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, f flags) error {
	if f.runs < 1 {
		return fmt.Errorf("invalid -runs %d", f.runs)
	}
	cfg, err := config.LoadFile(f.config)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	log, err := logging.New(level, cfg.Log.Output)
	if err != nil {
		return err
	}
	defer log.Sync()

	script := replay.Drag(layout.New(cfg.Viewport), f.dragStart, f.dragFrames)
	opts := replay.Options{Frames: f.frames, Elapsed: f.dt, Script: script}

	results := make([]replay.Result, f.runs)
	g, ctx := errgroup.WithContext(ctx)
	for i := range f.runs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := scene.New(cfg, log.With(zap.Int("run", i)))
			if err != nil {
				return err
			}
			start := time.Now()
			results[i] = replay.Run(s, opts)
			log.Debug("replay finished", zap.Int("run", i), zap.Duration("took", time.Since(start)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	res := results[0]
	for i, other := range results[1:] {
		if other != res {
			log.Error("replay mismatch",
				zap.Int("run", i+1),
				zap.String("want", fmt.Sprintf("%016x", res.Fingerprint)),
				zap.String("got", fmt.Sprintf("%016x", other.Fingerprint)),
			)
			return errMismatch
		}
	}

	log.Info("replay complete",
		zap.Int("frames", res.Frames),
		zap.Int("steps", res.Steps),
		zap.Int("runs", f.runs),
		logging.Point("a", res.Final[0]),
		logging.Point("b", res.Final[1]),
		zap.String("fingerprint", fmt.Sprintf("%016x", res.Fingerprint)),
	)
	fmt.Printf("%016x\n", res.Fingerprint)
	return nil
}
