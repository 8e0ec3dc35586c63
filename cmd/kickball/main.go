// kickball spins an ASCII soccer ball in the terminal.
//
// Controls:
//
//	q, Esc, Ctrl-C - Quit
package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/borkshop/kickball/internal/anim"
	"github.com/borkshop/kickball/internal/cops/display"
	"github.com/borkshop/kickball/internal/cops/terminal"
	"github.com/borkshop/kickball/internal/input"
	"github.com/borkshop/kickball/internal/logging"
	"github.com/borkshop/kickball/internal/perf"
	"github.com/borkshop/kickball/internal/render"
	"github.com/borkshop/kickball/internal/rotation"
	"github.com/borkshop/kickball/internal/soccer"
	"github.com/borkshop/kickball/internal/tscreen"
)

type options struct {
	subdivisions int
	size         int
	ramp         string
	focal        float64
	axis         string
	sweep        anim.Sweep
	workers      int
	fps          float64
	backend      string
	rawNormals   bool
	scuff        float64
	scuffSeed    int64
	cpuProfile   string
	logFile      string
}

func main() {
	var opts options
	def := render.DefaultConfig()
	sweep := anim.DefaultSweep()

	cmd := &cobra.Command{
		Use:   "kickball",
		Short: "Spin an ASCII soccer ball",
		Long: `kickball - an ASCII soccer ball spinning in your terminal.

The ball is a subdivided icosphere whose vertices are split into black
patches around the twelve icosahedron corners, joined by black seams,
and white panels shaded by a single light.

Controls:
  q, Esc, Ctrl-C - Quit`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.IntVar(&opts.subdivisions, "subdivisions", 6, "Icosphere subdivision level")
	flags.StringVar(&opts.logFile, "log-file", "", "Write debug logs to this file")

	flags = cmd.Flags()
	flags.IntVar(&opts.size, "size", def.ScreenSize, "Frame width and height in cells")
	flags.StringVar(&opts.ramp, "ramp", string(def.Ramp), "Shading characters, darkest first")
	flags.Float64Var(&opts.focal, "focal", def.FocalLength, "Focal length (camera distance)")
	flags.StringVar(&opts.axis, "axis", def.Axis.String(), "Spin axis: x, y or z")
	flags.Float64Var(&opts.sweep.Start, "start", sweep.Start, "First angle in radians")
	flags.Float64Var(&opts.sweep.Stop, "stop", sweep.Stop, "Angle to stop before, in radians")
	flags.Float64Var(&opts.sweep.Step, "step", sweep.Step, "Angle step per frame in radians")
	flags.IntVar(&opts.workers, "workers", 1, "Frames composed concurrently")
	flags.Float64Var(&opts.fps, "fps", 0, "Frame rate limit; 0 draws as fast as possible")
	flags.StringVar(&opts.backend, "backend", "ansi", "Output backend: ansi or tcell")
	flags.BoolVar(&opts.rawNormals, "raw-normals", false, "Shade with unnormalized surface normals")
	flags.Float64Var(&opts.scuff, "scuff", 0, "Surface wear texture amplitude")
	flags.Int64Var(&opts.scuffSeed, "scuff-seed", 0, "Surface wear texture seed")
	flags.StringVar(&opts.cpuProfile, "cpuprofile", "", "Write a CPU profile under a directory with this prefix")

	cmd.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Print mesh and classification statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.OutOrStdout(), opts)
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func (opts options) config() (render.Config, error) {
	cfg := render.DefaultConfig()
	axis, err := rotation.ParseAxis(opts.axis)
	if err != nil {
		return cfg, err
	}
	cfg.ScreenSize = opts.size
	cfg.Ramp = []rune(opts.ramp)
	cfg.FocalLength = opts.focal
	cfg.Axis = axis
	cfg.RawNormals = opts.rawNormals
	cfg.Scuff = opts.scuff
	cfg.ScuffSeed = opts.scuffSeed
	return cfg, cfg.Validate()
}

func (opts options) interval() time.Duration {
	if opts.fps <= 0 || math.IsInf(opts.fps, 0) || math.IsNaN(opts.fps) {
		return 0
	}
	return time.Duration(float64(time.Second) / opts.fps)
}

func setupLogging(name string) (func() error, error) {
	if name == "" {
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() error {
		logging.SetLogger(nil)
		return f.Close()
	}, nil
}

type sink interface {
	anim.Sink
	io.Closer
}

func openSink(backend string, size int) (sink, <-chan struct{}, error) {
	switch backend {
	case "ansi":
		raw := terminal.IsTerminal(os.Stdin.Fd())
		term, err := display.NewTerminal(os.Stdout, render.CellWidth, raw)
		if err != nil {
			return nil, nil, err
		}
		term.Fits(image.Pt(size, size))
		if !term.Raw() {
			return term, nil, nil
		}
		quit, stopKeys := input.Quit(os.Stdin)
		return closers{term, stopKeys}, quit, nil

	case "tcell":
		scr, err := tscreen.New(render.CellWidth)
		if err != nil {
			return nil, nil, err
		}
		return scr, scr.Done(), nil

	default:
		return nil, nil, fmt.Errorf("unknown backend %q, want ansi or tcell", backend)
	}
}

type closers struct {
	*display.Terminal
	stopKeys func()
}

func (c closers) Close() error {
	c.stopKeys()
	return c.Terminal.Close()
}

func run(ctx context.Context, opts options) (rerr error) {
	closeLog, err := setupLogging(opts.logFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); rerr == nil {
			rerr = cerr
		}
	}()

	cfg, err := opts.config()
	if err != nil {
		return err
	}
	if err := opts.sweep.Validate(); err != nil {
		return err
	}

	black, white, err := soccer.Points(opts.subdivisions)
	if err != nil {
		return err
	}
	comp, err := render.NewCompositor(cfg, black, white)
	if err != nil {
		return err
	}

	var pf perf.Perf
	if opts.cpuProfile != "" {
		pf.Init(opts.cpuProfile)
		if err := pf.StartCPUProfile(); err != nil {
			return err
		}
	}
	defer func() {
		if cerr := pf.Close(); cerr != nil {
			logging.Logger().Warn("failed to write profile", "err", cerr)
			if rerr == nil {
				rerr = cerr
			}
		}
	}()

	out, quit, err := openSink(opts.backend, cfg.ScreenSize)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); rerr == nil {
			rerr = cerr
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if quit != nil {
		go func() {
			select {
			case <-quit:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	r := anim.Runner{
		Compositor: comp,
		Sink:       out,
		Sweep:      opts.sweep,
		Workers:    opts.workers,
		Interval:   opts.interval(),
		Perf:       &pf,
	}
	err = r.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return err
}

func runStats(w io.Writer, opts options) (rerr error) {
	closeLog, err := setupLogging(opts.logFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); rerr == nil {
			rerr = cerr
		}
	}()

	black, white, err := soccer.Points(opts.subdivisions)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Subdivisions:  %d\n", opts.subdivisions)
	fmt.Fprintf(w, "Vertices:      %d\n", len(black)+len(white))
	fmt.Fprintf(w, "Seam distance: %d\n", soccer.KeyPointDistance(opts.subdivisions))
	fmt.Fprintf(w, "Cap depth:     %d\n", soccer.CapDepth(opts.subdivisions))
	fmt.Fprintf(w, "Black:         %d\n", len(black))
	fmt.Fprintf(w, "White:         %d\n", len(white))
	return nil
}
