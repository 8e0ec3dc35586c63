// Package anim drives the frame loop: it composes a frame for each angle of a
// sweep, possibly on several goroutines, and hands the frames to a sink in
// sweep order.
package anim

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/borkshop/kickball/internal/cops/textile"
	"github.com/borkshop/kickball/internal/logging"
	"github.com/borkshop/kickball/internal/perf"
	"github.com/borkshop/kickball/internal/render"
)

// Composer renders a frame for a rotation angle.
type Composer interface {
	NewFrame() *render.Frame
	ComposeInto(f *render.Frame, angle float64)
}

// Sink displays frames.
type Sink interface {
	Draw(tx *textile.Textile) error
}

// Runner plays a sweep of frames into a sink.
type Runner struct {
	Compositor Composer
	Sink       Sink
	Sweep      Sweep

	// Workers is how many frames may be composed at once; values below 2
	// compose each frame on the calling goroutine.
	Workers int

	// Interval is the minimum time between frames; zero draws frames as fast
	// as the sink takes them.
	Interval time.Duration

	// Perf, if not nil, collects compose timings.
	Perf *perf.Perf
}

type result struct {
	frame      *render.Frame
	start, end time.Time
	panicked   any
}

// errPanicked stops the pipeline once a worker has panicked; Run re-raises
// the panic itself.
var errPanicked = errors.New("frame composition panicked")

type job struct {
	index int
	out   chan<- result
}

// Run plays every frame of the sweep, returning early with the context's error
// if it is cancelled or with the first sink error.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.Sweep.Validate(); err != nil {
		return err
	}
	log := logging.Logger()
	n := r.Sweep.Len()
	log.Info("animation starting", "frames", n, "sweep", r.Sweep.String(), "workers", r.Workers)

	var err error
	if r.Workers < 2 {
		err = r.runSerial(ctx, n)
	} else {
		err = r.runParallel(ctx, n)
	}
	if r.Perf != nil {
		log.Info("animation done", "perf", r.Perf.Summary().String(), "err", err)
	} else {
		log.Info("animation done", "err", err)
	}
	return err
}

func (r *Runner) runSerial(ctx context.Context, n int) error {
	pace := r.pacer()
	defer pace.stop()
	f := r.Compositor.NewFrame()
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		start := time.Now()
		r.Compositor.ComposeInto(f, r.Sweep.At(i))
		f.Index = i
		if err := r.show(ctx, pace, result{frame: f, start: start, end: time.Now()}); err != nil {
			return err
		}
	}
	return nil
}

// runParallel composes frames on a pool of workers. The producer queues each
// frame's result channel in pending before handing the job out, so the
// consumer reads results in sweep order no matter which worker finishes first.
//
// A panic while composing is carried to the consumer like any other result
// and raised again on the calling goroutine once every worker has stopped.
func (r *Runner) runParallel(ctx context.Context, n int) error {
	var panicked any
	eg, ctx := errgroup.WithContext(ctx)
	jobs := make(chan job)
	pending := make(chan (<-chan result), 2*r.Workers)
	frames := sync.Pool{New: func() any { return r.Compositor.NewFrame() }}

	eg.Go(func() error {
		defer close(jobs)
		defer close(pending)
		for i := 0; i < n; i++ {
			out := make(chan result, 1)
			select {
			case pending <- out:
			case <-ctx.Done():
				return nil
			}
			select {
			case jobs <- job{i, out}:
			case <-ctx.Done():
				return nil
			}
		}
		return nil
	})

	for w := 0; w < r.Workers; w++ {
		eg.Go(func() error {
			for j := range jobs {
				j.out <- r.compose(frames.Get().(*render.Frame), j.index)
			}
			return nil
		})
	}

	eg.Go(func() error {
		pace := r.pacer()
		defer pace.stop()
		for out := range pending {
			var res result
			select {
			case res = <-out:
			case <-ctx.Done():
				return ctx.Err()
			}
			if res.panicked != nil {
				panicked = res.panicked
				return errPanicked
			}
			err := r.show(ctx, pace, res)
			frames.Put(res.frame)
			if err != nil {
				return err
			}
		}
		return ctx.Err()
	})

	err := eg.Wait()
	if panicked != nil {
		panic(panicked)
	}
	return err
}

func (r *Runner) compose(f *render.Frame, i int) (res result) {
	res.frame = f
	defer func() {
		if p := recover(); p != nil {
			res.panicked = p
		}
	}()
	res.start = time.Now()
	r.Compositor.ComposeInto(f, r.Sweep.At(i))
	f.Index = i
	res.end = time.Now()
	return res
}

func (r *Runner) show(ctx context.Context, pace pacer, res result) error {
	if r.Perf != nil {
		r.Perf.Observe(res.start, res.end)
	}
	if err := pace.wait(ctx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.Sink.Draw(res.frame.Textile)
}

type pacer struct{ t *time.Ticker }

func (r *Runner) pacer() pacer {
	if r.Interval <= 0 {
		return pacer{}
	}
	return pacer{time.NewTicker(r.Interval)}
}

func (p pacer) wait(ctx context.Context) error {
	if p.t == nil {
		return nil
	}
	select {
	case <-p.t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p pacer) stop() {
	if p.t != nil {
		p.t.Stop()
	}
}
