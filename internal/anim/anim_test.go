package anim_test

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borkshop/kickball/internal/anim"
	"github.com/borkshop/kickball/internal/cops/textile"
	"github.com/borkshop/kickball/internal/perf"
	"github.com/borkshop/kickball/internal/render"
	"github.com/borkshop/kickball/internal/soccer"
)

type recorder struct {
	sync.Mutex
	frames []string
	after  int
	cancel func()
	err    error
}

func (rec *recorder) Draw(tx *textile.Textile) error {
	rec.Lock()
	defer rec.Unlock()
	rec.frames = append(rec.frames, strings.Join(tx.Lines(), "\n"))
	if rec.after > 0 && len(rec.frames) == rec.after {
		if rec.cancel != nil {
			rec.cancel()
		}
		return rec.err
	}
	return nil
}

// letters fills each frame with a letter picked by angle, taking longer on
// even angles so that workers finish out of order.
type letters struct{}

func (letters) NewFrame() *render.Frame { return render.NewFrame(2, ' ') }

func (letters) ComposeInto(f *render.Frame, angle float64) {
	if int(angle)%2 == 0 {
		time.Sleep(2 * time.Millisecond)
	}
	f.Fill(rune('a' + int(angle)))
	f.Angle = angle
}

// brittle panics on one angle, the way a point off screen does.
type brittle struct {
	letters
	at float64
}

func (b brittle) ComposeInto(f *render.Frame, angle float64) {
	if angle == b.at {
		panic("off screen")
	}
	b.letters.ComposeInto(f, angle)
}

func TestSweep(t *testing.T) {
	sw := anim.DefaultSweep()
	require.NoError(t, sw.Validate())
	assert.Equal(t, 1000, sw.Len())
	assert.Equal(t, 0.0, sw.At(0))
	assert.InDelta(t, 99.9, sw.At(999), 1e-9)

	for _, tc := range []struct {
		name string
		sw   anim.Sweep
		n    int
		ok   bool
	}{
		{"partial last step", anim.Sweep{0, 1, 0.3}, 4, true},
		{"descending", anim.Sweep{1, 0, -0.5}, 2, true},
		{"empty", anim.Sweep{1, 1, 0.1}, 0, false},
		{"wrong way", anim.Sweep{0, 1, -0.1}, 0, false},
		{"zero step", anim.Sweep{0, 1, 0}, 0, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.n, tc.sw.Len())
			if tc.ok {
				assert.NoError(t, tc.sw.Validate())
			} else {
				assert.Error(t, tc.sw.Validate())
			}
		})
	}
	assert.Equal(t, anim.ErrNoFrames, anim.Sweep{1, 1, 0.1}.Validate())
}

func TestRunner_order(t *testing.T) {
	for _, workers := range []int{0, 1, 3, 8} {
		rec := &recorder{}
		var pf perf.Perf
		r := anim.Runner{
			Compositor: letters{},
			Sink:       rec,
			Sweep:      anim.Sweep{0, 20, 1},
			Workers:    workers,
			Perf:       &pf,
		}
		require.NoError(t, r.Run(context.Background()))
		require.Len(t, rec.frames, 20, "workers=%d", workers)
		for i, fr := range rec.frames {
			assert.Equal(t, string(rune('a'+i)), fr[:1], "workers=%d frame %d", workers, i)
		}
		assert.Equal(t, 20, pf.Summary().Frames)
	}
}

func TestRunner_parallelMatchesSerial(t *testing.T) {
	black, white, err := soccer.Points(3)
	require.NoError(t, err)
	comp, err := render.NewCompositor(render.DefaultConfig(), black, white)
	require.NoError(t, err)
	sw := anim.Sweep{0, 3, 0.25}

	serial := &recorder{}
	require.NoError(t, (&anim.Runner{Compositor: comp, Sink: serial, Sweep: sw}).Run(context.Background()))
	parallel := &recorder{}
	require.NoError(t, (&anim.Runner{Compositor: comp, Sink: parallel, Sweep: sw, Workers: 4}).Run(context.Background()))

	require.Len(t, serial.frames, sw.Len())
	assert.Equal(t, serial.frames, parallel.frames)
	for i := range serial.frames {
		assert.Equal(t, comp.Compose(sw.At(i)).Textile.Lines(), strings.Split(serial.frames[i], "\n"))
	}
}

func TestRunner_cancel(t *testing.T) {
	for _, workers := range []int{1, 4} {
		ctx, cancel := context.WithCancel(context.Background())
		rec := &recorder{after: 3, cancel: cancel}
		r := anim.Runner{Compositor: letters{}, Sink: rec, Sweep: anim.Sweep{0, 20, 1}, Workers: workers}
		err := r.Run(ctx)
		cancel()
		assert.ErrorIs(t, err, context.Canceled, "workers=%d", workers)
		assert.Len(t, rec.frames, 3, "workers=%d", workers)
	}
}

func TestRunner_sinkError(t *testing.T) {
	boom := errors.New("boom")
	for _, workers := range []int{1, 4} {
		rec := &recorder{after: 2, err: boom}
		r := anim.Runner{Compositor: letters{}, Sink: rec, Sweep: anim.Sweep{0, 20, 1}, Workers: workers}
		assert.Equal(t, boom, r.Run(context.Background()), "workers=%d", workers)
		assert.Len(t, rec.frames, 2, "workers=%d", workers)
	}
}

func TestRunner_interval(t *testing.T) {
	rec := &recorder{}
	r := anim.Runner{
		Compositor: letters{},
		Sink:       rec,
		Sweep:      anim.Sweep{0, 4, 1},
		Interval:   5 * time.Millisecond,
	}
	start := time.Now()
	require.NoError(t, r.Run(context.Background()))
	assert.Len(t, rec.frames, 4)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestRunner_noFrames(t *testing.T) {
	r := anim.Runner{Compositor: letters{}, Sink: &recorder{}, Sweep: anim.Sweep{0, 0, 1}}
	assert.Equal(t, anim.ErrNoFrames, r.Run(context.Background()))
}

func TestRunner_panicReachesCaller(t *testing.T) {
	for _, workers := range []int{1, 4} {
		rec := &recorder{}
		r := anim.Runner{
			Compositor: brittle{at: 3},
			Sink:       rec,
			Sweep:      anim.Sweep{0, 20, 1},
			Workers:    workers,
		}
		cleanedUp := false
		assert.PanicsWithValue(t, "off screen", func() {
			defer func() { cleanedUp = true }()
			_ = r.Run(context.Background())
		}, "workers=%d", workers)
		assert.True(t, cleanedUp, "workers=%d", workers)
		assert.Len(t, rec.frames, 3, "workers=%d", workers)
	}
}
