// Package perf times animation frames and optionally captures pprof profiles
// while the animation runs.
package perf

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime/pprof"
	"syscall"
	"time"
)

const numSamples = 64

// Perf collects frame timings in a ring of recent samples, along with running
// totals over every frame.
type Perf struct {
	outputBase string
	profDebug  int
	profiling  bool
	cpuProfF   *os.File
	err        error

	round int
	i     int
	time  [numSamples]struct{ start, end time.Time }

	total time.Duration
	max   time.Duration
}

// Summary describes the frames seen so far.
type Summary struct {
	Frames int
	Mean   time.Duration
	Max    time.Duration
	Recent time.Duration // mean over the last few frames
}

func (s Summary) String() string {
	return fmt.Sprintf("%d frames, mean %v, max %v, recent %v", s.Frames, s.Mean, s.Max, s.Recent)
}

// Init sets up where profiles are written: a timestamped directory with an
// optional name prefix.
func (perf *Perf) Init(name string) {
	const timeFormat = "20060102T150405Z0700"
	perf.profDebug = 2
	if nowf := time.Now().Format(timeFormat); name == "" {
		perf.outputBase = fmt.Sprintf("prof-%s", nowf)
	} else {
		perf.outputBase = fmt.Sprintf("%s-prof-%s", name, nowf)
	}
}

// Observe records a frame that ran from start to end.
func (perf *Perf) Observe(start, end time.Time) {
	perf.time[perf.i].start = start
	perf.time[perf.i].end = end
	perf.i = (perf.i + 1) % numSamples
	perf.round++

	d := end.Sub(start)
	perf.total += d
	if d > perf.max {
		perf.max = d
	}
}

// Summary returns frame statistics.
func (perf *Perf) Summary() Summary {
	s := Summary{Frames: perf.round, Max: perf.max}
	if perf.round == 0 {
		return s
	}
	s.Mean = perf.total / time.Duration(perf.round)

	n := perf.round
	if n > numSamples {
		n = numSamples
	}
	var recent time.Duration
	for k := 1; k <= n; k++ {
		t := perf.time[(perf.i-k+numSamples)%numSamples]
		recent += t.end.Sub(t.start)
	}
	s.Recent = recent / time.Duration(n)
	return s
}

// StartCPUProfile begins writing a CPU profile under the output directory,
// alongside a copy of the running executable.
func (perf *Perf) StartCPUProfile() error {
	if perf.err != nil {
		return perf.err
	}
	if perf.profiling {
		return nil
	}
	if perf.outputBase == "" {
		perf.Init("")
	}
	if err := perf.copyExecutable(); err != nil {
		perf.err = err
		return err
	}
	f, err := createMkdirAll(path.Join(perf.outputBase, "cpu"))
	if err != nil {
		perf.err = fmt.Errorf("failed to create \"cpu\" output file: %v", err)
		return perf.err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		_ = f.Close()
		perf.err = err
		return err
	}
	perf.cpuProfF = f
	perf.profiling = true
	return nil
}

// Profiling returns whether a CPU profile is being written.
func (perf *Perf) Profiling() bool { return perf.profiling }

// OutputDir returns the directory profiles are written to.
func (perf *Perf) OutputDir() string { return perf.outputBase }

// Close stops any profile, writing the other runtime profiles next to it, and
// returns the first error encountered.
func (perf *Perf) Close() error {
	if perf.profiling {
		if err := perf.takeProfile(); perf.err == nil {
			perf.err = err
		}
	}
	if serr := perf.stopProfiling(); perf.err == nil {
		perf.err = serr
	}
	return perf.err
}

// Err returns any profiling error encountered.
func (perf *Perf) Err() error { return perf.err }

func (perf *Perf) stopProfiling() (err error) {
	if perf.cpuProfF != nil {
		pprof.StopCPUProfile()
		err = perf.cpuProfF.Close()
		perf.cpuProfF = nil
		if err != nil {
			err = fmt.Errorf("failed to close \"cpu\" output file: %v", err)
		}
	}
	perf.profiling = false
	return err
}

func (perf *Perf) takeProfile() error {
	for _, prof := range pprof.Profiles() {
		f, err := perf.createOutput(prof.Name())
		if err != nil {
			return err
		}
		err = prof.WriteTo(f, perf.profDebug)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (perf *Perf) copyExecutable() (rerr error) {
	dstName := path.Join(perf.outputBase, "exe")

	var sysStat syscall.Stat_t
	err := syscall.Stat(dstName, &sysStat)
	if err != nil && err != syscall.ENOENT {
		return err
	}

	dst, err := createMkdirAll(dstName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dst.Close(); rerr == nil {
			rerr = cerr
		}
	}()

	srcName, err := os.Executable()
	if err != nil {
		return err
	}
	src, err := os.Open(srcName)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := src.Close(); rerr == nil {
			rerr = cerr
		}
	}()

	_, err = io.Copy(dst, src)
	return err
}

func (perf *Perf) createOutput(name string) (*os.File, error) {
	pth := path.Join(perf.outputBase, fmt.Sprintf("f%d", perf.round), name)
	f, err := createMkdirAll(pth)
	if err != nil {
		err = fmt.Errorf("failed to create %q output file: %v", name, err)
	}
	return f, err
}

func createMkdirAll(name string) (*os.File, error) {
	f, err := os.Create(name)
	if pe, ok := err.(*os.PathError); ok && pe.Err == syscall.ENOENT {
		err = os.MkdirAll(path.Dir(name), 0777)
		if err == nil {
			return os.Create(name)
		}
	}
	return f, err
}
