package perf

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerf_Summary(t *testing.T) {
	var perf Perf
	assert.Equal(t, Summary{}, perf.Summary())

	t0 := time.Unix(0, 0)
	for i := 1; i <= 4; i++ {
		perf.Observe(t0, t0.Add(time.Duration(i)*time.Millisecond))
	}
	s := perf.Summary()
	assert.Equal(t, 4, s.Frames)
	assert.Equal(t, 2500*time.Microsecond, s.Mean)
	assert.Equal(t, 4*time.Millisecond, s.Max)
	assert.Equal(t, 2500*time.Microsecond, s.Recent)
	assert.Contains(t, s.String(), "4 frames")
}

func TestPerf_Summary_wraps(t *testing.T) {
	var perf Perf
	t0 := time.Unix(0, 0)
	perf.Observe(t0, t0.Add(time.Second))
	for i := 0; i < numSamples; i++ {
		perf.Observe(t0, t0.Add(time.Millisecond))
	}
	s := perf.Summary()
	assert.Equal(t, numSamples+1, s.Frames)
	assert.Equal(t, time.Second, s.Max)
	assert.Equal(t, time.Millisecond, s.Recent)
}

func TestPerf_StartCPUProfile(t *testing.T) {
	dir := t.TempDir()
	var perf Perf
	perf.Init(filepath.Join(dir, "test"))

	require.NoError(t, perf.StartCPUProfile())
	assert.True(t, perf.Profiling())
	require.NoError(t, perf.StartCPUProfile())
	perf.Observe(time.Now(), time.Now())
	require.NoError(t, perf.Close())
	assert.False(t, perf.Profiling())

	for _, name := range []string{"exe", "cpu", filepath.Join("f1", "heap")} {
		_, err := os.Stat(filepath.Join(perf.OutputDir(), name))
		assert.NoError(t, err, name)
	}
}

func TestCreateMkdirAll(t *testing.T) {
	name := filepath.Join(t.TempDir(), "a", "b", "c")
	f, err := createMkdirAll(name)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	_, err = os.Stat(name)
	assert.NoError(t, err)
}
