package profiling

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Frame accumulates named durations for the frame in progress.
// Usage: defer f.Track("frame.Render")()
type Frame struct {
	now    func() time.Time
	totals map[string]time.Duration
	order  []string
}

// NewFrame returns an empty frame profiler using the wall clock.
func NewFrame() *Frame {
	return &Frame{now: time.Now, totals: make(map[string]time.Duration)}
}

// Track returns a stop function that records the elapsed time under name.
func (f *Frame) Track(name string) func() {
	start := f.now()
	return func() {
		f.add(name, f.now().Sub(start))
	}
}

func (f *Frame) add(name string, d time.Duration) {
	if _, ok := f.totals[name]; !ok {
		f.order = append(f.order, name)
	}
	f.totals[name] += d
}

// Reset clears the totals. Call at the start of each frame.
func (f *Frame) Reset() {
	clear(f.totals)
	f.order = f.order[:0]
}

// Total returns the sum of everything tracked this frame.
func (f *Frame) Total() time.Duration {
	var sum time.Duration
	for _, d := range f.totals {
		sum += d
	}
	return sum
}

// Get returns the time tracked under name this frame.
func (f *Frame) Get(name string) time.Duration {
	return f.totals[name]
}

// TopN formats the n most expensive entries, slowest first.
// Example: "frame.SwapBuffers:15.2ms, frame.Render:0.4ms"
func (f *Frame) TopN(n int) string {
	names := append([]string(nil), f.order...)
	sort.SliceStable(names, func(i, j int) bool {
		return f.totals[names[i]] > f.totals[names[j]]
	})
	n = max(0, min(n, len(names)))
	parts := make([]string, 0, n)
	for _, name := range names[:n] {
		ms := float64(f.totals[name].Microseconds()) / 1000.0
		parts = append(parts, fmt.Sprintf("%s:%.1fms", name, ms))
	}
	return strings.Join(parts, ", ")
}
