package orbits

import (
	"context"
	"os"
	"runtime"
	"sync"

	kitlog "github.com/go-kit/kit/log"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// StepSize is the default sampling step in seconds.
	StepSize = 60.0
)

var samplerWg sync.WaitGroup

/* Bulk position sampling, for ephemeris generation and frame rendering. */

// Snapshot holds the positions of every body of a database at a single
// moment, in the frame of the system root.
type Snapshot struct {
	T         float64 // seconds past the database epoch
	Positions map[Handle]r3.Vec
}

// Position returns the position of h and whether h was part of the snapshot.
func (s Snapshot) Position(h Handle) (r3.Vec, bool) {
	r, ok := s.Positions[h]
	return r, ok
}

// SnapshotAt solves every orbit of the database exactly once and returns the
// positions of all bodies at t seconds past the epoch. This is the call to
// prefer over per-body PositionAt when rendering a full system, since shared
// parent chains are not solved again for each satellite. On solver
// divergence the snapshot is still fully populated with best estimates and
// the first DivergenceError is returned with it.
func (db *Database) SnapshotAt(t float64) (Snapshot, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	snap := Snapshot{T: t, Positions: make(map[Handle]r3.Vec, len(db.entries))}
	var firstErr error
	local := make(map[Handle]r3.Vec, len(db.entries))
	for h, e := range db.entries {
		r, err := db.localPositionAt(e, t)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		local[h] = r
	}
	// Roots place themselves, then each pass places the children of whatever
	// is already placed. A pass which places nothing means the parent chains
	// loop, which Add and Reparent are supposed to make impossible.
	for len(snap.Positions) < len(db.entries) {
		placed := 0
		for h, e := range db.entries {
			if _, done := snap.Positions[h]; done {
				continue
			}
			if !e.hasParent {
				snap.Positions[h] = local[h]
				placed++
				continue
			}
			parentPos, done := snap.Positions[e.parent]
			if !done {
				continue
			}
			snap.Positions[h] = r3.Add(parentPos, local[h])
			placed++
		}
		if placed == 0 {
			return snap, ErrCyclicParentage
		}
	}
	return snap, firstErr
}

// SnapshotSeries computes snapshots for all the given times, spread over the
// requested number of workers (zero or less means one per CPU). The returned
// slice lines up with times. Cancelling the context abandons whatever is not
// yet computed and returns the context error.
func (db *Database) SnapshotSeries(ctx context.Context, times []float64, workers int) ([]Snapshot, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	snaps := make([]Snapshot, len(times))
	jobs := make(chan int, len(times))
	for i := range times {
		jobs <- i
	}
	close(jobs)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					setErr(ctx.Err())
					return
				case i, more := <-jobs:
					if !more {
						return
					}
					snap, err := db.SnapshotAt(times[i])
					if err != nil {
						setErr(err)
					}
					snaps[i] = snap
				}
			}
		}()
	}
	wg.Wait()
	return snaps, firstErr
}

// EphemerisState is one sampled position of one body, as streamed to the
// ephemeris writers.
type EphemerisState struct {
	Handle Handle
	Name   string
	T      float64 // seconds past the database epoch
	JD     float64 // Julian date of the sample
	R      r3.Vec  // position in the root frame, in meters
}

// Sampler walks a time range over a database and streams the positions of
// the chosen bodies.
type Sampler struct {
	DB     *Database
	Bodies []Handle // nil or empty means every body of the database
	Start  Epoch
	End    Epoch
	Step   float64 // seconds
	logger kitlog.Logger
}

// NewSampler returns a sampler for the given range. A step of zero or less
// falls back to StepSize.
func NewSampler(db *Database, bodies []Handle, start, end Epoch, step float64) *Sampler {
	if step <= 0 {
		step = StepSize
	}
	var logger kitlog.Logger
	if orbitsConfig().verbose {
		logger = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
		logger = kitlog.With(logger, "sampler", "ephemeris")
	} else {
		logger = kitlog.NewNopLogger()
	}
	return &Sampler{DB: db, Bodies: bodies, Start: start, End: end, Step: step, logger: logger}
}

// LogStatus logs the span and step of the upcoming run.
func (s *Sampler) LogStatus() {
	s.logger.Log("level", "info", "subsys", "sampler", "start", s.Start, "end", s.End, "step(s)", s.Step)
}

// Sample streams one EphemerisState per body per step onto stateChan and
// closes the channel once the end epoch is passed. A nil channel turns the
// run into a dry run. Solver divergence is logged and the best estimates
// streamed anyway; any other failure aborts the run.
func (s *Sampler) Sample(stateChan chan<- EphemerisState) error {
	if stateChan != nil {
		defer close(stateChan)
	}
	total := s.End.SecondsSince(s.Start)
	if total < 0 {
		s.logger.Log("level", "warning", "subsys", "sampler", "message", "end epoch before start")
		return nil
	}
	bodies := s.Bodies
	if len(bodies) == 0 {
		bodies = s.DB.Handles()
	}
	names := make(map[Handle]string, len(bodies))
	for _, h := range bodies {
		e, err := s.DB.Entry(h)
		if err != nil {
			return err
		}
		names[h] = e.Name()
	}
	offset := s.Start.SecondsSince(s.DB.Epoch())
	// A span that should land exactly on a step boundary can come back a few
	// tens of microseconds short, since Julian dates resolve no finer. Half a
	// millisecond of slack keeps the boundary step in the run.
	steps := int((total+5e-4)/s.Step) + 1
	s.LogStatus()
	for k := 0; k < steps; k++ {
		t := offset + float64(k)*s.Step
		snap, err := s.DB.SnapshotAt(t)
		if err != nil {
			if _, diverged := err.(DivergenceError); !diverged {
				return err
			}
			s.logger.Log("level", "warning", "subsys", "sampler", "t", t, "err", err)
		}
		jd := s.DB.Epoch().Add(t).JD()
		for _, h := range bodies {
			r, ok := snap.Position(h)
			if !ok {
				continue
			}
			if stateChan != nil {
				stateChan <- EphemerisState{Handle: h, Name: names[h], T: t, JD: jd, R: r}
			}
		}
	}
	s.logger.Log("level", "notice", "subsys", "sampler", "status", "finished", "steps", steps, "bodies", len(bodies))
	return nil
}

// Run samples the range and writes the result per conf, blocking until the
// files are flushed. With a useless conf this degenerates into a dry run.
func (s *Sampler) Run(conf EphemerisConfig) error {
	var stateChan chan EphemerisState
	if !conf.IsUseless() {
		stateChan = make(chan EphemerisState, 1000) // a 1k entry buffer
		samplerWg.Add(1)
		go func() {
			defer samplerWg.Done()
			StreamEphemeris(conf, stateChan)
		}()
	}
	err := s.Sample(stateChan)
	samplerWg.Wait() // Don't return until we're done writing all the files.
	return err
}
