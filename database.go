package orbits

import (
	"math"
	"slices"
	"sync"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// Handle identifies a body inside a Database.
type Handle uint32

// DatabaseEntry ties a body to its place in a system: an optional parent
// handle and the elements of its orbit around that parent. Root bodies have
// neither. Entries are plain values, so whatever the Database hands out can
// be kept without locking concerns.
type DatabaseEntry struct {
	name      string
	body      Body
	parent    Handle
	hasParent bool
	elements  OrbitalElements
}

// NewEntry returns a root entry for a body which orbits nothing.
func NewEntry(name string, b Body) DatabaseEntry {
	return DatabaseEntry{name: name, body: b}
}

// WithParent places the entry in orbit around parent with the given elements.
func (e DatabaseEntry) WithParent(parent Handle, el OrbitalElements) DatabaseEntry {
	e.parent = parent
	e.hasParent = true
	e.elements = el
	return e
}

// Name returns the display name of the body.
func (e DatabaseEntry) Name() string { return e.name }

// Body returns the physical body.
func (e DatabaseEntry) Body() Body { return e.body }

// Parent returns the parent handle and whether the entry has one.
func (e DatabaseEntry) Parent() (Handle, bool) { return e.parent, e.hasParent }

// Elements returns the orbit around the parent. Meaningless for root entries.
func (e DatabaseEntry) Elements() OrbitalElements { return e.elements }

// Database stores every body of a star system in a flat map keyed by Handle,
// each entry naming its parent. Add and Reparent refuse anything which would
// loop the parent chain, so stored hierarchies are always trees. Queries
// share a read lock and never mutate, which makes them safe to call from as
// many goroutines as wanted; mutation serializes on the write lock.
type Database struct {
	mu      sync.RWMutex
	entries map[Handle]DatabaseEntry
	solver  KeplerSolver
	epoch   Epoch
}

// NewDatabase returns an empty database propagating from the J2000 epoch
// with the configured Kepler solver.
func NewDatabase() *Database {
	return &Database{
		entries: make(map[Handle]DatabaseEntry),
		solver:  DefaultSolver(),
		epoch:   J2000,
	}
}

// Add stores entry under h. The handle must be free, the parent (if any)
// must already be stored and the elements must validate, so every stored
// entry can be propagated and no insertion can close a parent loop.
func (db *Database) Add(h Handle, entry DatabaseEntry) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if _, dup := db.entries[h]; dup {
		return ErrDuplicateBody
	}
	if entry.hasParent {
		if entry.parent == h {
			return ErrCyclicParentage
		}
		if _, ok := db.entries[entry.parent]; !ok {
			return unknownBody(entry.parent)
		}
		if err := entry.elements.Validate(); err != nil {
			return err
		}
	}
	db.entries[h] = entry
	return nil
}

// Remove deletes the body stored under h. A body which still has satellites
// stays put; RemoveTree it or Reparent them first.
func (db *Database) Remove(h Handle) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if _, ok := db.entries[h]; !ok {
		return unknownBody(h)
	}
	for other, e := range db.entries {
		if other != h && e.hasParent && e.parent == h {
			return ErrHasSatellites
		}
	}
	delete(db.entries, h)
	return nil
}

// RemoveTree deletes the body stored under h along with everything which
// directly or transitively orbits it.
func (db *Database) RemoveTree(h Handle) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if _, ok := db.entries[h]; !ok {
		return unknownBody(h)
	}
	doomed := map[Handle]bool{h: true}
	for changed := true; changed; {
		changed = false
		for other, e := range db.entries {
			if !doomed[other] && e.hasParent && doomed[e.parent] {
				doomed[other] = true
				changed = true
			}
		}
	}
	for other := range doomed {
		delete(db.entries, other)
	}
	return nil
}

// Reparent moves h into orbit around parent with the given elements. The new
// parent may not be h itself nor anything in orbit around h.
func (db *Database) Reparent(h, parent Handle, el OrbitalElements) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	if _, ok := db.entries[h]; !ok {
		return unknownBody(h)
	}
	if _, ok := db.entries[parent]; !ok {
		return unknownBody(parent)
	}
	if err := el.Validate(); err != nil {
		return err
	}
	// Walk up from the new parent; meeting h on the way means the new parent
	// sits inside the subtree of h.
	for cur, hops := parent, 0; ; hops++ {
		if cur == h {
			return ErrCyclicParentage
		}
		e := db.entries[cur]
		if !e.hasParent || hops > len(db.entries) {
			break
		}
		cur = e.parent
	}
	entry := db.entries[h]
	entry.parent = parent
	entry.hasParent = true
	entry.elements = el
	db.entries[h] = entry
	return nil
}

// SetElements swaps the orbit of h without touching its place in the tree.
func (db *Database) SetElements(h Handle, el OrbitalElements) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	entry, ok := db.entries[h]
	if !ok {
		return unknownBody(h)
	}
	if !entry.hasParent {
		return ErrRootBody
	}
	if err := el.Validate(); err != nil {
		return err
	}
	entry.elements = el
	db.entries[h] = entry
	return nil
}

// SetBody swaps the physical body stored under h.
func (db *Database) SetBody(h Handle, b Body) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	entry, ok := db.entries[h]
	if !ok {
		return unknownBody(h)
	}
	entry.body = b
	db.entries[h] = entry
	return nil
}

// SetEpoch changes the reference epoch query times count from.
func (db *Database) SetEpoch(e Epoch) {
	db.mu.Lock()
	db.epoch = e
	db.mu.Unlock()
}

// Epoch returns the reference epoch, J2000 unless changed.
func (db *Database) Epoch() Epoch {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.epoch
}

// SetSolver swaps the Kepler solver used by every position query.
func (db *Database) SetSolver(s KeplerSolver) {
	db.mu.Lock()
	db.solver = s
	db.mu.Unlock()
}

// Solver returns the Kepler solver in use.
func (db *Database) Solver() KeplerSolver {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.solver
}

// Entry returns a copy of the entry stored under h.
func (db *Database) Entry(h Handle) (DatabaseEntry, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	entry, ok := db.entries[h]
	if !ok {
		return DatabaseEntry{}, unknownBody(h)
	}
	return entry, nil
}

// Len returns the number of stored bodies.
func (db *Database) Len() int {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return len(db.entries)
}

// Handles returns every stored handle, sorted.
func (db *Database) Handles() []Handle {
	db.mu.RLock()
	defer db.mu.RUnlock()
	hs := make([]Handle, 0, len(db.entries))
	for h := range db.entries {
		hs = append(hs, h)
	}
	slices.Sort(hs)
	return hs
}

// parentChain returns the handles from h up to its root, leaf first. The
// caller must hold at least the read lock. The hop guard turns a corrupted
// chain into ErrCyclicParentage instead of spinning forever.
func (db *Database) parentChain(h Handle) ([]Handle, error) {
	chain := make([]Handle, 0, 8)
	cur := h
	for {
		e, ok := db.entries[cur]
		if !ok {
			return nil, unknownBody(cur)
		}
		chain = append(chain, cur)
		if !e.hasParent {
			return chain, nil
		}
		if len(chain) > len(db.entries) {
			return nil, ErrCyclicParentage
		}
		cur = e.parent
	}
}

// localPositionAt returns the offset of the entry from its parent at t
// seconds past the epoch. The caller must hold at least the read lock.
func (db *Database) localPositionAt(e DatabaseEntry, t float64) (r3.Vec, error) {
	if !e.hasParent {
		return r3.Vec{}, nil
	}
	parent := db.entries[e.parent]
	M := MeanAnomalyAtTime(e.elements.M0, parent.body.GM(), e.elements.a, t)
	return e.elements.PositionAtMean(M, db.solver)
}

// PositionAt returns the position of h at t seconds past the epoch, in the
// frame of the system root. Each body on the parent chain is solved exactly
// once and the offsets summed leaf to root. On solver divergence the summed
// best estimate is still returned, together with the first DivergenceError.
func (db *Database) PositionAt(h Handle, t float64) (r3.Vec, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	chain, err := db.parentChain(h)
	if err != nil {
		return r3.Vec{}, err
	}
	var sum r3.Vec
	var firstErr error
	for _, node := range chain {
		local, err := db.localPositionAt(db.entries[node], t)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		sum = r3.Add(sum, local)
	}
	return sum, firstErr
}

// PositionAtDate is PositionAt with the time taken from a wall clock instead
// of seconds past the reference epoch.
func (db *Database) PositionAtDate(h Handle, t time.Time) (r3.Vec, error) {
	db.mu.RLock()
	epoch := db.epoch
	db.mu.RUnlock()
	return db.PositionAt(h, epoch.SecondsUntil(t))
}

// LocalPositionAt returns the offset of h from its parent at t seconds past
// the epoch. Root bodies sit at their own origin, so they yield the zero
// vector.
func (db *Database) LocalPositionAt(h Handle, t float64) (r3.Vec, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	e, ok := db.entries[h]
	if !ok {
		return r3.Vec{}, unknownBody(h)
	}
	return db.localPositionAt(e, t)
}

// PositionAtMeanAnomaly returns the offset of h from its parent at an
// arbitrary mean anomaly, which is how orbit paths get swept out for
// drawing. Root bodies have no orbit to sweep, hence ErrRootBody.
func (db *Database) PositionAtMeanAnomaly(h Handle, M float64) (r3.Vec, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	e, ok := db.entries[h]
	if !ok {
		return r3.Vec{}, unknownBody(h)
	}
	if !e.hasParent {
		return r3.Vec{}, ErrRootBody
	}
	return e.elements.PositionAtMean(M, db.solver)
}

// RelativePosition returns the vector from origin to target at t seconds
// past the epoch, i.e. pos(target)-pos(origin) rebased onto their deepest
// common ancestor. Dropping the shared part of both parent chains before
// summing keeps satellite to satellite vectors clear of root scale
// cancellation and makes the result exactly antisymmetric.
func (db *Database) RelativePosition(origin, target Handle, t float64) (r3.Vec, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	oChain, err := db.parentChain(origin)
	if err != nil {
		return r3.Vec{}, err
	}
	tChain, err := db.parentChain(target)
	if err != nil {
		return r3.Vec{}, err
	}
	// The chains are leaf first, so the shared ancestry sits at their tails.
	for len(oChain) > 0 && len(tChain) > 0 && oChain[len(oChain)-1] == tChain[len(tChain)-1] {
		oChain = oChain[:len(oChain)-1]
		tChain = tChain[:len(tChain)-1]
	}
	var sumO, sumT r3.Vec
	var firstErr error
	for _, node := range tChain {
		local, err := db.localPositionAt(db.entries[node], t)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		sumT = r3.Add(sumT, local)
	}
	for _, node := range oChain {
		local, err := db.localPositionAt(db.entries[node], t)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		sumO = r3.Add(sumO, local)
	}
	return r3.Sub(sumT, sumO), firstErr
}

// DirectionAt returns the unit vector pointing from origin towards target at
// t seconds past the epoch. Once the two bodies sit within distanceε of each
// other the direction stops meaning anything: ErrDegenerateDirection.
func (db *Database) DirectionAt(origin, target Handle, t float64) (r3.Vec, error) {
	rel, err := db.RelativePosition(origin, target, t)
	if err != nil {
		if _, diverged := err.(DivergenceError); !diverged {
			return r3.Vec{}, err
		}
	}
	n := r3.Norm(rel)
	if n < distanceε {
		return r3.Vec{}, ErrDegenerateDirection
	}
	return r3.Scale(1/n, rel), err
}

// DistanceAt returns the distance in meters between two bodies at t seconds
// past the epoch.
func (db *Database) DistanceAt(a, b Handle, t float64) (float64, error) {
	rel, err := db.RelativePosition(a, b, t)
	if err != nil {
		if _, diverged := err.(DivergenceError); !diverged {
			return 0, err
		}
	}
	return r3.Norm(rel), err
}

// MeanAnomalyAt returns the mean anomaly of h at t seconds past the epoch,
// wrapped to (-π, π].
func (db *Database) MeanAnomalyAt(h Handle, t float64) (float64, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	e, ok := db.entries[h]
	if !ok {
		return 0, unknownBody(h)
	}
	if !e.hasParent {
		return 0, ErrRootBody
	}
	parent := db.entries[e.parent]
	return MeanAnomalyAtTime(e.elements.M0, parent.body.GM(), e.elements.a, t), nil
}

// OrbitalPeriod returns the period of h around its parent in seconds.
func (db *Database) OrbitalPeriod(h Handle) (float64, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	e, ok := db.entries[h]
	if !ok {
		return 0, unknownBody(h)
	}
	if !e.hasParent {
		return 0, ErrRootBody
	}
	parent := db.entries[e.parent]
	return e.elements.Period(parent.body.GM()), nil
}

// Parents returns the ancestry of h from the system root down to h itself.
func (db *Database) Parents(h Handle) ([]Handle, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	chain, err := db.parentChain(h)
	if err != nil {
		return nil, err
	}
	slices.Reverse(chain)
	return chain, nil
}

// Satellites returns the bodies directly orbiting h, sorted by handle.
func (db *Database) Satellites(h Handle) ([]Handle, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if _, ok := db.entries[h]; !ok {
		return nil, unknownBody(h)
	}
	return db.satellites(h), nil
}

func (db *Database) satellites(h Handle) []Handle {
	var sats []Handle
	for other, e := range db.entries {
		if e.hasParent && e.parent == h {
			sats = append(sats, other)
		}
	}
	slices.Sort(sats)
	return sats
}

// Subtree returns h and everything directly or transitively orbiting it,
// sorted by handle.
func (db *Database) Subtree(h Handle) ([]Handle, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if _, ok := db.entries[h]; !ok {
		return nil, unknownBody(h)
	}
	tree := []Handle{h}
	for idx := 0; idx < len(tree); idx++ {
		tree = append(tree, db.satellites(tree[idx])...)
	}
	slices.Sort(tree)
	return tree, nil
}

// CombinedMass returns the mass of h plus everything orbiting it, in
// kilograms. This is the mass which sizes the sphere of influence.
func (db *Database) CombinedMass(h Handle) (float64, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	if _, ok := db.entries[h]; !ok {
		return 0, unknownBody(h)
	}
	return db.combinedMass(h), nil
}

func (db *Database) combinedMass(h Handle) float64 {
	mass := db.entries[h].body.massKg
	for _, sat := range db.satellites(h) {
		mass += db.combinedMass(sat)
	}
	return mass
}

// Root returns the handle every other body ultimately orbits. When several
// bodies orbit nothing the lowest handle wins; an empty database returns
// ErrUnknownBody.
func (db *Database) Root() (Handle, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	var root Handle
	found := false
	for h, e := range db.entries {
		if e.hasParent {
			continue
		}
		if !found || h < root {
			root = h
			found = true
		}
	}
	if !found {
		return 0, ErrUnknownBody
	}
	return root, nil
}

// RadiusSOI returns the radius of the sphere of influence of h in meters,
// a·(m/M)^(2/5) with m the combined mass of h and its satellites and M the
// mass of the parent. A root body has no parent to trade influence with, so
// its sphere reaches until its pull fades below gravityThreshold.
func (db *Database) RadiusSOI(h Handle) (float64, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	e, ok := db.entries[h]
	if !ok {
		return 0, unknownBody(h)
	}
	if !e.hasParent {
		return e.body.DistanceOfGravity(gravityThreshold), nil
	}
	parent := db.entries[e.parent]
	return e.elements.a * math.Pow(db.combinedMass(h)/parent.body.massKg, 2.0/5.0), nil
}
