package orbits

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"
)

func TestSolarSystemCensus(t *testing.T) {
	db := NewSolarSystem()
	if db.Len() != 52 {
		t.Fatalf("the catalog holds %d bodies", db.Len())
	}
	root, err := db.Root()
	if err != nil {
		t.Fatal(err)
	}
	if root != HandleSol {
		t.Fatalf("everything orbits %d", root)
	}
	tree, err := db.Subtree(HandleSol)
	if err != nil {
		t.Fatal(err)
	}
	if len(tree) != db.Len() {
		t.Fatalf("%d bodies outside the tree", db.Len()-len(tree))
	}
	sats, err := db.Satellites(HandleSol)
	if err != nil {
		t.Fatal(err)
	}
	if len(sats) != 10 {
		t.Fatalf("the Sun has %d direct satellites", len(sats))
	}
	sats, err = db.Satellites(HandleEarth)
	if err != nil {
		t.Fatal(err)
	}
	if len(sats) != 1 || sats[0] != HandleLuna {
		t.Fatalf("Earth's satellites: %v", sats)
	}
	sats, err = db.Satellites(HandleMars)
	if err != nil {
		t.Fatal(err)
	}
	if len(sats) != 2 || sats[0] != HandlePhobos || sats[1] != HandleDeimos {
		t.Fatalf("Mars's satellites: %v", sats)
	}
	chain, err := db.Parents(HandleDeimos)
	if err != nil {
		t.Fatal(err)
	}
	if len(chain) != 3 || chain[0] != HandleSol || chain[1] != HandleMars || chain[2] != HandleDeimos {
		t.Fatalf("Deimos ancestry: %v", chain)
	}
	tree, err = db.Subtree(HandleHaumea)
	if err != nil {
		t.Fatal(err)
	}
	if len(tree) != 3 {
		t.Fatalf("Haumea subtree: %v", tree)
	}
	luna, err := db.Entry(HandleLuna)
	if err != nil {
		t.Fatal(err)
	}
	if luna.Name() != "Luna" {
		t.Fatalf("filed under %q", luna.Name())
	}
}

func TestSolarSystemHandleGaps(t *testing.T) {
	// The gaps behind the giants absorb future discoveries, so the numbers
	// already shipped must never move.
	cases := []struct {
		name string
		h    Handle
		want Handle
	}{
		{"Jupiter", HandleJupiter, 8},
		{"Saturn", HandleSaturn, 105},
		{"Uranus", HandleUranus, 253},
		{"Neptune", HandleNeptune, 281},
		{"Pluto", HandlePluto, 298},
		{"Eris", HandleEris, 299},
		{"Haumea", HandleHaumea, 301},
		{"Namaka", HandleNamaka, 303},
	}
	for _, c := range cases {
		if c.h != c.want {
			t.Fatalf("%s moved to %d", c.name, c.h)
		}
	}
	// Pluto's slot stays reserved for now.
	if _, err := NewSolarSystem().Entry(HandlePluto); !errors.Is(err, ErrUnknownBody) {
		t.Fatalf("Pluto: %v", err)
	}
}

func TestSolarSystemOrbits(t *testing.T) {
	db := NewSolarSystem()
	for _, h := range db.Handles() {
		e, err := db.Entry(h)
		if err != nil {
			t.Fatal(err)
		}
		if _, orbits := e.Parent(); orbits {
			if err := e.Elements().Validate(); err != nil {
				t.Fatalf("%s: %s", e.Name(), err)
			}
		}
		if _, err := db.PositionAt(h, 0); err != nil {
			t.Fatalf("%s: %s", e.Name(), err)
		}
	}
	p, err := db.PositionAt(HandleEarth, 0)
	if err != nil {
		t.Fatal(err)
	}
	if r := r3.Norm(p); r < 0.97*AU || r > 1.03*AU {
		t.Fatalf("Earth %f AU out", r/AU)
	}
	p, err = db.PositionAt(HandleJupiter, 0)
	if err != nil {
		t.Fatal(err)
	}
	if r := r3.Norm(p); r < 4.9*AU || r > 5.5*AU {
		t.Fatalf("Jupiter %f AU out", r/AU)
	}
	// The Moon stays between perigee and apogee all month.
	for day := 0; day <= 28; day++ {
		d, err := db.DistanceAt(HandleEarth, HandleLuna, float64(day)*secondsPerDay)
		if err != nil {
			t.Fatal(err)
		}
		if d < 362e6 || d > 407e6 {
			t.Fatalf("day %d: the Moon sits %f km out", day, d/1000)
		}
	}
	carme, err := db.Entry(HandleCarme)
	if err != nil {
		t.Fatal(err)
	}
	if i := carme.Elements().Inclination(); i < math.Pi/2 {
		t.Fatalf("Carme must ride retrograde, i=%f", Rad2deg(i))
	}
}

func TestSolarSystemSpheres(t *testing.T) {
	db := NewSolarSystem()
	soi, err := db.RadiusSOI(HandleSol)
	if err != nil {
		t.Fatal(err)
	}
	if soi < 100*AU {
		t.Fatalf("the Sun's sphere reaches only %f AU", soi/AU)
	}
	soi, err = db.RadiusSOI(HandleEarth)
	if err != nil {
		t.Fatal(err)
	}
	if soi < 9.0e8 || soi > 9.5e8 {
		t.Fatalf("Earth's sphere %e", soi)
	}
	soi, err = db.RadiusSOI(HandleLuna)
	if err != nil {
		t.Fatal(err)
	}
	if soi < 6e7 || soi > 7e7 {
		t.Fatalf("the Moon's sphere %e", soi)
	}
}

func TestSolarSystemDoubleAdd(t *testing.T) {
	db := NewSolarSystem()
	if err := db.AddSolarSystem(); !errors.Is(err, ErrDuplicateBody) {
		t.Fatalf("a second helping: %v", err)
	}
}
